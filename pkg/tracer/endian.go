package tracer

import "encoding/binary"

// byteOrder is the byte order of every architecture this package
// supports (x86 and x86-64 are both little-endian).
var byteOrder = binary.LittleEndian
