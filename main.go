package main

import "remex/cmd"

func main() {
	cmd.Execute()
}
