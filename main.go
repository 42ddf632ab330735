package main

import "github.com/agenciagand/orca/cmd"

func main() {
	cmd.Execute()
}
