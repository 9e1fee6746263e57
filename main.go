package main

import "github.com/minagishl/command-builder/cmd"

func main() {
	cmd.Execute()
}
