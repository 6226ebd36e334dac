package main

import "github.com/lepinkainen/nobelfetch/cmd"

// indirection for testing
var execute = cmd.Execute

func main() {
	execute()
}
