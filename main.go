package main

import "github.com/lepinkainen/smarterboxd/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
