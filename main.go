package main

import "github.com/lepinkainen/bookcover/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
