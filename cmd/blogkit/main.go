package main

import "github.com/techmaster-vietnam/blogkit/cmd/blogkit/commands"

func main() {
	commands.Execute()
}
