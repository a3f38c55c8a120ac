package main

import "github.com/MRMRMR033/pos-api/cmd/posctl/commands"

func main() {
	commands.Execute()
}
