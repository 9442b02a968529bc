package main

import "github.com/warblerhq/warbler/cmd/warbler-cli/cmd"

func main() {
	cmd.Execute()
}
