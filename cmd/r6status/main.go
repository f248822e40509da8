package main

import "github.com/mcoot/r6status/internal/cli"

func main() {
	cli.Execute()
}
