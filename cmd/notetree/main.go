package main

import (
	"github.com/forestrie/go-notetree/cli"
)

func main() {
	cli.ExecuteRoot(cli.NewRootCommand())
}
