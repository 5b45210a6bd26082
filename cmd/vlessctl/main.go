package main

import "github.com/vlessops/vlessctl/internal/cli"

func main() {
	cli.Execute()
}
