package main

import "github.com/outerbounds/vsctl/internal/cli"

func main() {
	cli.Execute()
}
