package main

import "github.com/awmpietro/puzzle-solvers/internal/cli"

func main() {
	cli.Execute(cli.NewCommand("adapters", "Report adapter jolt differences and the number of valid adapter arrangements"))
}
