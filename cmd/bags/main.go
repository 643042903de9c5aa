package main

import "github.com/awmpietro/puzzle-solvers/internal/cli"

func main() {
	cli.Execute(cli.NewCommand("bags", "Count bags that can hold a shiny gold bag and bags a shiny gold bag must hold"))
}
