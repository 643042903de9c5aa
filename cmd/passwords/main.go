package main

import "github.com/awmpietro/puzzle-solvers/internal/cli"

func main() {
	cli.Execute(cli.NewCommand("passwords", "Count password records valid under the range and position policy schemes"))
}
