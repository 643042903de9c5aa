package main

import "github.com/awmpietro/puzzle-solvers/internal/cli"

func main() {
	cli.Execute(cli.NewCommand("passports", "Count passport records valid under the presence and full field rule-sets"))
}
