package main

import "github.com/premiertools/planner/internal/adapters/cli"

func main() {
	cli.Execute()
}
