package main

import "triplets/internal/cli"

func main() {
	cli.Execute()
}
