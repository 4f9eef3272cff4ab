package main

import "searchbox/internal/cli"

func main() {
	cli.Execute()
}
