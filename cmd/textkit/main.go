package main

import "textkit/internal/cli"

func main() {
	cli.Execute()
}
