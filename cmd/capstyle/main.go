package main

import "capstyle/internal/cli"

func main() {
	cli.Main()
}
