package main

import "tvm802-tools/internal/cli"

func main() {
	cli.Execute()
}
