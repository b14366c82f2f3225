package main

import "github.com/jnelson/art-exhibits/internal/cli"

func main() {
	cli.Execute()
}
