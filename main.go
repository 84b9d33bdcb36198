package main

import "github.com/am8-code/Video-Clipper/internal/cli"

func main() {
	cli.Main()
}
