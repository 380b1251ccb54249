package main

import (
	"github.com/thanhnguyen2187/neview/cli"
)

func main() {
	cli.Start()
}
