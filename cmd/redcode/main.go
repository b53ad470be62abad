package main

import (
	"os"

	"github.com/dshills/redcode/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
