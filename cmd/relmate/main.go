package main

import (
	"os"

	"github.com/relmate/relmate/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
