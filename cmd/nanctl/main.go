package main

import (
	"os"

	"github.com/newnancity/nanmanager/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
