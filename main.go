package main

import (
	"github.com/VinothPrinzz/socialgen-cli/internal/cmd"
)

func main() {
	cmd.Execute()
}
