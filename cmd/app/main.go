package main

import (
	"os"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
