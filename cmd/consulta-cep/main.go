package main

import (
	"os"

	"consulta-cep/cmd/consulta-cep/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
