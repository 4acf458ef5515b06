package main

import (
	"github.com/joho/godotenv"

	"github.com/papertrade/console/cmd/padmin/cmd"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
