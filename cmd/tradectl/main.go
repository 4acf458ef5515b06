package main

import (
	"github.com/joho/godotenv"

	"github.com/papertrade/console/cmd/tradectl/cmd"
)

func main() {
	// A local .env is optional; absence is not an error.
	_ = godotenv.Load()
	cmd.Execute()
}
