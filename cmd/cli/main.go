package main

import (
	"os"

	"github.com/aicedeno1/quotations-business-rules/internal/adapter/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
