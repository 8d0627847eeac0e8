package main

import (
	"fmt"
	"os"

	"quicksizer/internal/cli"
	"quicksizer/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	rootCmd := cli.NewRootCommand(cli.DefaultFactory(log))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Sync()
		os.Exit(1)
	}
}
