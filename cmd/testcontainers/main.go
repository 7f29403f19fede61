package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/salonsuite/salon-api/tests/helpers"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run the salon-api database test container with the environment variables from the .env file.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	var dbContainer *helpers.DatabaseContainer
	go func() {
		var err error
		dbContainer, err = helpers.StartDatabaseContainer(context.Background())
		if err != nil {
			log.Fatalf("Failed to start database container: %v\n", err)
		}
		log.Printf("Database container ready at %s:%s (database %s)\n",
			dbContainer.Host, dbContainer.Port, dbContainer.Database)
	}()

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating database container...\n", sig)
	if dbContainer != nil {
		dbContainer.Terminate(nil)
	}
}
