package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jspears/cgfs-scripts/internal/config"
	"github.com/jspears/cgfs-scripts/internal/export"
)

func setup() ([]string, *export.Service, error) {
	if len(os.Args) < 2 {
		return nil, nil, fmt.Errorf("usage: %s WORKBOOK.xlsx [WORKBOOK.xlsx...]", os.Args[0])
	}
	files := os.Args[1:]

	cfg, err := config.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	return files, export.NewService(cfg), nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}
	startTime := time.Now()

	files, service, err := setup()
	if err != nil {
		log.Fatal(err)
	}

	// The CSV document goes to stdout; everything else the program says goes
	// through log, which writes to stderr.
	if err := service.Execute(files, os.Stdout); err != nil {
		log.Fatal(err)
	}

	log.Printf("Done in %s", time.Since(startTime))
}
