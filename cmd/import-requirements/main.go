package main

import (
	"flag"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sysarch/reportgen/pkg/importer"
	"github.com/sysarch/reportgen/pkg/reqstore"
)

var (
	input    = flag.String("input", "requirements.xlsx", "Requirement spreadsheet to import")
	dbPath   = flag.String("db", "requirements.json", "Requirement store file")
	envFile  = flag.String("env", ".env", "Path to environment file")
	logLevel = flag.String("log-level", "info", "Logging level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	logger := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatalf("Invalid log level: %v", err)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := godotenv.Load(*envFile); err != nil {
		logger.Debugf("No env file loaded from %s: %v", *envFile, err)
	}

	store, err := reqstore.Open(*dbPath)
	if err != nil {
		logger.Fatalf("Failed to open requirement store: %v", err)
	}

	res, err := importer.ImportFile(*input, store)
	if err != nil {
		logger.Fatalf("Import failed: %v", err)
	}

	logger.Infof("Import complete: %d created, %d updated, %d skipped (%d records in %s)",
		res.Created, res.Updated, res.Skipped, store.Len(), store.Path())
}
