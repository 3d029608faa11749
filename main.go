package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sysarch/reportgen/pkg/dialog"
	"github.com/sysarch/reportgen/pkg/importer"
	"github.com/sysarch/reportgen/pkg/report"
	"github.com/sysarch/reportgen/reports"
	"github.com/sysarch/reportgen/services"
	"github.com/sysarch/reportgen/util"
)

const importAction = "import_requirements"

func main() {
	envFile := flag.String("env", ".env", "Path to environment file")
	enabled := flag.String("reports", os.Getenv("ENABLE_REPORTS"), "Comma-separated report names to run without prompting")
	importFile := flag.String("input", "requirements.xlsx", "Requirement spreadsheet to import")
	logLevel := flag.String("log-level", "info", "Logging level (debug, info, warn, error)")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(*envFile); err != nil {
		logrus.Debugf("No env file loaded from %s: %v", *envFile, err)
	}

	// Optional positional arguments: model name, then explicit model file.
	if flag.Arg(0) != "" {
		os.Setenv("MODEL_NAME", flag.Arg(0))
	}
	if flag.Arg(1) != "" {
		os.Setenv("MODEL_FILE", flag.Arg(1))
	}

	registry := buildRegistry(*importFile)

	var selected mapset.Set[string]
	if *enabled != "" {
		selected = reports.FromList(*enabled)
	} else {
		options := make([]dialog.Option, 0, len(registry.Actions()))
		for _, a := range registry.Actions() {
			options = append(options, dialog.Option{Name: a.Name, Description: a.Description})
		}
		selected, err = dialog.Prompt(os.Stdin, os.Stdout, options)
		if err != nil {
			logrus.Fatalf("Selection aborted: %v", err)
		}
	}

	// Model-load failure is fatal before any report runs.
	if needsModel(selected) {
		if _, err := services.DefaultModel(); err != nil {
			logrus.Fatalf("Failed to load architecture model: %v", err)
		}
	}

	var results []outcome
	for _, a := range registry.Enabled(selected) {
		start := time.Now()
		status := "ok"
		if err := a.Run(); err != nil {
			logrus.WithError(err).Errorf("%s failed", a.Name)
			status = "failed: " + err.Error()
		}
		results = append(results, outcome{name: a.Name, status: status, took: time.Since(start)})
	}

	printSummary(os.Stdout, results)
	fmt.Println("Selected reports completed.")
}

func buildRegistry(importFile string) *reports.Registry {
	r := reports.NewRegistry()
	r.Register(reports.Action{
		Name:        importAction,
		Description: "Import requirements from " + importFile,
		Run:         util.ErrorGuard(func() error { return runImport(importFile) }),
	})
	for _, spec := range []report.Spec{report.Mass, report.Cost, report.AirResistance} {
		r.Register(reports.Action{
			Name:        spec.Name,
			Description: "Write " + spec.FileName,
			Run:         util.ErrorGuard(func() error { return runBreakdown(spec) }),
		})
	}
	return r
}

func needsModel(selected mapset.Set[string]) bool {
	for _, spec := range []report.Spec{report.Mass, report.Cost, report.AirResistance} {
		if selected.Contains(spec.Name) {
			return true
		}
	}
	return false
}

func runImport(path string) error {
	store := services.DefaultRequirementStore()
	res, err := importer.ImportFile(path, store)
	if err != nil {
		return err
	}
	logrus.Infof("Imported requirements into %s: %d created, %d updated, %d skipped",
		store.Path(), res.Created, res.Updated, res.Skipped)
	return nil
}

func runBreakdown(spec report.Spec) error {
	m, err := services.DefaultModel()
	if err != nil {
		return err
	}
	b := report.Build(m.Root, spec)
	path, err := b.Write(services.OutputDir())
	if err != nil {
		return err
	}
	logrus.Infof("Wrote %s (%d rows, total %.2f)", path, len(b.Rows), b.Total)
	return nil
}

type outcome struct {
	name   string
	status string
	took   time.Duration
}

func printSummary(out io.Writer, results []outcome) {
	border := "+" + strings.Repeat("-", 70) + "+"
	fmt.Fprintln(out, border)
	fmt.Fprintf(out, "| %-28s %-39s |\n", "Report", "Result")
	fmt.Fprintln(out, border)
	if len(results) == 0 {
		fmt.Fprintf(out, "| %-68s |\n", "nothing selected")
	}
	for _, r := range results {
		result := fmt.Sprintf("%s (%s)", r.status, r.took.Round(time.Millisecond))
		if len(result) > 39 {
			result = result[:39]
		}
		fmt.Fprintf(out, "| %-28s %-39s |\n", r.name, result)
	}
	fmt.Fprintln(out, border)
}
