package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Ebedthan/xgt-sub000/internal/gtdb"
	"github.com/Ebedthan/xgt-sub000/internal/logger"
)

func Execute(args []string) {
	if len(args) > 0 && (args[0] == "-v" || args[0] == "--verbose") {
		logger.SetVerbose(true)
		args = args[1:]
	}

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "search":
		runSearch(args[1:])
	case "genome":
		runGenome(args[1:])
	case "taxon":
		runTaxon(args[1:])
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "xgt - query and parse GTDB data")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  xgt [-v] <command> [options]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  search     Search GTDB with a free-text query")
	fmt.Fprintln(os.Stderr, "  genome     Information about a genome (card, metadata, taxon history)")
	fmt.Fprintln(os.Stderr, "  taxon      Information about a specific taxon")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Run 'xgt <command> -h' for command-specific options.")
}

// preflight checks that the remote service is reachable before any
// subcommand issues its own requests. An offline database aborts the run.
func preflight(client *gtdb.Client) {
	log := logger.GetLogger()

	status, err := client.Status()
	if err != nil {
		fatalf("GTDB API status check failed: %v", err)
	}
	if !status.Online {
		fatalf("GTDB API reports itself offline, try again later")
	}
	log.Info("GTDB API is online", zap.Float64("timeMs", status.TimeMs))

	version, err := client.Version()
	if err != nil {
		log.Warn("GTDB API version check failed", zap.Error(err))
		return
	}
	log.Info("GTDB API version", zap.String("version", version.String()))
}
