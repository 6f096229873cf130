package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/svasyly/astronomy-tools-public/internal/samplecurves"
	"github.com/svasyly/astronomy-tools-public/pkg/logger"
)

func main() {
	def := samplecurves.DefaultConfig()

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gen-curves [options]\n\n")
		fmt.Fprintf(os.Stderr, "gen-curves writes synthetic short-plateau light curves for lcplot.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gen-curves -o data                   # five .lbol curves in ./data\n")
		fmt.Fprintf(os.Stderr, "  gen-curves -o data -c 20 -e txt      # twenty .txt curves\n")
		fmt.Fprintf(os.Stderr, "  gen-curves -o data --malformed 1     # first file has a short row\n")
	}

	outputFlag := pflag.StringP("output", "o", def.OutputDir, "Directory to write curves into")
	countFlag := pflag.IntP("count", "c", def.Count, "Number of files to write")
	pointsFlag := pflag.IntP("points", "p", def.Points, "Data rows per file")
	extFlag := pflag.StringP("ext", "e", def.Extension, "File extension: txt, dat, csv or lbol")
	seedFlag := pflag.Int64("seed", def.Seed, "Random seed; the same seed writes the same files")
	malformedFlag := pflag.Int("malformed", 0, "Number of files given a short row")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Log every file written")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verboseFlag {
		_ = logger.SetLevelString("debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := samplecurves.Run(ctx, samplecurves.Config{
		OutputDir: *outputFlag,
		Count:     *countFlag,
		Points:    *pointsFlag,
		Extension: *extFlag,
		Seed:      *seedFlag,
		Malformed: *malformedFlag,
	})
	if err != nil {
		os.Stderr.WriteString("gen-curves: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}

	for _, f := range stats.Files {
		fmt.Println(f)
	}
}
