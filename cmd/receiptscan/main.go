// receiptscan extracts a structured transaction from a receipt OCR transcript
// and prints it as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/FACorreiaa/receipt-scan/internal/domain/categorization"
	"github.com/FACorreiaa/receipt-scan/internal/domain/extraction"
	"github.com/FACorreiaa/receipt-scan/internal/domain/extraction/service"
	"github.com/FACorreiaa/receipt-scan/internal/domain/refdata"
)

func main() {
	fs := ff.NewFlagSet("receiptscan")
	var (
		input      = fs.StringLong("input", "", "transcript file to read (default: stdin)")
		dictionary = fs.StringLong("dictionary", "", "merchant dictionary CSV (default: embedded table)")
		pretty     = fs.BoolLong("pretty", "indent the JSON output")
		debug      = fs.BoolLong("debug", "log amount scoring decisions to stderr")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("RECEIPTSCAN"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*input, *dictionary, *pretty, *debug); err != nil {
		if errors.Is(err, extraction.ErrNoText) {
			fmt.Fprintln(os.Stderr, "receiptscan: input contained no recognizable text")
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "receiptscan: %v\n", err)
		os.Exit(1)
	}
}

func run(input, dictionary string, pretty, debug bool) error {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	merchants := refdata.Default()
	if dictionary != "" {
		loaded, err := refdata.LoadFile(dictionary)
		if err != nil {
			return err
		}
		merchants = loaded
	}

	opts := []extraction.Option{}
	if debug {
		opts = append(opts, extraction.WithScoreTrace(service.DebugTrace(logger)))
	}
	engine := extraction.New(
		extraction.NewMerchantExtractor(merchants),
		categorization.NewEngine(merchants),
		opts...,
	)
	svc := service.New(engine, nil, categorization.NewFuzzyResolver(merchants), logger, nil)

	source := "stdin"
	var text []byte
	var err error
	if input != "" {
		source = input
		text, err = os.ReadFile(input)
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	ext, err := svc.ProcessText(context.Background(), source, string(text))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(ext)
}
