package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/FACorreiaa/receipt-scan/internal/domain/extraction"
	"github.com/FACorreiaa/receipt-scan/internal/domain/extraction/service"
)

// sweep processes every pending transcript in the drop directory and writes
// one XLSX report for the batch.
func (d *Dependencies) sweep(ctx context.Context) error {
	names, err := d.Store.ListPending(ctx)
	if err != nil {
		return err
	}

	var batch []*service.Extraction
	var processed []string

	for _, name := range names {
		text, err := d.Store.Read(ctx, name)
		if err != nil {
			d.Logger.Error("failed to read transcript",
				slog.String("name", name), slog.Any("error", err))
			continue
		}

		ext, err := d.Service.ProcessText(ctx, name, text)
		if err != nil && !errors.Is(err, extraction.ErrNoText) {
			d.Logger.Error("extraction failed",
				slog.String("name", name), slog.Any("error", err))
			continue
		}

		// Blank transcripts still land in the report so a human can chase
		// down the bad scan.
		batch = append(batch, ext)
		processed = append(processed, name)
	}

	if len(batch) == 0 {
		d.Logger.Info("sweep found no pending transcripts")
		return nil
	}

	if err := os.MkdirAll(d.Config.Worker.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	report := filepath.Join(d.Config.Worker.OutputDir,
		fmt.Sprintf("receipts-%s.xlsx", time.Now().Format("20060102-150405")))
	if err := d.Exporter.WriteFile(report, batch); err != nil {
		return err
	}

	for _, name := range processed {
		if err := d.Store.MarkProcessed(ctx, name); err != nil {
			d.Logger.Error("failed to mark transcript processed",
				slog.String("name", name), slog.Any("error", err))
		}
	}

	d.Logger.Info("sweep complete",
		slog.Int("transcripts", len(batch)),
		slog.String("report", report))
	return nil
}
