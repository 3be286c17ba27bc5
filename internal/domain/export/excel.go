// Package export produces XLSX reports for batches of extractions.
package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/receipt-scan/internal/domain/extraction/service"
)

const sheet = "Extractions"

var headers = []string{
	"Date",
	"Merchant",
	"Category",
	"Amount",
	"Confidence",
	"Source",
}

// Exporter writes extraction batches as XLSX workbooks.
type Exporter struct {
	logger *slog.Logger
}

// New creates an exporter; a nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{logger: logger}
}

// Workbook builds the report in memory. Undetermined fields render as empty
// cells so the report stays editable by hand downstream.
func (e *Exporter) Workbook(extractions []*service.Extraction) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, ext := range extractions {
		row := rowIdx + 2

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		date := ""
		if ext.Result.Date != nil {
			date = ext.Result.Date.Format("2006-01-02")
		}
		write(1, date)
		write(2, ext.Result.Merchant)
		write(3, ext.Result.Category)
		write(4, ext.Result.Amount)
		write(5, ext.Confidence)
		write(6, ext.Source)
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "C", 24)
	_ = f.SetColWidth(sheet, "F", "F", 32)

	e.logger.Debug("export workbook built", slog.Int("rows", len(extractions)))
	return f, nil
}

// Write renders the workbook to w.
func (e *Exporter) Write(w io.Writer, extractions []*service.Extraction) error {
	f, err := e.Workbook(extractions)
	if err != nil {
		return err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("render workbook: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteFile renders the workbook to path.
func (e *Exporter) WriteFile(path string, extractions []*service.Extraction) error {
	f, err := e.Workbook(extractions)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	e.logger.Info("export written", slog.String("path", path), slog.Int("rows", len(extractions)))
	return nil
}
