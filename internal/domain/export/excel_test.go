package export

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/receipt-scan/internal/domain/extraction"
	"github.com/FACorreiaa/receipt-scan/internal/domain/extraction/service"
)

func testBatch() []*service.Extraction {
	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	return []*service.Extraction{
		{
			ID:     uuid.New(),
			Source: "receipt-001.txt",
			Result: extraction.Result{
				Merchant: "Woolworths",
				Amount:   "49.50",
				Date:     &date,
				Items:    []string{},
				Category: "Groceries",
			},
			Confidence: 0.9,
		},
		{
			ID:     uuid.New(),
			Source: "receipt-002.txt",
			Result: extraction.Result{
				Items:    []string{},
				Category: "Other",
			},
			Confidence: 0.2,
		},
	}
}

func TestWorkbook(t *testing.T) {
	exporter := New(slog.New(slog.NewTextHandler(io.Discard, nil)))

	f, err := exporter.Workbook(testBatch())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Merchant", "Category", "Amount", "Confidence", "Source"}, rows[0])

	assert.Equal(t, "2024-03-15", rows[1][0])
	assert.Equal(t, "Woolworths", rows[1][1])
	assert.Equal(t, "Groceries", rows[1][2])
	assert.Equal(t, "49.50", rows[1][3])
	assert.Equal(t, "receipt-001.txt", rows[1][5])

	// Undetermined fields stay blank rather than placeholder text.
	assert.Equal(t, "", rows[2][0])
	assert.Equal(t, "", rows[2][1])
	assert.Equal(t, "Other", rows[2][2])
}

func TestWrite(t *testing.T) {
	exporter := New(nil)

	var buf bytes.Buffer
	require.NoError(t, exporter.Write(&buf, testBatch()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Extractions")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestWorkbookEmptyBatch(t *testing.T) {
	exporter := New(nil)

	f, err := exporter.Workbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
