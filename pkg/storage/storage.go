// Package storage provides access to the transcript drop directory the batch
// worker sweeps.
package storage

import "context"

// Store is the worker's view of pending OCR transcripts: list what is waiting,
// read one, and mark it handled so later sweeps skip it.
type Store interface {
	// ListPending returns the names of transcripts not yet processed.
	ListPending(ctx context.Context) ([]string, error)

	// Read returns the text of a pending transcript by name.
	Read(ctx context.Context, name string) (string, error)

	// MarkProcessed excludes a transcript from future ListPending calls.
	MarkProcessed(ctx context.Context, name string) error
}
