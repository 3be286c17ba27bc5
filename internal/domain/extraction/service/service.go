// Package service wraps the extraction engine with the operational concerns
// the engine deliberately avoids: the OCR collaborator, logging, metrics and
// the confidence signal attached to each extraction.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/FACorreiaa/receipt-scan/internal/domain/categorization"
	"github.com/FACorreiaa/receipt-scan/internal/domain/extraction"
)

// Transcript is the OCR collaborator's output: recognized text plus the
// recognizer's own confidence in [0,1].
type Transcript struct {
	Text       string
	Confidence float64
}

// OCRClient performs text recognition on a receipt image. Implementations live
// outside this module; the engine never talks to one directly.
type OCRClient interface {
	Recognize(ctx context.Context, image []byte) (Transcript, error)
}

// Extraction is one processed receipt: the engine result plus the metadata the
// service attaches to it.
type Extraction struct {
	ID         uuid.UUID         `json:"id"`
	Source     string            `json:"source"`
	Result     extraction.Result `json:"result"`
	Confidence float64           `json:"confidence"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Service runs extractions and owns their operational envelope.
type Service struct {
	engine  *extraction.Engine
	ocr     OCRClient
	fuzzy   *categorization.FuzzyResolver
	logger  *slog.Logger
	metrics *Metrics
	now     func() time.Time
}

// New creates the service. ocr may be nil when only the text path is used;
// fuzzy may be nil to disable category refinement; a nil logger falls back to
// slog.Default and nil metrics are a no-op.
func New(engine *extraction.Engine, ocr OCRClient, fuzzy *categorization.FuzzyResolver, logger *slog.Logger, metrics *Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		engine:  engine,
		ocr:     ocr,
		fuzzy:   fuzzy,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// ProcessText runs the engine over an already-recognized transcript. source is
// a caller-supplied origin label (file name, upload id) carried through to the
// result and logs.
func (s *Service) ProcessText(ctx context.Context, source, text string) (*Extraction, error) {
	return s.process(ctx, source, text, -1)
}

// ProcessImage recognizes the image through the OCR client and extracts from
// the transcript. The recognizer's confidence is blended into the extraction
// confidence.
func (s *Service) ProcessImage(ctx context.Context, source string, image []byte) (*Extraction, error) {
	if s.ocr == nil {
		return nil, errors.New("service: no OCR client configured")
	}

	transcript, err := s.ocr.Recognize(ctx, image)
	if err != nil {
		s.metrics.observeOutcome("ocr_error")
		return nil, fmt.Errorf("recognize image %q: %w", source, err)
	}

	return s.process(ctx, source, transcript.Text, transcript.Confidence)
}

func (s *Service) process(ctx context.Context, source, text string, ocrConfidence float64) (*Extraction, error) {
	ext := &Extraction{
		ID:        uuid.New(),
		Source:    source,
		CreatedAt: s.now(),
	}

	result, err := s.engine.Extract(text)
	ext.Result = result
	if err != nil {
		if errors.Is(err, extraction.ErrNoText) {
			s.metrics.observeOutcome("no_text")
			s.logger.WarnContext(ctx, "receipt had no recognizable text",
				slog.String("id", ext.ID.String()),
				slog.String("source", source))
			return ext, fmt.Errorf("extract %q: %w", source, err)
		}
		s.metrics.observeOutcome("error")
		return ext, fmt.Errorf("extract %q: %w", source, err)
	}

	s.refineCategory(&ext.Result)
	ext.Confidence = confidence(ext.Result, ocrConfidence)

	s.metrics.observeOutcome("ok")
	s.metrics.observeFields(ext.Result)
	s.logger.InfoContext(ctx, "receipt extracted",
		slog.String("id", ext.ID.String()),
		slog.String("source", source),
		slog.String("merchant", ext.Result.Merchant),
		slog.String("amount", ext.Result.Amount),
		slog.String("category", ext.Result.Category),
		slog.Float64("confidence", ext.Confidence))

	return ext, nil
}

// refineCategory retries categorization by fuzzy merchant-name similarity when
// the keyword pass fell through to the default bucket but a merchant was
// found. OCR misreads like "W00LWORTHS" land here.
func (s *Service) refineCategory(result *extraction.Result) {
	if s.fuzzy == nil || result.Merchant == "" {
		return
	}
	if result.Category != categorization.DefaultCategory {
		return
	}
	if category, ok := s.fuzzy.Categorize(result.Merchant, categorization.DefaultFuzzyThreshold); ok {
		result.Category = category
	}
}

// confidence is a heuristic in [0,1]: a base for producing any result at all,
// boosts per extracted field, averaged with the recognizer's confidence when
// the image path supplied one (ocrConfidence < 0 means text path).
func confidence(result extraction.Result, ocrConfidence float64) float64 {
	score := 0.2
	if result.Amount != "" {
		score += 0.3
	}
	if result.Merchant != "" {
		score += 0.25
	}
	if result.Date != nil {
		score += 0.15
	}
	if result.Category != categorization.DefaultCategory {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}

	if ocrConfidence >= 0 {
		score = (score + ocrConfidence) / 2
	}
	return score
}

// DebugTrace adapts a logger into a scorer trace hook. Wire it with
// extraction.WithScoreTrace when diagnosing amount selection.
func DebugTrace(logger *slog.Logger) extraction.ScoreTrace {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c extraction.Candidate, rule string, delta int) {
		logger.Debug("amount rule applied",
			slog.String("token", c.Raw),
			slog.Int("line", c.LineIndex),
			slog.String("rule", rule),
			slog.Int("delta", delta))
	}
}
