package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopbot/internal/domain"
	"github.com/kailas-cloud/shopbot/internal/metrics"
)

// defaultTopK bounds the semantic side-list attached to an extracted intent.
const defaultTopK = 5

// Service turns a free-text shopping message into a structured intent via a
// remote chat model. Extraction never fails hard: any upstream or parse
// failure degrades to an unconstrained intent so the filter falls through to
// the full catalog.
type Service struct {
	chat    domain.ChatModel
	matcher Matcher // nil when semantic search is disabled
	topK    int
	logger  *zap.Logger
}

// New creates an intent extraction service. matcher may be nil.
func New(chat domain.ChatModel, matcher Matcher, topK int, logger *zap.Logger) *Service {
	if topK <= 0 {
		topK = defaultTopK
	}
	return &Service{chat: chat, matcher: matcher, topK: topK, logger: logger}
}

// rawIntent mirrors the JSON shape the model is prompted to produce. Pointers
// keep "absent" distinct from zero values.
type rawIntent struct {
	Category   *string `json:"category"`
	PriceRange struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	} `json:"priceRange"`
	Filters struct {
		Purpose  *string `json:"purpose"`
		AgeGroup *string `json:"age_group"`
		Style    *string `json:"style"`
	} `json:"filters"`
}

// Extract asks the chat model for the structured intent behind message and
// attaches up to topK similar products ranked against the raw message. The
// returned intent is always usable; the error reports only context
// cancellation.
func (s *Service) Extract(ctx context.Context, message string) (domain.Intent, error) {
	reply, err := s.chat.Complete(ctx, systemPrompt, buildPrompt(message))
	if err != nil {
		if ctx.Err() != nil {
			return domain.DegradedIntent(), ctx.Err()
		}
		s.logger.Warn("intent extraction call failed, degrading", zap.Error(err))
		metrics.IntentDegradedTotal.WithLabelValues("call_error").Inc()
		return s.withSemanticMatches(ctx, message, domain.DegradedIntent()), nil
	}

	parsed, err := s.parseReply(reply)
	if err != nil {
		s.logger.Warn("intent reply rejected, degrading", zap.Error(err))
		metrics.IntentDegradedTotal.WithLabelValues("parse_error").Inc()
		return s.withSemanticMatches(ctx, message, domain.DegradedIntent()), nil
	}

	return s.withSemanticMatches(ctx, message, parsed), nil
}

// parseReply decodes the model's text reply against the single versioned
// schema; unknown fields are rejected so schema drift degrades instead of
// being silently half-applied. Models occasionally wrap JSON in a markdown
// fence despite instructions, so fences are stripped first.
func (s *Service) parseReply(reply string) (domain.Intent, error) {
	content := stripFence(strings.TrimSpace(reply))

	dec := json.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()

	var raw rawIntent
	if err := dec.Decode(&raw); err != nil {
		return domain.DegradedIntent(),
			fmt.Errorf("reply %q: %v: %w", content, err, domain.ErrUpstreamParse)
	}

	intent := domain.Intent{
		PriceRange: domain.PriceRange{Min: raw.PriceRange.Min, Max: raw.PriceRange.Max},
	}
	if raw.Category != nil {
		intent.Category = strings.TrimSpace(*raw.Category)
	}
	if raw.Filters.Purpose != nil {
		intent.Filters.Purpose = strings.TrimSpace(*raw.Filters.Purpose)
	}
	if raw.Filters.AgeGroup != nil {
		intent.Filters.AgeGroup = strings.TrimSpace(*raw.Filters.AgeGroup)
	}
	if raw.Filters.Style != nil {
		intent.Filters.Style = strings.TrimSpace(*raw.Filters.Style)
	}
	return intent, nil
}

// withSemanticMatches attaches ranked similar products for the raw message.
// A matcher failure never touches the primary intent fields.
func (s *Service) withSemanticMatches(ctx context.Context, message string, intent domain.Intent) domain.Intent {
	if s.matcher == nil {
		return intent
	}

	matches, err := s.matcher.FindSimilar(ctx, message, s.topK)
	if err != nil {
		s.logger.Warn("semantic match failed, continuing without matches", zap.Error(err))
		return intent
	}
	intent.SemanticMatches = matches
	return intent
}

func stripFence(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
