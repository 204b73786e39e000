package domain

import "context"

// Embedder is the shared text vectorization contract between layers.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// HealthChecker verifies remote provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// EmbeddingResult carries the embedding vector and token usage through the
// decorator chain. A cache hit reports zero tokens.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// ChatModel is the chat-completion contract used by intent extraction.
// Complete sends one system and one user message with deterministic decoding
// (temperature 0) and returns the raw text of the first choice.
type ChatModel interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
