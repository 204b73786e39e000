package domain

import "errors"

var (
	// ErrEmptyMessage signals a missing or empty chat message.
	ErrEmptyMessage = errors.New("message is required")
	// ErrUpstreamCall signals a network or HTTP failure on a remote model API.
	ErrUpstreamCall = errors.New("upstream call failed")
	// ErrUpstreamParse signals a model reply that is not valid intent JSON.
	ErrUpstreamParse = errors.New("upstream reply parse failed")
	// ErrEmbeddingFormat signals a malformed embedding response envelope.
	ErrEmbeddingFormat = errors.New("unexpected embedding response format")
)
