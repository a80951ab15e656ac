package services

import (
	"context"
	"fmt"
	"math"
	"strings"
)

type SimilarityScorer interface {
	Score(ctx context.Context, a, b string) (float64, error)
}

type similarityScorer struct {
	encoder Encoder
}

func NewSimilarityScorer(encoder Encoder) SimilarityScorer {
	return &similarityScorer{
		encoder: encoder,
	}
}

// Score implements SimilarityScorer. It returns cosine similarity of the
// lower-cased texts as a percentage rounded to two decimals. An empty input
// scores 0 without touching the encoder.
func (s *similarityScorer) Score(ctx context.Context, a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, nil
	}

	va, err := s.encoder.Encode(ctx, strings.ToLower(a))
	if err != nil {
		return 0, fmt.Errorf("failed to embed first text: %w", err)
	}

	vb, err := s.encoder.Encode(ctx, strings.ToLower(b))
	if err != nil {
		return 0, fmt.Errorf("failed to embed second text: %w", err)
	}

	cos, err := CosineSimilarity(va, vb)
	if err != nil {
		return 0, err
	}

	return RoundPercentage(cos * 100), nil
}

func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("%w: dimensions %d and %d", ErrEmbeddingMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("%w: zero-magnitude vector", ErrEmbeddingMismatch)
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

func RoundPercentage(v float64) float64 {
	return math.Round(v*100) / 100
}
