package services

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// fakeEncoder maps known texts to fixed vectors and counts calls.
type fakeEncoder struct {
	mu      sync.Mutex
	vectors map[string][]float32
	calls   int
	err     error
}

func (f *fakeEncoder) Encode(_ context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 0, 0}, nil
}

type reply struct {
	contains string
	text     string
}

// fakeGenerator answers with the first reply whose key the prompt contains,
// or fails.
type fakeGenerator struct {
	mu      sync.Mutex
	replies []reply
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	for _, r := range f.replies {
		if strings.Contains(prompt, r.contains) {
			return r.text, nil
		}
	}
	return "", nil
}

var errModelDown = errors.New("model unavailable")
