package application

import (
	"context"
	"sync"

	"travel-mate/backend/internal/features/portrait/infrastructure"
)

// --- Mocks ---

type mockTranslator struct {
	mu       sync.Mutex
	out      string
	err      error
	calls    int
	lastText string
}

func (m *mockTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastText = text
	if m.err != nil {
		return "", m.err
	}
	return m.out, nil
}

func (m *mockTranslator) Name() string { return "mock" }

type mockGenerator struct {
	mu      sync.Mutex
	payload string
	err     error
	calls   int
	reqs    []infrastructure.GenerationRequest
}

func (m *mockGenerator) Generate(ctx context.Context, req infrastructure.GenerationRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return "", m.err
	}
	return m.payload, nil
}

func (m *mockGenerator) last() infrastructure.GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reqs[len(m.reqs)-1]
}
