package gemini

import (
	"context"
	"net/http"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

type fakeCaller struct {
	queue   []fakeResponse
	prompts []string
}

func (f *fakeCaller) GenerateContent(_ context.Context, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	for _, content := range contents {
		for _, part := range content.Parts {
			f.prompts = append(f.prompts, part.Text)
		}
	}
	if len(f.queue) == 0 {
		return nil, genai.APIError{Code: http.StatusInternalServerError, Status: "UNEXPECTED"}
	}
	next := f.queue[0]
	f.queue = f.queue[1:]
	return next.resp, next.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func newTestGenerator(caller *fakeCaller, maxRetries int) *Generator {
	return &Generator{
		models:     caller,
		model:      "gemini-test",
		maxRetries: maxRetries,
		logger:     zap.NewNop(),
	}
}

func TestGeneratorRetriesOnTemporaryError(t *testing.T) {
	originalDelay := retryBaseDelay
	retryBaseDelay = 0
	defer func() { retryBaseDelay = originalDelay }()

	caller := &fakeCaller{queue: []fakeResponse{
		{err: genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}},
		{resp: textResponse("retry ok")},
	}}

	output, err := newTestGenerator(caller, 2).GenerateContent(context.Background(), "hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output != "retry ok" {
		t.Fatalf("unexpected output: %q", output)
	}
	if len(caller.prompts) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(caller.prompts))
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	originalDelay := retryBaseDelay
	retryBaseDelay = 0
	defer func() { retryBaseDelay = originalDelay }()

	caller := &fakeCaller{queue: []fakeResponse{
		{err: genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}},
		{err: genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}},
	}}

	if _, err := newTestGenerator(caller, 2).GenerateContent(context.Background(), "hello"); err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if len(caller.prompts) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(caller.prompts))
	}
}

func TestGeneratorDoesNotRetryClientErrors(t *testing.T) {
	caller := &fakeCaller{queue: []fakeResponse{
		{err: genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"}},
	}}

	if _, err := newTestGenerator(caller, 3).GenerateContent(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for a client error")
	}
	if len(caller.prompts) != 1 {
		t.Fatalf("expected a single call, got %d", len(caller.prompts))
	}
}

func TestGeneratorRejectsEmptyResponse(t *testing.T) {
	caller := &fakeCaller{queue: []fakeResponse{{resp: &genai.GenerateContentResponse{}}}}

	if _, err := newTestGenerator(caller, 1).GenerateContent(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for an empty response")
	}
}
