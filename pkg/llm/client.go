package llm

import "context"

// CompletionRequest is a single-turn completion. System may be empty.
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int64
	Temperature float64
}

// Completer is implemented by every backend. An empty string with a nil
// error means the backend answered with no text.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Name is the backend key used in requests ("gpt" or "claude").
	Name() string
	Model() string
}

// Keys configures the backends. A backend without a key is left out.
type Keys struct {
	OpenAIKey      string
	OpenAIModel    string
	AnthropicKey   string
	AnthropicModel string
}

// NewBackends returns one Completer per configured backend.
func NewBackends(k Keys) []Completer {
	var out []Completer
	if k.OpenAIKey != "" {
		out = append(out, NewOpenAIClient(k.OpenAIKey, k.OpenAIModel))
	}
	if k.AnthropicKey != "" {
		out = append(out, NewAnthropicClient(k.AnthropicKey, k.AnthropicModel))
	}
	return out
}

// Find returns the backend registered under name, or nil.
func Find(backends []Completer, name string) Completer {
	for _, b := range backends {
		if b.Name() == name {
			return b
		}
	}
	return nil
}
