package rewrite

import (
	"context"
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Click-Movement/ContentSoftware/internal/persona"
	"github.com/Click-Movement/ContentSoftware/pkg/llm"
)

// DefaultModel is used when a request names no model or an unknown one and no
// other default is configured.
const DefaultModel = llm.BackendClaude

type AIResult struct {
	persona.Result
	Persona persona.ID `json:"persona"`
	Model   string     `json:"model"`
}

type Service struct {
	backends       map[string]llm.Completer
	rnd            persona.Source
	tracer         trace.Tracer
	defaultPersona persona.ID
	defaultModel   string
}

// NewService registers each backend under its Name. A nil rnd uses the
// process-wide generator.
func NewService(rnd persona.Source, backends ...llm.Completer) *Service {
	if rnd == nil {
		rnd = persona.DefaultSource()
	}
	s := &Service{
		backends:       make(map[string]llm.Completer),
		rnd:            rnd,
		tracer:         otel.Tracer("github.com/Click-Movement/ContentSoftware/internal/rewrite"),
		defaultPersona: persona.Default,
		defaultModel:   DefaultModel,
	}
	for _, b := range backends {
		if b != nil {
			s.backends[b.Name()] = b
		}
	}
	return s
}

// Models lists the configured backends.
func (s *Service) Models() []string {
	out := make([]string, 0, len(s.backends))
	for name := range s.backends {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// WithDefaults sets the persona and model used when a request names none or
// an unknown one. Invalid values leave the built-in defaults in place.
func (s *Service) WithDefaults(personaID, model string) *Service {
	s.defaultPersona = persona.Resolve(personaID)
	s.defaultModel = ResolveModel(model, DefaultModel)
	return s
}

// ResolveModel maps anything but "gpt" or "claude" to def, and to
// DefaultModel when def is not a known backend either.
func ResolveModel(model, def string) string {
	if isModel(model) {
		return model
	}
	if isModel(def) {
		return def
	}
	return DefaultModel
}

func isModel(model string) bool {
	return model == llm.BackendGPT || model == llm.BackendClaude
}

// ResolvePersona applies the service's default persona.
func (s *Service) ResolvePersona(id string) persona.ID {
	return persona.ResolveOr(id, s.defaultPersona)
}

// ResolveModel applies the service's default model.
func (s *Service) ResolveModel(model string) string {
	return ResolveModel(model, s.defaultModel)
}

// Direct runs the rule-based rewrite. It never fails; unknown personas fall
// back to the default.
func (s *Service) Direct(ctx context.Context, title, content, id string) (persona.Result, persona.ID) {
	_, span := s.tracer.Start(ctx, "rewrite.direct")
	defer span.End()

	res, used := persona.Rewrite(string(s.ResolvePersona(id)), title, content, s.rnd)
	span.SetAttributes(attribute.String("persona", string(used)))
	return res, used
}

// AI rewrites through the chosen backend. Backend failures come back as
// *Error; an empty completion yields placeholder output instead.
func (s *Service) AI(ctx context.Context, title, content, id, model string) (*AIResult, error) {
	used := s.ResolvePersona(id)
	model = s.ResolveModel(model)

	style, err := persona.StyleFor(string(used))
	if err != nil {
		return nil, err
	}

	maxTokens := MaxTokens(content, model, s.rnd)
	ctx, span := s.tracer.Start(ctx, "rewrite.ai", trace.WithAttributes(
		attribute.String("persona", string(used)),
		attribute.String("model", model),
		attribute.Int64("max_tokens", maxTokens),
		attribute.Int("words", WordCount(content)),
	))
	defer span.End()

	backend, ok := s.backends[model]
	if !ok {
		err := &Error{Kind: ErrBackend, Persona: used, Model: model, Err: ErrNoBackend}
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "no backend for model", "model", model, "persona", used)
		return nil, err
	}

	text, err := backend.Complete(ctx, llm.CompletionRequest{
		Prompt:      BuildPrompt(style, title, content),
		MaxTokens:   maxTokens,
		Temperature: Temperature,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		slog.ErrorContext(ctx, "ai rewrite failed", "error", err, "persona", used, "model", model, "backend_model", backend.Model())
		return nil, &Error{Kind: Classify(err), Persona: used, Model: model, Err: err}
	}

	var res persona.Result
	if text == "" {
		slog.WarnContext(ctx, "empty completion", "persona", used, "model", model)
		res = persona.Result{Title: PlaceholderTitle(used), Content: FailedContent}
	} else {
		res = ParseResponse(text, used)
	}

	return &AIResult{Result: res, Persona: used, Model: model}, nil
}
