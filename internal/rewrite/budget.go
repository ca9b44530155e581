package rewrite

import (
	"math"

	"github.com/Click-Movement/ContentSoftware/internal/persona"
	"github.com/Click-Movement/ContentSoftware/pkg/llm"
)

const (
	Temperature = 0.75

	minTokens       = 800
	maxClaudeTokens = 3800
	maxGPTTokens    = 3500
	tokensPerWord   = 0.75
)

// multiplierRange returns how much a rewrite may grow or shrink relative to
// the source: short pieces expand, long ones compress slightly.
func multiplierRange(words int) (lo, hi float64) {
	switch {
	case words < 100:
		return 1.1, 1.3
	case words < 300:
		return 0.95, 1.2
	case words < 800:
		return 0.9, 1.15
	default:
		return 0.9, 1.0
	}
}

// TargetTokens estimates the completion budget for content, before clamping.
func TargetTokens(content string, rnd persona.Source) int64 {
	words := WordCount(content)
	lo, hi := multiplierRange(words)
	mult := lo + rnd.Float64()*(hi-lo)
	target := math.Round(float64(words) * mult)
	return int64(math.Round(target / tokensPerWord))
}

// MaxTokens clamps the target to the backend's window.
func MaxTokens(content, backend string, rnd persona.Source) int64 {
	upper := int64(maxClaudeTokens)
	if backend == llm.BackendGPT {
		upper = maxGPTTokens
	}
	return min(upper, max(minTokens, TargetTokens(content, rnd)))
}
