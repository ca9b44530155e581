package repository

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/oklog/ulid/v2"
)

func TestNewRewriteID(t *testing.T) {
	earlier := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Second)

	a := NewRewriteID(earlier)
	b := NewRewriteID(later)

	assert.Equal(t, 26, len(a))
	assert.Equal(t, true, a < b)

	parsed, err := ulid.Parse(a)
	assert.Equal(t, nil, err)
	assert.Equal(t, earlier.UnixMilli(), int64(parsed.Time()))
}
