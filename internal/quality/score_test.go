package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_KnownComposition(t *testing.T) {
	s := NewScorer()
	// Optimal length, optimal line count, definition keyword, two long
	// identifiers, one failed check:
	// 5.0 + 0 + 1 + 1 + 1.5 + 1 - 0.5 = 9.0
	code := "def add_numbers(first, second):\n    return first + second"
	got := s.Score(code, "python", 0, false, 1)
	assert.InDelta(t, 9.0, got, 0.001)
}

func TestScore_ValidBeatsInvalid(t *testing.T) {
	s := NewScorer()
	code := "def compute(value):\n    return value * 2"
	valid := s.Score(code, "python", 0.5, true, 0)
	invalid := s.Score(code, "python", 0.5, false, 2)
	assert.Greater(t, valid, invalid)
	assert.InDelta(t, 2.0, valid-invalid, 0.001)
}

func TestScore_ClampedToUpperBound(t *testing.T) {
	s := NewScorer()
	code := "def add_numbers(first, second):\n    return first + second"
	got := s.Score(code, "python", 1.0, true, 0)
	assert.Equal(t, 10.0, got)
}

func TestScore_ClampedToLowerBound(t *testing.T) {
	s := NewScorer()
	// A tiny invalid fragment with many issues drives the score to zero.
	got := s.Score("x", "unknown", 0, false, 20)
	assert.Equal(t, 0.0, got)
}

func TestScore_TrivialOneLinerGetsNoSizeBonus(t *testing.T) {
	s := NewScorer()
	short := s.Score("x=1", "python", 0, true, 0)
	optimal := s.Score("value_one = 1\nvalue_two = 2\nvalue_three = 3", "python", 0, true, 0)
	assert.Greater(t, optimal, short)
}

func TestScore_OversizedDumpGetsNoSizeBonus(t *testing.T) {
	s := NewScorer()
	dump := strings.Repeat("data_value = 12345\n", 100)
	optimal := "data_value = 12345\nother_value = 678"
	assert.Greater(t, s.Score(optimal, "python", 0, true, 0), s.Score(dump, "python", 0, true, 0))
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	s := NewScorer()
	inputs := []struct {
		code       string
		confidence float64
		isValid    bool
		issues     int
	}{
		{"", 0, false, 1},
		{"x", 0, false, 30},
		{"def f():\n    pass", 1.0, true, 0},
		{strings.Repeat("line\n", 500), 0.9, false, 5},
		{"SELECT * FROM t", 0.7, true, 0},
	}
	for _, in := range inputs {
		got := s.Score(in.code, "python", in.confidence, in.isValid, in.issues)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 10.0)
	}
}
