package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStringSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{
			name:     "identical strings",
			a:        "Weekly Product Sync",
			b:        "Weekly Product Sync",
			expected: 1.0,
		},
		{
			name:     "case insensitive exact match",
			a:        "Weekly Product Sync",
			b:        "weekly product sync",
			expected: 1.0,
		},
		{
			name:     "empty left side",
			a:        "",
			b:        "anything",
			expected: 0,
		},
		{
			name:     "empty right side",
			a:        "anything",
			b:        "",
			expected: 0,
		},
		{
			name:     "both empty",
			a:        "",
			b:        "",
			expected: 0,
		},
		{
			name:     "containment scores length ratio",
			a:        "sync",
			b:        "sync2025",
			expected: 0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expected, StringSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestStringSimilarityIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Weekly Product Sync", "Product Sync Notes"},
		{"standup", "stand-up"},
		{"abc", "xyz"},
	}
	for _, pair := range pairs {
		require.InDelta(t, StringSimilarity(pair[0], pair[1]), StringSimilarity(pair[1], pair[0]), 1e-9)
	}
}

func TestStringSimilarityLevenshteinFallback(t *testing.T) {
	// "kitten" vs "sitting": distance 3, max length 7.
	score := StringSimilarity("kitten", "sitting")
	require.InDelta(t, 1.0-3.0/7.0, score, 1e-9)

	// Completely disjoint strings floor at 0.
	require.GreaterOrEqual(t, StringSimilarity("aaaa", "zzzzzzzz"), 0.0)
}

func TestTimeProximity(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	require.InDelta(t, 1.0, TimeProximity(base, base), 1e-9)
	require.InDelta(t, 0.5, TimeProximity(base, base.Add(12*time.Hour)), 1e-9)
	require.InDelta(t, 0.0, TimeProximity(base, base.Add(24*time.Hour)), 1e-9)
	require.InDelta(t, 0.0, TimeProximity(base, base.Add(48*time.Hour)), 1e-9)
}

func TestTimeProximityIsSymmetric(t *testing.T) {
	a := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	b := a.Add(7 * time.Hour)
	require.InDelta(t, TimeProximity(a, b), TimeProximity(b, a), 1e-9)
}

func TestTimeProximityMonotonicallyDecreasing(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	prev := TimeProximity(base, base)
	for hours := 1; hours <= 26; hours++ {
		score := TimeProximity(base, base.Add(time.Duration(hours)*time.Hour))
		require.LessOrEqual(t, score, prev)
		prev = score
	}
}

func TestSetOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a        []string
		b        []string
		expected float64
	}{
		{
			name:     "identical sets",
			a:        []string{"alice", "bob"},
			b:        []string{"alice", "bob"},
			expected: 1.0,
		},
		{
			name:     "one shared of three distinct",
			a:        []string{"a", "b"},
			b:        []string{"a", "c"},
			expected: 1.0 / 3.0,
		},
		{
			name:     "empty left set",
			a:        nil,
			b:        []string{"alice"},
			expected: 0,
		},
		{
			name:     "both empty",
			a:        nil,
			b:        nil,
			expected: 0,
		},
		{
			name:     "disjoint sets",
			a:        []string{"a"},
			b:        []string{"b"},
			expected: 0,
		},
		{
			name:     "case insensitive",
			a:        []string{"Alice"},
			b:        []string{"alice"},
			expected: 1.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expected, SetOverlap(tt.a, tt.b), 1e-9)
		})
	}
}

func TestLocalPart(t *testing.T) {
	require.Equal(t, "alice", LocalPart("Alice@example.com"))
	require.Equal(t, "bob.smith", LocalPart("bob.smith@corp.io"))
	require.Equal(t, "no-at-sign", LocalPart("NO-AT-SIGN"))
}
