package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func conf(v float32) *float32 { return &v }

func TestMeanConfidence(t *testing.T) {
	tests := []struct {
		name   string
		fields []ExtractedField
		want   float32
	}{
		{"no fields", nil, 0},
		{"all nil confidences", []ExtractedField{{Name: "a"}, {Name: "b"}}, 0},
		{"single", []ExtractedField{{Confidence: conf(0.8)}}, 0.8},
		{
			"average",
			[]ExtractedField{{Confidence: conf(0.9)}, {Confidence: conf(0.7)}},
			0.8,
		},
		{
			"nil confidences are skipped, not counted as zero",
			[]ExtractedField{{Confidence: conf(0.6)}, {Confidence: nil}, {Confidence: conf(1.0)}},
			0.8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MeanConfidence(tt.fields), 0.0001)
		})
	}
}

func TestMeanConfidence_RandomFieldSets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12)
		fields := make([]ExtractedField, n)
		var sum float64
		var counted int
		for i := range fields {
			if rng.Intn(4) == 0 {
				continue // no confidence reported
			}
			c := rng.Float32()
			fields[i].Confidence = &c
			sum += float64(c)
			counted++
		}
		want := float32(0)
		if counted > 0 {
			want = float32(sum / float64(counted))
		}
		assert.InDelta(t, want, MeanConfidence(fields), 1e-6)
	}
}

func TestMeanConfidence_BoundaryIsExact(t *testing.T) {
	// a uniform set must reproduce the threshold value exactly so that
	// >= comparisons at 0.90 behave deterministically
	fields := []ExtractedField{
		{Confidence: conf(0.90)},
		{Confidence: conf(0.90)},
		{Confidence: conf(0.90)},
	}
	assert.Equal(t, float32(0.90), MeanConfidence(fields))
}
