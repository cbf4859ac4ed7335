package synth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{
			name: "topic nouns survive",
			text: "Battery degradation in EVs",
			max:  8,
			want: []string{"battery", "degradation", "evs"},
		},
		{
			name: "question words and domain noise removed",
			text: "How can students improve defect detection?",
			max:  8,
			want: []string{"improve", "defect", "detection"},
		},
		{
			name: "punctuation trimmed",
			text: "Robotics, automation; (grippers)!",
			max:  8,
			want: []string{"robotics", "automation", "grippers"},
		},
		{
			name: "duplicates collapse to first occurrence",
			text: "solar panels efficiency solar Panels",
			max:  8,
			want: []string{"solar", "panels", "efficiency"},
		},
		{
			name: "max caps the list",
			text: "wind turbines blade fatigue analysis",
			max:  2,
			want: []string{"wind", "turbines"},
		},
		{
			name: "short tokens dropped",
			text: "AI ML in 5G",
			max:  8,
			want: nil,
		},
		{
			name: "pure stop words yield nothing",
			text: "How and why should they?",
			max:  8,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, extractKeywords(tt.text, tt.max))
		})
	}
}

func TestSeedForIsStableAndOrderSensitive(t *testing.T) {
	t.Parallel()
	require.Equal(t, seedFor("a", "b"), seedFor("a", "b"), "same input must hash identically")
	require.NotEqual(t, seedFor("a", "b"), seedFor("b", "a"), "swapping topic and query must change the seed")
	require.NotEqual(t, seedFor("ab", ""), seedFor("a", "b"), "separator must keep field boundaries distinct")
}
