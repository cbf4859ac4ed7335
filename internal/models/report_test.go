package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func completeReport() *Report {
	return &Report{
		Abstract:     "A short abstract.",
		Introduction: "An introduction.",
		LiteratureReview: []LiteratureEntry{
			{Source: "Google Scholar", Finding: "A finding."},
		},
		ResearchGaps: []string{"A gap."},
		Methodology:  Methodology{Design: "Mixed methods.", Steps: []string{"Collect data."}},
		SimulatedResults: SimulatedResults{
			Summary: "Improvements across the board.",
			Table:   []ResultRow{{Metric: "Accuracy (%)", Baseline: "72", Proposed: "79"}},
		},
		Conclusion:       "A conclusion.",
		References:       []string{"Author (2023). Title."},
		PPTOutline:       []string{"Slide 1: Title"},
		VivaQuestions:    []string{"Why this topic?"},
		DatasetsAndTools: DatasetsAndTools{Datasets: []string{"UCI"}, Tools: []string{"Python"}},
	}
}

func TestReportValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Report)
		wantErr string
	}{
		{"complete report", func(*Report) {}, ""},
		{"blank abstract", func(r *Report) { r.Abstract = "   " }, "abstract must not be empty"},
		{"missing introduction", func(r *Report) { r.Introduction = "" }, "introduction must not be empty"},
		{"no literature entries", func(r *Report) { r.LiteratureReview = nil }, "literature_review must not be empty"},
		{"blank literature source", func(r *Report) { r.LiteratureReview[0].Source = "" },
			"literature_review[0].source must not be empty"},
		{"blank literature finding", func(r *Report) { r.LiteratureReview[0].Finding = " " },
			"literature_review[0].finding must not be empty"},
		{"no research gaps", func(r *Report) { r.ResearchGaps = []string{} }, "research_gaps must not be empty"},
		{"blank gap entry", func(r *Report) { r.ResearchGaps = []string{"ok", ""} },
			"research_gaps[1] must not be empty"},
		{"missing design", func(r *Report) { r.Methodology.Design = "" }, "methodology.design must not be empty"},
		{"no steps", func(r *Report) { r.Methodology.Steps = nil }, "methodology.steps must not be empty"},
		{"blank summary", func(r *Report) { r.SimulatedResults.Summary = "" },
			"simulated_results.summary must not be empty"},
		{"empty results table", func(r *Report) { r.SimulatedResults.Table = nil },
			"simulated_results.table must not be empty"},
		{"blank table metric", func(r *Report) { r.SimulatedResults.Table[0].Metric = "" },
			"simulated_results.table[0].metric must not be empty"},
		{"missing conclusion", func(r *Report) { r.Conclusion = "" }, "conclusion must not be empty"},
		{"no references", func(r *Report) { r.References = nil }, "references must not be empty"},
		{"no outline", func(r *Report) { r.PPTOutline = nil }, "ppt_outline must not be empty"},
		{"no viva questions", func(r *Report) { r.VivaQuestions = nil }, "viva_questions must not be empty"},
		{"no datasets", func(r *Report) { r.DatasetsAndTools.Datasets = nil },
			"datasets_and_tools.datasets must not be empty"},
		{"no tools", func(r *Report) { r.DatasetsAndTools.Tools = nil },
			"datasets_and_tools.tools must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report := completeReport()
			tt.mutate(report)

			err := report.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestReportJSONKeys(t *testing.T) {
	t.Parallel()
	raw, err := json.Marshal(completeReport())
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{
		"abstract", "introduction", "literature_review", "research_gaps",
		"methodology", "simulated_results", "conclusion", "references",
		"ppt_outline", "viva_questions", "datasets_and_tools",
	} {
		require.Contains(t, decoded, key)
	}
	require.Len(t, decoded, 11, "the wire schema carries exactly the report sections")
}
