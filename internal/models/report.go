package models

import (
	"fmt"
	"strings"
)

// LiteratureEntry is one simulated database finding in the literature review.
type LiteratureEntry struct {
	Source  string `json:"source"  bson:"source"`
	Finding string `json:"finding" bson:"finding"`
}

// Methodology is the proposed study design and its ordered steps.
type Methodology struct {
	Design string   `json:"design" bson:"design"`
	Steps  []string `json:"steps"  bson:"steps"`
}

// ResultRow is one metric comparison in the simulated results table.
type ResultRow struct {
	Metric   string `json:"metric"   bson:"metric"`
	Baseline string `json:"baseline" bson:"baseline"`
	Proposed string `json:"proposed" bson:"proposed"`
}

// SimulatedResults holds the illustrative (not measured) outcome comparison.
type SimulatedResults struct {
	Summary string      `json:"summary" bson:"summary"`
	Table   []ResultRow `json:"table"   bson:"table"`
}

// DatasetsAndTools suggests starting points for the student's experiments.
type DatasetsAndTools struct {
	Datasets []string `json:"datasets" bson:"datasets"`
	Tools    []string `json:"tools"    bson:"tools"`
}

// Report is the full research deliverable. The field set is the stable wire
// schema: it is identical whether the report was synthesized locally or by the
// external generator, and it is stored verbatim as a document.
type Report struct {
	Abstract         string            `json:"abstract"           bson:"abstract"`
	Introduction     string            `json:"introduction"       bson:"introduction"`
	LiteratureReview []LiteratureEntry `json:"literature_review"  bson:"literature_review"`
	ResearchGaps     []string          `json:"research_gaps"      bson:"research_gaps"`
	Methodology      Methodology       `json:"methodology"        bson:"methodology"`
	SimulatedResults SimulatedResults  `json:"simulated_results"  bson:"simulated_results"`
	Conclusion       string            `json:"conclusion"         bson:"conclusion"`
	References       []string          `json:"references"         bson:"references"`
	PPTOutline       []string          `json:"ppt_outline"        bson:"ppt_outline"`
	VivaQuestions    []string          `json:"viva_questions"     bson:"viva_questions"`
	DatasetsAndTools DatasetsAndTools  `json:"datasets_and_tools" bson:"datasets_and_tools"`
}

// Validate checks the report invariant: every list field has at least one
// element and every string field is non-empty after trimming. It is used both
// as a unit-test gate and to reject malformed external generator output.
func (r *Report) Validate() error {
	if err := nonBlank("abstract", r.Abstract); err != nil {
		return err
	}
	if err := nonBlank("introduction", r.Introduction); err != nil {
		return err
	}
	if len(r.LiteratureReview) == 0 {
		return fmt.Errorf("literature_review must not be empty")
	}
	for i, entry := range r.LiteratureReview {
		if err := nonBlank(fmt.Sprintf("literature_review[%d].source", i), entry.Source); err != nil {
			return err
		}
		if err := nonBlank(fmt.Sprintf("literature_review[%d].finding", i), entry.Finding); err != nil {
			return err
		}
	}
	if err := nonBlankList("research_gaps", r.ResearchGaps); err != nil {
		return err
	}
	if err := nonBlank("methodology.design", r.Methodology.Design); err != nil {
		return err
	}
	if err := nonBlankList("methodology.steps", r.Methodology.Steps); err != nil {
		return err
	}
	if err := nonBlank("simulated_results.summary", r.SimulatedResults.Summary); err != nil {
		return err
	}
	if len(r.SimulatedResults.Table) == 0 {
		return fmt.Errorf("simulated_results.table must not be empty")
	}
	for i, row := range r.SimulatedResults.Table {
		if err := nonBlank(fmt.Sprintf("simulated_results.table[%d].metric", i), row.Metric); err != nil {
			return err
		}
		if err := nonBlank(fmt.Sprintf("simulated_results.table[%d].baseline", i), row.Baseline); err != nil {
			return err
		}
		if err := nonBlank(fmt.Sprintf("simulated_results.table[%d].proposed", i), row.Proposed); err != nil {
			return err
		}
	}
	if err := nonBlank("conclusion", r.Conclusion); err != nil {
		return err
	}
	if err := nonBlankList("references", r.References); err != nil {
		return err
	}
	if err := nonBlankList("ppt_outline", r.PPTOutline); err != nil {
		return err
	}
	if err := nonBlankList("viva_questions", r.VivaQuestions); err != nil {
		return err
	}
	if err := nonBlankList("datasets_and_tools.datasets", r.DatasetsAndTools.Datasets); err != nil {
		return err
	}
	if err := nonBlankList("datasets_and_tools.tools", r.DatasetsAndTools.Tools); err != nil {
		return err
	}
	return nil
}

func nonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}

func nonBlankList(field string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%s must not be empty", field)
	}
	for i, v := range values {
		if err := nonBlank(fmt.Sprintf("%s[%d]", field, i), v); err != nil {
			return err
		}
	}
	return nil
}
