package synth

import (
	"fmt"
	"strings"

	"github.com/CybrFarhvn06/Codex/internal/models"
)

const maxKeywords = 8

// genericSubject and genericKeywords back the topic-agnostic fallback used
// when keyword extraction comes up empty (e.g. a topic of pure stop words).
const genericSubject = "the chosen research area"

var genericKeywords = []string{"evaluation", "benchmarking", "reproducibility"}

// topicContext carries everything the section builders derive content from.
// One context is built per request; every section shares it so the same
// subject noun threads through the abstract, introduction, and conclusion.
type topicContext struct {
	topic    string
	query    string
	subject  string
	keywords []string
	seed     uint64
}

func newTopicContext(topic, query string) topicContext {
	keywords := extractKeywords(topic+" "+query, maxKeywords)
	subject := genericSubject
	if len(keywords) > 0 {
		subject = keywords[0]
	}
	return topicContext{
		topic:    strings.TrimSpace(topic),
		query:    strings.TrimSpace(query),
		subject:  subject,
		keywords: keywords,
		seed:     seedFor(topic, query),
	}
}

// keyword returns the i-th extracted keyword, cycling past the end, or a
// generic filler when extraction found nothing.
func (tc topicContext) keyword(i int) string {
	if len(tc.keywords) == 0 {
		return genericKeywords[i%len(genericKeywords)]
	}
	return tc.keywords[i%len(tc.keywords)]
}

// pick rotates deterministically through a template catalog.
func (tc topicContext) pick(offset int, catalog []string) string {
	return catalog[(tc.seed+uint64(offset))%uint64(len(catalog))]
}

// buildReport assembles the complete local report. It is pure: no clock, no
// randomness, no I/O, so identical input yields an identical report.
func buildReport(topic, query string) *models.Report {
	tc := newTopicContext(topic, query)
	return &models.Report{
		Abstract:         buildAbstract(tc),
		Introduction:     buildIntroduction(tc),
		LiteratureReview: buildLiteratureReview(tc),
		ResearchGaps:     buildResearchGaps(tc),
		Methodology:      buildMethodology(tc),
		SimulatedResults: buildSimulatedResults(tc),
		Conclusion:       buildConclusion(tc),
		References:       buildReferences(tc),
		PPTOutline:       buildOutline(tc),
		VivaQuestions:    buildVivaQuestions(tc),
		DatasetsAndTools: buildDatasetsAndTools(tc),
	}
}

func buildAbstract(tc topicContext) string {
	return fmt.Sprintf(
		"This project investigates %s with a scientist-style workflow. "+
			"It addresses '%s' through literature synthesis, gap detection, and a practical student-level methodology, "+
			"with particular attention to %s.",
		tc.topic, tc.query, tc.subject)
}

func buildIntroduction(tc topicContext) string {
	return fmt.Sprintf(
		"%s is an active research area in both academia and industry. "+
			"This report summarizes the current state of knowledge around %s and outlines where a student project can contribute new findings.",
		tc.topic, tc.subject)
}

// buildLiteratureReview simulates findings from the three fixed databases.
// The source order is part of the report contract.
func buildLiteratureReview(tc topicContext) []models.LiteratureEntry {
	return []models.LiteratureEntry{
		{
			Source: "Google Scholar",
			Finding: fmt.Sprintf(
				"Recent studies on %s report measurable gains from hybrid and retrieval-augmented pipelines, with %s cited as a decisive factor.",
				tc.topic, tc.keyword(0)),
		},
		{
			Source: "IEEE Xplore",
			Finding: fmt.Sprintf(
				"Engineering papers on %s weigh accuracy against latency and deployment cost, especially once %s enters the picture.",
				tc.topic, tc.keyword(1)),
		},
		{
			Source: "PubMed",
			Finding: fmt.Sprintf(
				"Human-impact studies of %s emphasize ethics, safety, and reproducibility, calling for clearer %s protocols.",
				tc.topic, tc.keyword(2)),
		},
	}
}

var gapCatalog = []string{
	"Limited benchmarking of %s in low-resource student lab environments.",
	"Inconsistent reproducibility around %s due to missing open protocols and code sharing.",
	"Few studies evaluate %s jointly for technical performance and real-world usability.",
	"Little is known about how %s behaves outside curated benchmark datasets.",
	"Long-term effects of %s remain unmeasured beyond short pilot studies.",
	"Cost and energy footprints of %s are rarely reported next to headline metrics.",
}

func buildResearchGaps(tc topicContext) []string {
	const count = 3
	start := int(tc.seed % uint64(len(gapCatalog)))
	gaps := make([]string, 0, count)
	for i := 0; i < count; i++ {
		template := gapCatalog[(start+i)%len(gapCatalog)]
		gaps = append(gaps, fmt.Sprintf(template, tc.keyword(i)))
	}
	return gaps
}

var designCatalog = []string{
	"Mixed-method design: quantitative benchmarking of %s plus qualitative expert and student feedback.",
	"Comparative experimental design: a reproducible %s baseline evaluated against at least one improved approach.",
	"Iterative prototype design: successive refinements of a %s pipeline, measured after each iteration.",
}

func buildMethodology(tc topicContext) models.Methodology {
	return models.Methodology{
		Design: fmt.Sprintf(tc.pick(1, designCatalog), tc.subject),
		Steps: []string{
			fmt.Sprintf("Collect and preprocess open datasets relevant to %s.", tc.subject),
			"Implement baseline methods and at least one improved approach.",
			"Measure performance with accuracy, F1, precision/recall, and latency.",
			"Analyze error patterns and compare findings with published work.",
			"Summarize limitations and propose future experiments.",
		},
	}
}

// buildSimulatedResults fabricates an illustrative comparison table. The
// numbers are seeded by the input, never measured; ranges keep the deltas
// plausible (quality up, latency down).
func buildSimulatedResults(tc topicContext) models.SimulatedResults {
	var (
		accBase = 72 + int(tc.seed%8)
		accGain = 5 + int((tc.seed>>4)%5)
		f1Base  = 66 + int((tc.seed>>8)%10)
		f1Gain  = 6 + int((tc.seed>>12)%5)
		latBase = 180 + int((tc.seed>>16)%60)
		latDrop = 10 + int((tc.seed>>20)%40)
	)
	return models.SimulatedResults{
		Summary: fmt.Sprintf(
			"The proposed approach is expected to improve the %s baseline on quality metrics while keeping inference speed practical.",
			tc.subject),
		Table: []models.ResultRow{
			{Metric: "Accuracy", Baseline: fmt.Sprintf("%d%%", accBase), Proposed: fmt.Sprintf("%d%%", accBase+accGain)},
			{Metric: "F1 Score", Baseline: fmt.Sprintf("0.%02d", f1Base), Proposed: fmt.Sprintf("0.%02d", f1Base+f1Gain)},
			{Metric: "Latency", Baseline: fmt.Sprintf("%dms", latBase), Proposed: fmt.Sprintf("%dms", latBase-latDrop)},
		},
	}
}

func buildConclusion(tc topicContext) string {
	return fmt.Sprintf(
		"The study offers a feasible roadmap for student research on %s. "+
			"It pins down concrete gaps around %s and an experiment plan a small team can publish on.",
		tc.topic, tc.subject)
}

func buildReferences(tc topicContext) []string {
	var (
		volume = 10 + int(tc.seed%9)
		issue  = 1 + int((tc.seed>>3)%4)
		page   = 1 + int((tc.seed>>6)%30)
	)
	return []string{
		fmt.Sprintf("A. Kumar et al. (2023). Advances in %s. Journal of Student Research, %d(%d), %d-%d.",
			tc.topic, volume, issue, page, page+19),
		fmt.Sprintf("L. Chen & P. Smith (2022). Benchmarking %s systems under practical constraints. IEEE Transactions on Learning Systems.",
			tc.topic),
		fmt.Sprintf("R. Diaz et al. (2024). Reproducibility and ethics in %s. International Review of Applied AI.",
			tc.topic),
	}
}

func buildOutline(tc topicContext) []string {
	return []string{
		fmt.Sprintf("Problem statement and motivation: %s", tc.topic),
		"Literature landscape and gap analysis",
		"Research objectives and hypotheses",
		"Methodology and experimental setup",
		"Simulated and expected results",
		"Conclusion, limitations, and future work",
	}
}

func buildVivaQuestions(tc topicContext) []string {
	return []string{
		"Why did you choose this topic and what problem does it solve?",
		fmt.Sprintf("How does your treatment of %s differ from prior work?", tc.subject),
		"What are the strongest limitations of your current design?",
		"How would you validate generalization on larger or noisier datasets?",
		"What ethical or bias issues could affect your findings?",
	}
}

func buildDatasetsAndTools(tc topicContext) models.DatasetsAndTools {
	return models.DatasetsAndTools{
		Datasets: []string{
			fmt.Sprintf("Kaggle datasets tagged for %s", tc.subject),
			"UCI Machine Learning Repository",
			"Government open-data portals",
		},
		Tools: []string{
			"Python (Pandas, scikit-learn, PyTorch)",
			"Jupyter Notebook",
			"Zotero or Mendeley",
			"Tableau or Power BI",
		},
	}
}
