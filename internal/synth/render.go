package synth

import (
	"fmt"
	"strings"

	"github.com/CybrFarhvn06/Codex/internal/models"
)

// RenderMarkdown formats a report as a standalone Markdown document for file
// export. It contains no timestamps so the rendering stays reproducible.
func RenderMarkdown(topic string, report *models.Report) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(topic)
	b.WriteString("\n\n")

	b.WriteString("## Abstract\n\n")
	b.WriteString(report.Abstract)
	b.WriteString("\n\n")

	b.WriteString("## Introduction\n\n")
	b.WriteString(report.Introduction)
	b.WriteString("\n\n")

	b.WriteString("## Literature Review\n\n")
	for _, entry := range report.LiteratureReview {
		b.WriteString(fmt.Sprintf("- **%s** — %s\n", entry.Source, entry.Finding))
	}
	b.WriteString("\n")

	b.WriteString("## Research Gaps\n\n")
	for i, gap := range report.ResearchGaps {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, gap))
	}
	b.WriteString("\n")

	b.WriteString("## Methodology\n\n")
	b.WriteString(report.Methodology.Design)
	b.WriteString("\n\n")
	for i, step := range report.Methodology.Steps {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	b.WriteString("\n")

	b.WriteString("## Simulated Results\n\n")
	b.WriteString(report.SimulatedResults.Summary)
	b.WriteString("\n\n")
	b.WriteString("| Metric | Baseline | Proposed |\n|---|---|---|\n")
	for _, row := range report.SimulatedResults.Table {
		b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", row.Metric, row.Baseline, row.Proposed))
	}
	b.WriteString("\n")

	b.WriteString("## Conclusion\n\n")
	b.WriteString(report.Conclusion)
	b.WriteString("\n\n")

	b.WriteString("## References\n\n")
	for i, ref := range report.References {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, ref))
	}
	b.WriteString("\n")

	b.WriteString("## Presentation Outline\n\n")
	for _, slide := range report.PPTOutline {
		b.WriteString(fmt.Sprintf("- %s\n", slide))
	}
	b.WriteString("\n")

	b.WriteString("## Viva Questions\n\n")
	for i, question := range report.VivaQuestions {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, question))
	}
	b.WriteString("\n")

	b.WriteString("## Datasets and Tools\n\n")
	b.WriteString("Datasets:\n")
	for _, dataset := range report.DatasetsAndTools.Datasets {
		b.WriteString(fmt.Sprintf("- %s\n", dataset))
	}
	b.WriteString("\nTools:\n")
	for _, tool := range report.DatasetsAndTools.Tools {
		b.WriteString(fmt.Sprintf("- %s\n", tool))
	}

	return b.String()
}
