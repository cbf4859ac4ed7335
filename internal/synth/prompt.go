package synth

import "fmt"

// SystemPrompt frames the external generator as a research assistant and
// pins the output to JSON.
func SystemPrompt() string {
	return `You are a scientific research assistant for students.
Produce rigorous yet easy-to-understand outputs.
Include evidence-oriented literature analysis, research gap detection,
a feasible student-level methodology, simulated quantitative results,
references, PPT outline, viva questions, and tools/datasets suggestions.
Return valid JSON only.`
}

// UserPrompt spells out the exact key set and per-section requirements so a
// conforming response unmarshals straight into models.Report.
func UserPrompt(topic, query string) string {
	return fmt.Sprintf(`Student topic: %s
Student research query: %s

Return JSON with these keys exactly:
abstract, introduction, literature_review, research_gaps,
methodology, simulated_results, conclusion, references,
ppt_outline, viva_questions, datasets_and_tools.

Requirements:
- literature_review must include source + finding entries from: Google Scholar, IEEE Xplore, PubMed
- methodology must include design + steps
- simulated_results must include summary + table[] with metric, baseline, proposed
- references must be a list of citation strings
- datasets_and_tools must include datasets[] and tools[]`, topic, query)
}
