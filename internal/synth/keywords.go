package synth

import (
	"hash/fnv"
	"strings"
)

const punctuation = ".,!?;:\"'()[]{}«»"

// stopWords are tokens that never qualify as topic keywords: articles,
// pronouns, auxiliaries, question words, plus a few words so common in
// student research prompts that they carry no topical signal.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "can": true, "could": true,
	"did": true, "do": true, "does": true, "for": true, "from": true, "had": true,
	"has": true, "have": true, "how": true, "if": true, "in": true, "into": true,
	"is": true, "it": true, "its": true, "more": true, "most": true, "my": true,
	"not": true, "of": true, "on": true, "or": true, "our": true, "should": true,
	"so": true, "than": true, "that": true, "the": true, "their": true,
	"them": true, "then": true, "these": true, "they": true, "this": true,
	"to": true, "was": true, "were": true, "what": true, "when": true,
	"where": true, "which": true, "who": true, "why": true, "will": true,
	"with": true, "would": true, "you": true, "your": true,
	// domain noise in a student research assistant
	"research": true, "study": true, "student": true, "students": true,
	"topic": true, "project": true, "using": true, "based": true,
}

// extractKeywords tokenizes the text, strips punctuation and stop words, and
// returns up to max lowercase keywords. First-seen order is preserved so that
// identical input always produces the identical keyword list.
func extractKeywords(text string, max int) []string {
	var (
		keywords []string
		seen     = make(map[string]bool)
	)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, punctuation)
		if len(token) < 3 || stopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
		if len(keywords) == max {
			break
		}
	}
	return keywords
}

// seedFor derives the deterministic variation seed from the raw input pair.
// FNV-1a keeps the engine free of time- or randomness-dependent state.
func seedFor(topic, query string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(topic))
	h.Write([]byte{0})
	h.Write([]byte(query))
	return h.Sum64()
}
