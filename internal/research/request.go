package research

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/CybrFarhvn06/Codex/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	maxTopicChars       = 300
	maxQueryChars       = 5000
	maxInstitutionChars = 200
)

// normalizeRequest validates a raw research request and returns a cleaned
// copy: names and topics trimmed, the email lowercased, the institution
// capped at the column width. Length bounds apply to the raw values so a
// padded topic cannot sneak past the limit.
func normalizeRequest(req models.ResearchRequest) (models.ResearchRequest, error) {
	required := []struct {
		field string
		value string
	}{
		{"student_name", req.StudentName},
		{"student_email", req.StudentEmail},
		{"topic", req.Topic},
		{"query", req.Query},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return models.ResearchRequest{}, fmt.Errorf("%s is required", r.field)
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.StudentEmail))
	if !emailPattern.MatchString(email) {
		return models.ResearchRequest{}, fmt.Errorf("student_email format is invalid")
	}
	if utf8.RuneCountInString(req.Topic) > maxTopicChars {
		return models.ResearchRequest{}, fmt.Errorf("topic must be <= %d characters", maxTopicChars)
	}
	if utf8.RuneCountInString(req.Query) > maxQueryChars {
		return models.ResearchRequest{}, fmt.Errorf("query must be <= %d characters", maxQueryChars)
	}

	return models.ResearchRequest{
		StudentName:  strings.TrimSpace(req.StudentName),
		StudentEmail: email,
		Institution:  truncateRunes(strings.TrimSpace(req.Institution), maxInstitutionChars),
		Topic:        strings.TrimSpace(req.Topic),
		Query:        strings.TrimSpace(req.Query),
	}, nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
