package research

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CybrFarhvn06/Codex/internal/models"
)

func validRequest() models.ResearchRequest {
	return models.ResearchRequest{
		StudentName:  "Asha Rao",
		StudentEmail: "asha@example.edu",
		Institution:  "VIT",
		Topic:        "Battery degradation in EVs",
		Query:        "How fast do lithium cells age?",
	}
}

func TestNormalizeRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ResearchRequest)
		wantErr string
	}{
		{"valid request", func(*models.ResearchRequest) {}, ""},
		{"missing name", func(r *models.ResearchRequest) { r.StudentName = "  " }, "student_name is required"},
		{"missing email", func(r *models.ResearchRequest) { r.StudentEmail = "" }, "student_email is required"},
		{"missing topic", func(r *models.ResearchRequest) { r.Topic = "\t" }, "topic is required"},
		{"missing query", func(r *models.ResearchRequest) { r.Query = "" }, "query is required"},
		{"email without domain", func(r *models.ResearchRequest) { r.StudentEmail = "asha@" },
			"student_email format is invalid"},
		{"email without dot", func(r *models.ResearchRequest) { r.StudentEmail = "asha@example" },
			"student_email format is invalid"},
		{"email with spaces", func(r *models.ResearchRequest) { r.StudentEmail = "a sha@example.edu" },
			"student_email format is invalid"},
		{"topic too long", func(r *models.ResearchRequest) { r.Topic = strings.Repeat("a", 301) },
			"topic must be <= 300 characters"},
		{"padded topic still too long", func(r *models.ResearchRequest) {
			r.Topic = strings.Repeat("a", 299) + "  "
		}, "topic must be <= 300 characters"},
		{"query too long", func(r *models.ResearchRequest) { r.Query = strings.Repeat("q", 5001) },
			"query must be <= 5000 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validRequest()
			tt.mutate(&req)

			_, err := normalizeRequest(req)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestNormalizeRequestCleansFields(t *testing.T) {
	t.Parallel()
	req := validRequest()
	req.StudentName = "  Asha Rao "
	req.StudentEmail = " Asha@Example.EDU "
	req.Institution = "  " + strings.Repeat("x", 250)
	req.Topic = "  Battery degradation in EVs "
	req.Query = " How fast do lithium cells age?\n"

	got, err := normalizeRequest(req)
	require.NoError(t, err)
	require.Equal(t, "Asha Rao", got.StudentName)
	require.Equal(t, "asha@example.edu", got.StudentEmail)
	require.Equal(t, strings.Repeat("x", 200), got.Institution)
	require.Equal(t, "Battery degradation in EVs", got.Topic)
	require.Equal(t, "How fast do lithium cells age?", got.Query)
}
