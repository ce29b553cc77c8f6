package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayload(t *testing.T) {
	raw := []byte(`{"jobs":[{"career":"Data Analyst","matched":["Python"],"missing":["SQL"],"match_percent":50,"courses":["https://c/sql"]},{"career":"Intern","match_percent":0}]}`)
	jobs, err := ValidatePayload(raw)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Data Analyst", jobs[0].Career)
	assert.Equal(t, []string{"Python"}, jobs[0].Matched)
	assert.Equal(t, 50.0, jobs[0].MatchPercent)
	assert.Equal(t, []string{"https://c/sql"}, jobs[0].Courses)

	assert.NotNil(t, jobs[1].Matched)
	assert.Empty(t, jobs[1].Missing)
}

func TestValidatePayload_Empty(t *testing.T) {
	for _, raw := range []string{"", "  ", "{}", "null", `{"jobs":[]}`, `{"jobs":null}`} {
		jobs, err := ValidatePayload([]byte(raw))
		require.NoError(t, err, raw)
		assert.Empty(t, jobs, raw)
	}
}

func TestValidatePayload_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"jobs":`,
		"jobs not array":  `{"jobs":{"career":"x"}}`,
		"missing career":  `{"jobs":[{"matched":["a"]}]}`,
		"empty career":    `{"jobs":[{"career":""}]}`,
		"percent too big": `{"jobs":[{"career":"x","match_percent":120}]}`,
		"matched numbers": `{"jobs":[{"career":"x","matched":[1,2]}]}`,
		"top level array": `[]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ValidatePayload([]byte(raw))
			assert.True(t, errors.Is(err, ErrInvalidPayload), "got %v", err)
		})
	}
}
