package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keywordPayload struct {
	JobTitles []string `json:"job_titles"`
	Skills    []string `json:"skills"`
}

func TestParseJSONPlainObject(t *testing.T) {
	result, err := ParseJSON[keywordPayload](`{"job_titles": ["Engineer"], "skills": ["Go"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineer"}, result.JobTitles)
}

func TestParseJSONSurroundedByProse(t *testing.T) {
	response := "Sure! Here is the JSON you asked for:\n```json\n" +
		`{"job_titles": ["Engineer"], "skills": []}` +
		"\n```\nLet me know if you need anything else."

	result, err := ParseJSON[keywordPayload](response)
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineer"}, result.JobTitles)
	assert.Empty(t, result.Skills)
}

func TestParseJSONNoObject(t *testing.T) {
	_, err := ParseJSON[keywordPayload]("no json here")
	assert.Error(t, err)
}

func TestParseJSONMalformedObject(t *testing.T) {
	_, err := ParseJSON[keywordPayload](`{"job_titles": [unquoted]}`)
	assert.Error(t, err)
}
