package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryList(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"absent", "", nil},
		{"comma separated", "debrisTypes=Concrete,%20Wood", []string{"Concrete", "Wood"}},
		{"repeated", "debrisTypes=Concrete&debrisTypes=Wood", []string{"Concrete", "Wood"}},
		{"mixed", "debrisTypes=Concrete,Wood&debrisTypes=Metal", []string{"Concrete", "Wood", "Metal"}},
		{"blanks dropped", "debrisTypes=,%20,Wood,", []string{"Wood"}},
		{"only blanks", "debrisTypes=", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ParseQueryList(q, "debrisTypes"))
		})
	}
}

func TestQueryNumbers(t *testing.T) {
	q, err := url.ParseQuery("radius=12.5&page=3&bad=abc")
	require.NoError(t, err)

	radius, err := QueryFloat(q, "radius", 25)
	require.NoError(t, err)
	assert.Equal(t, 12.5, radius)

	radius, err = QueryFloat(q, "missing", 25)
	require.NoError(t, err)
	assert.Equal(t, 25.0, radius)

	page, err := QueryInt(q, "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	_, err = QueryInt(q, "bad", 1)
	assert.Error(t, err)
	_, err = QueryFloat(q, "bad", 1)
	assert.Error(t, err)
}
