package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionsNoneMissing(t *testing.T) {
	got := Suggestions(nil)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Great job")
}

func TestSuggestionsOnePerMissingSkillPlusCloser(t *testing.T) {
	got := Suggestions([]string{"api design", "redis"})

	require.Len(t, got, 3)
	assert.Contains(t, got[0], "Api Design")
	assert.Contains(t, got[1], "Redis")
	assert.Contains(t, got[2], "quantifiable achievements")
}

func TestSuggestionsPreserveOrder(t *testing.T) {
	got := Suggestions([]string{"aws", "docker", "sql"})
	require.Len(t, got, 4)
	assert.Contains(t, got[0], "Aws")
	assert.Contains(t, got[1], "Docker")
	assert.Contains(t, got[2], "Sql")
}
