package education

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleByNumber(t *testing.T) {
	first, ok := ArticleByNumber(1)
	require.True(t, ok)
	assert.Equal(t, Articles[0].ID, first.ID)

	last, ok := ArticleByNumber(len(Articles))
	require.True(t, ok)
	assert.Equal(t, Articles[len(Articles)-1].ID, last.ID)

	_, ok = ArticleByNumber(0)
	assert.False(t, ok)
	_, ok = ArticleByNumber(len(Articles) + 1)
	assert.False(t, ok)
}

func TestFAQByNumber(t *testing.T) {
	first, ok := FAQByNumber(1)
	require.True(t, ok)
	assert.Equal(t, FAQs[0].ID, first.ID)

	_, ok = FAQByNumber(len(FAQs) + 1)
	assert.False(t, ok)
}

func TestLibraryEntriesComplete(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Articles {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Summary)
		assert.NotEmpty(t, a.Content)
		assert.Positive(t, a.ReadTimeMinutes)
		assert.False(t, seen[a.ID], "duplicate article ID %s", a.ID)
		seen[a.ID] = true
	}
	for _, f := range FAQs {
		assert.NotEmpty(t, f.Question)
		assert.NotEmpty(t, f.Answer)
		assert.False(t, seen[f.ID], "duplicate FAQ ID %s", f.ID)
		seen[f.ID] = true
	}
}
