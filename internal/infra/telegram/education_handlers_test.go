package telegram

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cycle_companion_bot/internal/domain/education"
)

func TestRenderArticleList(t *testing.T) {
	out := renderArticleList()
	for i, a := range education.Articles {
		assert.Contains(t, out, fmt.Sprintf("%d. %s", i+1, a.Title))
	}
	assert.Contains(t, out, "/learn <number>")
}

func TestRenderArticle(t *testing.T) {
	article, ok := education.ArticleByNumber(1)
	require.True(t, ok)

	out := renderArticle(article)
	assert.Contains(t, out, article.Title)
	assert.Contains(t, out, article.Content)
}

func TestRenderFAQList(t *testing.T) {
	out := renderFAQList()
	for i, f := range education.FAQs {
		assert.Contains(t, out, fmt.Sprintf("%d. %s", i+1, f.Question))
	}
	assert.Contains(t, out, "/faq <number>")
}
