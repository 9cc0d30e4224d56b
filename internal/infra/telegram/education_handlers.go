package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"cycle_companion_bot/internal/domain/education"

	"gopkg.in/telebot.v3"
)

// RegisterEducationHandlers registers the /learn and /faq commands
// serving the built-in education library.
func RegisterEducationHandlers(b *telebot.Bot) {
	b.Handle("/learn", func(c telebot.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send(renderArticleList())
		}

		n, err := strconv.Atoi(args[0])
		if err != nil {
			return c.Send("Usage: /learn [article number]")
		}
		article, ok := education.ArticleByNumber(n)
		if !ok {
			return c.Send(fmt.Sprintf("No article %d. Pick one from /learn.", n))
		}
		return c.Send(renderArticle(article))
	})

	b.Handle("/faq", func(c telebot.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send(renderFAQList())
		}

		n, err := strconv.Atoi(args[0])
		if err != nil {
			return c.Send("Usage: /faq [question number]")
		}
		faq, ok := education.FAQByNumber(n)
		if !ok {
			return c.Send(fmt.Sprintf("No question %d. Pick one from /faq.", n))
		}
		return c.Send(fmt.Sprintf("%s\n\n%s", faq.Question, faq.Answer))
	})
}

func renderArticleList() string {
	var b strings.Builder
	b.WriteString("Learn about your cycle:\n")
	for i, a := range education.Articles {
		b.WriteString(fmt.Sprintf("%d. %s (%d min read)\n   %s\n", i+1, a.Title, a.ReadTimeMinutes, a.Summary))
	}
	b.WriteString("\nSend /learn <number> to read an article.")
	return b.String()
}

func renderArticle(a education.Article) string {
	return fmt.Sprintf("%s\n\n%s", a.Title, a.Content)
}

func renderFAQList() string {
	var b strings.Builder
	b.WriteString("Frequently asked questions:\n")
	for i, f := range education.FAQs {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, f.Question))
	}
	b.WriteString("\nSend /faq <number> to read the answer.")
	return b.String()
}
