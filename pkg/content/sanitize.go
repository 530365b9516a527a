package content

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextOnce   sync.Once
	richTextPolicy *bluemonday.Policy
)

// SanitizeRichText keeps inline emphasis and drops every other element.
func SanitizeRichText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextSanitizer().Sanitize(trimmed))
}

func richTextSanitizer() *bluemonday.Policy {
	richTextOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("strong", "em", "b", "i", "br", "span")
		policy.AllowAttrs("class").OnElements("span")
		richTextPolicy = policy
	})
	return richTextPolicy
}

// sanitize rewrites every rich text field in place.
func (c *Content) sanitize() {
	c.Hero.Blurb = SanitizeRichText(c.Hero.Blurb)
	c.Features.Blurb = SanitizeRichText(c.Features.Blurb)
	for i := range c.Features.Items {
		c.Features.Items[i].Description = SanitizeRichText(c.Features.Items[i].Description)
	}
	c.AI.Blurb = SanitizeRichText(c.AI.Blurb)
	for i := range c.AI.Cards {
		c.AI.Cards[i].Description = SanitizeRichText(c.AI.Cards[i].Description)
	}
	c.Dashboard.Blurb = SanitizeRichText(c.Dashboard.Blurb)
	c.Dashboard.Coach.Message = SanitizeRichText(c.Dashboard.Coach.Message)
	c.Testimonials.Blurb = SanitizeRichText(c.Testimonials.Blurb)
	for i := range c.Testimonials.Items {
		c.Testimonials.Items[i].Content = SanitizeRichText(c.Testimonials.Items[i].Content)
	}
	c.CTA.Blurb = SanitizeRichText(c.CTA.Blurb)
}
