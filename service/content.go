package service

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ContentRenderer turns article markdown into sanitized HTML
type ContentRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewContentRenderer creates a renderer with GFM enabled and a UGC sanitizing policy
func NewContentRenderer() *ContentRenderer {
	return &ContentRenderer{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Typographer)),
		policy: newArticleHTMLPolicy(),
	}
}

func newArticleHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// Render converts markdown to HTML safe to embed in a page
func (c *ContentRenderer) Render(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(c.policy.SanitizeBytes(buf.Bytes())), nil
}
