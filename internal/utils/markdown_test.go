package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	html := string(RenderMarkdown("To get to the **other side**."))
	assert.Contains(t, html, "<strong>other side</strong>")
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html := string(RenderMarkdown("hello <script>alert('xss')</script> world"))
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "alert(")
	assert.Contains(t, html, "hello")
}
