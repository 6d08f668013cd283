package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	out := string(RenderMarkdown("# Heading\n\nsome **bold** text"))
	if !strings.Contains(out, "<h1") {
		t.Errorf("Expected heading in output, got %q", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("Expected bold text in output, got %q", out)
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := string(RenderMarkdown("hello <script>alert('x')</script> world"))
	if strings.Contains(out, "<script") {
		t.Errorf("Expected script tags stripped, got %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("Expected surrounding text kept, got %q", out)
	}
}
