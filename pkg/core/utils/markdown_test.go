package utils

import "testing"

func TestCleanMarkdownStripsFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"```markdown\n## Costs\nbody\n```", "## Costs\nbody"},
		{"```\nplain fenced\n```", "plain fenced"},
		{"  no fences at all  ", "no fences at all"},
		{"```\n```", ""},
	}
	for _, c := range cases {
		if got := CleanMarkdown(c.in); got != c.want {
			t.Errorf("CleanMarkdown(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidateMarkdown(t *testing.T) {
	if !ValidateMarkdown("## Heading\n\nA paragraph with **bold** text.") {
		t.Error("Well-formed Markdown must validate")
	}
	if !ValidateMarkdown("just a sentence") {
		t.Error("Plain text is valid Markdown")
	}
}
