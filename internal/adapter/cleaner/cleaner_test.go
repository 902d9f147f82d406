package cleaner

import "testing"

func TestCleaner_StripHTML(t *testing.T) {
	c, err := New(true, nil)
	if err != nil {
		t.Fatal(err)
	}

	got := c.Clean("<p>Hello <b>world</b>&nbsp;again</p>")
	if got != "Hello world again" {
		t.Errorf("expected markup stripped, got %q", got)
	}
}

func TestCleaner_CustomPattern(t *testing.T) {
	c, err := New(false, [][2]string{{`\d+`, ""}})
	if err != nil {
		t.Fatal(err)
	}

	got := c.Clean("call 555 1234 now")
	if got != "call now" {
		t.Errorf("expected digits removed, got %q", got)
	}
}

func TestCleaner_WhitespaceCollapse(t *testing.T) {
	c, err := New(false, nil)
	if err != nil {
		t.Fatal(err)
	}

	got := c.Clean("  spaced\t\tout\n\ntext  ")
	if got != "spaced out text" {
		t.Errorf("expected whitespace collapsed, got %q", got)
	}
}

func TestCleaner_InvalidPattern(t *testing.T) {
	if _, err := New(false, [][2]string{{`(`, ""}}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
