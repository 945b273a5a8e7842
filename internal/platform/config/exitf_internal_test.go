package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndCode(t *testing.T) {
	var code int
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = osExit })

	var buf bytes.Buffer
	exitf(&buf, "export %s: %v", "meta", "boom")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "export meta: boom\n" {
		t.Fatalf("output = %q", got)
	}
}
