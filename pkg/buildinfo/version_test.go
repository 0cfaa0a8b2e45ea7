package buildinfo

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v0.3.0", "abc1234", "2026-01-02"

	if got := Get().String(); got != "v0.3.0 (abc1234, 2026-01-02)" {
		t.Errorf("String() = %q", got)
	}
	if tmpl := Template(); !strings.Contains(tmpl, "version v0.3.0") || !strings.Contains(tmpl, "commit: abc1234") {
		t.Errorf("Template() = %q", tmpl)
	}
}
