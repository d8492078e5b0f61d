package command

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUIDDeterministic(t *testing.T) {
	a := UID("run --x=1")
	b := UID("run --x=1")
	if a != b {
		t.Errorf("same text produced different UIDs: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(a))
	}
	if UID("run --x=2") == a {
		t.Error("different text produced the same UID")
	}
}

func TestReplaceUIDTag(t *testing.T) {
	template := "job_{UID} --x=1"
	// The UID is a digest of the original text, tag included.
	want := "job_" + UID(template) + " --x=1"

	got := ReplaceUIDTag([]string{template})
	if diff := cmp.Diff([]string{want}, got); diff != "" {
		t.Errorf("ReplaceUIDTag mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(got[0], UIDTag) {
		t.Error("placeholder survived substitution")
	}
}

func TestReplaceUIDTagMultipleOccurrences(t *testing.T) {
	template := "{UID} --out={UID}.log"
	uid := UID(template)

	got := ReplaceUIDTag([]string{template})[0]
	if got != uid+" --out="+uid+".log" {
		t.Errorf("expected every tag replaced with the same UID, got %q", got)
	}
}

func TestReplaceUIDTagIdempotent(t *testing.T) {
	commands := []string{"job_{UID} --x=1", "plain command", "{UID}"}

	once := ReplaceUIDTag(commands)
	twice := ReplaceUIDTag(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second pass changed commands (-once +twice):\n%s", diff)
	}
}

func TestReplaceUIDTagLeavesUntaggedAlone(t *testing.T) {
	commands := []string{"run --x=1", "run --x=2"}
	got := ReplaceUIDTag(commands)
	if diff := cmp.Diff(commands, got); diff != "" {
		t.Errorf("untagged commands changed (-want +got):\n%s", diff)
	}
}
