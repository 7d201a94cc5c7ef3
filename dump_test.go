package uibind

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDumpComposite(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	c := NewComposite[string]()
	c.Register(NewSeqList("a", "b"))
	c.Register(NewSeqList("c"))
	var buf bytes.Buffer
	DumpComposite(&buf, c)
	out := buf.String()
	t.Logf("dump:\n%s", out)
	for _, want := range []string{
		"composite (3)",
		"segment #0 (2) @0",
		"segment #1 (1) @2",
		"[2] c",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output lacks %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("dump to a buffer should not contain color escapes")
	}
}

func TestDumpEmptyComposite(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var buf bytes.Buffer
	DumpComposite(&buf, NewComposite[int]())
	if !strings.Contains(buf.String(), "composite (0)") {
		t.Errorf("dump of empty composite = %q", buf.String())
	}
}
