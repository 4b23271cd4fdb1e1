package captions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAssemble_Sections(t *testing.T) {
	t.Parallel()

	style := Default().Style
	events := []Event{
		{Start: time.Second, End: 4 * time.Second, Text: "{\\c&HFFFFFF&}Hello, world!"},
	}
	doc := Assemble(Resolution{Width: 1080, Height: 1920}, style, events)

	for _, want := range []string{
		"[Script Info]\n",
		"PlayResX: 1080\n",
		"PlayResY: 1920\n",
		"ScaledBorderAndShadow: yes\n",
		"[V4+ Styles]\n",
		"Style: Default,Montserrat,140,&HFFFFFF&,&H000000FF,&H000000&,",
		"[Events]\n",
		"Dialogue: 0,0:00:01.00,0:00:04.00,Default,,0,0,0,,{\\c&HFFFFFF&}Hello, world!\n",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestAssemble_MarginFromPosition(t *testing.T) {
	t.Parallel()

	style := Default().Style
	style.Position = 0.5
	doc := Assemble(Resolution{Width: 1080, Height: 1920}, style, nil)
	if !strings.Contains(doc, ",2,10,10,960,1\n") {
		t.Fatalf("expected MarginV 960 for position 0.5 on 1920:\n%s", doc)
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	t.Parallel()

	style := Default().Style
	events := []Event{
		{Start: 0, End: time.Second, Text: "a"},
		{Start: time.Second, End: 2 * time.Second, Text: "b"},
	}
	res := Resolution{Width: 1920, Height: 1080}
	if Assemble(res, style, events) != Assemble(res, style, events) {
		t.Fatal("expected byte-identical documents")
	}
}

func TestAssTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00:00.00"},
		{time.Second, "0:00:01.00"},
		{61*time.Second + 234*time.Millisecond, "0:01:01.23"},
		{time.Hour + time.Minute, "1:01:00.00"},
		{-time.Second, "0:00:00.00"},
	}
	for _, tt := range tests {
		if got := assTime(tt.d); got != tt.want {
			t.Fatalf("assTime(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestWriteDocument_Atomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.ass")
	if err := WriteDocument(path, "content"); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "content" {
		t.Fatalf("unexpected content: %q", b)
	}
	// no temp files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the document in %s, found %d entries", dir, len(entries))
	}
}

func TestWriteDocument_MissingDir(t *testing.T) {
	t.Parallel()

	err := WriteDocument(filepath.Join(t.TempDir(), "nope", "out.ass"), "x")
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
