package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resume/pkg/document"
)

func TestLoader_File(t *testing.T) {
	path := filepath.Join("testdata", "resume.json")
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	got, err := New().Load(context.Background(), document.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_FileMissing(t *testing.T) {
	_, err := New().Load(context.Background(), document.SourceFromFile(filepath.Join("testdata", "missing.json")))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"docs/resume.json": &fstest.MapFile{Data: []byte(`{"basics":{"name":"Ada"}}`)},
	}
	loader := New(WithFS(files))

	got, err := loader.Load(context.Background(), document.SourceFromFS("docs/resume.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"basics":{"name":"Ada"}}` {
		t.Fatalf("unexpected payload %q", got)
	}
}

func TestLoader_FSRequiresFilesystem(t *testing.T) {
	_, err := New().Load(context.Background(), document.SourceFromFS("resume.json"))
	if err == nil || !strings.Contains(err.Error(), "fs is nil") {
		t.Fatalf("expected fs is nil error, got %v", err)
	}
}

func TestLoader_BytesAreCopied(t *testing.T) {
	src := document.SourceFromBytes("inline.json", []byte(`{}`))

	first, err := New().Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	first[0] = 'x'

	second, err := New().Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(second) != `{}` {
		t.Fatalf("source payload was mutated: %q", second)
	}
}

func TestLoader_Errors(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		src  document.Source
		want string
	}{
		{name: "nil source", ctx: context.Background(), src: nil, want: "source is nil"},
		{name: "empty path", ctx: context.Background(), src: document.SourceFromFile(""), want: "file path is required"},
		{name: "empty fs name", ctx: context.Background(), src: document.SourceFromFS(""), want: "fs path is required"},
		{name: "cancelled", ctx: cancelled, src: document.SourceFromFile(filepath.Join("testdata", "resume.json")), want: context.Canceled.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Load(tt.ctx, tt.src)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoader_LoadDocumentDetectsFormat(t *testing.T) {
	loader := New()

	yamlDoc, err := loader.LoadDocument(context.Background(), document.SourceFromFile(filepath.Join("testdata", "resume.yaml")))
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if yamlDoc.Basics.Headline != "Platform Engineer" {
		t.Fatalf("unexpected headline %q", yamlDoc.Basics.Headline)
	}
	if diff := cmp.Diff([]string{"experience"}, yamlDoc.Sections.IDs()); diff != "" {
		t.Fatalf("section ids mismatch (-want +got):\n%s", diff)
	}

	jsonDoc, err := loader.LoadDocument(context.Background(), document.SourceFromFile(filepath.Join("testdata", "resume.json")))
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if jsonDoc.Basics.Name != "Jordan Lee" {
		t.Fatalf("unexpected name %q", jsonDoc.Basics.Name)
	}
}
