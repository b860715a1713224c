package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_File(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "resume.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Config{
		Template: "classic",
		Format:   "markdown",
		Theme:    "emerald",
		Variant:  "print",
		Width:    80,
		Items:    ItemsRequireTrue,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "absent.toml"))
	if err == nil {
		t.Fatal("expected error for explicit missing file")
	}
}

func TestLoad_DefaultMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestDecode_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Decode([]byte(`theme = "slate"`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Default()
	want.Theme = "slate"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "syntax", input: `template = `, want: "decode"},
		{name: "unknown key", input: `templat = "classic"`, want: "unknown keys: templat"},
		{name: "negative width", input: `width = -1`, want: "width must not be negative"},
		{name: "bad policy", input: `items = "sometimes"`, want: `unknown items policy "sometimes"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestItemPolicy(t *testing.T) {
	for _, items := range []string{"", ItemsVisibleUnlessFalse, "Require-True"} {
		cfg := Config{Items: items}
		policy, err := cfg.ItemPolicy()
		if err != nil {
			t.Fatalf("items %q: %v", items, err)
		}
		if policy == nil {
			t.Fatalf("items %q: nil policy", items)
		}
	}
}
