package orchestrator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-resume/pkg/document"
	"github.com/goliatone/go-resume/pkg/orchestrator"
	"github.com/goliatone/go-resume/pkg/render"
	"github.com/goliatone/go-resume/pkg/renderers"
	"github.com/goliatone/go-resume/pkg/renderers/jsontree"
	"github.com/goliatone/go-resume/pkg/templates/classic"
	"github.com/goliatone/go-resume/pkg/templates/modern"
	"github.com/goliatone/go-resume/pkg/testsupport"
	"github.com/goliatone/go-resume/pkg/visibility"
)

var fixture = filepath.Join("testdata", "resume.yaml")

func TestOrchestrator_Generate_DefaultsToModernHTML(t *testing.T) {
	t.Parallel()

	output, err := orchestrator.New().Generate(testsupport.Context(), orchestrator.Request{
		Source: document.SourceFromFile(fixture),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	html := string(output)
	for _, want := range []string{"Jordan Lee", "Platform Engineer", "Experience", "Skills", "<strong>Kubernetes</strong>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, html)
		}
	}
	for _, unwanted := range []string{"Hobbies", "Initech"} {
		if strings.Contains(html, unwanted) {
			t.Fatalf("expected output to omit %q:\n%s", unwanted, html)
		}
	}
}

func TestOrchestrator_Compose_TemplateSelection(t *testing.T) {
	t.Parallel()

	orch := orchestrator.New()
	doc := testsupport.LoadDocument(t, fixture)

	cases := []struct {
		name     string
		template string
		want     render.Tree
	}{
		{name: "default", template: "", want: modern.Render(doc)},
		{name: "modern", template: modern.Name, want: modern.Render(doc)},
		{name: "classic", template: classic.Name, want: classic.Render(doc)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := orch.Compose(testsupport.Context(), orchestrator.Request{
				Source:   document.SourceFromFile(fixture),
				Template: tc.template,
			})
			if err != nil {
				t.Fatalf("compose: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrchestrator_Generate_SameTreeAcrossRenderers(t *testing.T) {
	t.Parallel()

	orch := orchestrator.New()
	ctx := testsupport.Context()

	for _, name := range orch.Renderers().List() {
		output, err := orch.Generate(ctx, orchestrator.Request{
			Source:   document.SourceFromFile(fixture),
			Renderer: name,
		})
		if err != nil {
			t.Fatalf("generate (%s): %v", name, err)
		}
		if !strings.Contains(string(output), "Jordan Lee") {
			t.Fatalf("renderer %s lost the name:\n%s", name, output)
		}
	}

	output, err := orch.Generate(ctx, orchestrator.Request{
		Source:   document.SourceFromFile(fixture),
		Template: classic.Name,
		Renderer: jsontree.Name,
	})
	if err != nil {
		t.Fatalf("generate json: %v", err)
	}
	var tree render.Tree
	if err := json.Unmarshal(output, &tree); err != nil {
		t.Fatalf("decode json tree: %v", err)
	}
	if diff := cmp.Diff([]string{"skills", "experience"}, tree.SectionIDs()); diff != "" {
		t.Fatalf("classic section order mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_Generate_DocumentBypassesLoader(t *testing.T) {
	t.Parallel()

	loader := &countingLoader{}
	doc := testsupport.LoadDocument(t, fixture)

	output, err := orchestrator.New(
		orchestrator.WithLoader(loader),
		orchestrator.WithDefaultRenderer(jsontree.Name),
	).Generate(testsupport.Context(), orchestrator.Request{Document: &doc})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if loader.calls != 0 {
		t.Fatalf("expected loader to be skipped, got %d calls", loader.calls)
	}
	if !bytes.HasPrefix(output, []byte("{")) {
		t.Fatalf("expected json output, got %s", output)
	}
}

func TestOrchestrator_Generate_FSSource(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"resumes/ada.json": &fstest.MapFile{Data: []byte(`{"basics":{"name":"Ada Lovelace"},"sections":{}}`)},
	}

	tree, err := orchestrator.New(orchestrator.WithFS(files)).Compose(testsupport.Context(), orchestrator.Request{
		Source: document.SourceFromFS("resumes/ada.json"),
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := tree.Root.First(render.KindName).Text; got != "Ada Lovelace" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestOrchestrator_ThemeSelection(t *testing.T) {
	t.Parallel()

	selection := &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens: map[string]string{
				"background": "#fafafa",
				"text":       "#222222",
				"primary":    "#123456",
			},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"background": "#000000"}},
			},
		},
	}
	selector := &stubThemeSelector{selection: selection}

	tree, err := orchestrator.New(orchestrator.WithThemeSelector(selector)).Compose(testsupport.Context(), orchestrator.Request{
		Source:       document.SourceFromFile(fixture),
		ThemeName:    "acme",
		ThemeVariant: "dark",
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	if diff := cmp.Diff([]selectorCall{{name: "acme", variant: "dark"}}, selector.calls, cmp.AllowUnexported(selectorCall{})); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}
	if got := tree.Root.Style["background-color"]; got != "#000000" {
		t.Fatalf("expected variant background, got %q", got)
	}
	if got := tree.Root.Style["color"]; got != "#222222" {
		t.Fatalf("expected base text colour, got %q", got)
	}
}

func TestOrchestrator_ThemeOmittedKeepsDocumentTheme(t *testing.T) {
	t.Parallel()

	selector := &stubThemeSelector{}
	tree, err := orchestrator.New(orchestrator.WithThemeSelector(selector)).Compose(testsupport.Context(), orchestrator.Request{
		Source: document.SourceFromFile(fixture),
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(selector.calls) != 0 {
		t.Fatalf("expected selector to be skipped, got %d calls", len(selector.calls))
	}
	if got := tree.Root.Style["background-color"]; got != "#ffffff" {
		t.Fatalf("expected document background, got %q", got)
	}
}

func TestOrchestrator_PresetTheme(t *testing.T) {
	t.Parallel()

	tree, err := orchestrator.New().Compose(testsupport.Context(), orchestrator.Request{
		Source:    document.SourceFromFile(fixture),
		ThemeName: "mono",
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := tree.Root.Style["color"]; got != "#000000" {
		t.Fatalf("expected mono text colour, got %q", got)
	}
}

func TestOrchestrator_ItemPolicy(t *testing.T) {
	t.Parallel()

	doc := testsupport.LoadDocument(t, fixture)
	orch := orchestrator.New(orchestrator.WithItemPolicy(visibility.RequireTrue))

	tree, err := orch.Compose(testsupport.Context(), orchestrator.Request{Document: &doc})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if items := tree.Section("experience").Find(render.KindItem); len(items) != 0 {
		t.Fatalf("expected RequireTrue to hide unflagged items, got %d", len(items))
	}

	tree, err = orch.Compose(testsupport.Context(), orchestrator.Request{
		Document:      &doc,
		RenderOptions: []render.Option{render.WithItemPolicy(visibility.VisibleUnlessFalse)},
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if items := tree.Section("experience").Find(render.KindItem); len(items) != 1 {
		t.Fatalf("expected request options to win, got %d items", len(items))
	}
}

func TestOrchestrator_LogsStages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := orchestrator.New(orchestrator.WithLogger(logger)).Generate(testsupport.Context(), orchestrator.Request{
		Source:   document.SourceFromFile(fixture),
		Renderer: jsontree.Name,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, stage := range []string{"loaded", "composed", "encoded"} {
		if !strings.Contains(buf.String(), stage) {
			t.Fatalf("expected %q in log output:\n%s", stage, buf.String())
		}
	}
}

func TestOrchestrator_Errors(t *testing.T) {
	t.Parallel()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	source := document.SourceFromFile(fixture)
	invalid := document.SourceFromBytes("broken.json", []byte(`{"sections": []}`))

	cases := []struct {
		name string
		ctx  context.Context
		opts []orchestrator.Option
		req  orchestrator.Request
		want string
	}{
		{name: "nil context", ctx: nil, req: orchestrator.Request{Source: source}, want: "context is required"},
		{name: "cancelled", ctx: cancelled, req: orchestrator.Request{Source: source}, want: context.Canceled.Error()},
		{name: "no source", ctx: context.Background(), req: orchestrator.Request{}, want: "source or document is required"},
		{name: "missing file", ctx: context.Background(), req: orchestrator.Request{Source: document.SourceFromFile("testdata/missing.yaml")}, want: "orchestrator: load:"},
		{name: "invalid document", ctx: context.Background(), req: orchestrator.Request{Source: invalid}, want: "orchestrator: parse:"},
		{name: "unknown template", ctx: context.Background(), req: orchestrator.Request{Source: source, Template: "brutalist"}, want: `orchestrator: template: render: template "brutalist" not found`},
		{name: "unknown renderer", ctx: context.Background(), req: orchestrator.Request{Source: source, Renderer: "pdf"}, want: `orchestrator: renderer "pdf"`},
		{name: "unknown theme", ctx: context.Background(), req: orchestrator.Request{Source: source, ThemeName: "neon"}, want: "orchestrator: theme:"},
		{
			name: "selector error",
			ctx:  context.Background(),
			opts: []orchestrator.Option{orchestrator.WithThemeSelector(&stubThemeSelector{err: errors.New("boom")})},
			req:  orchestrator.Request{Source: source, ThemeName: "acme"},
			want: "orchestrator: theme: boom",
		},
		{
			name: "empty renderer registry",
			ctx:  context.Background(),
			opts: []orchestrator.Option{orchestrator.WithRegistry(renderers.NewRegistry())},
			req:  orchestrator.Request{Source: source},
			want: "no renderers registered",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := orchestrator.New(tc.opts...).Generate(tc.ctx, tc.req)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestOrchestrator_FallsBackToFirstRenderer(t *testing.T) {
	t.Parallel()

	registry := renderers.NewRegistry()
	registry.MustRegister(jsontree.New())

	output, err := orchestrator.New(orchestrator.WithRegistry(registry)).Generate(testsupport.Context(), orchestrator.Request{
		Source: document.SourceFromFile(fixture),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !json.Valid(output) {
		t.Fatalf("expected json fallback output, got %s", output)
	}
}

type countingLoader struct {
	calls int
}

func (l *countingLoader) Load(context.Context, document.Source) ([]byte, error) {
	l.calls++
	return nil, errors.New("unexpected load")
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}
