package generate

import (
	"context"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"stylegen/common"
	"stylegen/config"
	"stylegen/css"
	"stylegen/state"
	"stylegen/style"
)

const testThemeDoc = `
version: 2
title: Midnight Editorial
settings:
  color:
    palette:
      - slug: primary
        name: Primary
        value: "#0a0a23"
      - slug: accent
        value: "#ff6b35"
styles:
  typography:
    fontSize: "16px"
  color:
    text: "var:preset|color|primary"
    background: "#ffffff"
  elements:
    h1:
      color:
        text: "var:preset|color|accent"
    paragraph:
      typography:
        lineHeight: "1.6"
    marquee:
      color:
        text: "#ff0000"
`

func setupTestEnv(t *testing.T) context.Context {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	env.PreviewPage = defaultPreviewPage
	return ctx
}

func prepareTheme(t *testing.T, ctx context.Context, doc string, format common.OutputFmt) *Result {
	t.Helper()
	env := state.EnvFromContext(ctx)
	res, err := Prepare(ctx, strings.NewReader(doc), "editorial/midnight.yaml", format, env.Log)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(res.WorkDir) })
	return res
}

func ruleSelectors(res *Result) []string {
	selectors := make([]string, 0, len(res.Sheet.Rules))
	for _, rule := range res.Sheet.Rules {
		selectors = append(selectors, rule.Selector)
	}
	return selectors
}

func TestPrepare(t *testing.T) {
	ctx := setupTestEnv(t)
	res := prepareTheme(t, ctx, testThemeDoc, common.OutputFmtCss)

	if _, err := uuid.Parse(res.DocID); err != nil {
		t.Errorf("DocID %q is not a valid UUID: %v", res.DocID, err)
	}
	if fi, err := os.Stat(res.WorkDir); err != nil || !fi.IsDir() {
		t.Errorf("work directory %q was not created", res.WorkDir)
	}
	if res.Doc.Title != "Midnight Editorial" {
		t.Errorf("title = %q", res.Doc.Title)
	}

	if want := []string{":root", "h1", "p"}; !slices.Equal(ruleSelectors(res), want) {
		t.Fatalf("rule selectors = %v, want %v", ruleSelectors(res), want)
	}

	wantRoot := []css.Declaration{
		{Property: "--preset--color--primary", Value: "#0a0a23"},
		{Property: "--preset--color--accent", Value: "#ff6b35"},
		{Property: "font-size", Value: "16px"},
		{Property: "color", Value: "var(--preset--color--primary)"},
		{Property: "background-color", Value: "#ffffff"},
	}
	if got := res.Sheet.Rules[0].Declarations; !slices.Equal(got, wantRoot) {
		t.Errorf("root declarations = %v, want %v", got, wantRoot)
	}

	wantClasses := []string{"has-16px-font-size", "has-primary-color", "has-ffffff-background-color"}
	if !slices.Equal(res.RootClasses, wantClasses) {
		t.Errorf("root classnames = %v, want %v", res.RootClasses, wantClasses)
	}

	if want := []string{"has-accent-color"}; !slices.Equal(res.Classnames["h1"], want) {
		t.Errorf("h1 classnames = %v, want %v", res.Classnames["h1"], want)
	}
	if got := res.Inline["h1"]; got != "color: var(--preset--color--accent);" {
		t.Errorf("h1 inline = %q", got)
	}
	if got := res.Inline["paragraph"]; got != "line-height: 1.6;" {
		t.Errorf("paragraph inline = %q", got)
	}

	// unknown elements are skipped entirely
	if _, ok := res.Classnames["marquee"]; ok {
		t.Error("unknown element produced classnames")
	}
	if _, ok := res.Inline["marquee"]; ok {
		t.Error("unknown element produced inline declarations")
	}
}

func TestPrepare_EmptyDocument(t *testing.T) {
	ctx := setupTestEnv(t)
	res := prepareTheme(t, ctx, "version: 2\ntitle: Empty\n", common.OutputFmtCss)

	if !res.Sheet.IsEmpty() {
		t.Errorf("stylesheet is not empty: %v", ruleSelectors(res))
	}
	if len(res.RootClasses) != 0 {
		t.Errorf("root classnames = %v", res.RootClasses)
	}
	if len(res.Classnames) != 0 || len(res.Inline) != 0 {
		t.Error("element artifacts produced for empty document")
	}
}

func TestPrepare_PresetVarModes(t *testing.T) {
	const doc = `
version: 2
title: Modes
settings:
  color:
    palette:
      - slug: primary
        value: "#102030"
styles:
  color:
    text: "var:preset|color|primary"
  typography:
    fontSize: "14px"
`

	t.Run("expand", func(t *testing.T) {
		ctx := setupTestEnv(t)
		res := prepareTheme(t, ctx, doc, common.OutputFmtCss)

		want := []css.Declaration{
			{Property: "--preset--color--primary", Value: "#102030"},
			{Property: "font-size", Value: "14px"},
			{Property: "color", Value: "var(--preset--color--primary)"},
		}
		if got := res.Sheet.Rules[0].Declarations; !slices.Equal(got, want) {
			t.Errorf("declarations = %v, want %v", got, want)
		}
	})

	t.Run("keep", func(t *testing.T) {
		ctx := setupTestEnv(t)
		state.EnvFromContext(ctx).Cfg.Generate.PresetVars = style.VarModeKeep
		res := prepareTheme(t, ctx, doc, common.OutputFmtCss)

		want := []css.Declaration{
			{Property: "--preset--color--primary", Value: "#102030"},
			{Property: "font-size", Value: "14px"},
			{Property: "color", Value: "var:preset|color|primary"},
		}
		if got := res.Sheet.Rules[0].Declarations; !slices.Equal(got, want) {
			t.Errorf("declarations = %v, want %v", got, want)
		}
	})

	t.Run("strip", func(t *testing.T) {
		ctx := setupTestEnv(t)
		state.EnvFromContext(ctx).Cfg.Generate.PresetVars = style.VarModeStrip
		res := prepareTheme(t, ctx, doc, common.OutputFmtCss)

		// preset variables and preset references are both gone
		want := []css.Declaration{
			{Property: "font-size", Value: "14px"},
		}
		if got := res.Sheet.Rules[0].Declarations; !slices.Equal(got, want) {
			t.Errorf("declarations = %v, want %v", got, want)
		}
	})
}

func TestPrepare_UnsafeDeclarations(t *testing.T) {
	const doc = `
version: 2
title: Unsafe
styles:
  typography:
    fontSize: "expression(alert(1))"
  color:
    text: "#333333"
`
	ctx := setupTestEnv(t)
	res := prepareTheme(t, ctx, doc, common.OutputFmtCss)

	want := []css.Declaration{{Property: "color", Value: "#333333"}}
	if got := res.Sheet.Rules[0].Declarations; !slices.Equal(got, want) {
		t.Errorf("declarations = %v, want %v", got, want)
	}
}

func TestPrepare_CustomRootSelector(t *testing.T) {
	ctx := setupTestEnv(t)
	state.EnvFromContext(ctx).Cfg.Generate.RootSelector = "body.theme"
	res := prepareTheme(t, ctx, testThemeDoc, common.OutputFmtCss)

	if res.Sheet.Rules[0].Selector != "body.theme" {
		t.Errorf("root selector = %q", res.Sheet.Rules[0].Selector)
	}
}

func TestPrepare_InvalidDocument(t *testing.T) {
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	_, err := Prepare(ctx, strings.NewReader("styles: [not: a mapping"), "broken.yaml", common.OutputFmtCss, env.Log)
	if err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestPrepare_ContextCanceled(t *testing.T) {
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	if _, err := Prepare(canceled, strings.NewReader(testThemeDoc), "midnight.yaml", common.OutputFmtCss, env.Log); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestResult_String(t *testing.T) {
	ctx := setupTestEnv(t)
	res := prepareTheme(t, ctx, testThemeDoc, common.OutputFmtCss)

	dump := res.String()
	for _, want := range []string{
		`Theme "Midnight Editorial"`,
		"Stylesheet: 3 rules",
		"Rule[:root]",
		"Root classnames:",
		"Element classnames:",
		"Inline declarations:",
		"has-accent-color",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump is missing %q:\n%s", want, dump)
		}
	}

	var nilRes *Result
	if nilRes.String() != "<nil Result>" {
		t.Error("nil receiver dump")
	}
}
