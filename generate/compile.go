package generate

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stylegen/common"
	"stylegen/config"
	"stylegen/css"
	"stylegen/misc"
	"stylegen/state"
	"stylegen/style"
	"stylegen/theme"
)

// Result holds everything generated from a single theme document.
type Result struct {
	SrcName string
	Doc     *theme.Document
	Format  common.OutputFmt
	DocID   string
	WorkDir string

	Sheet       *css.Stylesheet
	RootClasses []string
	Classnames  map[string][]string
	Inline      map[string]string
}

// Prepare reads, parses, and compiles a theme document.
func Prepare(ctx context.Context, r io.Reader, srcName string, format common.OutputFmt, log *zap.Logger) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read theme document: %w", err)
	}

	doc, err := theme.ParseDocument(data, log)
	if err != nil {
		return nil, err
	}

	// Exported documents carry no identifier, every compilation gets a fresh
	// one so debug artifacts and bundle manifests can be told apart.
	refID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate document UUID: %w", err)
	}

	tmpDir, err := os.MkdirTemp("", misc.GetAppName()+"-")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary directory: %w", err)
	}
	env.Rpt.Store(fmt.Sprintf("%s-%s", misc.GetAppName(), refID.String()), tmpDir)

	baseSrcName := filepath.Base(srcName)

	// Save source document to file for debugging
	if env.Rpt != nil {
		if err := os.WriteFile(filepath.Join(tmpDir, baseSrcName), data, 0644); err != nil {
			return nil, fmt.Errorf("unable to write input doc for debugging: %w", err)
		}
	}

	res := &Result{
		SrcName: srcName,
		Doc:     doc,
		Format:  format,
		DocID:   refID.String(),
		WorkDir: tmpDir,
	}
	res.compile(&env.Cfg.Generate, log)

	// Save compiled artifacts to file for debugging
	if env.Rpt != nil {
		if err := os.WriteFile(filepath.Join(tmpDir, baseSrcName+"_compiled"), []byte(res.String()), 0644); err != nil {
			return nil, fmt.Errorf("unable to write compiled doc for debugging: %w", err)
		}
	}

	return res, nil
}

func sanitizerOptions(cfg *config.GenerateConfig) []css.Option {
	opts := []css.Option{
		css.WithProperties(append(style.Default().Properties(), cfg.Sanitizer.AllowProperties...)...),
	}
	if cfg.Sanitizer.AllowURLValues {
		opts = append(opts, css.WithURLValues())
	}
	return opts
}

func resolverOptions(cfg *config.GenerateConfig) []style.Option {
	opts := []style.Option{
		style.WithVarMode(cfg.PresetVars),
		style.WithExtraProperties(cfg.Sanitizer.AllowProperties...),
	}
	if cfg.Sanitizer.AllowURLValues {
		opts = append(opts, style.WithURLValues())
	}
	return opts
}

// compile resolves document styles into the stylesheet, classname and
// inline artifacts.
func (r *Result) compile(cfg *config.GenerateConfig, log *zap.Logger) {
	resolver := style.NewResolver(nil, log, resolverOptions(cfg)...)
	clean := css.NewSanitizer(log, sanitizerOptions(cfg)...)

	r.Sheet = &css.Stylesheet{}
	r.Classnames = make(map[string][]string)
	r.Inline = make(map[string]string)

	// Root rule carries preset variables first, then root level styles.
	// Stripping preset references also drops the variables themselves.
	root := css.Rule{Selector: cfg.RootSelector}
	if cfg.PresetVars != style.VarModeStrip {
		root.Declarations = gateDeclarations(r.Doc.Settings.Variables(), clean, log)
	}
	root.Declarations = append(root.Declarations, gateDeclarations(resolver.Rules(r.Doc.Styles.Root).Declarations(), clean, log)...)
	r.Sheet.Append(root)

	r.RootClasses = resolver.Classnames(r.Doc.Styles.Root)

	for _, name := range theme.ElementNames() {
		tree, ok := r.Doc.Styles.Elements[name]
		if !ok {
			continue
		}
		selector, _ := theme.ElementSelector(name)
		r.Sheet.Append(css.Rule{
			Selector:     selector,
			Declarations: gateDeclarations(resolver.Rules(tree).Declarations(), clean, log),
		})
		if classes := resolver.Classnames(tree); len(classes) > 0 {
			r.Classnames[name] = classes
		}
		if inline := resolver.Generate(tree, style.Options{Inline: true}); inline != "" {
			r.Inline[name] = inline
		}
	}

	for _, name := range slices.Sorted(maps.Keys(r.Doc.Styles.Elements)) {
		if _, ok := theme.ElementSelector(name); !ok {
			log.Warn("Skipping styles for unknown element", zap.String("element", name))
		}
	}
}

// gateDeclarations keeps only declarations the sanitizer accepts, the
// stylesheet must be as safe as attribute output.
func gateDeclarations(decls []css.Declaration, clean *css.Sanitizer, log *zap.Logger) []css.Declaration {
	out := make([]css.Declaration, 0, len(decls))
	for _, d := range decls {
		if _, ok := clean.Validate(d.Property + ": " + d.Value); !ok {
			log.Warn("Dropping unsafe declaration", zap.String("property", d.Property))
			continue
		}
		out = append(out, d)
	}
	return out
}

// writeStylesheet stores the compiled stylesheet at outputPath.
func writeStylesheet(ctx context.Context, res *Result, outputPath string, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Info("Generating stylesheet", zap.String("output", outputPath))

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	if _, err := res.Sheet.WriteTo(f); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	return f.Close()
}
