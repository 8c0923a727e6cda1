package generate

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/h2non/filetype"
	fixzip "github.com/hidez8891/zip"
	"github.com/maruel/natural"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"stylegen/state"
	"stylegen/theme"
)

const (
	bundleStylesheetName = "style.css"
	bundleClassnamesName = "classnames.txt"
	bundlePreviewName    = "preview.html"
	bundleManifestName   = "manifest.yaml"
	bundleAssetsDir      = "assets"
)

type manifestFile struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type bundleManifest struct {
	ID      string         `yaml:"id"`
	Title   string         `yaml:"title,omitempty"`
	Slug    string         `yaml:"slug,omitempty"`
	Format  string         `yaml:"format"`
	Created time.Time      `yaml:"created"`
	Files   []manifestFile `yaml:"files"`
}

// writeBundle creates the distributable bundle archive: compiled stylesheet,
// classname listing, preview page and a manifest, plus theme assets when an
// assets directory was given.
func writeBundle(ctx context.Context, res *Result, outputPath string, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	log.Info("Generating bundle", zap.String("output", outputPath))

	_, tmpName := filepath.Split(outputPath)
	tmpName = filepath.Join(res.WorkDir, tmpName)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	f, err := os.Create(tmpName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	defer zw.Close()

	files := []manifestFile{
		{Name: bundleStylesheetName, Type: "text/css"},
		{Name: bundleClassnamesName, Type: "text/plain"},
		{Name: bundlePreviewName, Type: "text/html"},
	}

	if err := writeDataToZip(zw, bundleStylesheetName, []byte(res.Sheet.String())); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}

	if err := writeDataToZip(zw, bundleClassnamesName, buildClassnamesText(res)); err != nil {
		return fmt.Errorf("unable to write classnames: %w", err)
	}

	preview, err := BuildPreview(res, env, log)
	if err != nil {
		return fmt.Errorf("unable to build preview page: %w", err)
	}
	if err := writeDataToZip(zw, bundlePreviewName, preview); err != nil {
		return fmt.Errorf("unable to write preview page: %w", err)
	}

	if env.AssetsDir != "" {
		assets, err := writeAssets(zw, env.AssetsDir, log)
		if err != nil {
			return fmt.Errorf("unable to write assets: %w", err)
		}
		files = append(files, assets...)
	}

	if err := writeManifest(zw, res, files); err != nil {
		return fmt.Errorf("unable to write manifest: %w", err)
	}

	// make sure buffers are flushed before continuing
	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close output archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to finalize output file: %w", err)
	}
	// clean temporary file
	defer os.Remove(tmpName)

	if env.Cfg.Generate.Bundle.FixZip {
		return copyZipWithoutDataDescriptors(tmpName, outputPath)
	}
	return copyFile(tmpName, outputPath)
}

// buildClassnamesText renders the classname listing, one tab separated line
// per styled element with the root entry first.
func buildClassnamesText(res *Result) []byte {
	var sb strings.Builder
	if len(res.RootClasses) > 0 {
		sb.WriteString("root\t" + strings.Join(res.RootClasses, " ") + "\n")
	}
	for _, name := range theme.ElementNames() {
		if classes := res.Classnames[name]; len(classes) > 0 {
			sb.WriteString(name + "\t" + strings.Join(classes, " ") + "\n")
		}
	}
	return []byte(sb.String())
}

// writeAssets copies the assets directory into the archive under assets/
// and returns manifest entries with sniffed media types.
func writeAssets(zw *zip.Writer, dir string, log *zap.Logger) ([]manifestFile, error) {
	var files []manifestFile
	err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		name := path.Join(bundleAssetsDir, filepath.ToSlash(rel))
		if err := writeDataToZip(zw, name, data); err != nil {
			return err
		}
		log.Debug("Adding asset", zap.String("file", name), zap.Int("size", len(data)))
		files = append(files, manifestFile{Name: name, Type: sniffMediaType(data)})
		return nil
	})
	return files, err
}

func writeManifest(zw *zip.Writer, res *Result, files []manifestFile) error {
	sort.Slice(files, func(i, j int) bool {
		return natural.Less(files[i].Name, files[j].Name)
	})

	manifest := bundleManifest{
		ID:      res.DocID,
		Title:   res.Doc.Title,
		Slug:    res.Doc.FileSlug(),
		Format:  res.Format.String(),
		Created: time.Now().UTC().Truncate(time.Second),
		Files:   files,
	}

	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return err
	}
	return writeDataToZip(zw, bundleManifestName, data)
}

// sniffMediaType detects an asset's media type from its content, asset files
// come without trustworthy extensions. Fonts get their modern media types,
// the detector still reports the legacy application/font-* ones.
func sniffMediaType(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return "application/octet-stream"
	}
	switch kind.Extension {
	case "woff":
		return "font/woff"
	case "woff2":
		return "font/woff2"
	case "ttf":
		return "font/ttf"
	case "otf":
		return "font/otf"
	}
	return kind.MIME.Value
}

func writeDataToZip(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func copyZipWithoutDataDescriptors(from, to string) error {

	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {

	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err = destinationFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}
	return nil
}
