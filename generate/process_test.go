package generate

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/ianaindex"

	"stylegen/common"
	"stylegen/state"
)

func themeDocWithTitle(title string) string {
	return "version: 2\ntitle: " + title + "\nstyles:\n  color:\n    text: \"#101010\"\n"
}

func makeThemeArchive(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestIsThemeName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"midnight.yaml", true},
		{"daylight.YML", true},
		{"tokens.Json", true},
		{"themes/nested/doc.yaml", true},
		{"style.css", false},
		{"archive.zip", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isThemeName(tt.name); got != tt.want {
				t.Errorf("isThemeName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsArchiveFile(t *testing.T) {
	dir := t.TempDir()

	// extension deliberately wrong, only content matters
	archivePath := filepath.Join(dir, "collection.dat")
	makeThemeArchive(t, archivePath, map[string]string{"a.yaml": "version: 2\n"})

	textPath := filepath.Join(dir, "plain.zip")
	if err := os.WriteFile(textPath, []byte("not really an archive"), 0644); err != nil {
		t.Fatal(err)
	}

	if got, err := isArchiveFile(archivePath); err != nil || !got {
		t.Errorf("isArchiveFile(zip content) = %v, %v", got, err)
	}
	if got, err := isArchiveFile(textPath); err != nil || got {
		t.Errorf("isArchiveFile(text content) = %v, %v", got, err)
	}
	if _, err := isArchiveFile(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProcess_SingleFile(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	srcFile := filepath.Join(t.TempDir(), "midnight.yaml")
	if err := os.WriteFile(srcFile, []byte(testThemeDoc), 0644); err != nil {
		t.Fatal(err)
	}
	dst := t.TempDir()

	if err := process(ctx, srcFile, dst, common.OutputFmtCss, env.Log); err != nil {
		t.Fatalf("process: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "midnight-editorial.css"))
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	if !strings.Contains(string(data), ":root {") {
		t.Errorf("output content:\n%s", data)
	}
}

func TestProcess_Directory(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	srcDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(srcDir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range map[string]string{
		"alpha.yaml":                         themeDocWithTitle("Alpha"),
		filepath.Join("nested", "beta.yaml"): themeDocWithTitle("Beta"),
		"notes.txt":                          "nothing to compile",
		"broken.yaml":                        "styles: [not yaml",
	} {
		if err := os.WriteFile(filepath.Join(srcDir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	dst := t.TempDir()

	if err := process(ctx, srcDir, dst, common.OutputFmtCss, env.Log); err != nil {
		t.Fatalf("process: %v", err)
	}

	for _, want := range []string{
		filepath.Join(dst, "alpha.css"),
		filepath.Join(dst, "nested", "beta.css"),
	} {
		if _, err := os.Stat(want); err != nil {
			t.Errorf("expected output %s: %v", want, err)
		}
	}

	// the malformed document is reported and skipped, nothing is produced
	matches, err := filepath.Glob(filepath.Join(dst, "*.css"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Errorf("top level outputs = %v, want only alpha.css", matches)
	}
}

func TestProcess_Archive(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	archivePath := filepath.Join(t.TempDir(), "themes.pack")
	makeThemeArchive(t, archivePath, map[string]string{
		"inner/gamma.yaml": themeDocWithTitle("Gamma"),
		"delta.yaml":       themeDocWithTitle("Delta"),
		"readme.txt":       "not a theme",
	})

	t.Run("whole archive", func(t *testing.T) {
		dst := t.TempDir()
		if err := process(ctx, archivePath, dst, common.OutputFmtCss, env.Log); err != nil {
			t.Fatalf("process: %v", err)
		}
		for _, want := range []string{
			filepath.Join(dst, "inner", "gamma.css"),
			filepath.Join(dst, "delta.css"),
		} {
			if _, err := os.Stat(want); err != nil {
				t.Errorf("expected output %s: %v", want, err)
			}
		}
	})

	t.Run("inner path", func(t *testing.T) {
		dst := t.TempDir()
		if err := process(ctx, filepath.Join(archivePath, "inner"), dst, common.OutputFmtCss, env.Log); err != nil {
			t.Fatalf("process: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dst, "inner", "gamma.css")); err != nil {
			t.Errorf("expected output: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dst, "delta.css")); err == nil {
			t.Error("entry outside the inner path was processed")
		}
	})
}

func TestProcess_ArchiveForcedCodePage(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	enc, err := ianaindex.IANA.Encoding("windows-1251")
	if err != nil {
		t.Fatal(err)
	}
	rawName, err := enc.NewEncoder().String("тёмная.yaml")
	if err != nil {
		t.Fatal(err)
	}

	archivePath := filepath.Join(t.TempDir(), "legacy.zip")
	f, err := os.Create(archivePath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.CreateHeader(&zip.FileHeader{Name: rawName, NonUTF8: true, Method: zip.Deflate})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("version: 2\nstyles:\n  color:\n    text: \"#101010\"\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	env.CodePage = enc
	dst := t.TempDir()

	if err := process(ctx, archivePath, dst, common.OutputFmtCss, env.Log); err != nil {
		t.Fatalf("process: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "тёмная.css")); err != nil {
		t.Errorf("decoded entry name was not used: %v", err)
	}
}

func TestProcess_MissingSource(t *testing.T) {
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	err := process(ctx, filepath.Join(string(filepath.Separator), "definitely", "missing.yaml"), t.TempDir(), common.OutputFmtCss, env.Log)
	if err == nil || !strings.Contains(err.Error(), "input source was not found") {
		t.Errorf("process error = %v", err)
	}
}

func TestProcess_DirectoryWithTail(t *testing.T) {
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	dir := t.TempDir()
	err := process(ctx, filepath.Join(dir, "no", "such.yaml"), t.TempDir(), common.OutputFmtCss, env.Log)
	if err == nil || !strings.Contains(err.Error(), "input source was not found") {
		t.Errorf("process error = %v", err)
	}
}

func TestProcess_Overwrite(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	srcFile := filepath.Join(t.TempDir(), "midnight.yaml")
	if err := os.WriteFile(srcFile, []byte(testThemeDoc), 0644); err != nil {
		t.Fatal(err)
	}
	dst := t.TempDir()
	outFile := filepath.Join(dst, "midnight-editorial.css")

	if err := process(ctx, srcFile, dst, common.OutputFmtCss, env.Log); err != nil {
		t.Fatalf("process: %v", err)
	}
	if err := os.WriteFile(outFile, []byte("sentinel"), 0644); err != nil {
		t.Fatal(err)
	}

	// without the overwrite flag the error is reported and the file stays
	if err := process(ctx, srcFile, dst, common.OutputFmtCss, env.Log); err != nil {
		t.Fatalf("process: %v", err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "sentinel" {
		t.Error("existing file was replaced without the overwrite flag")
	}

	env.Overwrite = true
	if err := process(ctx, srcFile, dst, common.OutputFmtCss, env.Log); err != nil {
		t.Fatalf("process: %v", err)
	}
	data, err = os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), ":root {") {
		t.Error("existing file was not overwritten")
	}
}

func TestProcessTheme_PanicRecovery(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	ctx := setupTestEnv(t)
	env := state.EnvFromContext(ctx)

	err := processTheme(ctx, strings.NewReader(testThemeDoc), "midnight.yaml", t.TempDir(), common.OutputFmt(99), env.Log)
	if err == nil || !strings.Contains(err.Error(), "compilation panic") {
		t.Errorf("processTheme error = %v, want recovered panic", err)
	}
}
