// storedump reads theme store databases produced by site exports, lists the
// themes kept inside and extracts their documents, optionally running them
// through the compiler to see the stylesheet a stored theme produces today.
//
// A store is a standard SQLite database with a themes table (slug, updated,
// format, document). Site exports usually ship it zipped, so input can be
// either the database itself or a ZIP archive containing one.
package main

import (
	"archive/zip"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"stylegen/cmd/debug/internal/dumputil"
	"stylegen/common"
	"stylegen/config"
	"stylegen/generate"
	"stylegen/state"
)

var (
	sqliteSig = []byte("SQLite format 3\x00")
	zipSig    = []byte("PK\x03\x04")
)

// storedTheme is a single row of the themes table.
type storedTheme struct {
	Slug     string
	Updated  string
	Format   string
	Document []byte
}

func main() {
	all := flag.Bool("all", false, "enable all dump flags (-list, -dump, -css)")
	list := flag.Bool("list", false, "list stored themes on STDOUT")
	dump := flag.Bool("dump", false, "extract theme documents into <slug>.<format> files")
	css := flag.Bool("css", false, "compile stored themes and write <slug>.css files")
	overwrite := flag.Bool("overwrite", false, "overwrite existing output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: storedump [-all] [-list] [-dump] [-css] [-overwrite] <store.db|export.zip> [outdir]\n\n")
		fmt.Fprintf(os.Stderr, "Reads theme store databases and extracts or recompiles stored themes.\n")
		fmt.Fprintf(os.Stderr, "Zipped exports are unpacked automatically before reading.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	if *all {
		*list = true
		*dump = true
		*css = true
	}

	if !*list && !*dump && !*css {
		flag.Usage()
		os.Exit(2)
	}

	defer func(startedAt time.Time) {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", time.Since(startedAt))
	}(time.Now())

	inPath := flag.Arg(0)
	outDir := ""
	if flag.NArg() == 2 {
		outDir = flag.Arg(1)
	}

	b, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", inPath, err)
		os.Exit(1)
	}

	dbData, dbName, err := extractDatabase(b, inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract database from %s: %v\n", inPath, err)
		os.Exit(1)
	}

	themes, err := readThemes(dbData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read themes from %s: %v\n", dbName, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "found %d theme(s) in %s\n", len(themes), dbName)

	if *list {
		printThemes(themes)
	}

	dir := dumputil.OutputDir(inPath, outDir)

	if *dump {
		for _, t := range themes {
			name := dumputil.SanitizeFileComponent(t.Slug) + dumputil.DocumentExt(t.Format, t.Document)
			if err := dumputil.WriteNamed(dir, name, t.Document, *overwrite); err != nil {
				fmt.Fprintf(os.Stderr, "dump %s: %v\n", t.Slug, err)
				os.Exit(1)
			}
		}
	}

	if *css {
		ctx, log, err := compilerContext()
		if err != nil {
			fmt.Fprintf(os.Stderr, "prepare compiler: %v\n", err)
			os.Exit(1)
		}
		for _, t := range themes {
			sheet, err := compileTheme(ctx, t, log)
			if err != nil {
				fmt.Fprintf(os.Stderr, "compile %s: %v\n", t.Slug, err)
				os.Exit(1)
			}
			name := dumputil.SanitizeFileComponent(t.Slug) + common.OutputFmtCss.Ext()
			if err := dumputil.WriteNamed(dir, name, sheet, *overwrite); err != nil {
				fmt.Fprintf(os.Stderr, "write %s: %v\n", t.Slug, err)
				os.Exit(1)
			}
		}
	}
}

// extractDatabase extracts SQLite data from the input. If the input is a ZIP
// export it looks for a database entry inside. For standalone database files
// the data is returned as is.
func extractDatabase(data []byte, name string) (dbData []byte, dbName string, err error) {
	if len(data) < len(zipSig) {
		return nil, "", fmt.Errorf("file too small")
	}

	if bytes.HasPrefix(data, zipSig) {
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, "", fmt.Errorf("open ZIP: %w", err)
		}

		var dbEntry *zip.File
		for _, f := range r.File {
			switch strings.ToLower(filepath.Ext(f.Name)) {
			case ".db", ".sqlite", ".sqlite3":
				dbEntry = f
			}
			if dbEntry != nil {
				break
			}
		}
		if dbEntry == nil {
			return nil, "", fmt.Errorf("no database entry found in ZIP archive %s", name)
		}

		rc, err := dbEntry.Open()
		if err != nil {
			return nil, "", fmt.Errorf("open %s in ZIP: %w", dbEntry.Name, err)
		}
		defer rc.Close()

		buf, err := io.ReadAll(rc)
		if err != nil {
			return nil, "", fmt.Errorf("read %s from ZIP: %w", dbEntry.Name, err)
		}
		if !bytes.HasPrefix(buf, sqliteSig) {
			return nil, "", fmt.Errorf("%s in ZIP is not a SQLite database", dbEntry.Name)
		}
		return buf, dbEntry.Name, nil
	}

	if !bytes.HasPrefix(data, sqliteSig) {
		return nil, "", fmt.Errorf("file does not start with SQLite or ZIP signature")
	}
	return data, filepath.Base(name), nil
}

// readThemes opens the database in memory and reads all rows of the themes
// table ordered by slug.
func readThemes(data []byte) ([]storedTheme, error) {
	conn, err := sqlite.OpenConn(":memory:", sqlite.OpenReadWrite, sqlite.OpenMemory)
	if err != nil {
		return nil, fmt.Errorf("open in-memory db: %w", err)
	}
	defer conn.Close()

	if err := conn.Deserialize("main", data); err != nil {
		return nil, fmt.Errorf("deserialize: %w", err)
	}

	var themes []storedTheme
	err = sqlitex.Execute(conn, `SELECT slug, updated, format, document FROM themes ORDER BY slug`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			t := storedTheme{
				Slug:    stmt.ColumnText(0),
				Updated: stmt.ColumnText(1),
				Format:  stmt.ColumnText(2),
			}
			r := stmt.ColumnReader(3)
			doc, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("read document for %s: %w", t.Slug, err)
			}
			t.Document = doc
			themes = append(themes, t)
			return nil
		}})
	if err != nil {
		return nil, fmt.Errorf("read themes: %w", err)
	}
	return themes, nil
}

func printThemes(themes []storedTheme) {
	fmt.Printf("%-40s %-25s %-6s %10s\n", "SLUG", "UPDATED", "FORMAT", "SIZE")
	for _, t := range themes {
		format := t.Format
		if format == "" {
			format = "-"
		}
		fmt.Printf("%-40s %-25s %-6s %10d\n", t.Slug, t.Updated, format, len(t.Document))
	}
}

// compilerContext builds the minimal environment the compiler expects,
// default configuration and a development logger going to stderr.
func compilerContext() (context.Context, *zap.Logger, error) {
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		return nil, nil, fmt.Errorf("load default configuration: %w", err)
	}
	env.Cfg = cfg

	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	env.Log = log
	return ctx, log, nil
}

// compileTheme runs a stored document through the compiler and renders the
// resulting stylesheet.
func compileTheme(ctx context.Context, t storedTheme, log *zap.Logger) ([]byte, error) {
	srcName := dumputil.SanitizeFileComponent(t.Slug) + dumputil.DocumentExt(t.Format, t.Document)
	res, err := generate.Prepare(ctx, bytes.NewReader(t.Document), srcName, common.OutputFmtCss, log)
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(res.WorkDir)
	return []byte(res.Sheet.String()), nil
}
