// Package generate compiles theme documents into stylesheets, previews and
// bundles.
package generate

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"stylegen/common"
	"stylegen/state"
)

//go:embed preview.html
var defaultPreviewPage []byte

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// keep the value lowercased so "CSS" and "css" select the same format
	format, err := common.ParseOutputFmt(strings.ToLower(cmd.String("to")))
	if err != nil {
		log.Warn("Unknown output format requested, switching to css", zap.Error(err))
		format = common.OutputFmtCss
	}

	env.PreviewPage = defaultPreviewPage
	if env.Cfg.Generate.Preview.TemplatePath != "" {
		data, err := readMarkupFile(env.Cfg.Generate.Preview.TemplatePath)
		if err != nil {
			return fmt.Errorf("unable to read preview page template from %q: %w", env.Cfg.Generate.Preview.TemplatePath, err)
		}
		env.PreviewPage = data
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	env.AssetsDir = ""
	if dir := cmd.String("assets"); len(dir) > 0 {
		if dir, err = filepath.Abs(dir); err != nil {
			return err
		}
		fi, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("unable to access assets directory: %w", err)
		}
		if !fi.Mode().IsDir() {
			return fmt.Errorf("assets path is not a directory: %s", dir)
		}
		env.AssetsDir = dir
	}

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	cp := cmd.String("force-zip-cp")
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, format, log)
}
