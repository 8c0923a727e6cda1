package generate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"stylegen/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Title      string
	Slug       string
	Format     string
	SourceFile string
	DocID      string
}

func expandTemplate(res *Result, name config.TemplateFieldName, field string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      res.Doc.Title,
		Slug:       res.Doc.FileSlug(),
		Format:     res.Format.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(res.SrcName), filepath.Ext(res.SrcName)),
		DocID:      res.DocID,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
