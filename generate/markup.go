package generate

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"stylegen/common"
	"stylegen/css"
	"stylegen/state"
	"stylegen/style"
	"stylegen/theme"
)

// sampleOrder fixes how sample blocks are assembled into the preview body.
var sampleOrder = []common.SampleBlock{
	common.SampleBlockMasthead,
	common.SampleBlockPalette,
	common.SampleBlockTypography,
	common.SampleBlockElements,
	common.SampleBlockFooter,
}

// Named character references the preview template parser accepts on top of
// the XML predefined ones. Templates saved from page editors use those
// freely.
var htmlEntityNames = []string{
	"nbsp", "ensp", "emsp", "thinsp", "shy",
	"copy", "reg", "trade", "deg", "plusmn", "times", "divide", "minus",
	"micro", "middot", "sect", "para", "laquo", "raquo",
	"lsquo", "rsquo", "sbquo", "ldquo", "rdquo", "bdquo",
	"dagger", "Dagger", "bull", "hellip", "prime", "Prime",
	"ndash", "mdash", "larr", "uarr", "rarr", "darr", "harr",
	"euro", "pound", "yen", "cent", "curren",
	"infin", "ne", "le", "ge", "asymp", "frac12", "frac14", "frac34",
}

func prepareHTMLNamedEntities() (map[string]string, error) {
	entities := make(map[string]string, len(htmlEntityNames))
	for _, name := range htmlEntityNames {
		text := html.UnescapeString("&" + name + ";")
		if strings.HasPrefix(text, "&") {
			return nil, fmt.Errorf("unknown HTML named reference: %q", name)
		}
		entities[name] = text
	}
	return entities, nil
}

// readMarkupFile reads an HTML file converting it to UTF-8 based on the
// detected character set.
func readMarkupFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := charset.NewReader(f, "text/html")
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// BuildPreview renders the preview page for the compilation result: the page
// template from env gets the compiled stylesheet, the sample blocks and the
// palette swatches, and sample elements are decorated with the classnames
// and inline declarations compiled for them.
func BuildPreview(res *Result, env *state.LocalEnv, log *zap.Logger) ([]byte, error) {
	doc := etree.NewDocument()

	entities, err := prepareHTMLNamedEntities()
	if err != nil {
		return nil, fmt.Errorf("unable to prepare HTML named entities: %w", err)
	}
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Entity:        entities,
		ValidateInput: false,
		Permissive:    true,
	}

	if err := doc.ReadFromBytes(env.PreviewPage); err != nil {
		return nil, fmt.Errorf("unable to parse preview page template: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("preview page template has no root element")
	}

	pageTitle := env.Cfg.Generate.Preview.Title
	if res.Doc.Title != "" {
		pageTitle = res.Doc.Title
	}

	head := root.SelectElement("head")
	if head == nil {
		head = etree.NewElement("head")
		root.InsertChildAt(0, head)
	}
	title := head.SelectElement("title")
	if title == nil {
		title = head.CreateElement("title")
	}
	title.SetText(pageTitle)

	// An empty style element would serialize self-closed and break HTML
	// parsing, so its text is never left empty.
	findThemeStyle(head).SetText("\n" + res.Sheet.String())

	body := root.SelectElement("body")
	if body == nil {
		body = root.CreateElement("body")
	}
	if len(res.RootClasses) > 0 {
		appendAttr(body, "class", strings.Join(res.RootClasses, " "))
	}

	clean := css.NewSanitizer(log, sanitizerOptions(&env.Cfg.Generate)...)
	for _, block := range sampleOrder {
		markup, ok := env.DefaultSamples[block]
		if !ok {
			continue
		}
		frag := etree.NewDocument()
		frag.ReadSettings = doc.ReadSettings
		if err := frag.ReadFromBytes(markup); err != nil {
			log.Warn("Skipping malformed sample block", zap.String("block", string(block)), zap.Error(err))
			continue
		}
		section := frag.Root()
		if section == nil {
			continue
		}
		body.AddChild(section)

		switch block {
		case common.SampleBlockMasthead:
			if h1 := section.FindElement(".//h1"); h1 != nil {
				h1.SetText(pageTitle)
			}
		case common.SampleBlockPalette:
			// a swatch list left empty would serialize self-closed, html
			// parsers choke on that
			if fillSwatches(section, res.Doc.Settings, clean) == 0 {
				body.RemoveChild(section)
			}
		}
	}

	applyElementStyles(body, res)

	return doc.WriteToBytes()
}

// findThemeStyle locates the stylesheet carrier in the page head, creating
// it when the template has none.
func findThemeStyle(head *etree.Element) *etree.Element {
	for _, el := range head.SelectElements("style") {
		if el.SelectAttrValue("class", "") == "theme" {
			return el
		}
	}
	el := head.CreateElement("style")
	el.CreateAttr("class", "theme")
	return el
}

// fillSwatches adds one swatch per palette color and reports how many were
// added. Literal preset values are used so the palette renders even when
// preset references are stripped from the stylesheet.
func fillSwatches(section *etree.Element, settings theme.Settings, clean *css.Sanitizer) int {
	list := section.FindElement(".//ul[@class='swatches']")
	if list == nil {
		return 0
	}
	added := 0
	for _, p := range settings.Color.Palette {
		value, ok := style.ScalarText(p.Value)
		if !ok || p.Slug == "" || value == "" {
			continue
		}
		li := list.CreateElement("li")
		li.CreateAttr("class", "swatch")
		if decl, ok := clean.Validate("background-color: " + value); ok {
			li.CreateAttr("style", decl+";")
		}
		name := p.Name
		if name == "" {
			name = p.Slug
		}
		li.CreateElement("span").SetText(name)
		added++
	}
	return added
}

// applyElementStyles decorates sample elements with the classnames and
// inline declarations compiled for their element entries. Generic entries
// come first in the element order, specific ones append after them the same
// way rules cascade in the stylesheet.
func applyElementStyles(body *etree.Element, res *Result) {
	for _, name := range theme.ElementNames() {
		classes := res.Classnames[name]
		inline := res.Inline[name]
		if len(classes) == 0 && inline == "" {
			continue
		}
		for _, tag := range theme.ElementTags(name) {
			for _, el := range body.FindElements(".//" + tag) {
				if len(classes) > 0 {
					appendAttr(el, "class", strings.Join(classes, " "))
				}
				if inline != "" {
					// inline text comes attribute escaped, the serializer
					// escapes on its own
					appendAttr(el, "style", html.UnescapeString(inline))
				}
			}
		}
	}
}

func appendAttr(el *etree.Element, key, value string) {
	if existing := el.SelectAttrValue(key, ""); existing != "" {
		value = existing + " " + value
	}
	el.CreateAttr(key, value)
}

func writePreview(ctx context.Context, res *Result, outputPath string, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	log.Info("Generating preview", zap.String("output", outputPath))

	data, err := BuildPreview(res, env, log)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("unable to write preview page: %w", err)
	}
	return nil
}
