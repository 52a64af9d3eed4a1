// Package preview renders a QuestionForm as standalone HTML approximating
// what a worker sees, for checking a test before submitting it. The output
// is illustrative; the service's own renderer is authoritative.
package preview

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-qualform/pkg/qualform"
)

//go:embed templates/*.tpl
var templates embed.FS

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme injects a go-theme renderer config; its CSS variables are
// emitted on the document root and its name lands on the body class.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.themeCfg = cfg
	}
}

// Renderer turns QuestionForm builders into HTML pages.
type Renderer struct {
	set      *pongo2.TemplateSet
	themeCfg *theme.RendererConfig
}

// New constructs a Renderer backed by the embedded template set.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		set: pongo2.NewSet("qualform-preview", pongo2.NewFSLoader(templates)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Render produces the HTML page for form.
func (r *Renderer) Render(form *qualform.QuestionForm) ([]byte, error) {
	if form == nil {
		return nil, fmt.Errorf("preview: form is required")
	}
	tpl, err := r.set.FromFile("templates/preview.tpl")
	if err != nil {
		return nil, fmt.Errorf("preview: load template: %w", err)
	}

	ctx := pongo2.Context{
		"overviews": overviewViews(form),
		"questions": questionViews(form),
		"theme":     themeContext(r.themeCfg),
	}
	out, err := tpl.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("preview: execute template: %w", err)
	}
	return []byte(out), nil
}

type fragmentView struct {
	Kind   string
	Text   string
	Markup string
	Items  []string
	URL    string
	Alt    string
}

type optionView struct {
	ID    string
	Label string
}

type answerView struct {
	Kind    string // freetext or selection
	Default string
	Lines   int
	Multi   bool
	Style   string
	Options []optionView
}

type questionView struct {
	ID        string
	Name      string
	Required  bool
	Fragments []fragmentView
	Answer    answerView
}

type themeView struct {
	Name         string
	Variant      string
	CSSVarsStyle string
}

func overviewViews(form *qualform.QuestionForm) [][]fragmentView {
	var out [][]fragmentView
	for _, overview := range form.Overviews() {
		out = append(out, fragmentViews(overview))
	}
	return out
}

func questionViews(form *qualform.QuestionForm) []questionView {
	var out []questionView
	for _, question := range form.Questions() {
		out = append(out, questionView{
			ID:        question.ID(),
			Name:      question.DisplayName(),
			Required:  question.IsRequired(),
			Fragments: fragmentViews(question.Content()),
			Answer:    answerViewFor(question),
		})
	}
	return out
}

func fragmentViews(content *qualform.Content) []fragmentView {
	var out []fragmentView
	for _, frag := range content.Fragments() {
		switch f := frag.(type) {
		case qualform.Title:
			out = append(out, fragmentView{Kind: "title", Text: f.Text})
		case qualform.Paragraph:
			out = append(out, fragmentView{Kind: "text", Text: f.Text})
		case qualform.FormattedText:
			// Sanitized before it reaches the page, since a preview must
			// not execute whatever a formatted block carries.
			out = append(out, fragmentView{Kind: "formatted", Markup: qualform.SanitizeFormatted(f.Markup)})
		case qualform.BulletList:
			out = append(out, fragmentView{Kind: "list", Items: f.Items})
		case qualform.Image:
			out = append(out, fragmentView{Kind: "image", URL: f.URL, Alt: f.AltText})
		}
	}
	return out
}

func answerViewFor(question *qualform.Question) answerView {
	switch answer := question.Answer().(type) {
	case qualform.FreeTextAnswer:
		return answerView{
			Kind:    "freetext",
			Default: answer.DefaultText,
			Lines:   answer.Lines,
		}
	case qualform.SelectionAnswer:
		view := answerView{Kind: "selection", Style: answer.Style}
		if answer.MaxSelections != nil && *answer.MaxSelections > 1 {
			view.Multi = true
		}
		for _, opt := range answer.Options {
			view.Options = append(view.Options, optionView{ID: opt.ID, Label: opt.Label})
		}
		return view
	default:
		return answerView{Kind: "freetext"}
	}
}

func themeContext(cfg *theme.RendererConfig) themeView {
	if cfg == nil {
		return themeView{}
	}
	return themeView{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out strings.Builder
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		out.WriteString(name)
		out.WriteString(": ")
		out.WriteString(vars[key])
		out.WriteString("; ")
	}
	return strings.TrimSpace(out.String())
}
