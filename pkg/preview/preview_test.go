package preview_test

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-qualform/pkg/preview"
	"github.com/goliatone/go-qualform/pkg/qualform"
)

func sampleForm() *qualform.QuestionForm {
	return qualform.NewQuestionForm().
		AddOverview(qualform.NewContent().
			AddTitle("Tic Tac Toe Basics").
			AddText("Answer both questions.").
			AddImage("http://tictactoe.amazon.com/board.gif", "The game board")).
		AddQuestion(qualform.NewQuestion(
			qualform.NewContent().AddText("What is the best next move?"),
			qualform.FreeTextAnswer{DefaultText: "C1"},
			qualform.WithQuestionID("nextmove"),
			qualform.WithDisplayName("The Next Move"),
			qualform.Required(),
		)).
		AddQuestion(qualform.NewQuestion(
			qualform.NewContent().AddText("How likely is X to win?"),
			qualform.SelectionAnswer{
				Style: "radiobutton",
				Options: []qualform.SelectionOption{
					{ID: "notlikely", Label: "Not likely"},
					{ID: "likely", Label: "Likely"},
				},
			},
			qualform.WithQuestionID("likelytowin"),
		))
}

func TestRenderProducesCompletePage(t *testing.T) {
	page, err := preview.New().Render(sampleForm())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(page)
	for _, fragment := range []string{
		"<!DOCTYPE html>",
		"Tic Tac Toe Basics",
		`src="http://tictactoe.amazon.com/board.gif"`,
		`alt="The game board"`,
		"The Next Move",
		`value="C1"`,
		`type="radio"`,
		`value="notlikely"`,
		"Likely",
	} {
		if !strings.Contains(html, fragment) {
			t.Errorf("page missing %q", fragment)
		}
	}
}

func TestRenderRequiresForm(t *testing.T) {
	if _, err := preview.New().Render(nil); err == nil {
		t.Fatal("expected an error for a nil form")
	}
}

func TestRenderAppliesTheme(t *testing.T) {
	renderer := preview.New(preview.WithTheme(&theme.RendererConfig{
		Theme:   "dusk",
		Variant: "dark",
		CSSVars: map[string]string{
			"accent":       "#7c3aed",
			"--surface-bg": "#111",
		},
	}))

	page, err := renderer.Render(sampleForm())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(page)
	if !strings.Contains(html, "theme-dusk") {
		t.Error("body class missing theme name")
	}
	if !strings.Contains(html, "--accent: #7c3aed;") {
		t.Error("bare variable name not prefixed")
	}
	if !strings.Contains(html, "--surface-bg: #111;") {
		t.Error("prefixed variable dropped")
	}
}

func TestRenderSanitizesFormattedContent(t *testing.T) {
	form := qualform.NewQuestionForm().
		AddOverview(qualform.NewContent().
			AddFormattedText(`<p>Keep this</p><script>alert("x")</script>`)).
		AddQuestion(qualform.NewQuestion(
			qualform.NewContent().AddText("q"),
			qualform.FreeTextAnswer{},
			qualform.WithQuestionID("q1"),
		))

	page, err := preview.New().Render(form)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(page)
	if strings.Contains(html, "<script>") {
		t.Error("script element survived sanitization")
	}
	if !strings.Contains(html, "<p>Keep this</p>") {
		t.Error("allowed markup stripped")
	}
}

func TestRenderMultiLineFreeTextUsesTextarea(t *testing.T) {
	form := qualform.NewQuestionForm().
		AddQuestion(qualform.NewQuestion(
			qualform.NewContent().AddText("Explain your reasoning."),
			qualform.FreeTextAnswer{Lines: 4},
			qualform.WithQuestionID("why"),
		))

	page, err := preview.New().Render(form)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(page), "<textarea") {
		t.Error("multi-line answer should render a textarea")
	}
}

func TestRenderDropdownSelectionUsesSelect(t *testing.T) {
	form := qualform.NewQuestionForm().
		AddQuestion(qualform.NewQuestion(
			qualform.NewContent().AddText("Pick a board size."),
			qualform.SelectionAnswer{
				Style: "dropdown",
				Options: []qualform.SelectionOption{
					{ID: "3", Label: "3x3"},
					{ID: "4", Label: "4x4"},
				},
			},
			qualform.WithQuestionID("size"),
		))

	page, err := preview.New().Render(form)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, "<select") {
		t.Error("dropdown style should render a select")
	}
	if !strings.Contains(html, `<option value="4">4x4</option>`) {
		t.Errorf("option markup missing:\n%s", html)
	}
}

func TestRenderCheckboxForMultiSelection(t *testing.T) {
	form := qualform.NewQuestionForm().
		AddQuestion(qualform.NewQuestion(
			qualform.NewContent().AddText("Which moves are safe?"),
			qualform.SelectionAnswer{
				MaxSelections: qualform.Int(3),
				Options: []qualform.SelectionOption{
					{ID: "a1", Label: "A1"},
					{ID: "b2", Label: "B2"},
				},
			},
			qualform.WithQuestionID("safe"),
		))

	page, err := preview.New().Render(form)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(page), `type="checkbox"`) {
		t.Error("multi-selection should render checkboxes")
	}
}
