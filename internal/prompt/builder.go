package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-qualform/pkg/qualform"
)

// Builder walks an operator through assembling a QuestionForm.
type Builder struct {
	driver Driver
	ids    *qualform.IDSequence
}

// NewBuilder returns a Builder reading from driver. Auto-assigned question
// identifiers come from their own sequence so a session always starts at 1.
func NewBuilder(driver Driver) *Builder {
	return &Builder{driver: driver, ids: &qualform.IDSequence{}}
}

// Run prompts for an overview and questions until the operator stops, then
// returns the assembled form.
func (b *Builder) Run() (*qualform.QuestionForm, error) {
	form := qualform.NewQuestionForm()

	title, err := b.driver.Input(InputConfig{
		Message: "Form title",
		Help:    "Shown as the overview heading. Leave empty to skip the overview.",
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) != "" {
		overview := qualform.NewContent().AddTitle(title)
		intro, err := b.driver.Input(InputConfig{Message: "Overview text", Help: "Optional introduction paragraph."})
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(intro) != "" {
			overview.AddText(intro)
		}
		form.AddOverview(overview)
	}

	for {
		question, err := b.question()
		if err != nil {
			return nil, err
		}
		form.AddQuestion(question)

		again, err := b.driver.Confirm(ConfirmConfig{Message: "Add another question?", Default: false})
		if err != nil {
			return nil, err
		}
		if !again {
			break
		}
	}
	return form, nil
}

func (b *Builder) question() (*qualform.Question, error) {
	text, err := b.driver.Input(InputConfig{Message: "Question text"})
	if err != nil {
		return nil, err
	}
	required, err := b.driver.Confirm(ConfirmConfig{Message: "Is an answer required?", Default: true})
	if err != nil {
		return nil, err
	}
	kind, err := b.driver.Select(SelectConfig{
		Message: "Answer type",
		Options: []string{"free text", "selection"},
	})
	if err != nil {
		return nil, err
	}

	var answer qualform.AnswerSpec
	if kind == 0 {
		answer, err = b.freeText()
	} else {
		answer, err = b.selection()
	}
	if err != nil {
		return nil, err
	}

	opts := []qualform.QuestionOption{qualform.WithIDSequence(b.ids)}
	if required {
		opts = append(opts, qualform.Required())
	}
	return qualform.NewQuestion(qualform.NewContent().AddText(text), answer, opts...), nil
}

func (b *Builder) freeText() (qualform.AnswerSpec, error) {
	lines, err := b.intInput(InputConfig{
		Message: "Suggested number of lines",
		Default: "1",
	})
	if err != nil {
		return nil, err
	}
	defaultText, err := b.driver.Input(InputConfig{Message: "Default text", Help: "Optional pre-filled answer."})
	if err != nil {
		return nil, err
	}
	return qualform.FreeTextAnswer{DefaultText: defaultText, Lines: lines}, nil
}

func (b *Builder) selection() (qualform.AnswerSpec, error) {
	answer := qualform.SelectionAnswer{Style: "radiobutton"}
	for i := 1; ; i++ {
		label, err := b.driver.Input(InputConfig{
			Message: fmt.Sprintf("Option %d label", i),
			Help:    "Leave empty to finish the option list.",
		})
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(label) == "" {
			break
		}
		id, err := b.driver.Input(InputConfig{
			Message: fmt.Sprintf("Option %d identifier", i),
			Default: fmt.Sprintf("option_%d", i),
		})
		if err != nil {
			return nil, err
		}
		answer.Options = append(answer.Options, qualform.SelectionOption{ID: id, Label: label})
	}
	if len(answer.Options) == 0 {
		return nil, fmt.Errorf("prompt: a selection answer needs at least one option")
	}
	return answer, nil
}

func (b *Builder) intInput(cfg InputConfig) (int, error) {
	raw, err := b.driver.Input(cfg)
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = cfg.Default
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("prompt: %q is not a number", raw)
	}
	return value, nil
}
