// Package formfile loads declarative qualification-test definitions from
// JSON or YAML and compiles them into the pkg/qualform document builders.
package formfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-qualform/pkg/qualform"
)

// Load reads a definition from disk and parses it.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a definition, trying JSON first and falling back to YAML.
// source only labels error messages.
func Parse(data []byte, source string) (File, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return File{}, fmt.Errorf("formfile: file %s is empty", source)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		file = File{}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return File{}, fmt.Errorf("formfile: parse %s: invalid JSON or YAML", source)
		}
	}

	if err := validate(file, source); err != nil {
		return File{}, err
	}
	return file, nil
}

func validate(file File, source string) error {
	if len(file.Questions) == 0 {
		return fmt.Errorf("formfile: file %s defines no questions", source)
	}

	ids := make(map[string]struct{}, len(file.Questions))
	for i, question := range file.Questions {
		if question.FreeText == nil && question.Selection == nil {
			return fmt.Errorf("formfile: question %d in %s needs a freeText or selection answer", i, source)
		}
		if question.FreeText != nil && question.Selection != nil {
			return fmt.Errorf("formfile: question %d in %s sets both freeText and selection", i, source)
		}
		if len(question.Content) == 0 {
			return fmt.Errorf("formfile: question %d in %s has no content", i, source)
		}
		for j, frag := range question.Content {
			if err := validateFragment(frag); err != nil {
				return fmt.Errorf("formfile: question %d content %d in %s: %w", i, j, source, err)
			}
		}
		if id := strings.TrimSpace(question.ID); id != "" {
			if _, dup := ids[id]; dup {
				return fmt.Errorf("formfile: duplicate question id %q in %s", id, source)
			}
			ids[id] = struct{}{}
		}
	}

	for i, frag := range file.Overview {
		if err := validateFragment(frag); err != nil {
			return fmt.Errorf("formfile: overview entry %d in %s: %w", i, source, err)
		}
	}

	if file.AnswerKey != nil {
		for _, key := range file.AnswerKey.Questions {
			id := strings.TrimSpace(key.ID)
			if id == "" {
				return fmt.Errorf("formfile: answer key entry without question id in %s", source)
			}
			if _, ok := ids[id]; !ok {
				return fmt.Errorf("formfile: answer key references unknown question %q in %s", id, source)
			}
		}
	}
	return nil
}

func validateFragment(frag FragmentConfig) error {
	set := 0
	if frag.Title != "" {
		set++
	}
	if frag.Text != "" {
		set++
	}
	if frag.Formatted != "" {
		set++
	}
	if len(frag.List) > 0 {
		set++
	}
	if frag.Image != nil {
		set++
	}
	switch set {
	case 0:
		return fmt.Errorf("empty fragment")
	case 1:
		return nil
	default:
		return fmt.Errorf("fragment sets more than one kind")
	}
}

// CompileOption adjusts how a File compiles into documents.
type CompileOption func(*compileConfig)

type compileConfig struct {
	ids *qualform.IDSequence
}

// WithIDSequence routes auto-assigned question identifiers through seq
// instead of the process-wide default.
func WithIDSequence(seq *qualform.IDSequence) CompileOption {
	return func(cfg *compileConfig) {
		cfg.ids = seq
	}
}

// Compile builds the QuestionForm and, when the file declares one, the
// AnswerKey. The returned key is nil when the file has none.
func Compile(file File, opts ...CompileOption) (*qualform.QuestionForm, *qualform.AnswerKey, error) {
	var cfg compileConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	form := qualform.NewQuestionForm()
	if overview := buildContent(file.Title, file.Overview); overview.Len() > 0 {
		form.AddOverview(overview)
	}

	byID := make(map[string]*qualform.Question, len(file.Questions))
	for _, questionCfg := range file.Questions {
		question := buildQuestion(questionCfg, cfg.ids)
		form.AddQuestion(question)
		if id := strings.TrimSpace(questionCfg.ID); id != "" {
			byID[id] = question
		}
	}

	if file.AnswerKey == nil {
		return form, nil, nil
	}

	key := qualform.NewAnswerKey()
	for _, keyCfg := range file.AnswerKey.Questions {
		rules := make([]qualform.ScoreRule, 0, len(keyCfg.Scores))
		for _, score := range keyCfg.Scores {
			rules = append(rules, qualform.ScoreRule{
				Score:        score.Score,
				SelectionIDs: append([]string(nil), score.Selections...),
			})
		}
		key.AddQuestionKeys(byID[strings.TrimSpace(keyCfg.ID)], rules)
	}
	if file.AnswerKey.MaxScore != nil {
		if err := key.AddMaxScore(*file.AnswerKey.MaxScore); err != nil {
			return nil, nil, err
		}
	}
	return form, key, nil
}

func buildContent(title string, fragments []FragmentConfig) *qualform.Content {
	content := qualform.NewContent()
	if strings.TrimSpace(title) != "" {
		content.AddTitle(title)
	}
	for _, frag := range fragments {
		appendFragment(content, frag)
	}
	return content
}

func appendFragment(content *qualform.Content, frag FragmentConfig) {
	switch {
	case frag.Title != "":
		content.AddTitle(frag.Title)
	case frag.Text != "":
		content.AddText(frag.Text)
	case frag.Formatted != "":
		content.AddFormattedText(frag.Formatted)
	case len(frag.List) > 0:
		content.AddList(frag.List...)
	case frag.Image != nil:
		alt := frag.Image.Alt
		if alt == "" {
			alt = "image"
		}
		content.AddImage(frag.Image.URL, alt)
	}
}

func buildQuestion(cfg QuestionConfig, ids *qualform.IDSequence) *qualform.Question {
	content := qualform.NewContent()
	for _, frag := range cfg.Content {
		appendFragment(content, frag)
	}

	var answer qualform.AnswerSpec
	switch {
	case cfg.FreeText != nil:
		answer = qualform.FreeTextAnswer{
			DefaultText:      cfg.FreeText.Default,
			Lines:            cfg.FreeText.Lines,
			Pattern:          cfg.FreeText.Pattern,
			PatternErrorText: cfg.FreeText.PatternError,
			MinLength:        cfg.FreeText.MinLength,
			MaxLength:        cfg.FreeText.MaxLength,
			Numeric:          cfg.FreeText.Numeric,
			MinValue:         cfg.FreeText.MinValue,
			MaxValue:         cfg.FreeText.MaxValue,
		}
	case cfg.Selection != nil:
		options := make([]qualform.SelectionOption, 0, len(cfg.Selection.Options))
		for _, opt := range cfg.Selection.Options {
			options = append(options, qualform.SelectionOption{ID: opt.ID, Label: opt.Label})
		}
		answer = qualform.SelectionAnswer{
			Options:       options,
			Style:         cfg.Selection.Style,
			MinSelections: cfg.Selection.Min,
			MaxSelections: cfg.Selection.Max,
		}
	}

	opts := []qualform.QuestionOption{}
	if id := strings.TrimSpace(cfg.ID); id != "" {
		opts = append(opts, qualform.WithQuestionID(id))
	}
	if cfg.Name != "" {
		opts = append(opts, qualform.WithDisplayName(cfg.Name))
	}
	if cfg.Required {
		opts = append(opts, qualform.Required())
	}
	if ids != nil {
		opts = append(opts, qualform.WithIDSequence(ids))
	}
	return qualform.NewQuestion(content, answer, opts...)
}
