// Package openapi derives qualification-test questions from the component
// schemas of an OpenAPI document: one question per property, with the
// schema's constraints mapped onto the matching answer-field constraints.
// String properties become free-text answers carrying pattern and length
// bounds, numeric properties become numeric free-text answers with value
// bounds, and enums become single-choice selection answers.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-qualform/pkg/qualform"
)

// Options configure how schema properties become questions.
type Options struct {
	// IDs supplies identifiers for the generated questions. Defaults to the
	// process-wide sequence.
	IDs *qualform.IDSequence
	// SelectionStyle is the style suggestion applied to enum-backed
	// questions. Defaults to radiobutton.
	SelectionStyle string
	// Labeler converts a property name into the question's display name and
	// title. Defaults to DefaultLabeler.
	Labeler func(string) string
}

func (o Options) withDefaults() Options {
	if o.SelectionStyle == "" {
		o.SelectionStyle = "radiobutton"
	}
	if o.Labeler == nil {
		o.Labeler = DefaultLabeler
	}
	return o
}

// QuestionsFromFile loads an OpenAPI document from disk and converts the
// named component schema.
func QuestionsFromFile(ctx context.Context, path, schemaName string, opts Options) ([]*qualform.Question, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", path, err)
	}
	return QuestionsFromDocument(ctx, doc, schemaName, opts)
}

// QuestionsFromData parses an OpenAPI document from memory and converts the
// named component schema.
func QuestionsFromData(ctx context.Context, data []byte, schemaName string, opts Options) ([]*qualform.Question, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return QuestionsFromDocument(ctx, doc, schemaName, opts)
}

// QuestionsFromDocument converts the named component schema into questions,
// one per property, in sorted property order. Required properties become
// required questions.
func QuestionsFromDocument(ctx context.Context, doc *openapi3.T, schemaName string, opts Options) ([]*qualform.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("openapi: document is required")
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q not found", schemaName)
	}
	schema := ref.Value
	if len(schema.Properties) == 0 {
		return nil, fmt.Errorf("openapi: schema %q has no properties", schemaName)
	}
	cfg := opts.withDefaults()

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	questions := make([]*qualform.Question, 0, len(names))
	for _, name := range names {
		property := schema.Properties[name]
		if property == nil || property.Value == nil {
			continue
		}
		_, isRequired := required[name]
		question, err := questionFromProperty(name, property.Value, isRequired, cfg)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("openapi: schema %q produced no questions", schemaName)
	}
	return questions, nil
}

func questionFromProperty(name string, schema *openapi3.Schema, required bool, cfg Options) (*qualform.Question, error) {
	label := cfg.Labeler(name)
	content := qualform.NewContent().AddTitle(label)
	if schema.Description != "" {
		content.AddText(schema.Description)
	}

	answer, err := answerFromSchema(name, schema, cfg)
	if err != nil {
		return nil, err
	}

	opts := []qualform.QuestionOption{qualform.WithDisplayName(label)}
	if required {
		opts = append(opts, qualform.Required())
	}
	if cfg.IDs != nil {
		opts = append(opts, qualform.WithIDSequence(cfg.IDs))
	}
	return qualform.NewQuestion(content, answer, opts...), nil
}

func answerFromSchema(name string, schema *openapi3.Schema, cfg Options) (qualform.AnswerSpec, error) {
	if len(schema.Enum) > 0 {
		return selectionFromEnum(schema.Enum, cfg), nil
	}

	switch schemaType(schema) {
	case "integer", "number":
		answer := qualform.FreeTextAnswer{Numeric: true}
		if schema.Min != nil {
			answer.MinValue = qualform.Int(int(*schema.Min))
		}
		if schema.Max != nil {
			answer.MaxValue = qualform.Int(int(*schema.Max))
		}
		return answer, nil
	case "boolean":
		return qualform.SelectionAnswer{
			Style:         cfg.SelectionStyle,
			MinSelections: qualform.Int(1),
			MaxSelections: qualform.Int(1),
			Options: []qualform.SelectionOption{
				{ID: "true", Label: "Yes"},
				{ID: "false", Label: "No"},
			},
		}, nil
	case "string", "":
		answer := qualform.FreeTextAnswer{Pattern: schema.Pattern}
		if schema.MinLength != 0 {
			answer.MinLength = qualform.Int(int(schema.MinLength))
		}
		if schema.MaxLength != nil {
			answer.MaxLength = qualform.Int(int(*schema.MaxLength))
		}
		if text, ok := schema.Default.(string); ok {
			answer.DefaultText = text
		}
		return answer, nil
	default:
		return nil, fmt.Errorf("openapi: property %q has unsupported type %q", name, schemaType(schema))
	}
}

func selectionFromEnum(values []any, cfg Options) qualform.SelectionAnswer {
	options := make([]qualform.SelectionOption, 0, len(values))
	for _, value := range values {
		text := enumString(value)
		if text == "" {
			continue
		}
		options = append(options, qualform.SelectionOption{
			ID:    text,
			Label: cfg.Labeler(text),
		})
	}
	return qualform.SelectionAnswer{
		Options:       options,
		Style:         cfg.SelectionStyle,
		MinSelections: qualform.Int(1),
		MaxSelections: qualform.Int(1),
	}
}

func enumString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
