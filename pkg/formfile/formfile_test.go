package formfile_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-qualform/pkg/formfile"
	"github.com/goliatone/go-qualform/pkg/qualform"
)

func TestLoadJSONAndYAMLAgree(t *testing.T) {
	fromYAML, err := formfile.Load(filepath.Join("testdata", "tictactoe.yaml"))
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	fromJSON, err := formfile.Load(filepath.Join("testdata", "tictactoe.json"))
	if err != nil {
		t.Fatalf("Load json: %v", err)
	}
	if diff := cmp.Diff(fromYAML, fromJSON); diff != "" {
		t.Errorf("yaml and json decode differently (-yaml +json):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := formfile.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := formfile.Parse([]byte("{not valid at all"), "inline")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), "invalid JSON or YAML") {
		t.Fatalf("err = %q", err)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "empty input",
			body:    "   \n",
			wantErr: "is empty",
		},
		{
			name:    "no questions",
			body:    "title: T\n",
			wantErr: "defines no questions",
		},
		{
			name: "question without an answer",
			body: `
questions:
  - content:
      - text: q
`,
			wantErr: "needs a freeText or selection answer",
		},
		{
			name: "question with both answers",
			body: `
questions:
  - content:
      - text: q
    freeText: {}
    selection:
      options: []
`,
			wantErr: "sets both freeText and selection",
		},
		{
			name: "question without content",
			body: `
questions:
  - freeText: {}
`,
			wantErr: "has no content",
		},
		{
			name: "fragment with two kinds",
			body: `
questions:
  - content:
      - title: A
        text: B
    freeText: {}
`,
			wantErr: "fragment sets more than one kind",
		},
		{
			name: "duplicate question ids",
			body: `
questions:
  - id: q1
    content: [{text: a}]
    freeText: {}
  - id: q1
    content: [{text: b}]
    freeText: {}
`,
			wantErr: `duplicate question id "q1"`,
		},
		{
			name: "answer key references unknown question",
			body: `
questions:
  - id: q1
    content: [{text: a}]
    freeText: {}
answerKey:
  questions:
    - id: q9
      scores: [{score: 1, selections: [a]}]
`,
			wantErr: `answer key references unknown question "q9"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formfile.Parse([]byte(tt.body), "inline")
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestCompileBuildsFormAndKey(t *testing.T) {
	file, err := formfile.Load(filepath.Join("testdata", "tictactoe.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	form, key, err := formfile.Compile(file)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if key == nil {
		t.Fatal("expected an answer key")
	}

	formXML := form.Render(qualform.Compact())
	for _, fragment := range []string{
		"<Title>Tic Tac Toe Basics</Title>",
		"<QuestionIdentifier>nextmove</QuestionIdentifier>",
		"<DisplayName>The Next Move</DisplayName>",
		"<IsRequired>true</IsRequired>",
		`<Length minLength="2" maxLength="2"/>`,
		"<DefaultText>C1</DefaultText>",
		"<QuestionIdentifier>likelytowin</QuestionIdentifier>",
		"<StyleSuggestion>radiobutton</StyleSuggestion>",
		"<SelectionIdentifier>unsure</SelectionIdentifier>",
	} {
		if !strings.Contains(formXML, fragment) {
			t.Errorf("form missing %q:\n%s", fragment, formXML)
		}
	}

	keyXML := key.Render(qualform.Compact())
	for _, fragment := range []string{
		"<QuestionIdentifier>nextmove</QuestionIdentifier>",
		"<AnswerScore>5</AnswerScore>",
		"<QuestionIdentifier>likelytowin</QuestionIdentifier>",
		"<SelectionIdentifier>likely</SelectionIdentifier>",
		"<MaximumSummedScore>15</MaximumSummedScore>",
	} {
		if !strings.Contains(keyXML, fragment) {
			t.Errorf("key missing %q:\n%s", fragment, keyXML)
		}
	}
}

func TestCompileWithoutAnswerKey(t *testing.T) {
	file, err := formfile.Parse([]byte(`
questions:
  - content: [{text: q}]
    freeText: {}
`), "inline")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, key, err := formfile.Compile(file)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if key != nil {
		t.Fatal("expected no answer key")
	}
}

func TestCompileAutoIDsAreDeterministicWithSequence(t *testing.T) {
	file, err := formfile.Parse([]byte(`
questions:
  - content: [{text: a}]
    freeText: {}
  - content: [{text: b}]
    freeText: {}
`), "inline")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var seq qualform.IDSequence
	form, _, err := formfile.Compile(file, formfile.WithIDSequence(&seq))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	questions := form.Questions()
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	if questions[0].ID() != "QuestionID_1" || questions[1].ID() != "QuestionID_2" {
		t.Fatalf("ids = %q, %q", questions[0].ID(), questions[1].ID())
	}
}
