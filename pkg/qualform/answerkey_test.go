package qualform_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-qualform/pkg/qualform"
)

func TestAnswerKeyDeclaresNamespace(t *testing.T) {
	got := qualform.NewAnswerKey().Render(qualform.Compact())
	want := `<AnswerKey xmlns="http://mechanicalturk.amazonaws.com/AWSMechanicalTurkDataSchemas/2005-10-01/AnswerKey.xsd"/>`
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestAnswerKeyRendersRulesInSuppliedOrder(t *testing.T) {
	question := qualform.NewQuestion(nil, qualform.SelectionAnswer{}, qualform.WithQuestionID("likelytowin"))
	key := qualform.NewAnswerKey().AddQuestionKeys(question, []qualform.ScoreRule{
		{Score: 10, SelectionIDs: []string{"likely"}},
		{Score: 5, SelectionIDs: []string{"unsure", "notlikely"}},
	})

	got := key.Render(qualform.Compact())
	order := []string{
		"<Question>",
		"<QuestionIdentifier>likelytowin</QuestionIdentifier>",
		"<AnswerOption>",
		"<SelectionIdentifier>likely</SelectionIdentifier>",
		"<AnswerScore>10</AnswerScore>",
		"<AnswerOption>",
		"<SelectionIdentifier>unsure</SelectionIdentifier>",
		"<SelectionIdentifier>notlikely</SelectionIdentifier>",
		"<AnswerScore>5</AnswerScore>",
		"</Question>",
	}
	idx := 0
	for _, fragment := range order {
		pos := strings.Index(got[idx:], fragment)
		if pos < 0 {
			t.Fatalf("missing %q after offset %d in %q", fragment, idx, got)
		}
		idx += pos + len(fragment)
	}
}

func TestAnswerKeyMaxScoreRendersLast(t *testing.T) {
	question := qualform.NewQuestion(nil, qualform.SelectionAnswer{}, qualform.WithQuestionID("q1"))
	key := qualform.NewAnswerKey().AddQuestionKeys(question, []qualform.ScoreRule{
		{Score: 5, SelectionIDs: []string{"a"}},
	})
	if err := key.AddMaxScore(15); err != nil {
		t.Fatalf("AddMaxScore: %v", err)
	}

	got := key.Render(qualform.Compact())
	mapping := "<QualificationValueMapping><PercentageMapping><MaximumSummedScore>15</MaximumSummedScore></PercentageMapping></QualificationValueMapping>"
	if !strings.Contains(got, mapping) {
		t.Fatalf("missing value mapping in %q", got)
	}
	if strings.Index(got, "</Question>") > strings.Index(got, "<QualificationValueMapping>") {
		t.Fatalf("mapping must follow the question entries: %q", got)
	}
}

func TestAnswerKeyRejectsSecondMaxScore(t *testing.T) {
	key := qualform.NewAnswerKey()
	if err := key.AddMaxScore(10); err != nil {
		t.Fatalf("first AddMaxScore: %v", err)
	}
	before := key.Render(qualform.Compact())

	err := key.AddMaxScore(20)
	if !errors.Is(err, qualform.ErrMaxScoreSet) {
		t.Fatalf("err = %v, want ErrMaxScoreSet", err)
	}
	if got := key.Render(qualform.Compact()); got != before {
		t.Fatalf("failed call mutated the key:\nbefore %q\nafter  %q", before, got)
	}
	if !strings.Contains(before, "<MaximumSummedScore>10</MaximumSummedScore>") {
		t.Fatalf("original score lost: %q", before)
	}
}

func TestAnswerKeyCopiesRuleSlice(t *testing.T) {
	question := qualform.NewQuestion(nil, qualform.SelectionAnswer{}, qualform.WithQuestionID("q1"))
	rules := []qualform.ScoreRule{{Score: 1, SelectionIDs: []string{"a"}}}
	key := qualform.NewAnswerKey().AddQuestionKeys(question, rules)

	rules[0].Score = 99
	if got := key.Render(qualform.Compact()); !strings.Contains(got, "<AnswerScore>1</AnswerScore>") {
		t.Fatalf("rule mutation leaked into the key: %q", got)
	}
}

func TestAnswerKeyIgnoresNilQuestion(t *testing.T) {
	key := qualform.NewAnswerKey().AddQuestionKeys(nil, []qualform.ScoreRule{{Score: 1}})
	got := key.Render(qualform.Compact())
	if strings.Contains(got, "<Question>") {
		t.Fatalf("nil question must not register: %q", got)
	}
}
