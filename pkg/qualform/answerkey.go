package qualform

import (
	"errors"
	"strconv"

	"github.com/goliatone/go-qualform/pkg/xmltree"
)

// answerKeyNamespace is the schema the AnswerKey document declares on its
// root element.
const answerKeyNamespace = "http://mechanicalturk.amazonaws.com/AWSMechanicalTurkDataSchemas/2005-10-01/AnswerKey.xsd"

// ErrMaxScoreSet reports a second AddMaxScore call on the same key.
var ErrMaxScoreSet = errors.New("qualform: answer key maximum score already set")

// ScoreRule awards Score to each of the listed selection identifiers. Rules
// render in the order supplied; the output is never sorted by score, so
// callers relying on position should order the slice themselves.
type ScoreRule struct {
	Score        int
	SelectionIDs []string
}

type answerKeyEntry struct {
	questionID string
	rules      []ScoreRule
}

// AnswerKey is the document root scoring a QuestionForm's questions by
// selection identifier. It references questions by ID and does not own them.
type AnswerKey struct {
	entries  []answerKeyEntry
	maxScore *int
}

// NewAnswerKey returns an empty key.
func NewAnswerKey() *AnswerKey {
	return &AnswerKey{}
}

// AddQuestionKeys registers the scoring rules for question. Each rule
// becomes one AnswerOption node listing the selections that earn the rule's
// score.
func (k *AnswerKey) AddQuestionKeys(question *Question, rules []ScoreRule) *AnswerKey {
	if question == nil {
		return k
	}
	k.entries = append(k.entries, answerKeyEntry{
		questionID: question.ID(),
		rules:      append([]ScoreRule(nil), rules...),
	})
	return k
}

// AddMaxScore declares the maximum summed score the service maps onto a
// percentage. It may be called at most once; a second call fails with
// ErrMaxScoreSet and leaves the key unchanged.
func (k *AnswerKey) AddMaxScore(score int) error {
	if k.maxScore != nil {
		return ErrMaxScoreSet
	}
	k.maxScore = &score
	return nil
}

// Node compiles the key under rootName, defaulting to AnswerKey, with the
// schema namespace on the root. The value mapping, when set, renders after
// the question entries.
func (k *AnswerKey) Node(rootName string) *xmltree.Node {
	if rootName == "" {
		rootName = "AnswerKey"
	}
	node := xmltree.New(rootName).SetAttr("xmlns", answerKeyNamespace)
	for _, entry := range k.entries {
		question := xmltree.New("Question")
		question.AppendChild(xmltree.Element("QuestionIdentifier", entry.questionID))
		for _, rule := range entry.rules {
			option := xmltree.New("AnswerOption")
			for _, id := range rule.SelectionIDs {
				option.AppendChild(xmltree.Element("SelectionIdentifier", id))
			}
			option.AppendChild(xmltree.Element("AnswerScore", strconv.Itoa(rule.Score)))
			question.AppendChild(option)
		}
		node.AppendChild(question)
	}
	if k.maxScore != nil {
		node.AppendChild(xmltree.New("QualificationValueMapping").AppendChild(
			xmltree.New("PercentageMapping").AppendChild(
				xmltree.Element("MaximumSummedScore", strconv.Itoa(*k.maxScore)),
			),
		))
	}
	return node
}

// Render renders the key as XML text.
func (k *AnswerKey) Render(opts ...RenderOption) string {
	return Render(k, opts...)
}

// Save renders the key and writes it to path.
func (k *AnswerKey) Save(path string, opts ...RenderOption) error {
	return Save(k, path, opts...)
}
