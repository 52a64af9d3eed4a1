package qualform

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/goliatone/go-qualform/pkg/xmltree"
)

// IDSequence hands out QuestionID_<n> identifiers. The zero value is ready
// to use and Next is safe for concurrent callers. A sequence only grows;
// there is no reset, so identifiers stay unique for its lifetime.
type IDSequence struct {
	counter atomic.Uint64
}

// Next returns the next identifier, starting at QuestionID_1.
func (s *IDSequence) Next() string {
	return fmt.Sprintf("QuestionID_%d", s.counter.Add(1))
}

// defaultIDs backs questions that neither supply an identifier nor inject a
// sequence. It is shared process-wide, so auto-assigned numbers keep
// climbing across unrelated documents.
var defaultIDs IDSequence

// QuestionOption configures a Question at construction.
type QuestionOption func(*questionConfig)

type questionConfig struct {
	id          string
	displayName string
	required    bool
	ids         *IDSequence
}

// WithQuestionID uses the supplied identifier verbatim instead of drawing
// one from the sequence.
func WithQuestionID(id string) QuestionOption {
	return func(cfg *questionConfig) {
		cfg.id = id
	}
}

// WithDisplayName sets the name shown to the worker above the question.
func WithDisplayName(name string) QuestionOption {
	return func(cfg *questionConfig) {
		cfg.displayName = name
	}
}

// Required marks the question as mandatory for a valid submission.
func Required() QuestionOption {
	return func(cfg *questionConfig) {
		cfg.required = true
	}
}

// WithIDSequence draws the auto-assigned identifier from seq instead of the
// process-wide default. Inject a fresh sequence for deterministic tests.
func WithIDSequence(seq *IDSequence) QuestionOption {
	return func(cfg *questionConfig) {
		if seq != nil {
			cfg.ids = seq
		}
	}
}

// Question pairs a content block with an answer specification under a stable
// identifier. Questions are immutable once constructed; a QuestionForm owns
// them and an AnswerKey references them by identifier only.
type Question struct {
	id          string
	displayName string
	required    bool
	content     *Content
	answer      AnswerSpec
}

// NewQuestion builds a question from its content and answer spec. Without
// WithQuestionID the identifier is drawn from the ID sequence at
// construction time.
func NewQuestion(content *Content, answer AnswerSpec, opts ...QuestionOption) *Question {
	cfg := questionConfig{ids: &defaultIDs}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.id == "" {
		cfg.id = cfg.ids.Next()
	}
	if content == nil {
		content = NewContent()
	}
	return &Question{
		id:          cfg.id,
		displayName: cfg.displayName,
		required:    cfg.required,
		content:     content,
		answer:      answer,
	}
}

// ID returns the question identifier an AnswerKey references.
func (q *Question) ID() string {
	return q.id
}

// DisplayName returns the optional worker-facing name.
func (q *Question) DisplayName() string {
	return q.displayName
}

// IsRequired reports whether the question must be answered.
func (q *Question) IsRequired() bool {
	return q.required
}

// Content returns the question's content block.
func (q *Question) Content() *Content {
	return q.content
}

// Answer returns the question's answer specification.
func (q *Question) Answer() AnswerSpec {
	return q.answer
}

// Node compiles the question under rootName, defaulting to Question. Child
// order is fixed: identifier, optional display name, required flag, content,
// answer specification.
func (q *Question) Node(rootName string) *xmltree.Node {
	if rootName == "" {
		rootName = "Question"
	}
	node := xmltree.New(rootName)
	node.AppendChild(xmltree.Element("QuestionIdentifier", q.id))
	if q.displayName != "" {
		node.AppendChild(xmltree.Element("DisplayName", q.displayName))
	}
	node.AppendChild(xmltree.Element("IsRequired", strconv.FormatBool(q.required)))
	node.AppendChild(q.content.Node("QuestionContent"))
	spec := xmltree.New("AnswerSpecification")
	if q.answer != nil {
		spec.AppendChild(q.answer.answerNode())
	}
	return node.AppendChild(spec)
}

// Render renders the question as XML text.
func (q *Question) Render(opts ...RenderOption) string {
	return Render(q, opts...)
}

// Save renders the question and writes it to path.
func (q *Question) Save(path string, opts ...RenderOption) error {
	return Save(q, path, opts...)
}
