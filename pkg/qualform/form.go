package qualform

import (
	"github.com/goliatone/go-qualform/pkg/xmltree"
)

// questionFormNamespace is the schema the QuestionForm document declares on
// its root element.
const questionFormNamespace = "http://mechanicalturk.amazonaws.com/AWSMechanicalTurkDataSchemas/2017-11-06/QuestionForm.xsd"

// formItem is one root-level entry: exactly one of overview or question is
// set. Keeping them in a single slice preserves interleaved append order,
// which the schema allows and which governs on-screen order.
type formItem struct {
	overview *Content
	question *Question
}

// QuestionForm is the document root for a qualification test form: overview
// blocks and questions rendered in append order. There are no removal
// operations; build a new form instead.
type QuestionForm struct {
	items []formItem
}

// NewQuestionForm returns an empty form.
func NewQuestionForm() *QuestionForm {
	return &QuestionForm{}
}

// AddOverview appends an Overview block. The schema allows any number of
// them; callers wanting a single overview call this once, which is not
// checked here.
func (f *QuestionForm) AddOverview(overview *Content) *QuestionForm {
	if overview != nil {
		f.items = append(f.items, formItem{overview: overview})
	}
	return f
}

// AddQuestion appends a question. Append order is render order is the order
// workers see.
func (f *QuestionForm) AddQuestion(question *Question) *QuestionForm {
	if question != nil {
		f.items = append(f.items, formItem{question: question})
	}
	return f
}

// Overviews returns the overview blocks in append order.
func (f *QuestionForm) Overviews() []*Content {
	var out []*Content
	for _, item := range f.items {
		if item.overview != nil {
			out = append(out, item.overview)
		}
	}
	return out
}

// Questions returns the questions in append order.
func (f *QuestionForm) Questions() []*Question {
	var out []*Question
	for _, item := range f.items {
		if item.question != nil {
			out = append(out, item.question)
		}
	}
	return out
}

// Node compiles the form under rootName, defaulting to QuestionForm, with
// the schema namespace on the root.
func (f *QuestionForm) Node(rootName string) *xmltree.Node {
	if rootName == "" {
		rootName = "QuestionForm"
	}
	node := xmltree.New(rootName).SetAttr("xmlns", questionFormNamespace)
	for _, item := range f.items {
		switch {
		case item.overview != nil:
			node.AppendChild(item.overview.Node("Overview"))
		case item.question != nil:
			node.AppendChild(item.question.Node("Question"))
		}
	}
	return node
}

// Render renders the form as XML text.
func (f *QuestionForm) Render(opts ...RenderOption) string {
	return Render(f, opts...)
}

// Save renders the form and writes it to path.
func (f *QuestionForm) Save(path string, opts ...RenderOption) error {
	return Save(f, path, opts...)
}
