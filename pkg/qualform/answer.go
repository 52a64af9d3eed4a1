package qualform

import (
	"strconv"

	"github.com/goliatone/go-qualform/pkg/xmltree"
)

// AnswerSpec is the closed set of answer field shapes a question can carry:
// FreeTextAnswer or SelectionAnswer.
type AnswerSpec interface {
	answerNode() *xmltree.Node
}

// Int returns a pointer to v, for the optional numeric fields on answer
// specs where zero is a legal value.
func Int(v int) *int {
	return &v
}

// FreeTextAnswer describes a text input and the constraints on its value.
// Numeric and text constraints are mutually exclusive: when Numeric is set,
// Pattern and the length bounds are not emitted.
type FreeTextAnswer struct {
	// DefaultText pre-fills the input and stands as the answer when the
	// worker leaves it untouched.
	DefaultText string
	// Lines suggests how many text rows the rendered field should offer.
	// Zero means no suggestion.
	Lines int
	// Pattern is a JavaScript regular expression the answer must match.
	// PatternErrorText, when supplied, is shown on a failed match.
	Pattern          string
	PatternErrorText string
	// MinLength and MaxLength bound the answer length in characters.
	MinLength *int
	MaxLength *int
	// Numeric requires a numeric answer, optionally bounded by MinValue and
	// MaxValue.
	Numeric  bool
	MinValue *int
	MaxValue *int
}

func (a FreeTextAnswer) answerNode() *xmltree.Node {
	node := xmltree.New("FreeTextAnswer")
	if constraints := a.constraintsNode(); constraints != nil {
		node.AppendChild(constraints)
	}
	if a.DefaultText != "" {
		node.AppendChild(xmltree.Element("DefaultText", a.DefaultText))
	}
	if a.Lines > 0 {
		node.AppendChild(xmltree.Element("NumberOfLinesSuggestion", strconv.Itoa(a.Lines)))
	}
	return node
}

// constraintsNode groups the active constraints, or returns nil when none
// apply so the Constraints element is omitted entirely.
func (a FreeTextAnswer) constraintsNode() *xmltree.Node {
	hasText := a.Pattern != "" || a.MinLength != nil || a.MaxLength != nil
	if !hasText && !a.Numeric {
		return nil
	}
	constraints := xmltree.New("Constraints")

	if a.Numeric {
		numeric := xmltree.New("IsNumeric")
		if a.MinValue != nil {
			numeric.SetAttr("minValue", strconv.Itoa(*a.MinValue))
		}
		if a.MaxValue != nil {
			numeric.SetAttr("maxValue", strconv.Itoa(*a.MaxValue))
		}
		return constraints.AppendChild(numeric)
	}

	if a.Pattern != "" {
		regex := xmltree.New("AnswerFormatRegex").SetAttr("regex", a.Pattern)
		if a.PatternErrorText != "" {
			regex.SetAttr("errorText", a.PatternErrorText)
		}
		constraints.AppendChild(regex)
	}
	if a.MinLength != nil || a.MaxLength != nil {
		length := xmltree.New("Length")
		if a.MinLength != nil {
			length.SetAttr("minLength", strconv.Itoa(*a.MinLength))
		}
		if a.MaxLength != nil {
			length.SetAttr("maxLength", strconv.Itoa(*a.MaxLength))
		}
		constraints.AppendChild(length)
	}
	return constraints
}

// SelectionOption is one choice in a SelectionAnswer. Slice order is
// preserved in the rendered output and governs on-screen ordering.
type SelectionOption struct {
	ID    string
	Label string
}

// SelectionAnswer describes a multiple-choice field. Depending on the style
// and the selection bounds the worker picks zero, one or several options.
type SelectionAnswer struct {
	// Options are the choices offered, in display order. Identifiers must be
	// unique within the question.
	Options []SelectionOption
	// Style suggests the control to render: radiobutton, checkbox, list,
	// dropdown, combobox or multichooser. Clients may ignore it.
	Style string
	// MinSelections and MaxSelections bound how many options make a valid
	// answer. The schema treats either as 1 when omitted.
	MinSelections *int
	MaxSelections *int
}

func (a SelectionAnswer) answerNode() *xmltree.Node {
	node := xmltree.New("SelectionAnswer")
	if a.MinSelections != nil {
		node.AppendChild(xmltree.Element("MinSelectionCount", strconv.Itoa(*a.MinSelections)))
	}
	if a.MaxSelections != nil {
		node.AppendChild(xmltree.Element("MaxSelectionCount", strconv.Itoa(*a.MaxSelections)))
	}
	if a.Style != "" {
		node.AppendChild(xmltree.Element("StyleSuggestion", a.Style))
	}

	selections := xmltree.New("Selections")
	for _, opt := range a.Options {
		selections.AppendChild(xmltree.New("Selection").AppendChild(
			xmltree.Element("SelectionIdentifier", opt.ID),
			xmltree.Element("Text", opt.Label),
		))
	}
	return node.AppendChild(selections)
}
