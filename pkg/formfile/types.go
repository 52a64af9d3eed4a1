package formfile

// File is the on-disk shape of a declarative qualification test: the form
// plus, optionally, its answer key. Slice order throughout is render order.
type File struct {
	Title     string           `json:"title" yaml:"title"`
	Overview  []FragmentConfig `json:"overview,omitempty" yaml:"overview,omitempty"`
	Questions []QuestionConfig `json:"questions" yaml:"questions"`
	AnswerKey *AnswerKeyConfig `json:"answerKey,omitempty" yaml:"answerKey,omitempty"`
}

// FragmentConfig describes one content fragment. Exactly one of the fields
// may be set per entry.
type FragmentConfig struct {
	Title     string       `json:"title,omitempty" yaml:"title,omitempty"`
	Text      string       `json:"text,omitempty" yaml:"text,omitempty"`
	Formatted string       `json:"formatted,omitempty" yaml:"formatted,omitempty"`
	List      []string     `json:"list,omitempty" yaml:"list,omitempty"`
	Image     *ImageConfig `json:"image,omitempty" yaml:"image,omitempty"`
}

// ImageConfig references an externally hosted image.
type ImageConfig struct {
	URL string `json:"url" yaml:"url"`
	Alt string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// QuestionConfig describes one question. Exactly one of FreeText or
// Selection must be set.
type QuestionConfig struct {
	ID        string           `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string           `json:"name,omitempty" yaml:"name,omitempty"`
	Required  bool             `json:"required,omitempty" yaml:"required,omitempty"`
	Content   []FragmentConfig `json:"content" yaml:"content"`
	FreeText  *FreeTextConfig  `json:"freeText,omitempty" yaml:"freeText,omitempty"`
	Selection *SelectionConfig `json:"selection,omitempty" yaml:"selection,omitempty"`
}

// FreeTextConfig mirrors qualform.FreeTextAnswer.
type FreeTextConfig struct {
	Default      string `json:"default,omitempty" yaml:"default,omitempty"`
	Lines        int    `json:"lines,omitempty" yaml:"lines,omitempty"`
	Pattern      string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	PatternError string `json:"patternError,omitempty" yaml:"patternError,omitempty"`
	MinLength    *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength    *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Numeric      bool   `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	MinValue     *int   `json:"minValue,omitempty" yaml:"minValue,omitempty"`
	MaxValue     *int   `json:"maxValue,omitempty" yaml:"maxValue,omitempty"`
}

// SelectionConfig mirrors qualform.SelectionAnswer.
type SelectionConfig struct {
	Style   string         `json:"style,omitempty" yaml:"style,omitempty"`
	Min     *int           `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *int           `json:"max,omitempty" yaml:"max,omitempty"`
	Options []OptionConfig `json:"options" yaml:"options"`
}

// OptionConfig is one selectable choice.
type OptionConfig struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// AnswerKeyConfig describes the scoring rules for the form's questions.
type AnswerKeyConfig struct {
	MaxScore  *int                `json:"maxScore,omitempty" yaml:"maxScore,omitempty"`
	Questions []QuestionKeyConfig `json:"questions" yaml:"questions"`
}

// QuestionKeyConfig scores one question, referenced by its explicit ID.
type QuestionKeyConfig struct {
	ID     string        `json:"id" yaml:"id"`
	Scores []ScoreConfig `json:"scores" yaml:"scores"`
}

// ScoreConfig awards Score to each listed selection identifier.
type ScoreConfig struct {
	Score      int      `json:"score" yaml:"score"`
	Selections []string `json:"selections" yaml:"selections"`
}
