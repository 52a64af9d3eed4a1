// Package qualform assembles the two XML documents a crowd-work
// qualification test is made of: a QuestionForm describing the overview and
// questions a worker sees, and an AnswerKey scoring the selections by
// identifier. Builders compose content blocks, answer specifications and
// questions into either document root, then render schema-shaped XML through
// pkg/xmltree.
//
// The package only assembles and renders. It never talks to the network and
// never validates output against the external XSDs; documents missing fields
// the schema requires are the caller's responsibility.
package qualform
