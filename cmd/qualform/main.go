// Command qualform compiles declarative qualification-test definitions into
// the XML documents the qualification service expects, or assembles a form
// interactively at the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-qualform/internal/prompt"
	"github.com/goliatone/go-qualform/pkg/formfile"
	"github.com/goliatone/go-qualform/pkg/preview"
	"github.com/goliatone/go-qualform/pkg/qualform"
)

func main() {
	input := flag.String("input", "", "form definition file (.json or .yaml)")
	format := flag.String("format", "form", "what to emit: form, answerkey or preview")
	output := flag.String("output", "", "output file (stdout if empty)")
	compact := flag.Bool("compact", false, "render XML on a single line")
	indent := flag.Int("indent", 4, "pretty-print indent width")
	urlSafe := flag.Bool("url-safe", false, "percent-encode the URL-reserved characters")
	interactive := flag.Bool("interactive", false, "assemble the form with terminal prompts")
	flag.Parse()

	form, key, err := loadDocuments(*input, *interactive)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	renderOpts := []qualform.RenderOption{qualform.WithIndent(*indent)}
	if *compact {
		renderOpts = append(renderOpts, qualform.Compact())
	}
	if *urlSafe {
		renderOpts = append(renderOpts, qualform.URLSafe())
	}

	var payload []byte
	switch *format {
	case "form":
		payload = []byte(form.Render(renderOpts...))
	case "answerkey":
		if key == nil {
			log.Fatalf("The definition has no answer key")
		}
		payload = []byte(key.Render(renderOpts...))
	case "preview":
		payload, err = preview.New().Render(form)
		if err != nil {
			log.Fatalf("Failed to render preview: %v", err)
		}
	default:
		log.Fatalf("Unknown format %q", *format)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Written to %s\n", *output)
		return
	}
	fmt.Println(string(payload))
}

func loadDocuments(input string, interactive bool) (*qualform.QuestionForm, *qualform.AnswerKey, error) {
	if interactive {
		form, err := prompt.NewBuilder(prompt.NewSurveyDriver()).Run()
		return form, nil, err
	}
	if input == "" {
		return nil, nil, fmt.Errorf("either -input or -interactive is required")
	}
	file, err := formfile.Load(input)
	if err != nil {
		return nil, nil, err
	}
	return formfile.Compile(file)
}
