package qualform_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-qualform/pkg/qualform"
)

func TestRenderPrettyByDefault(t *testing.T) {
	content := qualform.NewContent().AddTitle("T").AddText("P")
	got := content.Render()

	want := strings.Join([]string{
		"<Content>",
		"    <Title>T</Title>",
		"    <Text>P</Text>",
		"</Content>",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderWithIndentWidth(t *testing.T) {
	content := qualform.NewContent().AddTitle("T")
	got := content.Render(qualform.WithIndent(2))
	if !strings.Contains(got, "\n  <Title>") {
		t.Fatalf("indent width 2 not applied: %q", got)
	}

	// Non-positive widths keep the default.
	got = content.Render(qualform.WithIndent(0))
	if !strings.Contains(got, "\n    <Title>") {
		t.Fatalf("zero width must keep the default indent: %q", got)
	}
}

func TestRenderURLSafeOption(t *testing.T) {
	content := qualform.NewContent().AddText("cats & dogs?")
	got := content.Render(qualform.Compact(), qualform.URLSafe())
	if !strings.Contains(got, "cats %26amp%3B dogs%3F") {
		t.Fatalf("URL pass missing: %q", got)
	}
}

func TestSaveWritesRenderedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.xml")
	form := qualform.NewQuestionForm().AddOverview(qualform.NewContent().AddTitle("T"))

	if err := form.Save(path, qualform.Compact()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got, want := string(data), form.Render(qualform.Compact()); got != want {
		t.Fatalf("file = %q, want %q", got, want)
	}
}

func TestSaveReportsWriteErrors(t *testing.T) {
	form := qualform.NewQuestionForm()
	err := form.Save(filepath.Join(t.TempDir(), "missing", "form.xml"))
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
