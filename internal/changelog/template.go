package changelog

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"text/template"
)

// defaultChangeTemplate renders a bulleted message with a trailing link to
// the change on the hosting platform.
const defaultChangeTemplate = `{{.Bullet}} {{.Message}} ([\#{{.ChangeID}}]({{.ChangeURL}}))`

// TemplateParams are the values available to a change template.
type TemplateParams struct {
	// ProjectURL is the project's hosting page.
	ProjectURL string
	// Section and Component locate where the entry will be written.
	Section   string
	Component string
	// ID is the entry's filename stem.
	ID string
	// ChangeID is the issue or pull request number.
	ChangeID int
	// ChangeURL links to the issue or pull request.
	ChangeURL string
	// Message is the change description supplied by the author.
	Message string
	// Bullet is the configured bullet marker.
	Bullet string
}

// RenderEntryTemplate renders a new entry's prose through the change
// template. The template is looked up at cfg.ChangeTemplate relative to dir;
// when the file does not exist the built-in default is used. The result is
// word-wrapped to the configured width, continuation lines indented by two
// spaces.
func RenderEntryTemplate(cfg *Config, dir string, params TemplateParams) (string, error) {
	templatePath := cfg.ChangeTemplate
	if !filepath.IsAbs(templatePath) {
		templatePath = filepath.Join(dir, templatePath)
	}
	text, ok, err := readFileOpt(templatePath)
	if err != nil {
		return "", err
	}
	if !ok {
		text = defaultChangeTemplate
	} else {
		slog.Debug("loaded change template", "path", templatePath)
		text = trimNewlines(text)
	}

	tmpl, err := template.New("change").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing change template: %w", err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, params); err != nil {
		return "", fmt.Errorf("rendering change template: %w", err)
	}
	return wrapWords(sb.String(), cfg.Wrap, "  "), nil
}

// wrapWords greedily wraps s at width columns without breaking words,
// prefixing wrapped lines with indent.
func wrapWords(s string, width int, indent string) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var lines []string
	line, prefix := words[0], ""
	for _, word := range words[1:] {
		if len(prefix)+len(line)+1+len(word) > width {
			lines = append(lines, prefix+line)
			line, prefix = word, indent
			continue
		}
		line += " " + word
	}
	lines = append(lines, prefix+line)
	return strings.Join(lines, "\n")
}
