package changelog

import (
	"fmt"
	"strings"
)

// RenderFull renders the whole changelog, unreleased changes included, to a
// newline-terminated Markdown document.
func (c *Changelog) RenderFull(cfg *Config) string {
	return c.render(cfg, true)
}

// RenderReleased renders only released versions' entries, omitting the
// unreleased change set.
func (c *Changelog) RenderReleased(cfg *Config) string {
	return c.render(cfg, false)
}

// RenderUnreleased renders just the unreleased changes. It fails with
// ErrNoUnreleasedEntries when the unreleased change set is absent or empty.
func (c *Changelog) RenderUnreleased(cfg *Config) (string, error) {
	paragraphs, err := c.unreleasedParagraphs(cfg)
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

func (c *Changelog) render(cfg *Config, renderUnreleased bool) string {
	paragraphs := []string{cfg.Heading}
	if c.IsEmpty() {
		paragraphs = append(paragraphs, cfg.EmptyMessage)
	} else {
		if c.Prologue != "" {
			paragraphs = append(paragraphs, c.Prologue)
		}
		if renderUnreleased {
			if unreleased, err := c.unreleasedParagraphs(cfg); err == nil {
				paragraphs = append(paragraphs, unreleased...)
			}
		}
		for _, r := range c.Releases {
			paragraphs = append(paragraphs, r.render(cfg))
		}
		if c.Epilogue != "" {
			paragraphs = append(paragraphs, c.Epilogue)
		}
	}
	return fmt.Sprintf("%s\n", strings.Join(paragraphs, "\n\n"))
}

func (c *Changelog) unreleasedParagraphs(cfg *Config) ([]string, error) {
	if c.Unreleased != nil && !c.Unreleased.IsEmpty() {
		return []string{cfg.Unreleased.Heading, c.Unreleased.render(cfg)}, nil
	}
	return nil, ErrNoUnreleasedEntries
}
