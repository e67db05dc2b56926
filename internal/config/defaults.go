package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# chlog configuration
# Every value shown here is the default; delete this file to use defaults.

# project_url = ""                      # Hosting page used for entry links
change_template = "change-template.md"  # Template for 'chlog add' entries
wrap = 80                               # Word-wrap column for templated entries
heading = "# CHANGELOG"                 # First line of the rendered changelog
bullet_style = "-"                      # Bullet marker: "-" | "*"
empty_msg = "Nothing to see here! Add some entries to get started."
prologue_filename = "prologue.md"       # Optional text before all releases
epilogue_filename = "epilogue.md"       # Optional text after all releases
sort_releases_by = ["version"]          # Ordered criteria: "version" | "date"
release_date_formats = ["2006-01-02"]   # Go time layouts tried in order

[unreleased]
folder = "unreleased"                   # Directory holding unreleased entries
heading = "## Unreleased"

[change_sets]
summary_filename = "summary.md"         # Optional per-release summary file
entry_ext = "md"                        # Extension identifying entry files

[change_set_sections]
sort_entries_by = "id"                  # Entry order: "id" | "entry-text"

[components]
general_entries_title = "General"       # Sub-heading for non-component entries
entry_indent = 2                        # Spaces of indent for component entries

# Declare components to allow filing entries under them:
# [components.all.core]
# name = "core"
# path = "./core/"
`
}

// Defaults returns the default configuration values as koanf keys.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"project_url":     "",
		"change_template": "change-template.md",
		// wrap: column at which templated entries are word-wrapped.
		// Set to 0 to disable wrapping.
		"wrap":              80,
		"heading":           "# CHANGELOG",
		"bullet_style":      "-",
		"empty_msg":         "Nothing to see here! Add some entries to get started.",
		"prologue_filename": "prologue.md",
		"epilogue_filename": "epilogue.md",
		// sort_releases_by: ordered criteria; a criterion that cannot order two
		// releases (e.g. a missing date) falls through to the next.
		"sort_releases_by": []string{"version"},
		// release_date_formats: Go time layouts tried in order against the
		// first line of a release summary. First match wins.
		"release_date_formats": []string{"2006-01-02"},
		"unreleased": map[string]interface{}{
			"folder":  "unreleased",
			"heading": "## Unreleased",
		},
		"change_sets": map[string]interface{}{
			"summary_filename": "summary.md",
			"entry_ext":        "md",
		},
		"change_set_sections": map[string]interface{}{
			"sort_entries_by": "id",
		},
		"components": map[string]interface{}{
			"general_entries_title": "General",
			"entry_indent":          2,
		},
	}
}
