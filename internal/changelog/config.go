package changelog

// BulletStyle selects the Markdown bullet marker used for generated entries.
// Only "*" and "-" are valid.
type BulletStyle string

const (
	BulletAsterisk BulletStyle = "*"
	BulletDash     BulletStyle = "-"
)

// Valid reports whether the bullet style is one of the supported markers.
func (b BulletStyle) Valid() bool {
	return b == BulletAsterisk || b == BulletDash
}

// SortEntriesBy selects the key used to order entries within a section.
type SortEntriesBy string

const (
	SortEntriesByID   SortEntriesBy = "id"
	SortEntriesByText SortEntriesBy = "entry-text"
)

// SortReleasesBy is a single release ordering criterion. Criteria are
// evaluated in the order they appear in the configuration; a criterion that
// considers two releases equal (or incomparable, e.g. a missing date) falls
// through to the next one.
type SortReleasesBy string

const (
	SortReleasesByVersion SortReleasesBy = "version"
	SortReleasesByDate    SortReleasesBy = "date"
)

// Component is a named sub-module of the project that entries can be
// attributed to.
type Component struct {
	// Name is the display name used when rendering the component's entries.
	Name string `koanf:"name" toml:"name"`
	// Path is the component's path relative to the project root, if any.
	// When set, the component renders as a Markdown hyperlink.
	Path string `koanf:"path" toml:"path,omitempty"`
}

// UnreleasedConfig holds options relating to unreleased entries.
type UnreleasedConfig struct {
	// Folder is the name of the directory holding unreleased entries.
	Folder string `koanf:"folder" toml:"folder,omitempty"`
	// Heading is emitted above the unreleased change set when rendering.
	Heading string `koanf:"heading" toml:"heading,omitempty"`
}

// ChangeSetsConfig holds options relating to change set directories.
type ChangeSetsConfig struct {
	// SummaryFilename is the name of the optional per-change-set summary file.
	SummaryFilename string `koanf:"summary_filename" toml:"summary_filename,omitempty"`
	// EntryExt is the file extension (without dot) identifying entry files.
	EntryExt string `koanf:"entry_ext" toml:"entry_ext,omitempty"`
}

// ChangeSetSectionsConfig holds options relating to change set sections.
type ChangeSetSectionsConfig struct {
	// SortEntriesBy orders entries within a section by "id" or "entry-text".
	SortEntriesBy SortEntriesBy `koanf:"sort_entries_by" toml:"sort_entries_by,omitempty"`
}

// ComponentsConfig holds options relating to per-component sub-sections.
type ComponentsConfig struct {
	// GeneralEntriesTitle is the sub-heading under which general entries are
	// grouped when a section also contains component sections.
	GeneralEntriesTitle string `koanf:"general_entries_title" toml:"general_entries_title,omitempty"`
	// EntryIndent is the number of spaces component entries are indented by.
	// Continuation lines of a multi-line entry get EntryIndent+2.
	EntryIndent int `koanf:"entry_indent" toml:"entry_indent,omitempty"`
	// All maps component IDs (directory names) to their declarations.
	All map[string]Component `koanf:"all" toml:"all,omitempty"`
}

// Config carries every option the loader and renderer consult. It is passed
// explicitly through each call; nothing in this package reads configuration
// from ambient state.
type Config struct {
	// ProjectURL is the URL of the project's hosting page, used to build
	// hyperlinks when templating new entries.
	ProjectURL string `koanf:"project_url" toml:"project_url,omitempty"`
	// ChangeTemplate is the path, relative to the changelog directory, of the
	// template used when rendering new entries from an issue or PR number.
	ChangeTemplate string `koanf:"change_template" toml:"change_template,omitempty"`
	// Wrap is the column at which templated entries are word-wrapped.
	Wrap int `koanf:"wrap" toml:"wrap,omitempty"`
	// Heading is the first line of every rendered changelog.
	Heading string `koanf:"heading" toml:"heading,omitempty"`
	// BulletStyle is the marker used for generated bullets.
	BulletStyle BulletStyle `koanf:"bullet_style" toml:"bullet_style,omitempty"`
	// EmptyMessage is rendered in place of content when the changelog is empty.
	EmptyMessage string `koanf:"empty_msg" toml:"empty_msg,omitempty"`
	// PrologueFilename names the optional file rendered before all releases.
	PrologueFilename string `koanf:"prologue_filename" toml:"prologue_filename,omitempty"`
	// EpilogueFilename names the optional file rendered after all releases.
	EpilogueFilename string `koanf:"epilogue_filename" toml:"epilogue_filename,omitempty"`
	// SortReleasesBy is the ordered list of release sorting criteria.
	SortReleasesBy []SortReleasesBy `koanf:"sort_releases_by" toml:"sort_releases_by,omitempty"`
	// ReleaseDateFormats is an ordered list of Go time layouts tried, first
	// match wins, against the first line of a release summary.
	ReleaseDateFormats []string `koanf:"release_date_formats" toml:"release_date_formats,omitempty"`

	Unreleased        UnreleasedConfig        `koanf:"unreleased" toml:"unreleased,omitempty"`
	ChangeSets        ChangeSetsConfig        `koanf:"change_sets" toml:"change_sets,omitempty"`
	ChangeSetSections ChangeSetSectionsConfig `koanf:"change_set_sections" toml:"change_set_sections,omitempty"`
	Components        ComponentsConfig        `koanf:"components" toml:"components,omitempty"`
}

// DefaultConfig returns a Config populated with every default value.
func DefaultConfig() *Config {
	return &Config{
		ChangeTemplate: "change-template.md",
		Wrap:           80,
		Heading:        "# CHANGELOG",
		BulletStyle:    BulletDash,
		EmptyMessage:   "Nothing to see here! Add some entries to get started.",

		PrologueFilename: "prologue.md",
		EpilogueFilename: "epilogue.md",

		SortReleasesBy:     []SortReleasesBy{SortReleasesByVersion},
		ReleaseDateFormats: []string{"2006-01-02"},

		Unreleased: UnreleasedConfig{
			Folder:  "unreleased",
			Heading: "## Unreleased",
		},
		ChangeSets: ChangeSetsConfig{
			SummaryFilename: "summary.md",
			EntryExt:        "md",
		},
		ChangeSetSections: ChangeSetSectionsConfig{
			SortEntriesBy: SortEntriesByID,
		},
		Components: ComponentsConfig{
			GeneralEntriesTitle: "General",
			EntryIndent:         2,
		},
	}
}
