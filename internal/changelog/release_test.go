package changelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVersion(t *testing.T) {
	tests := map[string]struct {
		name    string
		want    string
		wantErr bool
	}{
		"v prefix":       {name: "v0.1.0", want: "0.1.0"},
		"bare version":   {name: "0.1.0", want: "0.1.0"},
		"prerelease":     {name: "v0.1.0-beta.1", want: "0.1.0-beta.1"},
		"longer prefix":  {name: "release-1.2.3", want: "1.2.3"},
		"no digits":      {name: "no-version", wantErr: true},
		"empty":          {name: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := extractVersion(tc.name)
			if tc.wantErr {
				var noVersion *NoVersionError
				require.ErrorAs(t, err, &noVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseReleaseDate(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("default format", func(t *testing.T) {
		date := parseReleaseDate(cfg, "2023-01-01\n\nSummary text.")
		require.NotNil(t, date)
		assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("first matching format wins", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ReleaseDateFormats = []string{"January 2, 2006", "2006-01-02"}
		date := parseReleaseDate(cfg, "July 5, 2023")
		require.NotNil(t, date)
		assert.Equal(t, time.Date(2023, 7, 5, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("no matching format", func(t *testing.T) {
		assert.Nil(t, parseReleaseDate(cfg, "Not a date at all"))
	})

	t.Run("empty summary", func(t *testing.T) {
		assert.Nil(t, parseReleaseDate(cfg, ""))
	})
}

func TestReleaseRender(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("empty change set renders heading only", func(t *testing.T) {
		r := &Release{ID: "v0.1.0", Changes: &ChangeSet{}}
		assert.Equal(t, "## v0.1.0", r.render(cfg))
	})

	t.Run("non-empty change set renders body", func(t *testing.T) {
		r := &Release{
			ID: "v0.1.0",
			Changes: &ChangeSet{
				Sections: []*ChangeSetSection{
					{
						ID:      "features",
						Title:   "FEATURES",
						Entries: []*Entry{{Filename: "1.md", ID: 1, Details: "- Feature 1"}},
					},
				},
			},
		}
		assert.Equal(t, "## v0.1.0\n\n### FEATURES\n\n- Feature 1", r.render(cfg))
	})
}
