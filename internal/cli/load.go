package cli

import (
	goerrors "errors"
	"path/filepath"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/config"
	"github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/project"
)

// loadConfig loads the configuration stored in the changelog directory.
func loadConfig() (*changelog.Config, error) {
	cfg, err := config.Load(flagPath)
	if err != nil {
		return nil, errors.ConfigParseError(filepath.Join(flagPath, config.Filename), err)
	}
	return cfg, nil
}

// newResolver builds the component resolver chain: configured components
// first, then Go modules discovered in the project tree. The project root is
// taken to be the parent of the changelog directory.
func newResolver(cfg *changelog.Config) changelog.ComponentResolver {
	root := filepath.Dir(flagPath)
	workspace, err := project.NewGoWorkspaceResolver(root)
	if err != nil {
		// Workspace scanning is best effort; undeclared components still
		// fail later with a precise error.
		return project.NewConfigResolver(cfg)
	}
	return project.NewChainResolver(project.NewConfigResolver(cfg), workspace)
}

// loadChangelog loads configuration and the full changelog tree.
func loadChangelog() (*changelog.Config, *changelog.Changelog, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	c, err := changelog.Load(cfg, flagPath, newResolver(cfg))
	if err != nil {
		return nil, nil, mapLoadError(err)
	}
	return cfg, c, nil
}

// mapLoadError converts loader errors into categorized CLI errors.
func mapLoadError(err error) error {
	var (
		notDefined  *changelog.ComponentNotDefinedError
		expectedDir *changelog.ExpectedDirError
		ioErr       *changelog.IOError
	)
	switch {
	case goerrors.As(err, &notDefined):
		return errors.ComponentNotDefined(notDefined.ID)
	case goerrors.As(err, &expectedDir):
		return errors.ChangelogDirNotFound(expectedDir.Path)
	case goerrors.As(err, &ioErr):
		return errors.Wrap(err, errors.Runtime)
	default:
		return errors.Wrap(err, errors.Input)
	}
}
