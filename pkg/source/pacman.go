// pkg/source/pacman.go
package source

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

const pacmanBin = "pacman"

// PacmanSource queries the official repositories through pacman
type PacmanSource struct {
	run    Runner
	logger *log.Logger
}

// NewPacmanSource creates a new pacman source adapter
func NewPacmanSource(cfg *Config) *PacmanSource {
	cfg = cfg.defaults()
	return &PacmanSource{
		run:    cfg.Runner,
		logger: cfg.Logger,
	}
}

// Name returns the source identifier
func (s *PacmanSource) Name() SourceType {
	return SourcePacman
}

// IsAvailable checks if pacman exists on this system
func (s *PacmanSource) IsAvailable() bool {
	_, err := s.run.LookPath(pacmanBin)
	return err == nil
}

// Search runs a repository sync search and normalizes the output. No
// matches is an empty result, not an error.
func (s *PacmanSource) Search(ctx context.Context, term string) ([]PackageInfo, error) {
	s.logger.Debug("searching", "source", SourcePacman, "term", term)

	out, err := s.run.Output(ctx, pacmanBin, "-Ss", term)
	if err != nil {
		return nil, fmt.Errorf("running pacman: %w", err)
	}
	return parseRepoLines(string(out), ""), nil
}
