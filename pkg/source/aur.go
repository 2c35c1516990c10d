// pkg/source/aur.go
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// AURSource queries the Arch User Repository through the first installed
// helper from its probe list
type AURSource struct {
	run     Runner
	logger  *log.Logger
	helpers []string
}

// NewAURSource creates a new AUR source adapter
func NewAURSource(cfg *Config) *AURSource {
	cfg = cfg.defaults()
	return &AURSource{
		run:     cfg.Runner,
		logger:  cfg.Logger,
		helpers: cfg.AURHelpers,
	}
}

// Name returns the source identifier
func (s *AURSource) Name() SourceType {
	return SourceAUR
}

// IsAvailable checks if any configured AUR helper exists on this system
func (s *AURSource) IsAvailable() bool {
	_, ok := s.Helper()
	return ok
}

// Helper returns the first configured helper found in PATH
func (s *AURSource) Helper() (string, bool) {
	for _, helper := range s.helpers {
		if _, err := s.run.LookPath(helper); err == nil {
			return helper, true
		}
	}
	return "", false
}

// Search resolves a helper and runs an AUR-only search through it. A
// system without any helper installed yields an empty result and a
// warning rather than an error.
func (s *AURSource) Search(ctx context.Context, term string) ([]PackageInfo, error) {
	helper, ok := s.Helper()
	if !ok {
		s.logger.Warn("no AUR helper found, skipping AUR search",
			"tried", strings.Join(s.helpers, ", "))
		return nil, nil
	}

	s.logger.Debug("searching", "source", SourceAUR, "helper", helper, "term", term)

	out, err := s.run.Output(ctx, helper, "-Ss", "--aur", term)
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", helper, err)
	}
	return parseRepoLines(string(out), "aur"), nil
}
