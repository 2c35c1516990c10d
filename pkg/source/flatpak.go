// pkg/source/flatpak.go
package source

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

const flatpakBin = "flatpak"

// flatpakColumns requests exactly the four fields the normalizer expects
const flatpakColumns = "--columns=name,application,version,description"

// FlatpakSource queries the Flathub application store through flatpak
type FlatpakSource struct {
	run    Runner
	logger *log.Logger
}

// NewFlatpakSource creates a new flatpak source adapter
func NewFlatpakSource(cfg *Config) *FlatpakSource {
	cfg = cfg.defaults()
	return &FlatpakSource{
		run:    cfg.Runner,
		logger: cfg.Logger,
	}
}

// Name returns the source identifier
func (s *FlatpakSource) Name() SourceType {
	return SourceFlatpak
}

// IsAvailable checks if flatpak exists on this system
func (s *FlatpakSource) IsAvailable() bool {
	_, err := s.run.LookPath(flatpakBin)
	return err == nil
}

// Search runs a flatpak search and normalizes the column output. A
// system without flatpak installed yields an empty result and a warning
// rather than an error.
func (s *FlatpakSource) Search(ctx context.Context, term string) ([]PackageInfo, error) {
	if !s.IsAvailable() {
		s.logger.Warn("flatpak not found, skipping Flatpak search")
		return nil, nil
	}

	s.logger.Debug("searching", "source", SourceFlatpak, "term", term)

	out, err := s.run.Output(ctx, flatpakBin, "search", flatpakColumns, term)
	if err != nil {
		return nil, fmt.Errorf("running flatpak: %w", err)
	}
	return parseColumnRows(string(out), term), nil
}
