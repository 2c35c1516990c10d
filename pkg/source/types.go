// pkg/source/types.go
package source

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SourceType identifies one package-information provider
type SourceType string

const (
	// SourcePacman is the official repository index queried through pacman
	SourcePacman SourceType = "pacman"
	// SourceAUR is the Arch User Repository, reached through a helper tool
	SourceAUR SourceType = "aur"
	// SourceFlatpak is the Flathub application store queried through flatpak
	SourceFlatpak SourceType = "flatpak"
)

// Source defines the interface every package source implements
type Source interface {
	// Search queries the source and returns matches in emission order.
	// A source whose backing tool is not installed returns an empty
	// result, not an error.
	Search(ctx context.Context, term string) ([]PackageInfo, error)

	// Name returns the source identifier
	Name() SourceType

	// IsAvailable checks if the backing tool exists on this system
	IsAvailable() bool
}

// PackageInfo is one normalized package entry
type PackageInfo struct {
	Name        string // Display name; flatpak entries append the application id
	Version     string // Version string, UnknownVersion when the source has none
	Description string // One-line summary, NoDescription when blank
}

// Results holds the per-source record lists of one aggregated search.
// Each slice preserves the order its source emitted; the lists are never
// merged or deduplicated against each other.
type Results struct {
	Pacman  []PackageInfo
	AUR     []PackageInfo
	Flatpak []PackageInfo
}

// Field defaults substituted during normalization
const (
	UnknownVersion = "Unknown"
	NoDescription  = "No description."
)

// DefaultTimeout bounds how long the aggregator waits on each source
const DefaultTimeout = 5 * time.Second

// DefaultAURHelpers is the probe order for AUR helper tools
var DefaultAURHelpers = []string{"paru", "yay"}

// Config holds the configuration shared by all source adapters
type Config struct {
	Runner     Runner        // Command execution, nil for the system runner
	Logger     *log.Logger   // Warnings when a source degrades, nil for stderr
	Timeout    time.Duration // Per-source search bound
	AURHelpers []string      // AUR helper probe order
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Runner:     SystemRunner{},
		Logger:     DefaultLogger(),
		Timeout:    DefaultTimeout,
		AURHelpers: DefaultAURHelpers,
	}
}

// DefaultLogger returns the stderr logger adapters fall back to
func DefaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
}

// defaults returns a copy of cfg with every unset field filled in, so
// adapters never have to nil-check
func (c *Config) defaults() *Config {
	out := Config{}
	if c != nil {
		out = *c
	}
	if out.Runner == nil {
		out.Runner = SystemRunner{}
	}
	if out.Logger == nil {
		out.Logger = DefaultLogger()
	}
	if out.Timeout == 0 {
		out.Timeout = DefaultTimeout
	}
	if len(out.AURHelpers) == 0 {
		out.AURHelpers = DefaultAURHelpers
	}
	return &out
}
