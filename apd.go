// apd.go
package apd

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Michael-Sebero/Arch-Package-Dictionary/pkg/source"
)

// Re-export source types for convenience
type (
	SourceType  = source.SourceType
	PackageInfo = source.PackageInfo
	Results     = source.Results
	Config      = source.Config
)

// Re-export source constants
const (
	SourcePacman  = source.SourcePacman
	SourceAUR     = source.SourceAUR
	SourceFlatpak = source.SourceFlatpak
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return source.DefaultConfig()
}

// Searcher fans a single query out to every package source at once and
// joins the partial results
type Searcher struct {
	pacman  source.Source
	aur     source.Source
	flatpak source.Source
	timeout time.Duration
	logger  *log.Logger
}

// NewSearcher creates a searcher over the three standard sources
func NewSearcher(cfg *Config) *Searcher {
	if cfg == nil {
		cfg = source.DefaultConfig()
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = source.DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = source.DefaultLogger()
	}

	return &Searcher{
		pacman:  source.NewPacmanSource(cfg),
		aur:     source.NewAURSource(cfg),
		flatpak: source.NewFlatpakSource(cfg),
		timeout: timeout,
		logger:  logger,
	}
}

// Sources returns the searcher's sources in display order
func (s *Searcher) Sources() []source.Source {
	return []source.Source{s.pacman, s.aur, s.flatpak}
}

// Search queries all sources concurrently and joins their results. A
// source that fails, is missing, or exceeds the per-source timeout
// degrades to an empty list with a logged warning; Search itself only
// fails on an unusable query.
func (s *Searcher) Search(ctx context.Context, term string) (*Results, error) {
	if strings.TrimSpace(term) == "" {
		return nil, &Error{Op: "search", Err: ErrEmptyQuery}
	}

	res := &Results{}
	slots := []struct {
		src source.Source
		dst *[]PackageInfo
	}{
		{s.pacman, &res.Pacman},
		{s.aur, &res.AUR},
		{s.flatpak, &res.Flatpak},
	}

	var wg sync.WaitGroup
	for _, slot := range slots {
		wg.Add(1)
		go func(src source.Source, dst *[]PackageInfo) {
			defer wg.Done()
			*dst = s.collect(ctx, src, term)
		}(slot.src, slot.dst)
	}
	wg.Wait()

	return res, nil
}

// outcome carries one source's result or failure to its collector
type outcome struct {
	pkgs []PackageInfo
	err  error
}

// collect runs one source query in its own goroutine and waits out the
// per-source bound. The timeout abandons the wait without killing the
// underlying process; a result arriving after it is dropped.
func (s *Searcher) collect(ctx context.Context, src source.Source, term string) []PackageInfo {
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("source crashed: %v", r)}
			}
		}()
		pkgs, err := src.Search(ctx, term)
		done <- outcome{pkgs: pkgs, err: err}
	}()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		if out.err != nil {
			s.logger.Warn("search failed", "source", src.Name(), "err", out.err)
			return nil
		}
		return out.pkgs
	case <-timer.C:
		s.logger.Warn("search timed out", "source", src.Name(), "timeout", s.timeout)
		return nil
	case <-ctx.Done():
		s.logger.Warn("search canceled", "source", src.Name(), "err", ctx.Err())
		return nil
	}
}
