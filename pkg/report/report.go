// pkg/report/report.go

// Package report renders aggregated search results into the terminal
// listing, paging it through an external pager when it would overflow
// the screen.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Michael-Sebero/Arch-Package-Dictionary/pkg/source"
)

// section pairs one source's records with its display attributes
type section struct {
	title string
	style lipgloss.Style
	pkgs  []source.PackageInfo
}

// Build renders the full report: a per-source count summary first, then
// one block per source that returned anything, in fixed source order.
func Build(res *source.Results) string {
	if res == nil {
		res = &source.Results{}
	}

	sections := []section{
		{title: "Pacman", style: pacmanStyle, pkgs: res.Pacman},
		{title: "AUR", style: aurStyle, pkgs: res.AUR},
		{title: "Flatpak", style: flatpakStyle, pkgs: res.Flatpak},
	}

	var b strings.Builder
	for i, sec := range sections {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(labelStyle.Render(sec.title+":") + " " + countPackages(len(sec.pkgs)))
	}
	b.WriteString("\n\n")

	for _, sec := range sections {
		if len(sec.pkgs) == 0 {
			continue
		}

		header := sec.title + " Results:"
		b.WriteString(headerStyle.Render(header))
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("=", len(header)))
		b.WriteByte('\n')

		for _, pkg := range sec.pkgs {
			b.WriteString(sec.style.Render(pkg.Name))
			b.WriteByte('\n')
			b.WriteString("  " + pkg.Description + "\n")
			b.WriteString("  " + labelStyle.Render("Version:") + " " + pkg.Version + "\n\n")
		}
	}

	return b.String()
}

// countPackages formats a count with singular handling
func countPackages(n int) string {
	if n == 1 {
		return "1 package"
	}
	return fmt.Sprintf("%d packages", n)
}
