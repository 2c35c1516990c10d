package source

import (
	"fmt"
	"strings"
)

// parseRepoLines parses "repo/name version" output from pacman-style
// tools. Each matching line is followed by an indented description line,
// which is consumed whether or not it is blank. When prefix is set, only
// lines from that repository are considered.
func parseRepoLines(out, prefix string) []PackageInfo {
	if out == "" {
		return nil
	}

	needle := "/"
	if prefix != "" {
		needle = prefix + "/"
	}

	lines := strings.Split(out, "\n")
	var pkgs []PackageInfo
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !strings.Contains(line, needle) {
			continue
		}

		_, rest, ok := strings.Cut(line, "/")
		if !ok {
			continue
		}
		name, versionPart, ok := strings.Cut(rest, " ")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		description := NoDescription
		if i+1 < len(lines) {
			i++
			if d := strings.TrimSpace(lines[i]); d != "" {
				description = d
			}
		}

		pkgs = append(pkgs, PackageInfo{
			Name:        name,
			Version:     parseVersion(strings.TrimSpace(versionPart)),
			Description: description,
		})
	}
	return pkgs
}

// parseVersion extracts a well-formed parenthesized version from the
// text after the package name, falling back to the verbatim text when
// the parentheses are missing or malformed.
func parseVersion(raw string) string {
	version := raw
	start := strings.Index(raw, "(")
	end := strings.Index(raw, ")")
	if start >= 0 && end >= 0 && start < end {
		version = raw[start+1 : end]
	}
	if version == "" {
		version = UnknownVersion
	}
	return version
}

// parseColumnRows parses flatpak's tab-separated search table. The
// header row is always dropped, and rows are re-filtered by name because
// flatpak also matches against descriptions.
func parseColumnRows(out, term string) []PackageInfo {
	if out == "" {
		return nil
	}

	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		return nil
	}

	needle := strings.ToLower(term)
	var pkgs []PackageInfo
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			continue
		}

		name := strings.TrimSpace(fields[0])
		if !strings.Contains(strings.ToLower(name), needle) {
			continue
		}

		version := strings.TrimSpace(fields[2])
		if version == "" {
			version = UnknownVersion
		}
		description := strings.TrimSpace(fields[3])
		if description == "" {
			description = NoDescription
		}

		pkgs = append(pkgs, PackageInfo{
			Name:        fmt.Sprintf("%s (%s)", name, strings.TrimSpace(fields[1])),
			Version:     version,
			Description: description,
		})
	}
	return pkgs
}
