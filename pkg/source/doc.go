// pkg/source/doc.go

// Package source adapts external package tools into a uniform search
// interface. Each adapter invokes one tool (pacman, an AUR helper, or
// flatpak), captures its text output, and normalizes it into
// PackageInfo records.
//
// Adapters degrade instead of failing: a tool that is not installed
// produces an empty result and a logged warning, and a tool that exits
// non-zero after starting still has its output parsed, since package
// tools use the exit status to signal "no matches".
package source
