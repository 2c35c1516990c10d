package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestPacmanSearch(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{
		installed: map[string]bool{"pacman": true},
		outputs: map[string]string{
			"pacman -Ss bash": "core/bash 5.2.15-1\n    The GNU Bourne Again shell\ncore/bash-completion 2.11-3\n    Programmable completion\n",
		},
	}
	src := NewPacmanSource(&Config{Runner: run, Logger: log.New(io.Discard)})

	pkgs, err := src.Search(context.Background(), "bash")
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	require.Equal(t, "bash", pkgs[0].Name)
	require.Equal(t, "5.2.15-1", pkgs[0].Version)
	require.Equal(t, "bash-completion", pkgs[1].Name)
	require.Equal(t, []string{"pacman -Ss bash"}, run.calls)
}

func TestPacmanSearchNoMatches(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{installed: map[string]bool{"pacman": true}}
	src := NewPacmanSource(&Config{Runner: run, Logger: log.New(io.Discard)})

	pkgs, err := src.Search(context.Background(), "nosuchpackage")
	require.NoError(t, err)
	require.Empty(t, pkgs)
}

func TestPacmanSearchRunnerError(t *testing.T) {
	t.Parallel()

	run := &fakeRunner{err: errors.New("fork failed")}
	src := NewPacmanSource(&Config{Runner: run, Logger: log.New(io.Discard)})

	_, err := src.Search(context.Background(), "bash")
	require.Error(t, err)
	require.Contains(t, err.Error(), "running pacman")
}

func TestPacmanIsAvailable(t *testing.T) {
	t.Parallel()

	src := NewPacmanSource(&Config{
		Runner: &fakeRunner{installed: map[string]bool{"pacman": true}},
		Logger: log.New(io.Discard),
	})
	require.True(t, src.IsAvailable())
	require.Equal(t, SourcePacman, src.Name())

	src = NewPacmanSource(&Config{Runner: &fakeRunner{}, Logger: log.New(io.Discard)})
	require.False(t, src.IsAvailable())
}

func TestPacmanSearchLogsDebugCommand(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	run := &fakeRunner{installed: map[string]bool{"pacman": true}}
	src := NewPacmanSource(&Config{Runner: run, Logger: logger})

	_, err := src.Search(context.Background(), "bash")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "pacman")
}
