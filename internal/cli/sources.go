// internal/cli/sources.go
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	apd "github.com/Michael-Sebero/Arch-Package-Dictionary"
	"github.com/Michael-Sebero/Arch-Package-Dictionary/pkg/source"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List package sources",
	Long:  `List the package sources pd searches and whether their backing tools are installed.`,
	RunE:  runSources,
}

func runSources(cmd *cobra.Command, args []string) error {
	searcher := apd.NewSearcher(&apd.Config{
		Logger:     newLogger(),
		AURHelpers: config.AURHelpers,
	})
	printSources(cmd.OutOrStdout(), searcher.Sources())
	return nil
}

// printSources writes one availability row per source
func printSources(w io.Writer, srcs []source.Source) {
	fmt.Fprintf(w, "Search sources:\n")
	for _, src := range srcs {
		fmt.Fprintf(w, "  %s %-8s %s\n", marker(src.IsAvailable()), src.Name(), backing(src))
	}
	fmt.Fprintf(w, "\nUnavailable sources are skipped with a warning at search time.\n")
}

// backing names the tool behind a source; for the AUR that is whichever
// helper resolved
func backing(src source.Source) string {
	if aur, ok := src.(*source.AURSource); ok {
		if helper, ok := aur.Helper(); ok {
			return "backed by " + helper
		}
		return "no helper installed (tried " + strings.Join(config.AURHelpers, ", ") + ")"
	}
	return "backed by " + string(src.Name())
}

func marker(available bool) string {
	if available {
		return "✓"
	}
	return "✗"
}
