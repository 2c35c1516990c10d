// internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	apd "github.com/Michael-Sebero/Arch-Package-Dictionary"
	"github.com/Michael-Sebero/Arch-Package-Dictionary/pkg/core"
	"github.com/Michael-Sebero/Arch-Package-Dictionary/pkg/report"
)

var (
	cfgFile string
	debug   bool
	timeout int
	noPager bool
	config  *core.Config
)

// rootCmd represents the base command; the search term is the only
// positional argument, so searching needs no subcommand
var rootCmd = &cobra.Command{
	Use:   "pd <search-term>",
	Short: "Arch Package Dictionary",
	Long: `pd - Arch Package Dictionary

Searches the official repositories, the AUR, and Flathub at the same
time and shows every match in one listing.`,
	Version:       version,
	Args:          cobra.MinimumNArgs(1),
	RunE:          runSearch,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pd/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Search flags
	rootCmd.Flags().IntVar(&timeout, "timeout", 0, "per-source timeout in seconds")
	rootCmd.Flags().BoolVar(&noPager, "no-pager", false, "print results directly instead of paging")

	// Add commands
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
	if timeout > 0 {
		config.TimeoutSeconds = timeout
	}
	if noPager {
		config.NoPager = true
	}
}

// newLogger builds the stderr logger; debug mode lowers the level so
// the per-source command traces show up
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if config.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func runSearch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	term := strings.Join(args, " ")
	searcher := apd.NewSearcher(&apd.Config{
		Logger:     newLogger(),
		Timeout:    config.Timeout(),
		AURHelpers: config.AURHelpers,
	})

	res, err := searcher.Search(cmd.Context(), term)
	if err != nil {
		return fmt.Errorf("searching packages: %w", err)
	}

	pager := &report.Pager{
		Command: config.Pager,
		Disable: config.NoPager,
	}
	return pager.Display(cmd.Context(), report.Build(res))
}
