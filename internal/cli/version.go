// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pd version " + version)
		fmt.Println("Arch Package Dictionary")
		fmt.Println("https://github.com/Michael-Sebero/Arch-Package-Dictionary")
	},
}
