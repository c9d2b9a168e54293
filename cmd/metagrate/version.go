// Version command for the metagrate CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the metagrate release version.
const Version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the metagrate version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("metagrate", Version)
	},
}
