// Package main provides the metagrate CLI: migration of curator-authored
// annotations from an older metadata export onto a freshly generated one,
// and a diff of curator tags between two exports.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
