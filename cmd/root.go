// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL    string
	configDoc string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hsurvey-front",
	Short: "HSurvey front gateway",
	Long:  `HSurvey front gateway serving the survey administration views and auth flow.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "collaborator base URL, overrides the runtime config document")
	rootCmd.PersistentFlags().StringVar(&configDoc, "config", "config.json", "path or URL of the runtime config document")
}
