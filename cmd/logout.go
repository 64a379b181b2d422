// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the collaborator session",
	Long:  `Invoke the collaborator's logout endpoint. The local session always ends, even when the remote call fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := getSessionStore(cmd.Context())
		if err != nil {
			return err
		}

		store.Logout(cmd.Context())
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
