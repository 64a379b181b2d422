// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/roles"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/guard"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session identity",
	Long:  `Run the silent session check against the collaborator and print the resolved identity, if any.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := getSessionStore(cmd.Context())
		if err != nil {
			return err
		}

		store.AutoLogin(cmd.Context())

		identity := store.Identity()
		if identity == nil {
			fmt.Println("Not authenticated")
			return nil
		}

		fmt.Printf("Username: %s\n", identity.Username)
		fmt.Printf("Organization: %s\n", identity.OrganizationID)
		fmt.Printf("Roles: %v\n", identity.Roles)
		fmt.Printf("Canonical role: %s\n", roles.CanonicalRole(identity))
		fmt.Printf("Landing path: %s\n", guard.LandingPath(identity))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
