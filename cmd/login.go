// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/authapi"
	"github.com/SOUSSIoumaima/hsurvey-front/internal/roles"
	"github.com/SOUSSIoumaima/hsurvey-front/pkg/guard"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the collaborator",
	Long:  `Authenticate against the configured auth collaborator and print the resolved role and landing path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := getSessionStore(cmd.Context())
		if err != nil {
			return err
		}

		if err := store.Login(cmd.Context(), authapi.Credentials{Email: loginEmail, Password: loginPassword}); err != nil {
			return fmt.Errorf("login failed: %s", store.Snapshot().ErrLogin)
		}

		identity := store.Identity()
		fmt.Printf("Logged in as %s\n", identity.Username)
		fmt.Printf("Canonical role: %s\n", roles.CanonicalRole(identity))
		fmt.Printf("Landing path: %s\n", guard.LandingPath(identity))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
}
