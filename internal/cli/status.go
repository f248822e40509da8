package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster with each player's status",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ListResult

			if err := client.Get(cmd.Context(), "/api/status", &result); err != nil {
				return err
			}
			if result.Players == nil {
				result.Players = []Player{}
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newUpdateCmd() *cobra.Command {
	var user, pin string
	var active bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Set your active status",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}
			if pin == "" {
				var err error
				if pin, err = promptSecret(cmd.ErrOrStderr(), "PIN"); err != nil {
					return err
				}
			}

			req := map[string]any{
				"action":   "update",
				"username": user,
				"pin":      pin,
				"active":   active,
			}
			var result UpdateResult

			if err := client.Post(cmd.Context(), "/api/status", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pin, "pin", "", "Your PIN (prompted if omitted)")
	cmd.Flags().BoolVar(&active, "active", false, "Active status: --active=true or --active=false (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("active")

	return cmd
}

func newAddCmd() *cobra.Command {
	var user, pin, adminPIN string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player to the roster (captain only)",
		Long: `Add a player to the roster. If --pin is omitted the server generates a
4-digit PIN. The PIN is printed once and cannot be retrieved later.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}
			admin, err := resolveAdminPIN(cmd.ErrOrStderr(), adminPIN)
			if err != nil {
				return err
			}

			req := map[string]any{
				"action":   "add",
				"adminPin": admin,
				"username": user,
			}
			if pin != "" {
				req["pin"] = pin
			}
			var result AddResult

			if err := client.Post(cmd.Context(), "/api/status", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pin, "pin", "", "PIN for the new player (generated if omitted)")
	cmd.Flags().StringVar(&adminPIN, "admin-pin", "", "Admin PIN (env: R6STATUS_ADMIN_PIN, prompted if unset)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newRemoveCmd() *cobra.Command {
	var user, adminPIN string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a player from the roster (captain only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}
			admin, err := resolveAdminPIN(cmd.ErrOrStderr(), adminPIN)
			if err != nil {
				return err
			}

			req := map[string]any{
				"action":   "remove",
				"adminPin": admin,
				"username": user,
			}
			var result RemoveResult

			if err := client.Post(cmd.Context(), "/api/status", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&adminPIN, "admin-pin", "", "Admin PIN (env: R6STATUS_ADMIN_PIN, prompted if unset)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
