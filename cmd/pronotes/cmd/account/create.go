// cmd/pronotes/cmd/account/create.go
package account

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pronotes/cmd/pronotes/cmd/types"
	"pronotes/internal/app"
	domain "pronotes/internal/domain/account"
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new account",
	Long: `Create a new account on this device.

Creating an account does not log it in; run "pronotes shell" and log in
afterwards.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		application := cmd.Context().Value(types.AppKey).(*app.App)
		if application == nil {
			return fmt.Errorf("application not initialized")
		}

		fmt.Println("=== New account ===")
		fmt.Println()

		fmt.Print("Username: ")
		var username string
		_, _ = fmt.Scanln(&username)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("passwords do not match")
		}

		acc, err := application.Session.SignUp(cmd.Context(), username, string(password))
		if err != nil {
			if errors.Is(err, domain.ErrUsernameTaken) {
				return fmt.Errorf("username %q is already taken", username)
			}
			return fmt.Errorf("create account: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Account %q created! Login now: pronotes shell\n", acc.Username)

		return nil
	},
}
