// cmd/pronotes/cmd/note/login.go
package note

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pronotes/cmd/pronotes/cmd/types"
	"pronotes/internal/app"
)

var useBiometric bool

// login establishes the session for a one-shot note command. The session
// lives exactly as long as the process; nothing is remembered between
// invocations.
func login(cmd *cobra.Command) (*app.App, error) {
	application, _ := cmd.Context().Value(types.AppKey).(*app.App)
	if application == nil {
		return nil, fmt.Errorf("application not initialized")
	}

	fmt.Print("Username: ")
	var username string
	_, _ = fmt.Scanln(&username)

	if useBiometric {
		if err := application.Session.LoginBiometric(cmd.Context(), username); err != nil {
			return nil, fmt.Errorf("biometric login: %w", err)
		}
		return application, nil
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	fmt.Println()

	if err := application.Session.Login(cmd.Context(), username, string(password)); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return application, nil
}

func init() {
	NoteCmd.PersistentFlags().BoolVar(&useBiometric, "biometric", false, "log in via the device biometric instead of a password")
}
