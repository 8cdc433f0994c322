package account

import (
	"github.com/spf13/cobra"
)

// AccountCmd is the parent command for account operations.
var AccountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage accounts",
	Long:  `Create accounts and list the accounts known on this device.`,
}
