// cmd/pronotes/cmd/account/list.go
package account

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pronotes/cmd/pronotes/cmd/types"
	"pronotes/internal/app"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Long:  `List every account known on this device, in signup order.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		application := cmd.Context().Value(types.AppKey).(*app.App)
		if application == nil {
			return fmt.Errorf("application not initialized")
		}

		accounts, err := application.Session.Accounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("list accounts: %w", err)
		}

		if listFormat == "json" {
			usernames := make([]string, len(accounts))
			for i, acc := range accounts {
				usernames[i] = acc.Username
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(usernames)
		}

		if len(accounts) == 0 {
			fmt.Println("No accounts yet. Create one: pronotes account create")
			return nil
		}

		fmt.Printf("Accounts on this device: %d\n\n", len(accounts))
		for i, acc := range accounts {
			fmt.Printf("%d. %s\n", i+1, acc.Username)
		}

		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "output format (simple, json)")
}
