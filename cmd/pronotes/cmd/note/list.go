// cmd/pronotes/cmd/note/list.go
package note

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domain "pronotes/internal/domain/note"
)

var (
	listFormat string
	listSearch string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `List the logged-in account's notes, newest first.

With --search, only notes whose title or body contains the query
(case-insensitive) are shown.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		application, err := login(cmd)
		if err != nil {
			return err
		}

		notes := domain.Search(application.Session.VisibleNotes(), listSearch)

		if listFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(notes)
		}

		fmt.Println()
		RenderNotes(notes)

		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "output format (simple, json)")
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "show only notes matching the query in title or body")
}
