// cmd/pronotes/cmd/note/rm.go
package note

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var RemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Long:  `Delete a note by id. Deleting an id that does not exist is a no-op.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", args[0])
		}

		application, err := login(cmd)
		if err != nil {
			return err
		}

		if err := application.Session.DeleteNote(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Note %d deleted\n", id)

		return nil
	},
}
