// cmd/pronotes/cmd/note/add.go
package note

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	domain "pronotes/internal/domain/note"
)

var (
	addID    int64
	addTitle string
	addBody  string
	addImage string
	addColor string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create or update a note",
	Long: `Create a note for the logged-in account, or update an existing one
by passing --id.

The color may be any value; the editor palette is ` + fmt.Sprint(domain.Palette) + `.
An omitted color falls back to the default dark shade.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		application, err := login(cmd)
		if err != nil {
			return err
		}

		draft := domain.Draft{
			ID:    addID,
			Title: addTitle,
			Body:  addBody,
			Color: addColor,
		}
		if addImage != "" {
			draft.Image = &addImage
		}

		saved, err := application.Session.SaveNote(cmd.Context(), draft)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyTitle) {
				return fmt.Errorf("please add a title")
			}
			return fmt.Errorf("save note: %w", err)
		}

		fmt.Println()
		fmt.Printf("✅ Note saved (id %d)\n", saved.ID)

		return nil
	},
}

func init() {
	AddCmd.Flags().Int64Var(&addID, "id", 0, "id of an existing note to update")
	AddCmd.Flags().StringVarP(&addTitle, "title", "t", "", "note title (required)")
	AddCmd.Flags().StringVarP(&addBody, "body", "b", "", "note body")
	AddCmd.Flags().StringVar(&addImage, "image", "", "URI of a cover image, stored verbatim")
	AddCmd.Flags().StringVarP(&addColor, "color", "c", "", "note color")
}
