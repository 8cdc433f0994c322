package note

import (
	"github.com/spf13/cobra"
)

// NoteCmd is the parent command for note operations. Every subcommand
// establishes a session first: notes are always scoped to the logged-in
// account.
var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long:  `Create, list and delete the notes of an account.`,
}
