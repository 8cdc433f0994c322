// cmd/pronotes/cmd/register.go
package cmd

import (
	"pronotes/cmd/pronotes/cmd/account"
	"pronotes/cmd/pronotes/cmd/note"
)

func init() {
	rootCmd.AddCommand(account.AccountCmd)
	account.AccountCmd.AddCommand(account.CreateCmd)
	account.AccountCmd.AddCommand(account.ListCmd)

	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.AddCmd)
	note.NoteCmd.AddCommand(note.ListCmd)
	note.NoteCmd.AddCommand(note.RemoveCmd)

	rootCmd.AddCommand(shellCmd)
}
