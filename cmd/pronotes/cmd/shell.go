// cmd/pronotes/cmd/shell.go
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	notecmd "pronotes/cmd/pronotes/cmd/note"
	"pronotes/cmd/pronotes/cmd/types"
	"pronotes/internal/app"
	"pronotes/internal/domain/note"
	"pronotes/internal/domain/session"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive session",
	Long: `Open an interactive session. Log in once and work with notes until
logout or quit; the session lives only as long as the shell process.

Commands:
  signup              create an account (does not log in)
  login               log in with username and password
  login-bio <user>    log in via the device biometric
  switch <user>       switch to another account, no password asked
  accounts            list known accounts
  notes [query]       list the active account's notes, optionally filtered
  add                 create a note (prompts for fields)
  edit <id>           update a note
  rm <id>             delete a note
  whoami              show the active account
  logout              end the session
  quit                leave the shell`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		application := cmd.Context().Value(types.AppKey).(*app.App)
		if application == nil {
			return fmt.Errorf("application not initialized")
		}

		fmt.Println("=== ProNotes ===")
		fmt.Println("Type 'help' for commands, 'quit' to leave.")
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		for {
			prompt(application)
			if !scanner.Scan() {
				break
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			fields := strings.Fields(line)
			if fields[0] == "quit" || fields[0] == "exit" {
				break
			}

			if err := runShellCommand(cmd, application, scanner, fields); err != nil {
				color.New(color.FgRed).Printf("Error: %v\n", err)
			}
		}

		return scanner.Err()
	},
}

func prompt(application *app.App) {
	s := application.Session.Current()
	if s.State == session.StateLoggedIn {
		color.New(color.FgCyan).Printf("%s> ", s.Active.Username)
		return
	}
	fmt.Print("> ")
}

func runShellCommand(cmd *cobra.Command, application *app.App, scanner *bufio.Scanner, fields []string) error {
	ctx := cmd.Context()

	switch fields[0] {
	case "help":
		fmt.Println(cmd.Long)
		return nil

	case "signup":
		username, password, err := promptCredentials(scanner)
		if err != nil {
			return err
		}
		acc, err := application.Session.SignUp(ctx, username, password)
		if err != nil {
			return err
		}
		color.New(color.FgGreen).Printf("Account %q created! Login now.\n", acc.Username)
		return nil

	case "login":
		username, password, err := promptCredentials(scanner)
		if err != nil {
			return err
		}
		if err := application.Session.Login(ctx, username, password); err != nil {
			return err
		}
		color.New(color.FgGreen).Println("Welcome back!")
		return nil

	case "login-bio":
		if len(fields) < 2 {
			return fmt.Errorf("usage: login-bio <username>")
		}
		if err := application.Session.LoginBiometric(ctx, fields[1]); err != nil {
			return err
		}
		color.New(color.FgGreen).Println("Unlocked!")
		return nil

	case "switch":
		if len(fields) < 2 {
			return fmt.Errorf("usage: switch <username>")
		}
		return application.Session.Switch(ctx, fields[1])

	case "accounts":
		accounts, err := application.Session.Accounts(ctx)
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			fmt.Printf("  %s\n", acc.Username)
		}
		return nil

	case "notes":
		query := strings.Join(fields[1:], " ")
		notecmd.RenderNotes(note.Search(application.Session.VisibleNotes(), query))
		return nil

	case "add":
		return saveNoteInteractive(cmd, application, scanner, 0)

	case "edit":
		if len(fields) < 2 {
			return fmt.Errorf("usage: edit <id>")
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", fields[1])
		}
		return saveNoteInteractive(cmd, application, scanner, id)

	case "rm":
		if len(fields) < 2 {
			return fmt.Errorf("usage: rm <id>")
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", fields[1])
		}
		return application.Session.DeleteNote(ctx, id)

	case "whoami":
		s := application.Session.Current()
		if s.State != session.StateLoggedIn {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Println(s.Active.Username)
		return nil

	case "logout":
		application.Session.Logout()
		return nil

	default:
		return fmt.Errorf("unknown command %q, try 'help'", fields[0])
	}
}

func promptCredentials(scanner *bufio.Scanner) (string, string, error) {
	fmt.Print("Username: ")
	var username string
	if scanner.Scan() {
		username = strings.TrimSpace(scanner.Text())
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", "", fmt.Errorf("read password: %w", err)
	}
	fmt.Println()

	return username, string(password), nil
}

func saveNoteInteractive(cmd *cobra.Command, application *app.App, scanner *bufio.Scanner, id int64) error {
	readLine := func(label string) string {
		fmt.Printf("%s: ", label)
		if !scanner.Scan() {
			return ""
		}
		return scanner.Text()
	}

	draft := note.Draft{
		ID:    id,
		Title: readLine("Title"),
		Body:  readLine("Body"),
		Color: readLine("Color (empty for default)"),
	}
	if image := readLine("Image URI (optional)"); image != "" {
		draft.Image = &image
	}

	saved, err := application.Session.SaveNote(cmd.Context(), draft)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("Note saved (id %d)\n", saved.ID)
	return nil
}
