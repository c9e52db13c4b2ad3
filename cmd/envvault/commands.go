package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Okramjimmy/EnvVault/internal/domain/model"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the vault database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Schema setup already ran in openVault; confirm and report.
		if !vault.Init() {
			return errors.New("vault initialization failed")
		}
		fmt.Printf("vault ready at %s\n", db.Path())
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add KEY VALUE",
	Short: "Add a secret, replacing any existing value for the key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !vault.Add(args[0], args[1]) {
			return fmt.Errorf("failed to add %q", args[0])
		}
		fmt.Printf("added %s\n", args[0])
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Print the raw, unmasked value of a secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		val, ok := vault.GetFull(id)
		if !ok {
			return fmt.Errorf("secret %d not found or unavailable", id)
		}
		fmt.Println(val)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List secrets with masked values (up to 50)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printSummaries(vault.ListAll())
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search secrets by key substring, case-insensitive (up to 20)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printSummaries(vault.Search(args[0]))
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update ID VALUE",
	Short: "Replace the value of a secret by id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !vault.Update(id, args[1]) {
			return fmt.Errorf("failed to update secret %d", id)
		}
		fmt.Printf("updated %d\n", id)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a secret by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !vault.Delete(id) {
			return fmt.Errorf("failed to delete secret %d", id)
		}
		fmt.Printf("deleted %d\n", id)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [FILE]",
	Short: "Import KEY=VALUE lines from a file, or stdin when omitted or -",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 0 || args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read import input: %w", err)
		}

		n := vault.ImportFromEnvText(string(data))
		fmt.Printf("imported %d secrets\n", n)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print all secrets as KEY=\"VALUE\" lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := vault.ExportToEnvText()
		if out != "" {
			fmt.Println(out)
		}
		return nil
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Write all secrets to the shell dotfile and patch shell profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !vault.SyncToShell() {
			return errors.New("shell sync failed")
		}
		fmt.Printf("synced to %s\n", vault.EnvvaultFilePath())
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the shell dotfile path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(vault.EnvvaultFilePath())
		return nil
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func printSummaries(summaries []model.SecretSummary) {
	if len(summaries) == 0 {
		fmt.Println("no secrets")
		return
	}
	for _, s := range summaries {
		fmt.Printf("%-6d %-32s %s\n", s.ID, s.Key, s.MaskedValue)
	}
}
