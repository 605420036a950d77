// List command for the bindkv CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List stored keys",
	Long: `List prints all stored keys in lexicographic order, optionally
restricted to those with the given prefix.

Example:
  bindkv list
  bindkv list "app::"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var prefix string
		if len(args) == 1 {
			prefix = args[0]
		}

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		found, err := store.Keys([]byte(prefix))
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			entries := make([]entry, 0, len(found))
			for _, k := range found {
				entries = append(entries, entry{Key: string(k)})
			}
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, k := range found {
			fmt.Println(string(k))
		}
		return nil
	},
}
