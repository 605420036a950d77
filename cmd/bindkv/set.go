// Set command for the bindkv CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a raw value at a key",
	Long: `Set writes the value bytes at the given key, overwriting any
previous value. The value is stored verbatim; no encoding is applied.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "set:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		if err := store.Set([]byte(key), []byte(value)); err != nil {
			fmt.Fprintln(os.Stderr, "set:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("stored %d bytes at %q\n", len(value), key)
		return nil
	},
}
