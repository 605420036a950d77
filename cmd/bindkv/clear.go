// Clear command for the bindkv CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear <key>",
	Short: "Remove the value stored at a key",
	Long:  `Clear removes the value at the given key. Clearing an absent key succeeds.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "clear:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		if err := store.Clear([]byte(key)); err != nil {
			fmt.Fprintln(os.Stderr, "clear:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("cleared %q\n", key)
		return nil
	},
}
