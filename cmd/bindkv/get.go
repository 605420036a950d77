// Get command for the bindkv CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value stored at a key",
	Long: `Get reads the raw value stored at the given key.

Keys are the derived strings the binding framework writes, for example:
  bindkv get "app::foo_uint_u64"
  bindkv get "app::bar_string_string::0:1"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		store, err := attachStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "get:", err)
			os.Exit(exitSysError)
		}
		defer store.Detach()

		value, ok, err := store.Get([]byte(key))
		if err != nil {
			fmt.Fprintln(os.Stderr, "get:", err)
			os.Exit(exitSysError)
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "no value stored at %q\n", key)
			os.Exit(exitUserError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(entry{Key: key, Value: string(value)}, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(string(value))
		return nil
	},
}
