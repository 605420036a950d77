// Version command for the bindkv CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/v26-solutions/bindkv/pkg/bindkv"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bindkv version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bindkv", bindkv.Version)
	},
}
