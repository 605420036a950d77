// Package main provides the bindkv CLI, a raw key/value inspection tool for
// SQLite-backed bindkv stores. The binding framework itself exposes no CLI;
// this tool operates below it, on derived keys and encoded values.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
