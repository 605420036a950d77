// Package bindkv holds module-wide metadata for the bindkv framework.
package bindkv

// Version is the bindkv release version.
const Version = "v0.1.0"
