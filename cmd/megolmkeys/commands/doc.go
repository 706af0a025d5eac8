// Package commands defines the megolmkeys CLI and wires dependencies for subcommands.
//
// Commands
//
//   - export   Encrypt the home directory's group sessions to an armored file
//   - import   Decrypt an armored file and load its sessions into the home directory
//
// # Implementation
//
// The root command builds a FileKeyExportStore rooted at --home before any
// subcommand runs, so export and import share one on-disk session store.
package commands
