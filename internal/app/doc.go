// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment and builds the concrete credential
// store, API client, and session service, exposing them via the Wire struct
// for commands to use.
package app
