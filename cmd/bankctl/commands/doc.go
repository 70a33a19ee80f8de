// Package commands defines the bankctl CLI and wires dependencies for subcommands.
//
// Commands
//
//   - register       Create an account and sign in
//   - login          Sign in with email and password
//   - logout         Sign out and clear the stored token
//   - whoami         Print the signed-in user
//   - accounts       List account balances
//   - transactions   List transaction history
//   - transfer       Send money to another user
//   - exchange       Convert between your own currency accounts
//
// # Implementation
//
// The root command builds a dependency graph (credential store, API client,
// session service) before any subcommand runs, so handlers share one app
// context. Amounts are entered as decimals and converted to integer minor
// units at the edge; everything past the flag parsing works in cents.
package commands
