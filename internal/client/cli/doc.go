// Package cli provides the interactive settings command-line client.
//
// It wires configuration, the local session store, the gRPC client and an
// interactive REPL. A session kept from a previous run is restored on
// start, so the user only logs in again once the token expires.
//
// Key features:
//   - Register / Login / Logout
//   - Show the account; change profile, password, nickname, notifications
//   - Add or remove interest tags and residence zones
//   - List every known tag and zone
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
