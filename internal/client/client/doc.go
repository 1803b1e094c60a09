// Package client contains the client-side building blocks of the settings
// CLI.
//
// GRPCClient owns the connection to the settings server, attaches the
// current access token to every call through a unary interceptor and maps
// transport failures to ErrUnavailable and ErrUnauthorized. Other status
// errors (validation, duplicates, unknown tags or zones) are returned
// wrapped so callers can still read their status details.
//
// InitDatabase opens the local SQLite database that keeps the session
// between runs and applies its embedded goose migrations.
package client
