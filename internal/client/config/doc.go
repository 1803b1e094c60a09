// Package config loads runtime configuration for the settings CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the settings gRPC endpoint
//	-t int      request timeout (seconds)
//	-s string   path of the local session database
//
// # JSON schema
//
// Durations are strings accepted by time.ParseDuration:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "session_db": "session.db"
//	}
package config
