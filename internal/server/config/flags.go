package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gophsettings/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics bind address (e.g., ":9090")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-k int      bcrypt cost
//	-n string   nickname allow-list pattern
//	-l string   log level
//	-f string   log format (json|text)
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-m", "-d", "-s", "-k", "-n", "-l", "-f"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "address and port to expose metrics")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	fs.IntVar(&cfg.BcryptCost, "k", cfg.BcryptCost, "bcrypt cost")
	fs.StringVar(&cfg.NicknamePattern, "n", cfg.NicknamePattern, "nickname allow-list pattern")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	return fs.Parse(args)
}
