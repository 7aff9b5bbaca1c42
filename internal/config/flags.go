package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// fieldList is a comma separated list flag. It implements flag.Value.
type fieldList []string

// String joins the list back with commas.
func (l *fieldList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set splits s on commas, trims blanks and appends the items.
func (l *fieldList) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}
	return nil
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a server base URL or host:port
//	-t request timeout (e.g., "15s")
//	-d local cache DSN
//	-c/-config json file path with configs
//	-kdf-iterations PBKDF2 iterations for accounts without a pinned count
//	-sensitive comma separated optional fields to seal (username,url,notes)
//	-auto-lock idle timeout before the vault locks (e.g., "5m", 0 disables)
//	-auto-lock-interval idle check period (e.g., "10s")
//	-log log file path
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-pass-vault", flag.ContinueOnError)

	var serverAddress string
	var requestTimeout time.Duration
	var databaseDSN string
	var jsonConfigPath string
	var kdfIterations int
	var sensitive fieldList
	var autoLockTimeout time.Duration
	var autoLockInterval time.Duration
	var logPath string

	fs.StringVar(&serverAddress, "a", "", "Server base URL or host:port")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "Local cache DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iterations for new accounts")
	fs.Var(&sensitive, "sensitive", "Comma separated optional fields to seal")
	fs.DurationVar(&autoLockTimeout, "auto-lock", 0, "Idle timeout before the vault locks (e.g., 5m)")
	fs.DurationVar(&autoLockInterval, "auto-lock-interval", 0, "Idle check period (e.g., 10s)")
	fs.StringVar(&logPath, "log", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogPath: logPath,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Vault: Vault{
			KDFIterations:   kdfIterations,
			SensitiveFields: sensitive,
		},
		Workers: Workers{
			AutoLockTimeout:  autoLockTimeout,
			AutoLockInterval: autoLockInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
