package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// FlagValues is the destination of the command-line flags bound by
// [BindFlags]. Call [FlagValues.Config] after the flag set was parsed.
type FlagValues struct {
	fs *pflag.FlagSet

	serverAddress  NetAddress
	dsn            string
	apiAddress     string
	budgetID       string
	requestTimeout time.Duration
	syncInterval   time.Duration
	retryCount     int
	deltaSync      bool
	logLevel       string
	logFile        string
	configPath     string
}

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-a, --address          browser UI address in format [host]:[port]
//	-d, --dsn              cache database DSN (SQLite path or postgres:// URL)
//	    --api-address      budgeting API base URL
//	-b, --budget           budget id ("last-used" by default)
//	    --request-timeout  outbound request timeout (e.g., "30s", "1m")
//	    --retry-count      retries on 429 and 5xx responses
//	    --sync-interval    background sync period (e.g., "5m")
//	    --delta            use incremental refreshes
//	    --log-level        zerolog level name
//	    --log-file         client log file path
//	-c, --config           JSON or YAML file path with configs
func BindFlags(fs *pflag.FlagSet) *FlagValues {
	v := &FlagValues{fs: fs}

	fs.VarP(&v.serverAddress, "address", "a", "Browser UI address host:port")
	fs.StringVarP(&v.dsn, "dsn", "d", "", "Cache database DSN")
	fs.StringVar(&v.apiAddress, "api-address", "", "Budgeting API base URL")
	fs.StringVarP(&v.budgetID, "budget", "b", "", "Budget id")
	fs.DurationVar(&v.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&v.retryCount, "retry-count", 0, "Retries on throttling and server errors")
	fs.DurationVar(&v.syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	fs.BoolVar(&v.deltaSync, "delta", false, "Use incremental refreshes")
	fs.StringVar(&v.logLevel, "log-level", "", "Log level")
	fs.StringVar(&v.logFile, "log-file", "", "Log file path")
	fs.StringVarP(&v.configPath, "config", "c", "", "JSON or YAML config file path")

	return v
}

// Config converts the parsed flag values to a partial [StructuredConfig].
// A nil receiver yields a nil config.
func (v *FlagValues) Config() *StructuredConfig {
	if v == nil {
		return nil
	}

	return &StructuredConfig{
		Log: Log{
			Level: v.logLevel,
			File:  v.logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: v.dsn,
			},
		},
		Server: Server{
			HTTPAddress: v.serverAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    v.apiAddress,
			BudgetID:       v.budgetID,
			RequestTimeout: v.requestTimeout,
			RetryCount:     v.retryCount,
		},
		Workers: Workers{
			SyncInterval: v.syncInterval,
			DeltaSync:    v.deltaSync,
		},
		JSONFilePath: v.configPath,
		zeros: zeroValues{
			retryCount: v.changed("retry-count") && v.retryCount == 0,
			deltaSync:  v.changed("delta") && !v.deltaSync,
		},
	}
}

func (v *FlagValues) changed(name string) bool {
	return v.fs != nil && v.fs.Changed(name)
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
