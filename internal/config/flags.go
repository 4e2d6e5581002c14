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

// Flags holds the values of the configuration flags bound on a command.
// Zero values mean "not set" and leave the field to lower-priority sources.
type Flags struct {
	ConfigPath        string
	ServerAddress     string
	RequestTimeout    time.Duration
	DSN               string
	RedisAddress      string
	SnapshotKey       string
	LogFile           string
	MetricsAddress    NetAddress
	ReconcileInterval time.Duration
}

// BindFlags registers all configuration flags on fs and returns the value
// holder they write into.
//
// Flags:
//
//	-c/--config           JSON or YAML config file path
//	-a/--server           Remote Session API base URL
//	--request-timeout     bound for login and forced refresh (e.g. "10s")
//	-d/--db               SQLite database file
//	--redis               Redis host:port (switches the store backend)
//	--snapshot-key        passphrase sealing persisted session blobs
//	--log-file            client log file
//	--metrics-address     host:port for the watch daemon's metrics listener
//	--reconcile-interval  background reconciliation period
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.ConfigPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVarP(&f.ServerAddress, "server", "a", "", "Remote Session API base URL")
	fs.DurationVar(&f.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.StringVarP(&f.DSN, "db", "d", "", "SQLite database file")
	fs.StringVar(&f.RedisAddress, "redis", "", "Redis address host:port")
	fs.StringVar(&f.SnapshotKey, "snapshot-key", "", "Passphrase sealing persisted session data")
	fs.StringVar(&f.LogFile, "log-file", "", "Client log file")
	fs.Var(&f.MetricsAddress, "metrics-address", "Metrics listener host:port")
	fs.DurationVar(&f.ReconcileInterval, "reconcile-interval", 0, "Background reconciliation interval")

	return f
}

func (f *Flags) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:        f.LogFile,
			MetricsAddress: f.MetricsAddress.String(),
		},
		Storage: Storage{
			DB:          DB{DSN: f.DSN},
			Redis:       Redis{Address: f.RedisAddress},
			SnapshotKey: f.SnapshotKey,
		},
		Adapter: Adapter{
			HTTPAddress:    f.ServerAddress,
			RequestTimeout: f.RequestTimeout,
		},
		Workers:  Workers{ReconcileInterval: f.ReconcileInterval},
		FilePath: f.ConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (listen on all interfaces).
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
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
