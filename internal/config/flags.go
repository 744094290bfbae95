package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the client flags from args (without the program name)
// into a sparse [StructuredConfig]; unset flags stay zero so they do not
// override other sources.
//
// Flags:
//
//	-a API address in format [host]:[port]
//	-graphql-path GraphQL endpoint path
//	-request-timeout request timeout (e.g., "10s")
//	-token API bearer token
//	-d database DSN
//	-driver sqlite driver (sqlite3 or sqlite)
//	-c/-config json file path with configs
//	-sync-interval background refresh interval (e.g., "1m")
//	-page-size rows per page
//	-log-dir log file directory
func ParseFlags(args []string) (*StructuredConfig, error) {
	var apiAddress NetAddress
	var graphQLPath string
	var requestTimeout time.Duration
	var apiToken string
	var databaseDSN string
	var driver string
	var jsonConfigPath string
	var syncInterval time.Duration
	var pageSize int
	var logDir string

	fs := flag.NewFlagSet("pos-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&apiAddress, "a", "API address host:port")
	fs.StringVar(&graphQLPath, "graphql-path", "", "GraphQL endpoint path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&apiToken, "token", "", "API bearer token")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "SQLite driver: sqlite3 or sqlite")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background refresh interval (e.g., 1m)")
	fs.IntVar(&pageSize, "page-size", 0, "Rows per page")
	fs.StringVar(&logDir, "log-dir", "", "Log file directory")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			APIToken: apiToken,
			LogDir:   logDir,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress.String(),
			GraphQLPath:    graphQLPath,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: driver,
			},
		},
		Workers:      Workers{SyncInterval: syncInterval},
		Sync:         Sync{PageSize: pageSize},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
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
