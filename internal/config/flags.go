package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-password-hash-cost bcrypt cost
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-allowed-origin CORS origin allowed to call the API
//	-server-url base URL of the server used by the client
//	-cache-dsn client cache SQLite file
//	-sync-interval client cache refresh interval
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var passwordHashCost int
	var requestTimeout time.Duration
	var allowedOrigin string
	var serverURL string
	var cacheDSN string
	var syncInterval time.Duration

	fs := flag.NewFlagSet("go-todo-keeper", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost for password hashes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&allowedOrigin, "allowed-origin", "", "Allowed CORS origin")
	fs.StringVar(&serverURL, "server-url", "", "Server base URL used by the client")
	fs.StringVar(&cacheDSN, "cache-dsn", "", "Client cache SQLite file")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Client cache refresh interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			PasswordHashCost: passwordHashCost,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Cache: Cache{DSN: cacheDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigin:  allowedOrigin,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
