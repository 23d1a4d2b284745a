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

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a local HTTP API address in format [host]:[port]
//	-s storage kind (memory, file, sqlite)
//	-p storage path
//	-iterations PBKDF2 iteration count
//	-salt key derivation salt
//	-token-sign-key session token signing key
//	-token-issuer session token issuer
//	-request-timeout request timeout (e.g., "10s")
//	-shutdown-timeout graceful shutdown timeout (e.g., "5s")
//	-remote-dsn remote document store DSN
//	-sync-interval remote sync interval (e.g., "5m")
//	-log-level logger level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("secure-store", flag.ContinueOnError)

	var serverAddress NetAddress
	var storageKind, storagePath string
	var iterations int
	var salt string
	var tokenSignKey, tokenIssuer string
	var requestTimeout, shutdownTimeout time.Duration
	var remoteDSN string
	var syncInterval time.Duration
	var logLevel string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&storageKind, "s", "", "Storage kind: memory, file or sqlite")
	fs.StringVar(&storagePath, "p", "", "Storage path")
	fs.IntVar(&iterations, "iterations", 0, "PBKDF2 iteration count")
	fs.StringVar(&salt, "salt", "", "Key derivation salt")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Shutdown timeout (e.g., 5s)")
	fs.StringVar(&remoteDSN, "remote-dsn", "", "Remote document store DSN")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Remote sync interval (e.g., 5m)")
	fs.StringVar(&logLevel, "log-level", "", "Logger level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Kind: storageKind,
			Path: storagePath,
		},
		Crypto: Crypto{
			Iterations: iterations,
			Salt:       salt,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Auth: Auth{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Remote: Remote{
			DSN:          remoteDSN,
			SyncInterval: syncInterval,
		},
		Log: Log{
			Level: logLevel,
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
