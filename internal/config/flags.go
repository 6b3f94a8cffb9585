package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port parsed from a "host:port" flag value.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags shared by both binaries.
//
// Flags:
//
//	-a               server HTTP address [host]:[port]
//	-grpc-address    server gRPC health address [host]:[port]
//	-d               Postgres DSN
//	-c / -config     JSON config file path
//	-token-sign-key  token signing key
//	-token-issuer    token issuer name
//	-token-duration  token lifetime (e.g. "24h")
//	-request-timeout inbound request timeout (e.g. "30s")
//	-cache-ttl       response cache TTL (e.g. "1h")
//	-cache-capacity  response cache capacity
//	-server          admin client: server address
//	-api-prefix      admin client: API root segment
//	-session         admin client: SQLite session file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-account-keeper", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var cacheTTL time.Duration
	var cacheCapacity uint64
	var adapterAddress string
	var apiPrefix string
	var sessionDSN string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Response cache TTL (e.g., 1h)")
	fs.Uint64Var(&cacheCapacity, "cache-capacity", 0, "Response cache capacity")
	fs.StringVar(&adapterAddress, "server", "", "Account server address")
	fs.StringVar(&apiPrefix, "api-prefix", "", "API root segment")
	fs.StringVar(&sessionDSN, "session", "", "Session storage file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Cache: Cache{
			TTL:      cacheTTL,
			Capacity: cacheCapacity,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
			APIPrefix:   apiPrefix,
		},
		Client: Client{
			SessionDSN: sessionDSN,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the "host:port" form, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses "host:port". The host must be "localhost", empty or a valid IP.
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
