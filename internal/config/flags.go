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

// parseFlags parses the command-line flags shared by both binaries.
//
// Flags:
//
//	-a               server listen address in format [host]:[port]
//	-d               registry database DSN
//	-c/-config       json file path with configs
//	-hash-key        HMAC key for the HashSHA256 response header
//	-app-version     version reported by the server
//	-request-timeout server request timeout (e.g. "30s")
//	-server          verify API address used by the client
//	-timeout         client verification timeout (e.g. "10s")
//	-mode            client verifier mode: simulated | remote
//	-latency         simulated backend latency (e.g. "1.5s")
//	-fail-transport  make the simulated backend fail every call
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress  NetAddress
		databaseDSN    string
		jsonConfigPath string
		hashKey        string
		appVersion     string
		requestTimeout time.Duration
		adapterAddress string
		adapterTimeout time.Duration
		mode           string
		latency        time.Duration
		failTransport  bool
	)

	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Registry database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Response integrity hash key")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout")
	fs.StringVar(&adapterAddress, "server", "", "Verify API address used by the client")
	fs.DurationVar(&adapterTimeout, "timeout", 0, "Client verification timeout")
	fs.StringVar(&mode, "mode", "", "Verifier mode: simulated | remote")
	fs.DurationVar(&latency, "latency", 0, "Simulated backend latency")
	fs.BoolVar(&failTransport, "fail-transport", false, "Fail every simulated verification at transport level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
			Version: appVersion,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Verifier: Verifier{
			Mode:          mode,
			Latency:       latency,
			FailTransport: failTransport,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses s of form host:port. An empty host means all interfaces;
// otherwise the host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
