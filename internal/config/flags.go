// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-version application version
//	-log-level log level (debug, info, warn, error)
//	-force-https redirect plain HTTP requests to HTTPS
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-rate-limit requests per second, 0 disables limiting
//	-rate-burst rate limiter bucket size
//	-driver storage driver (memory, postgres, sqlite)
//	-d database DSN
//	-cache-address redis address in format host:port
//	-cache-ttl cache entry ttl (e.g., "5m")
//
// The same -a and -request-timeout flags configure the client adapter when
// the binary is the command-line client.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var version string
	var logLevel string
	var forceHTTPS bool
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var rateLimit float64
	var rateBurst int
	var driver string
	var databaseDSN string
	var cacheAddress string
	var cacheTTL time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&forceHTTPS, "force-https", false, "Redirect plain HTTP requests to HTTPS")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second, 0 disables limiting")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Rate limiter bucket size")
	fs.StringVar(&driver, "driver", "", "Storage driver (memory, postgres, sqlite)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&cacheAddress, "cache-address", "", "Redis cache address host:port")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Cache entry TTL (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:  version,
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
			Cache: Cache{
				Address: cacheAddress,
				TTL:     cacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			ForceHTTPS:      forceHTTPS,
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			RateLimit:       rateLimit,
			RateBurst:       rateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
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
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
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
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
