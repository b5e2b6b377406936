// Package importer is the command-line side of the bulk import: it reads
// an already-encrypted bundle from disk and submits it over gRPC.
package importer

import (
	"errors"
	"flag"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/flagx"
)

type Config struct {
	ServerEndpointAddr string
	BundlePath         string
	AccessToken        string
	Timeout            time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "localhost:50051"
	c.Timeout = 30 * time.Second
}

// parseFlags populates cfg from args.
//
//	-a string   gRPC address of the server
//	-f string   path to the bundle JSON file (required)
//	-t string   access token; prompted for when empty
//	-w int      request timeout in seconds
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-f", "-t", "-w"})

	fs := flag.NewFlagSet("importer", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the server")
	fs.StringVar(&cfg.BundlePath, "f", cfg.BundlePath, "bundle file")
	fs.StringVar(&cfg.AccessToken, "t", cfg.AccessToken, "access token")
	timeout := fs.Int("w", int(cfg.Timeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Timeout = time.Duration(*timeout) * time.Second
	return nil
}

// LoadConfig applies defaults and then the command-line flags in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if cfg.BundlePath == "" {
		return nil, errors.New("bundle file is required (-f)")
	}
	return cfg, nil
}
