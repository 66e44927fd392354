package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DNSConfig drives check-dns: two resolver endpoints queried for every
// site, with a per-query timeout.
type DNSConfig struct {
	Primary   string
	Secondary string
	Timeout   float64 // seconds per query
	Sites     []string
}

// DefaultDNSConfig returns the built-in site list and resolver pair used
// when no config file exists.
func DefaultDNSConfig() DNSConfig {
	return DNSConfig{
		Primary:   "10.0.0.5",
		Secondary: "10.0.0.3",
		Timeout:   1.0,
		Sites: []string{
			"google.com",
			"cloudflare.com",
			"github.com",
			"youtube.com",
			"amazon.com",
			"reddit.com",
			"netflix.com",
			"microsoft.com",
			"apple.com",
		},
	}
}

// ParseDNS reads an optional check-dns config stream over the defaults.
// Recognized settings are primary, secondary and timeout; bare lines are
// site names and, when present, replace the built-in list entirely.
func ParseDNS(r io.Reader) (DNSConfig, error) {
	cfg := DefaultDNSConfig()
	var sites []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.Contains(line, "="):
			key, raw, _ := strings.Cut(line, "=")
			key, raw = strings.TrimSpace(key), strings.TrimSpace(raw)
			switch key {
			case "primary":
				if raw != "" {
					cfg.Primary = raw
				}
			case "secondary":
				if raw != "" {
					cfg.Secondary = raw
				}
			case "timeout":
				if v, err := strconv.ParseFloat(raw, 64); err == nil {
					cfg.Timeout = v
				}
			}
		default:
			sites = append(sites, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}

	if len(sites) > 0 {
		cfg.Sites = sites
	}
	return cfg, nil
}

// LoadDNS parses the file at path.
func LoadDNS(path string) (DNSConfig, error) {
	f, err := open(path)
	if err != nil {
		return DefaultDNSConfig(), err
	}
	defer f.Close()
	return ParseDNS(f)
}
