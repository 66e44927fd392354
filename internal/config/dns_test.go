package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDNS_DefaultsSurviveEmptyFile(t *testing.T) {
	cfg, err := ParseDNS(strings.NewReader("# nothing\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDNSConfig(), cfg)
}

func TestParseDNS_OverridesResolversAndSites(t *testing.T) {
	input := `
primary = 192.168.1.5
secondary = 192.168.1.6
timeout = 2.0

example.com
example.org
`
	cfg, err := ParseDNS(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.5", cfg.Primary)
	assert.Equal(t, "192.168.1.6", cfg.Secondary)
	assert.Equal(t, 2.0, cfg.Timeout)
	assert.Equal(t, []string{"example.com", "example.org"}, cfg.Sites)
}

func TestParseDNS_MalformedTimeoutIgnored(t *testing.T) {
	cfg, err := ParseDNS(strings.NewReader("timeout = soon\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDNSConfig().Timeout, cfg.Timeout)
}
