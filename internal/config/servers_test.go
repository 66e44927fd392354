package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
# Settings
timeout = 0.5
retries = 2

[local]
127.0.0.1 localhost
10.0.0.1  router

[remote]
8.8.8.8   google-dns

# Malformed lines to be ignored
bad-line
timeout=notanumber
`

func TestParseServers_EntitiesInFileOrder(t *testing.T) {
	settings, servers, err := ParseServers(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 0.5, settings.Timeout)
	assert.Equal(t, 2, settings.Retries)

	require.Len(t, servers, 3)
	assert.Equal(t, Server{IP: "127.0.0.1", Name: "localhost", Kind: KindLocal}, servers[0])
	assert.Equal(t, Server{IP: "10.0.0.1", Name: "router", Kind: KindLocal}, servers[1])
	assert.Equal(t, Server{IP: "8.8.8.8", Name: "google-dns", Kind: KindRemote}, servers[2])
}

func TestParseServers_EmptyInputKeepsDefaults(t *testing.T) {
	settings, servers, err := ParseServers(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), settings)
	assert.Empty(t, servers)
}

func TestParseServers_MalformedSettingKeepsPriorValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Settings
	}{
		{
			name:  "unparsable value ignored",
			input: "timeout = notanumber\n",
			want:  DefaultSettings(),
		},
		{
			name:  "parsable value overwrites",
			input: "timeout = notanumber\ntimeout = 1.5\n",
			want:  Settings{Timeout: 1.5, Retries: 3},
		},
		{
			name:  "integer without dot accepted",
			input: "retries = 5\n",
			want:  Settings{Timeout: 0.2, Retries: 5},
		},
		{
			name:  "unknown key ignored",
			input: "jitter = 3\n",
			want:  DefaultSettings(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, _, err := ParseServers(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, settings)
		})
	}
}

func TestParseServers_UnknownSectionSwallowsRecords(t *testing.T) {
	input := "[staging]\n10.1.1.1 ignored\n[local]\n10.0.0.1 kept\n"
	_, servers, err := ParseServers(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, servers, 1)
	assert.Equal(t, "kept", servers[0].Name)
}

func TestParseServers_RepeatedSectionsAccumulate(t *testing.T) {
	input := "[local]\n10.0.0.1 one\n[remote]\n8.8.8.8 dns\n[local]\n10.0.0.2 two\n"
	_, servers, err := ParseServers(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, servers, 3)
	assert.Equal(t, "one", servers[0].Name)
	assert.Equal(t, "dns", servers[1].Name)
	assert.Equal(t, "two", servers[2].Name)
}

func TestParseServers_NameMayContainSpaces(t *testing.T) {
	input := "[local]\n10.0.0.9    media server\n"
	_, servers, err := ParseServers(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, servers, 1)
	assert.Equal(t, "10.0.0.9", servers[0].IP)
	assert.Equal(t, "media server", servers[0].Name)
}

func TestFilter(t *testing.T) {
	servers := []Server{
		{IP: "10.0.0.1", Name: "a", Kind: KindLocal},
		{IP: "8.8.8.8", Name: "b", Kind: KindRemote},
		{IP: "10.0.0.2", Name: "c", Kind: KindLocal},
	}

	local := Filter(servers, true, false)
	require.Len(t, local, 2)
	assert.Equal(t, "a", local[0].Name)
	assert.Equal(t, "c", local[1].Name)

	remote := Filter(servers, false, true)
	require.Len(t, remote, 1)
	assert.Equal(t, "b", remote[0].Name)

	assert.Equal(t, servers, Filter(servers, false, false))
	assert.Equal(t, servers, Filter(servers, true, true))
}
