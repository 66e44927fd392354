package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempPaths(t *testing.T) Paths {
	t.Helper()
	dir := t.TempDir()
	return Paths{
		User:   filepath.Join(dir, "user", FileName),
		System: filepath.Join(dir, "system", FileName),
	}
}

func TestAddServer_CreatesUserFileWhenNoneExists(t *testing.T) {
	p := tempPaths(t)

	path, err := p.AddServer(Server{IP: "10.0.0.9", Name: "nas", Kind: KindLocal})
	require.NoError(t, err)
	assert.Equal(t, p.User, path)

	_, servers, err := LoadServers(path)
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, Server{IP: "10.0.0.9", Name: "nas", Kind: KindLocal}, servers[0])
}

func TestAddServer_InsertsUnderExistingSection(t *testing.T) {
	p := tempPaths(t)
	writeFile(t, p.User)
	require.NoError(t, os.WriteFile(p.User, []byte("[local]\n10.0.0.1        router\n\n[remote]\n8.8.8.8         dns\n"), 0o644))

	_, err := p.AddServer(Server{IP: "10.0.0.2", Name: "nas", Kind: KindLocal})
	require.NoError(t, err)

	_, servers, err := LoadServers(p.User)
	require.NoError(t, err)
	require.Len(t, servers, 3)
	// New entry lands directly under its header, before the existing ones.
	assert.Equal(t, "nas", servers[0].Name)
	assert.Equal(t, KindLocal, servers[0].Kind)
	assert.Equal(t, "router", servers[1].Name)
	assert.Equal(t, "dns", servers[2].Name)
}

func TestAddServer_HeaderWithoutTrailingNewline(t *testing.T) {
	p := tempPaths(t)
	writeFile(t, p.User)
	require.NoError(t, os.WriteFile(p.User, []byte("[local]"), 0o644))

	_, err := p.AddServer(Server{IP: "10.0.0.9", Name: "nas", Kind: KindLocal})
	require.NoError(t, err)

	raw, err := os.ReadFile(p.User)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "[local]\n"))

	_, servers, err := LoadServers(p.User)
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, Server{IP: "10.0.0.9", Name: "nas", Kind: KindLocal}, servers[0])
}

func TestAddServer_AppendsMissingSection(t *testing.T) {
	p := tempPaths(t)
	writeFile(t, p.User)
	require.NoError(t, os.WriteFile(p.User, []byte("[local]\n10.0.0.1 router\n"), 0o644))

	_, err := p.AddServer(Server{IP: "8.8.4.4", Name: "backup-dns", Kind: KindRemote})
	require.NoError(t, err)

	_, servers, err := LoadServers(p.User)
	require.NoError(t, err)
	require.Len(t, servers, 2)
	assert.Equal(t, KindRemote, servers[1].Kind)
	assert.Equal(t, "backup-dns", servers[1].Name)
}

func TestAddServer_RefusesSystemConfig(t *testing.T) {
	p := tempPaths(t)
	writeFile(t, p.System)

	_, err := p.AddServer(Server{IP: "10.0.0.2", Name: "nas", Kind: KindLocal})
	assert.ErrorIs(t, err, ErrSystemConfig)
}

func TestRemoveServer_DropsOnlyExactMatch(t *testing.T) {
	p := tempPaths(t)
	writeFile(t, p.User)
	// "10.0.0.1 router-backup" contains both "10.0.0.1" and "router" as
	// substrings; structured matching must keep it.
	content := "[local]\n10.0.0.1        router\n10.0.0.1        router-backup\n10.0.0.10       router\n"
	require.NoError(t, os.WriteFile(p.User, []byte(content), 0o644))

	err := p.RemoveServer(p.User, Server{IP: "10.0.0.1", Name: "router", Kind: KindLocal})
	require.NoError(t, err)

	_, servers, err := LoadServers(p.User)
	require.NoError(t, err)
	require.Len(t, servers, 2)
	assert.Equal(t, "router-backup", servers[0].Name)
	assert.Equal(t, "10.0.0.10", servers[1].IP)
}

func TestRemoveServer_MatchesSectionToo(t *testing.T) {
	p := tempPaths(t)
	writeFile(t, p.User)
	content := "[local]\n1.1.1.1 shared\n[remote]\n1.1.1.1 shared\n"
	require.NoError(t, os.WriteFile(p.User, []byte(content), 0o644))

	err := p.RemoveServer(p.User, Server{IP: "1.1.1.1", Name: "shared", Kind: KindRemote})
	require.NoError(t, err)

	raw, err := os.ReadFile(p.User)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "[local]\n1.1.1.1 shared"))

	_, servers, err := LoadServers(p.User)
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, KindLocal, servers[0].Kind)
}

func TestRemoveServer_NoMatchIsAnError(t *testing.T) {
	p := tempPaths(t)
	writeFile(t, p.User)
	require.NoError(t, os.WriteFile(p.User, []byte("[local]\n10.0.0.1 router\n"), 0o644))

	err := p.RemoveServer(p.User, Server{IP: "10.0.0.2", Name: "ghost", Kind: KindLocal})
	assert.Error(t, err)
}

func TestRemoveServer_RefusesSystemConfig(t *testing.T) {
	p := tempPaths(t)
	writeFile(t, p.System)

	err := p.RemoveServer(p.System, Server{IP: "10.0.0.1", Name: "router", Kind: KindLocal})
	assert.ErrorIs(t, err, ErrSystemConfig)
}
