// Package docker wraps the Docker Engine API client with the two
// connection modes the check tools need: the local daemon socket and a
// remote daemon tunneled over SSH.
package docker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/docker/cli/cli/connhelper"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"github.com/scottastone/check-servers/pkg/logger"
)

// localHosts are the config host names served by the local daemon socket
// instead of an SSH tunnel.
var localHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
}

// Client talks to one Docker daemon.
type Client struct {
	host string
	api  *client.Client
}

// NewClient connects to the daemon for host. "localhost"/"127.0.0.1" use
// the default socket (honoring DOCKER_HOST); anything else dials
// ssh://<host> through the user's SSH configuration, matching how the
// docker CLI itself reaches remote engines.
func NewClient(host string) (*Client, error) {
	if localHosts[host] {
		api, err := client.NewClientWithOpts(
			client.FromEnv,
			client.WithAPIVersionNegotiation(),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to local Docker daemon: %w", err)
		}
		logger.Debug("Docker client initialized", "host", host, "transport", "local")
		return &Client{host: host, api: api}, nil
	}

	helper, err := connhelper.GetConnectionHelper("ssh://" + host)
	if err != nil {
		return nil, fmt.Errorf("preparing SSH connection to %s: %w", host, err)
	}

	httpClient := &http.Client{
		Transport: &http.Transport{DialContext: helper.Dialer},
	}
	api, err := client.NewClientWithOpts(
		client.WithHTTPClient(httpClient),
		client.WithHost(helper.Host),
		client.WithDialContext(helper.Dialer),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to Docker daemon on %s: %w", host, err)
	}
	logger.Debug("Docker client initialized", "host", host, "transport", "ssh")
	return &Client{host: host, api: api}, nil
}

// ListContainers returns every container on the daemon, stopped ones
// included, so callers can distinguish "stopped" from "not found".
func (c *Client) ListContainers(ctx context.Context) ([]types.Container, error) {
	containers, err := c.api.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("listing containers on %s: %w", c.host, err)
	}
	return containers, nil
}

// Ping verifies the daemon answers within timeout.
func (c *Client) Ping(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := c.api.Ping(ctx); err != nil {
		return fmt.Errorf("cannot reach Docker daemon on %s: %w", c.host, err)
	}
	return nil
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.api.Close()
}
