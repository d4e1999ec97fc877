// Package probe waits for a TCP listener to come up.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"
)

// ErrTimeout is returned when nothing accepted a connection before the deadline.
var ErrTimeout = errors.New("timed out waiting for port")

// AddressFromURL returns host:port for rawURL, filling the port in from the
// scheme when the URL omits it.
func AddressFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing url: %w", err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("url %q has no host", rawURL)
	}
	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "http":
			port = "80"
		case "https":
			port = "443"
		default:
			return "", fmt.Errorf("url %q has no port", rawURL)
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}

// WaitForPort dials address every interval until a connection succeeds, the
// timeout elapses, or ctx is cancelled.
func WaitForPort(ctx context.Context, address string, interval, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		dialCtx, dialCancel := context.WithTimeout(ctx, interval)
		conn, err := d.DialContext(dialCtx, "tcp", address)
		dialCancel()
		if err == nil {
			conn.Close()
			return nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w %s after %s", ErrTimeout, address, timeout)
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
