package cli

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/outerbounds/vsctl/internal/logger"
)

const (
	sshPort       = 22
	probeInterval = 5 * time.Second
	probeDial     = 3 * time.Second
)

// waitReachable polls a TCP port until a connection succeeds or the context
// expires. Freshly booted instances accept connections some time after the
// control plane reports them ready.
func waitReachable(ctx context.Context, host string, port int) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()

	for {
		conn, err := net.DialTimeout("tcp", addr, probeDial)
		if err == nil {
			conn.Close()
			return nil
		}
		logger.Log.Debugf("%s not reachable yet: %v", addr, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
