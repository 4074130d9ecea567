package sshkey

import (
	"fmt"
	"os"
	"regexp"
)

// UpsertHost records a Host block for the instance in an ssh_config file so
// `ssh <host>` and editor remotes resolve immediately. An existing block for
// the host gets its HostName rewritten in place; otherwise a new block is
// appended. Returns the updated file content.
func UpsertHost(config []byte, host, hostname, user string) []byte {
	pattern := regexp.MustCompile(fmt.Sprintf(`Host %s\n  HostName [0-9.]+`, regexp.QuoteMeta(host)))
	replacement := fmt.Sprintf("Host %s\n  HostName %s", host, hostname)

	if pattern.Match(config) {
		return pattern.ReplaceAll(config, []byte(replacement))
	}
	block := fmt.Sprintf("\nHost %s\n  HostName %s\n  User %s\n", host, hostname, user)
	return append(config, []byte(block)...)
}

// UpsertHostFile applies UpsertHost to the file at path, creating it when
// absent.
func UpsertHostFile(path, host, hostname, user string) error {
	config, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read ssh config at %s: %w", path, err)
	}
	updated := UpsertHost(config, host, hostname, user)
	if err := os.WriteFile(path, updated, 0o600); err != nil {
		return fmt.Errorf("failed to write ssh config at %s: %w", path, err)
	}
	return nil
}
