// Package sshkey handles the operator's SSH key material and ssh_config
// bookkeeping for provisioned instances.
package sshkey

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

// DefaultPublicKeyPath returns ~/.ssh/id_rsa.pub, the key injected into
// created instances unless the caller points elsewhere.
func DefaultPublicKeyPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".ssh", "id_rsa.pub"), nil
}

// LoadPublicKey reads an OpenSSH public key file and returns the single-line
// authorized_keys entry. The key must parse; a truncated or private key file
// is rejected here instead of surfacing as a login failure later.
func LoadPublicKey(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read ssh public key at %s: %w", path, err)
	}
	key := strings.TrimSpace(string(raw))
	if _, _, _, _, err := ssh.ParseAuthorizedKey([]byte(key)); err != nil {
		return "", fmt.Errorf("file at %s is not an OpenSSH public key: %w", path, err)
	}
	return key, nil
}

// EnsureKey returns the operator's public key, generating a dedicated
// vsctl_ed25519 pair under ~/.ssh when no key exists at the default path.
func EnsureKey() (string, error) {
	path, err := DefaultPublicKeyPath()
	if err != nil {
		return "", err
	}
	key, err := LoadPublicKey(path)
	if err == nil {
		return key, nil
	}
	if !os.IsNotExist(unwrapPathError(err)) {
		return "", err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	privPath := filepath.Join(home, ".ssh", "vsctl_ed25519")
	pubPath := privPath + ".pub"
	if key, err := LoadPublicKey(pubPath); err == nil {
		return key, nil
	}

	priv, pub, err := KeyPair("vsctl")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(privPath), 0o700); err != nil {
		return "", err
	}
	if err := os.WriteFile(privPath, priv, 0o600); err != nil {
		return "", err
	}
	if err := os.WriteFile(pubPath, pub, 0o644); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pub)), nil
}

func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr
	}
	return err
}

// KeyPair generates a new ed25519 SSH key pair, returning the private key as
// OpenSSH PEM and the public key in authorized_keys format.
func KeyPair(comment string) ([]byte, []byte, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}

	pubKey, err := ssh.NewPublicKey(pub)
	if err != nil {
		return nil, nil, err
	}

	privPEM := new(bytes.Buffer)
	sshPrivKey, err := ssh.MarshalPrivateKey(priv, comment)
	if err != nil {
		return nil, nil, err
	}
	if err := pem.Encode(privPEM, sshPrivKey); err != nil {
		return nil, nil, err
	}
	return privPEM.Bytes(), ssh.MarshalAuthorizedKey(pubKey), nil
}
