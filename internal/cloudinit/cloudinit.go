// Package cloudinit renders cloud-config payloads for the VirtualServer
// cloudInit field. The payload stays opaque to the API types; this package is
// for callers who want a real first-boot document instead of the empty
// default.
package cloudinit

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const header = "#cloud-config\n"

type Config struct {
	Hostname           string           `yaml:"hostname,omitempty"`
	ManageEtcHosts     bool             `yaml:"manage_etc_hosts,omitempty"`
	Packages           []string         `yaml:"packages,omitempty"`
	PackageUpdate      bool             `yaml:"package_update,omitempty"`
	WriteFiles         []WriteFile      `yaml:"write_files,omitempty"`
	RunCmd             MultiLineStrings `yaml:"runcmd,omitempty"`
	Users              []User           `yaml:"users,omitempty"`
	SSHPWAuth          bool             `yaml:"ssh_pwauth"`
	DisableRoot        bool             `yaml:"disable_root"`
	AllowPublicSSHKeys bool             `yaml:"allow_public_ssh_keys"`
}

type WriteFile struct {
	Path        string `yaml:"path"`
	Permissions string `yaml:"permissions,omitempty"`
	Content     string `yaml:"content"`
}

type User struct {
	Name              string   `yaml:"name"`
	Shell             string   `yaml:"shell,omitempty"`
	Sudo              string   `yaml:"sudo,omitempty"`
	SSHAuthorizedKeys []string `yaml:"ssh-authorized-keys,omitempty"`
}

type MultiLineStrings [][]string

// MarshalYAML formats each inner slice as a block scalar string
func (m MultiLineStrings) MarshalYAML() (interface{}, error) {
	seq := &yaml.Node{
		Kind: yaml.SequenceNode,
		Tag:  "!!seq",
	}
	for _, lines := range m {
		joined := strings.Join(lines, "\n")
		scalar := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: joined + "\n",
			Style: yaml.LiteralStyle, // this is the '|'
		}
		seq.Content = append(seq.Content, scalar)
	}
	return seq, nil
}

// Render marshals the config with the #cloud-config header the guest's
// cloud-init requires on the first line.
func (c *Config) Render() (string, error) {
	body, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return header + string(body), nil
}

// ForUsers builds the minimal payload provisioning the given login
// principals with their authorized keys. Users are emitted in name order so
// the rendered document is stable.
func ForUsers(users map[string][]string) *Config {
	cfg := &Config{
		AllowPublicSSHKeys: true,
	}
	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cfg.Users = append(cfg.Users, User{
			Name:              name,
			Shell:             "/bin/bash",
			Sudo:              "ALL=(ALL) NOPASSWD:ALL",
			SSHAuthorizedKeys: users[name],
		})
	}
	return cfg
}
