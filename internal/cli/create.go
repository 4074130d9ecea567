package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/api/resource"
	"sigs.k8s.io/yaml"

	vsv1alpha1 "github.com/outerbounds/vsctl/api/v1alpha1"
	"github.com/outerbounds/vsctl/internal/catalog"
	"github.com/outerbounds/vsctl/internal/cloudinit"
	"github.com/outerbounds/vsctl/internal/logger"
	"github.com/outerbounds/vsctl/internal/sshkey"
	"github.com/outerbounds/vsctl/pkg/virtualserver"
)

const sshProbeTimeout = 5 * time.Minute

func createCmd() *cobra.Command {
	var (
		manifestPath string
		region       string
		gpuType      string
		gpuCount     int
		cpuType      string
		cpuCount     int
		memory       string
		diskSize     string
		username     string
		publicKey    string
		packages     []string
		runcmds      []string
		noWait       bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a VirtualServer and wait for it to become reachable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			ns, err := requireNamespace()
			if err != nil {
				return err
			}

			var key string
			if publicKey != "" {
				key, err = sshkey.LoadPublicKey(publicKey)
			} else {
				key, err = sshkey.EnsureKey()
			}
			if err != nil {
				return err
			}

			var vs *vsv1alpha1.VirtualServer
			if manifestPath != "" {
				vs, err = loadManifest(manifestPath)
			} else {
				vs, err = buildFromFlags(name, ns, region, gpuType, gpuCount, cpuType, cpuCount, memory, diskSize, username, key)
			}
			if err != nil {
				return err
			}
			vs.Name = name
			vs.Namespace = ns
			injectPublicKey(vs, username, key)
			vs.Default()

			if len(packages) > 0 || len(runcmds) > 0 {
				vs.Spec.CloudInit, err = renderCloudInit(vs.Spec.Users[0].Username, key, packages, runcmds)
				if err != nil {
					return err
				}
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := client.Create(ctx, vs); err != nil {
				return err
			}
			logger.Log.Infof("Created VirtualServer %s/%s", ns, name)
			if noWait {
				return nil
			}

			result, err := client.WaitFor(ctx, ns, name, vsv1alpha1.PhaseReady)
			if err != nil {
				return err
			}
			if result.Phase != vsv1alpha1.PhaseReady {
				return fmt.Errorf("virtual server %s/%s entered phase %s before becoming ready", ns, name, result.Phase)
			}
			if result.ExternalIP == "" {
				return fmt.Errorf("virtual server %s/%s is ready but has no external IP", ns, name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is ready at %s\n", name, result.ExternalIP)

			user := firstUsername(vs)
			if err := recordSSHHost(name, result.ExternalIP, user); err != nil {
				logger.Log.Warnf("Could not update ssh config: %v", err)
			}

			probeCtx, cancel := context.WithTimeout(ctx, sshProbeTimeout)
			defer cancel()
			if err := waitReachable(probeCtx, result.ExternalIP, sshPort); err != nil {
				return fmt.Errorf("waiting for sshd on %s: %w", result.ExternalIP, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ssh %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "", "Path to a VirtualServer manifest. Flags that shape the spec are ignored when set.")
	cmd.Flags().StringVar(&region, "region", "", "Data center region, e.g. ORD1.")
	cmd.Flags().StringVar(&gpuType, "gpu", "", "GPU class, e.g. A100_PCIE_40GB.")
	cmd.Flags().IntVar(&gpuCount, "gpu-count", 1, "Number of GPUs to attach.")
	cmd.Flags().StringVar(&cpuType, "cpu", "", "CPU class for CPU-only instances. Mutually exclusive with --gpu.")
	cmd.Flags().IntVar(&cpuCount, "cpu-count", 8, "Number of CPU cores.")
	cmd.Flags().StringVar(&memory, "memory", "32Gi", "Memory request, e.g. 32Gi.")
	cmd.Flags().StringVar(&diskSize, "disk", "300Gi", "Root disk size, e.g. 300Gi.")
	cmd.Flags().StringVar(&username, "user", "", "Login user to provision. Defaults to the local username.")
	cmd.Flags().StringVar(&publicKey, "ssh-public-key", "", "SSH public key to authorize. Defaults to ~/.ssh/id_rsa.pub; a key is generated when none exists.")
	cmd.Flags().StringSliceVar(&packages, "packages", nil, "Packages to install on first boot.")
	cmd.Flags().StringArrayVar(&runcmds, "run", nil, "Commands to run on first boot. Repeatable.")
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Return immediately after the create request is accepted.")
	return cmd
}

// renderCloudInit builds the first-boot document. The login user is repeated
// in the payload so the packages and commands run for an account that exists
// even before the control plane has provisioned spec.users.
func renderCloudInit(username, key string, packages, runcmds []string) (string, error) {
	cfg := cloudinit.ForUsers(map[string][]string{username: {key}})
	cfg.Packages = packages
	cfg.PackageUpdate = len(packages) > 0
	for _, cmd := range runcmds {
		cfg.RunCmd = append(cfg.RunCmd, []string{cmd})
	}
	return cfg.Render()
}

func loadManifest(path string) (*vsv1alpha1.VirtualServer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	vs := &vsv1alpha1.VirtualServer{}
	if err := yaml.UnmarshalStrict(raw, vs); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return vs, nil
}

func buildFromFlags(name, ns, region, gpuType string, gpuCount int, cpuType string, cpuCount int, memory, diskSize, username string, key string) (*vsv1alpha1.VirtualServer, error) {
	if err := catalog.ValidateGPU(gpuType); err != nil {
		return nil, err
	}
	if err := catalog.ValidateCPU(cpuType); err != nil {
		return nil, err
	}
	if err := catalog.ValidateRegion(region); err != nil {
		return nil, err
	}

	mem, err := resource.ParseQuantity(memory)
	if err != nil {
		return nil, fmt.Errorf("parsing --memory: %w", err)
	}
	disk, err := resource.ParseQuantity(diskSize)
	if err != nil {
		return nil, fmt.Errorf("parsing --disk: %w", err)
	}

	if username == "" {
		username = localUsername()
	}

	b := virtualserver.NewBuilder(name, ns).
		Region(region).
		CPU(cpuCount, cpuType).
		Memory(mem).
		RootDisk(disk).
		User(username, key)
	if gpuType != "" {
		b = b.GPU(gpuType, gpuCount)
	}
	return b.Build()
}

// injectPublicKey authorizes the operator's key for the login user. A users
// entry from a manifest keeps its authored key if it has one.
func injectPublicKey(vs *vsv1alpha1.VirtualServer, username, key string) {
	if username == "" {
		username = localUsername()
	}
	if len(vs.Spec.Users) == 0 {
		vs.Spec.Users = []vsv1alpha1.VirtualServerUser{{Username: username}}
	}
	if vs.Spec.Users[0].SSHPublicKey == "" {
		vs.Spec.Users[0].SSHPublicKey = key
	}
}

func firstUsername(vs *vsv1alpha1.VirtualServer) string {
	if len(vs.Spec.Users) > 0 {
		return vs.Spec.Users[0].Username
	}
	return localUsername()
}

func localUsername() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "ubuntu"
}

func recordSSHHost(name, ip, user string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return sshkey.UpsertHostFile(filepath.Join(home, ".ssh", "config"), name, ip, user)
}
