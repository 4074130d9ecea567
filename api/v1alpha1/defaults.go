package v1alpha1

import (
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
)

// Defaults applied to fields the author left unset. These mirror what the
// CoreWeave control plane would admit for a minimal manifest.
const (
	DefaultRegion    = "ORD1"
	DefaultCloudInit = "{}\n"

	// DefaultImagePVCName is the shared Ubuntu system image claim.
	DefaultImagePVCName      = "ubuntu2004-nvidia-550-54-15-1-docker-master-20240402-ord1"
	DefaultImagePVCNamespace = "vd-images"
)

// DefaultStorageClassName returns the NVMe block tier for a region.
func DefaultStorageClassName(region string) string {
	return fmt.Sprintf("block-nvme-%s", strings.ToLower(region))
}

// Default fills unset spec fields in place. It is idempotent and never
// overrides an author-provided value.
func (vs *VirtualServer) Default() {
	spec := &vs.Spec

	if spec.Region == "" {
		spec.Region = DefaultRegion
	}
	if spec.OS.Type == "" {
		spec.OS.Type = OSTypeLinux
	}
	if spec.RunStrategy == "" {
		spec.RunStrategy = RunStrategyRerunOnFailure
	}
	if spec.CloudInit == "" {
		spec.CloudInit = DefaultCloudInit
	}

	root := &spec.Storage.Root
	if root.AccessMode == "" {
		root.AccessMode = corev1.ReadWriteOnce
	}
	if root.StorageClassName == "" {
		root.StorageClassName = DefaultStorageClassName(spec.Region)
	}
	if root.Source == nil {
		root.Source = &VolumeSource{
			PVC: &PVCSource{
				Name:      DefaultImagePVCName,
				Namespace: DefaultImagePVCNamespace,
			},
		}
	}

	// The network block is defaulted as a whole: a zero-value block means the
	// author declared nothing, not that they asked for a private headless
	// instance.
	if spec.Network == (VirtualServerNetwork{}) {
		spec.Network = VirtualServerNetwork{
			DirectAttachLoadBalancerIP: true,
			DNSPolicy:                  corev1.DNSClusterFirst,
			Public:                     true,
		}
	}
}
