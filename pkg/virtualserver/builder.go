// Package virtualserver builds and submits CoreWeave VirtualServer resources.
package virtualserver

import (
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	vsv1alpha1 "github.com/outerbounds/vsctl/api/v1alpha1"
)

// Builder assembles a VirtualServer manifest field by field. Zero-value
// fields fall back to the API defaults at Build time.
type Builder struct {
	vs vsv1alpha1.VirtualServer
}

// NewBuilder starts a manifest for the named VirtualServer.
func NewBuilder(name, namespace string) *Builder {
	b := &Builder{}
	b.vs = vsv1alpha1.VirtualServer{
		TypeMeta: metav1.TypeMeta{
			APIVersion: vsv1alpha1.GroupVersion.String(),
			Kind:       "VirtualServer",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: vsv1alpha1.VirtualServerSpec{
			InitializeRunning: true,
		},
	}
	return b
}

func (b *Builder) Region(region string) *Builder {
	b.vs.Spec.Region = region
	return b
}

// CPU sets the core count and optionally the CPU SKU. Leave cpuType empty on
// GPU instances.
func (b *Builder) CPU(count int, cpuType string) *Builder {
	b.vs.Spec.Resources.CPU = vsv1alpha1.CPUSpec{Count: count, Type: cpuType}
	return b
}

// GPU attaches count GPUs of the given SKU. A zero count removes the block.
func (b *Builder) GPU(gpuType string, count int) *Builder {
	if count <= 0 {
		b.vs.Spec.Resources.GPU = nil
		return b
	}
	b.vs.Spec.Resources.GPU = &vsv1alpha1.GPUSpec{Type: gpuType, Count: count}
	return b
}

func (b *Builder) Memory(memory resource.Quantity) *Builder {
	b.vs.Spec.Resources.Memory = memory
	return b
}

func (b *Builder) OS(definition string, osType vsv1alpha1.OSType, uefi bool) *Builder {
	b.vs.Spec.OS = vsv1alpha1.VirtualServerOS{
		Definition:     definition,
		Type:           osType,
		EnableUEFIBoot: uefi,
	}
	return b
}

// RootDisk sizes the root volume. Access mode, storage class and image source
// default per region unless set with RootSource.
func (b *Builder) RootDisk(size resource.Quantity) *Builder {
	b.vs.Spec.Storage.Root.Size = size
	return b
}

// RootSource points the root volume at an existing image PVC.
func (b *Builder) RootSource(name, namespace string) *Builder {
	b.vs.Spec.Storage.Root.Source = &vsv1alpha1.VolumeSource{
		PVC: &vsv1alpha1.PVCSource{Name: name, Namespace: namespace},
	}
	return b
}

func (b *Builder) StorageClassName(name string) *Builder {
	b.vs.Spec.Storage.Root.StorageClassName = name
	return b
}

func (b *Builder) Network(network vsv1alpha1.VirtualServerNetwork) *Builder {
	b.vs.Spec.Network = network
	return b
}

// User appends a login principal authenticated by an SSH public key.
func (b *Builder) User(username, sshPublicKey string) *Builder {
	b.vs.Spec.Users = append(b.vs.Spec.Users, vsv1alpha1.VirtualServerUser{
		Username:     username,
		SSHPublicKey: sshPublicKey,
	})
	return b
}

func (b *Builder) CloudInit(payload string) *Builder {
	b.vs.Spec.CloudInit = payload
	return b
}

func (b *Builder) RunStrategy(strategy vsv1alpha1.RunStrategy) *Builder {
	b.vs.Spec.RunStrategy = strategy
	return b
}

func (b *Builder) InitializeRunning(running bool) *Builder {
	b.vs.Spec.InitializeRunning = running
	return b
}

// Build applies defaults, validates the manifest, and returns a copy the
// caller owns. The builder stays usable for further mutation.
func (b *Builder) Build() (*vsv1alpha1.VirtualServer, error) {
	vs := b.vs.DeepCopy()
	vs.Default()
	if err := vs.Validate(); err != nil {
		return nil, err
	}
	return vs, nil
}
