package v1alpha1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"
)

const sampleManifest = `apiVersion: virtualservers.coreweave.com/v1alpha1
kind: VirtualServer
metadata:
  name: vs-a100
  namespace: tenant-abc
  labels:
    team: research
spec:
  region: ORD1
  resources:
    cpu:
      count: 8
    gpu:
      type: A100_PCIE_80GB
      count: 1
    memory: 32Gi
  os:
    definition: a
    enableUEFIBoot: true
    type: linux
  storage:
    root:
      accessMode: ReadWriteOnce
      size: 300Gi
      source:
        pvc:
          name: ubuntu2004-nvidia-550-54-15-1-docker-master-20240402-ord1
          namespace: vd-images
      storageClassName: block-nvme-ord1
      volumeMode: Block
  network:
    directAttachLoadBalancerIP: true
    disableK8sNetworking: false
    dnsPolicy: ClusterFirst
    headless: false
    public: true
  users:
    - username: eddie
      sshpublickey: ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAA test
  cloudInit: |
    {}
  runStrategy: RerunOnFailure
  initializeRunning: true
`

func TestManifestDecodesToTypedFields(t *testing.T) {
	t.Parallel()

	var vs VirtualServer
	require.NoError(t, yaml.Unmarshal([]byte(sampleManifest), &vs))

	assert.Equal(t, "VirtualServer", vs.Kind)
	assert.Equal(t, GroupVersion.String(), vs.APIVersion)
	assert.Equal(t, "vs-a100", vs.Name)
	assert.Equal(t, "tenant-abc", vs.Namespace)
	assert.Equal(t, "ORD1", vs.Spec.Region)

	assert.Equal(t, 8, vs.Spec.Resources.CPU.Count)
	require.NotNil(t, vs.Spec.Resources.GPU)
	assert.Equal(t, "A100_PCIE_80GB", vs.Spec.Resources.GPU.Type)
	assert.Equal(t, 1, vs.Spec.Resources.GPU.Count)
	assert.Equal(t, int64(32*1024*1024*1024), vs.Spec.Resources.Memory.Value())

	assert.True(t, vs.Spec.OS.EnableUEFIBoot)
	assert.Equal(t, OSTypeLinux, vs.Spec.OS.Type)

	root := vs.Spec.Storage.Root
	assert.Equal(t, corev1.ReadWriteOnce, root.AccessMode)
	assert.Equal(t, "300Gi", root.Size.String())
	require.NotNil(t, root.Source)
	require.NotNil(t, root.Source.PVC)
	assert.Equal(t, "vd-images", root.Source.PVC.Namespace)
	require.NotNil(t, root.VolumeMode)
	assert.Equal(t, corev1.PersistentVolumeBlock, *root.VolumeMode)

	assert.True(t, vs.Spec.Network.DirectAttachLoadBalancerIP)
	assert.Equal(t, corev1.DNSClusterFirst, vs.Spec.Network.DNSPolicy)
	assert.True(t, vs.Spec.Network.Public)

	require.Len(t, vs.Spec.Users, 1)
	assert.Equal(t, "eddie", vs.Spec.Users[0].Username)

	assert.Equal(t, "{}\n", vs.Spec.CloudInit)
	assert.Equal(t, RunStrategyRerunOnFailure, vs.Spec.RunStrategy)
	assert.True(t, vs.Spec.InitializeRunning)

	assert.NoError(t, vs.Validate())
}

// Parsing then re-serializing must preserve every field value; ordering and
// comments are not part of the contract.
func TestManifestRoundTrip(t *testing.T) {
	t.Parallel()

	var first VirtualServer
	require.NoError(t, yaml.Unmarshal([]byte(sampleManifest), &first))

	out, err := yaml.Marshal(&first)
	require.NoError(t, err)

	var second VirtualServer
	require.NoError(t, yaml.Unmarshal(out, &second))

	assert.Equal(t, first, second)
}

func TestDefaultFillsUnsetFields(t *testing.T) {
	t.Parallel()

	vs := &VirtualServer{}
	vs.Default()

	assert.Equal(t, DefaultRegion, vs.Spec.Region)
	assert.Equal(t, OSTypeLinux, vs.Spec.OS.Type)
	assert.Equal(t, RunStrategyRerunOnFailure, vs.Spec.RunStrategy)
	assert.Equal(t, DefaultCloudInit, vs.Spec.CloudInit)
	assert.Equal(t, corev1.ReadWriteOnce, vs.Spec.Storage.Root.AccessMode)
	assert.Equal(t, "block-nvme-ord1", vs.Spec.Storage.Root.StorageClassName)
	require.NotNil(t, vs.Spec.Storage.Root.Source)
	assert.Equal(t, DefaultImagePVCName, vs.Spec.Storage.Root.Source.PVC.Name)
	assert.True(t, vs.Spec.Network.DirectAttachLoadBalancerIP)
	assert.True(t, vs.Spec.Network.Public)
	assert.Equal(t, corev1.DNSClusterFirst, vs.Spec.Network.DNSPolicy)
}

func TestDefaultPreservesAuthoredValues(t *testing.T) {
	t.Parallel()

	vs := validVirtualServer()
	vs.Spec.Region = "LGA1"
	vs.Spec.Storage.Root.StorageClassName = ""
	vs.Spec.Network = VirtualServerNetwork{Headless: true}

	vs.Default()

	assert.Equal(t, "LGA1", vs.Spec.Region)
	// The storage class follows the authored region, not the default one.
	assert.Equal(t, "block-nvme-lga1", vs.Spec.Storage.Root.StorageClassName)
	// A non-zero network block is the author's, even if mostly false.
	assert.True(t, vs.Spec.Network.Headless)
	assert.False(t, vs.Spec.Network.Public)
}

func TestDeepCopyDoesNotAlias(t *testing.T) {
	t.Parallel()

	vs := validVirtualServer()
	vs.Status.Network.FloatingIPs = map[string]string{"svc-a": "203.0.113.7"}

	cp := vs.DeepCopy()
	require.Equal(t, vs, cp)

	cp.Spec.Resources.GPU.Count = 8
	cp.Spec.Users[0].Username = "mallory"
	cp.Spec.Storage.Root.Source.PVC.Name = "other-image"
	cp.Status.Network.FloatingIPs["svc-a"] = "198.51.100.1"

	assert.Equal(t, 1, vs.Spec.Resources.GPU.Count)
	assert.Equal(t, "eddie", vs.Spec.Users[0].Username)
	assert.Equal(t, DefaultImagePVCName, vs.Spec.Storage.Root.Source.PVC.Name)
	assert.Equal(t, "203.0.113.7", vs.Status.Network.FloatingIPs["svc-a"])
}
