package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// OSType is the guest operating system family.
// +kubebuilder:validation:Enum=linux;windows
type OSType string

const (
	OSTypeLinux   OSType = "linux"
	OSTypeWindows OSType = "windows"
)

// RunStrategy is the policy governing whether and how the instance is
// restarted after failure or stop.
// +kubebuilder:validation:Enum=RerunOnFailure;Always;Manual;Halted
type RunStrategy string

const (
	RunStrategyRerunOnFailure RunStrategy = "RerunOnFailure"
	RunStrategyAlways         RunStrategy = "Always"
	RunStrategyManual         RunStrategy = "Manual"
	RunStrategyHalted         RunStrategy = "Halted"
)

type VirtualServerSpec struct {
	// Region identifies the placement zone the instance is scheduled into.
	// +kubebuilder:validation:MinLength=1
	Region string `json:"region,omitempty"`

	Resources VirtualServerResources `json:"resources"`

	OS VirtualServerOS `json:"os,omitempty"`

	Storage VirtualServerStorage `json:"storage"`

	Network VirtualServerNetwork `json:"network,omitempty"`

	// Users are the login principals provisioned on first boot, in order.
	Users []VirtualServerUser `json:"users,omitempty"`

	// CloudInit is an opaque first-boot provisioning payload handed to the
	// guest unmodified.
	CloudInit string `json:"cloudInit,omitempty"`

	RunStrategy RunStrategy `json:"runStrategy,omitempty"`

	// InitializeRunning powers the instance on as soon as it is created.
	InitializeRunning bool `json:"initializeRunning,omitempty"`
}

type VirtualServerResources struct {
	CPU CPUSpec `json:"cpu"`

	// GPU is absent on CPU-only instances. Type and count are jointly
	// required when present.
	GPU *GPUSpec `json:"gpu,omitempty"`

	Memory resource.Quantity `json:"memory"`
}

type CPUSpec struct {
	// Type is a CPU SKU identifier, e.g. amd-epyc-milan. Mutually exclusive
	// with a GPU type: GPU nodes dictate their CPU class.
	Type string `json:"type,omitempty"`

	// +kubebuilder:validation:Minimum=1
	Count int `json:"count"`
}

type GPUSpec struct {
	// Type is a GPU SKU identifier, e.g. A100_PCIE_80GB.
	// +kubebuilder:validation:MinLength=1
	Type string `json:"type,omitempty"`

	// +kubebuilder:validation:Minimum=1
	Count int `json:"count"`
}

type VirtualServerOS struct {
	// Definition selects a boot image definition by reference.
	Definition string `json:"definition,omitempty"`

	// EnableUEFIBoot boots the guest with UEFI firmware instead of BIOS.
	EnableUEFIBoot bool `json:"enableUEFIBoot,omitempty"`

	Type OSType `json:"type,omitempty"`
}

type VirtualServerStorage struct {
	Root RootVolume `json:"root"`
}

type RootVolume struct {
	// +kubebuilder:validation:Enum=ReadWriteOnce;ReadOnlyMany;ReadWriteMany
	AccessMode corev1.PersistentVolumeAccessMode `json:"accessMode,omitempty"`

	Size resource.Quantity `json:"size"`

	// Source references pre-existing storage supplying the root image.
	Source *VolumeSource `json:"source,omitempty"`

	// StorageClassName selects the backing storage tier,
	// e.g. block-nvme-ord1.
	StorageClassName string `json:"storageClassName,omitempty"`

	// VolumeMode chooses between a raw block device and a filesystem volume.
	// +kubebuilder:validation:Enum=Block;Filesystem
	VolumeMode *corev1.PersistentVolumeMode `json:"volumeMode,omitempty"`
}

type VolumeSource struct {
	PVC *PVCSource `json:"pvc,omitempty"`
}

// PVCSource references a persistent volume claim, typically a system image
// claim in a shared images namespace.
type PVCSource struct {
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`

	// +kubebuilder:validation:MinLength=1
	Namespace string `json:"namespace"`
}

type VirtualServerNetwork struct {
	// DirectAttachLoadBalancerIP attaches a load balancer IP directly to the
	// instance instead of routing through a service.
	DirectAttachLoadBalancerIP bool `json:"directAttachLoadBalancerIP,omitempty"`

	DisableK8sNetworking bool `json:"disableK8sNetworking,omitempty"`

	DNSPolicy corev1.DNSPolicy `json:"dnsPolicy,omitempty"`

	// Headless skips allocation of a service cluster IP.
	Headless bool `json:"headless,omitempty"`

	// Public exposes the instance on a publicly routable address.
	Public bool `json:"public,omitempty"`
}

type VirtualServerUser struct {
	// +kubebuilder:validation:MinLength=1
	Username string `json:"username"`

	// SSHPublicKey is an OpenSSH authorized_keys entry.
	SSHPublicKey string `json:"sshpublickey,omitempty"`

	Password string `json:"password,omitempty"`
}

type VirtualServerStatus struct {
	// Conditions reported by the control plane. The newest Ready condition
	// carries the lifecycle phase in its reason.
	Conditions []metav1.Condition `json:"conditions,omitempty"`

	Network VirtualServerNetworkStatus `json:"network,omitempty"`
}

type VirtualServerNetworkStatus struct {
	ExternalIP string `json:"externalIP,omitempty"`
	InternalIP string `json:"internalIP,omitempty"`

	// FloatingIPs maps service names to their assigned floating addresses.
	FloatingIPs map[string]string `json:"floatingIPs,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=vs
// +kubebuilder:printcolumn:name="Region",type=string,JSONPath=".spec.region"
// +kubebuilder:printcolumn:name="GPU",type=string,JSONPath=".spec.resources.gpu.type"
// +kubebuilder:printcolumn:name="Status",type=string,JSONPath=".status.conditions[0].reason"
// +kubebuilder:printcolumn:name="ExternalIP",type=string,JSONPath=".status.network.externalIP"
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=".metadata.creationTimestamp"

type VirtualServer struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   VirtualServerSpec   `json:"spec,omitempty"`
	Status VirtualServerStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

type VirtualServerList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []VirtualServer `json:"items"`
}

func init() {
	SchemeBuilder.Register(&VirtualServer{}, &VirtualServerList{})
}
