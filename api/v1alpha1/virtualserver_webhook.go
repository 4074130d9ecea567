package v1alpha1

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
)

// log is for logging in this package.
var virtualserverlog = logf.Log.WithName("virtualserver-resource")

// SetupWebhookWithManager registers the webhook with the manager.
func (vs *VirtualServer) SetupWebhookWithManager(mgr ctrl.Manager) error {
	return ctrl.NewWebhookManagedBy(mgr).
		For(vs).
		Complete()
}

// +kubebuilder:webhook:path=/validate-virtualservers-coreweave-com-v1alpha1-virtualserver,mutating=false,failurePolicy=fail,sideEffects=None,groups=virtualservers.coreweave.com,resources=virtualservers,verbs=create;update,versions=v1alpha1,name=vvirtualserver.kb.io,admissionReviewVersions=v1

// ValidateCreate implements webhook validation for create operations
func (vs *VirtualServer) ValidateCreate() error {
	virtualserverlog.Info("validate create", "name", vs.Name)

	return vs.validateVirtualServer()
}

// ValidateUpdate implements webhook validation for update operations
func (vs *VirtualServer) ValidateUpdate(old runtime.Object) error {
	virtualserverlog.Info("validate update", "name", vs.Name)

	return vs.validateVirtualServer()
}

// ValidateDelete implements webhook validation for delete operations
func (vs *VirtualServer) ValidateDelete() error {
	virtualserverlog.Info("validate delete", "name", vs.Name)

	// No validation needed for delete
	return nil
}

// Validate checks the VirtualServer against the schema constraints the
// control plane enforces at admission. Callers submitting manifests should
// run it before a create or update to fail fast on the client side.
func (vs *VirtualServer) Validate() error {
	return vs.validateVirtualServer()
}

// validateVirtualServer performs validation checks on the VirtualServer resource
func (vs *VirtualServer) validateVirtualServer() error {
	var allErrs []error

	if vs.Name == "" {
		allErrs = append(allErrs, fmt.Errorf("metadata.name is required"))
	}
	if vs.Namespace == "" {
		allErrs = append(allErrs, fmt.Errorf("metadata.namespace is required"))
	}

	allErrs = append(allErrs, vs.Spec.Resources.validate()...)
	allErrs = append(allErrs, vs.Spec.Storage.Root.validate()...)
	allErrs = append(allErrs, vs.Spec.Network.validate()...)

	if vs.Spec.OS.Type != "" && vs.Spec.OS.Type != OSTypeLinux && vs.Spec.OS.Type != OSTypeWindows {
		allErrs = append(allErrs, fmt.Errorf("spec.os.type %q is not one of linux, windows", vs.Spec.OS.Type))
	}

	switch vs.Spec.RunStrategy {
	case "", RunStrategyRerunOnFailure, RunStrategyAlways, RunStrategyManual, RunStrategyHalted:
	default:
		allErrs = append(allErrs, fmt.Errorf("spec.runStrategy %q is not a known run strategy", vs.Spec.RunStrategy))
	}

	for i, user := range vs.Spec.Users {
		if user.Username == "" {
			allErrs = append(allErrs, fmt.Errorf("spec.users[%d].username cannot be empty", i))
		}
		if user.SSHPublicKey == "" && user.Password == "" {
			allErrs = append(allErrs, fmt.Errorf("spec.users[%d] needs an sshpublickey or a password", i))
		}
	}

	// Combine all errors
	if len(allErrs) > 0 {
		errMsg := "validation failed:"
		for _, err := range allErrs {
			errMsg += fmt.Sprintf("\n  - %s", err.Error())
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (r *VirtualServerResources) validate() []error {
	var errs []error

	if r.CPU.Count < 1 {
		errs = append(errs, fmt.Errorf("spec.resources.cpu.count must be at least 1"))
	}

	if r.GPU != nil {
		// GPU type and count are jointly required: a count without a SKU (or
		// the reverse) is unschedulable.
		if r.GPU.Type == "" {
			errs = append(errs, fmt.Errorf("spec.resources.gpu.type is required when a gpu block is present"))
		}
		if r.GPU.Count < 1 {
			errs = append(errs, fmt.Errorf("spec.resources.gpu.count must be at least 1"))
		}
		if r.CPU.Type != "" {
			errs = append(errs, fmt.Errorf("spec.resources.cpu.type and spec.resources.gpu.type cannot both be set"))
		}
	}

	if r.Memory.IsZero() {
		errs = append(errs, fmt.Errorf("spec.resources.memory is required"))
	} else if r.Memory.Sign() <= 0 {
		errs = append(errs, fmt.Errorf("spec.resources.memory must be positive"))
	}

	return errs
}

func (r *RootVolume) validate() []error {
	var errs []error

	if r.Size.IsZero() {
		errs = append(errs, fmt.Errorf("spec.storage.root.size is required"))
	} else if r.Size.Sign() <= 0 {
		errs = append(errs, fmt.Errorf("spec.storage.root.size must be positive"))
	}

	switch r.AccessMode {
	case "", corev1.ReadWriteOnce, corev1.ReadOnlyMany, corev1.ReadWriteMany:
	default:
		errs = append(errs, fmt.Errorf("spec.storage.root.accessMode %q is not a known access mode", r.AccessMode))
	}

	if r.VolumeMode != nil {
		switch *r.VolumeMode {
		case corev1.PersistentVolumeBlock, corev1.PersistentVolumeFilesystem:
		default:
			errs = append(errs, fmt.Errorf("spec.storage.root.volumeMode %q is not one of Block, Filesystem", *r.VolumeMode))
		}
	}

	if r.Source != nil && r.Source.PVC != nil {
		if r.Source.PVC.Name == "" {
			errs = append(errs, fmt.Errorf("spec.storage.root.source.pvc.name is required"))
		}
		if r.Source.PVC.Namespace == "" {
			errs = append(errs, fmt.Errorf("spec.storage.root.source.pvc.namespace is required"))
		}
	}

	return errs
}

func (n *VirtualServerNetwork) validate() []error {
	var errs []error

	switch n.DNSPolicy {
	case "", corev1.DNSClusterFirst, corev1.DNSClusterFirstWithHostNet, corev1.DNSDefault, corev1.DNSNone:
	default:
		errs = append(errs, fmt.Errorf("spec.network.dnsPolicy %q is not a known DNS policy", n.DNSPolicy))
	}

	// A public instance needs an address to be reachable on. Instances that
	// opt out of cluster networking bring their own attachment.
	if n.Public && !n.DirectAttachLoadBalancerIP && !n.DisableK8sNetworking {
		errs = append(errs, fmt.Errorf("spec.network.public requires directAttachLoadBalancerIP"))
	}

	return errs
}
