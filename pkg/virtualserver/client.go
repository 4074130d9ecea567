package virtualserver

import (
	"context"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/apimachinery/pkg/watch"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client"

	vsv1alpha1 "github.com/outerbounds/vsctl/api/v1alpha1"
	"github.com/outerbounds/vsctl/internal/logger"
)

// Backoff configurations for API calls against the control plane.
var (
	// Standard backoff for most operations
	StandardBackoff = wait.Backoff{
		Duration: 100 * time.Millisecond,
		Factor:   2.0,
		Jitter:   0.1,
		Steps:    5,
	}

	// Slower backoff for re-establishing broken watches
	WatchBackoff = wait.Backoff{
		Duration: 500 * time.Millisecond,
		Factor:   2.0,
		Jitter:   0.1,
		Steps:    5,
	}
)

// NewScheme returns a runtime scheme holding the client-go types plus the
// virtualservers.coreweave.com group.
func NewScheme() *runtime.Scheme {
	s := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(s))
	utilruntime.Must(vsv1alpha1.AddToScheme(s))
	return s
}

// Client wraps a Kubernetes client scoped to VirtualServer resources.
type Client struct {
	c   client.WithWatch
	cfg *rest.Config
}

// NewClient builds a Client from a REST config.
func NewClient(cfg *rest.Config) (*Client, error) {
	if _, err := logger.InitLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	c, err := client.NewWithWatch(cfg, client.Options{Scheme: NewScheme()})
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return &Client{c: c, cfg: cfg}, nil
}

// NewClientFromKubeconfig builds a Client from a kubeconfig file. An empty
// path falls back to the standard loading rules ($KUBECONFIG, ~/.kube/config).
func NewClientFromKubeconfig(path string) (*Client, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if path != "" {
		loadingRules.ExplicitPath = path
	}
	cfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules, &clientcmd.ConfigOverrides{}).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	return NewClient(cfg)
}

// NewClientFor wraps an existing client. Used by tests to swap in a fake.
func NewClientFor(c client.WithWatch) *Client {
	_, _ = logger.InitLogger()
	return &Client{c: c}
}

// Create submits the VirtualServer. The manifest is validated first so schema
// errors surface before the API server is touched.
func (c *Client) Create(ctx context.Context, vs *vsv1alpha1.VirtualServer) error {
	if err := vs.Validate(); err != nil {
		return err
	}
	return wait.ExponentialBackoffWithContext(ctx, StandardBackoff, func(ctx context.Context) (bool, error) {
		err := c.c.Create(ctx, vs)
		if err != nil {
			if apierrors.IsAlreadyExists(err) || apierrors.IsInvalid(err) || apierrors.IsForbidden(err) {
				return false, err // Don't retry on permanent errors
			}
			logger.Log.Warn("transient error creating VirtualServer, retrying",
				"name", vs.Name, "namespace", vs.Namespace, "error", err.Error())
			return false, nil // Retry on transient errors
		}
		return true, nil
	})
}

// Update replaces the VirtualServer spec. Conflicts are retried with a fresh
// read so concurrent control-plane writes don't fail the caller.
func (c *Client) Update(ctx context.Context, vs *vsv1alpha1.VirtualServer) error {
	if err := vs.Validate(); err != nil {
		return err
	}
	return wait.ExponentialBackoffWithContext(ctx, StandardBackoff, func(ctx context.Context) (bool, error) {
		err := c.c.Update(ctx, vs)
		if err != nil {
			if apierrors.IsNotFound(err) || apierrors.IsInvalid(err) || apierrors.IsForbidden(err) {
				return false, err // Don't retry on permanent errors
			}
			if apierrors.IsConflict(err) {
				var current vsv1alpha1.VirtualServer
				if getErr := c.c.Get(ctx, client.ObjectKeyFromObject(vs), &current); getErr == nil {
					vs.ResourceVersion = current.ResourceVersion
				}
				logger.Log.Warn("conflict updating VirtualServer (resource version mismatch), retrying",
					"name", vs.Name, "namespace", vs.Namespace)
				return false, nil // Retry on conflict
			}
			logger.Log.Warn("transient error updating VirtualServer, retrying",
				"name", vs.Name, "namespace", vs.Namespace, "error", err.Error())
			return false, nil
		}
		return true, nil
	})
}

// Get fetches a VirtualServer by name.
func (c *Client) Get(ctx context.Context, namespace, name string) (*vsv1alpha1.VirtualServer, error) {
	var vs vsv1alpha1.VirtualServer
	err := wait.ExponentialBackoffWithContext(ctx, StandardBackoff, func(ctx context.Context) (bool, error) {
		err := c.c.Get(ctx, client.ObjectKey{Name: name, Namespace: namespace}, &vs)
		if err != nil {
			if apierrors.IsNotFound(err) {
				return false, err // Don't retry on notFound errors
			}
			logger.Log.Warn("transient error getting VirtualServer, retrying",
				"name", name, "namespace", namespace, "error", err.Error())
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &vs, nil
}

// List returns all VirtualServers in a namespace.
func (c *Client) List(ctx context.Context, namespace string) (*vsv1alpha1.VirtualServerList, error) {
	var list vsv1alpha1.VirtualServerList
	err := wait.ExponentialBackoffWithContext(ctx, StandardBackoff, func(ctx context.Context) (bool, error) {
		if err := c.c.List(ctx, &list, client.InNamespace(namespace)); err != nil {
			logger.Log.Warn("transient error listing VirtualServers, retrying",
				"namespace", namespace, "error", err.Error())
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Delete removes the VirtualServer. Deleting an absent object is an error,
// matching the API server behavior.
func (c *Client) Delete(ctx context.Context, namespace, name string) error {
	vs := &vsv1alpha1.VirtualServer{}
	vs.Name = name
	vs.Namespace = namespace
	return wait.ExponentialBackoffWithContext(ctx, StandardBackoff, func(ctx context.Context) (bool, error) {
		err := c.c.Delete(ctx, vs)
		if err != nil {
			if apierrors.IsNotFound(err) {
				return false, err
			}
			logger.Log.Warn("transient error deleting VirtualServer, retrying",
				"name", name, "namespace", namespace, "error", err.Error())
			return false, nil
		}
		return true, nil
	})
}

// WaitResult is the terminal observation of a WaitFor call.
type WaitResult struct {
	Phase vsv1alpha1.Phase

	// ExternalIP is populated when the terminal phase is Ready.
	ExternalIP string
}

// WaitFor blocks until the named VirtualServer reaches the wanted phase or a
// competing terminal phase. Waiting for Ready ends early when the instance
// turns out Stopped or Terminating; deletion always ends the wait. The
// returned result carries the phase actually reached, so callers must check
// it against what they asked for.
func (c *Client) WaitFor(ctx context.Context, namespace, name string, want vsv1alpha1.Phase) (*WaitResult, error) {
	logger.Log.Info("waiting for VirtualServer phase",
		"name", name, "namespace", namespace, "want", string(want))

	w, err := c.c.Watch(ctx, &vsv1alpha1.VirtualServerList{}, client.InNamespace(namespace))
	if err != nil {
		return nil, fmt.Errorf("failed to watch VirtualServers in %s: %w", namespace, err)
	}
	defer w.Stop()

	// The watch only delivers future events; classify the current state first
	// so an already-terminal instance doesn't hang the caller.
	if vs, err := c.Get(ctx, namespace, name); err == nil {
		if result := terminalResult(vs, want); result != nil {
			return result, nil
		}
	} else if !apierrors.IsNotFound(err) {
		return nil, err
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case event, ok := <-w.ResultChan():
			if !ok {
				return nil, fmt.Errorf("watch for VirtualServer %s/%s closed unexpectedly", namespace, name)
			}
			vs, ok := event.Object.(*vsv1alpha1.VirtualServer)
			if !ok || vs.Name != name {
				continue
			}
			if event.Type == watch.Deleted {
				logger.Log.Info("VirtualServer has been deleted", "name", name, "namespace", namespace)
				return &WaitResult{Phase: vsv1alpha1.PhaseDeleted}, nil
			}
			if result := terminalResult(vs, want); result != nil {
				return result, nil
			}
		}
	}
}

// terminalResult decides whether the observed phase ends the wait.
func terminalResult(vs *vsv1alpha1.VirtualServer, want vsv1alpha1.Phase) *WaitResult {
	phase := vs.CurrentPhase()
	if phase == vsv1alpha1.PhaseUnknown {
		return nil
	}

	switch {
	case phase == want:
	case want == vsv1alpha1.PhaseReady && (phase == vsv1alpha1.PhaseStopped || phase == vsv1alpha1.PhaseTerminating):
		// Waiting for Ready cannot succeed once the instance is hibernating
		// or going away.
	default:
		return nil
	}

	result := &WaitResult{Phase: phase}
	if phase == vsv1alpha1.PhaseReady {
		result.ExternalIP = vs.Status.Network.ExternalIP
		logger.Log.Info("VirtualServer is ready",
			"name", vs.Name, "namespace", vs.Namespace, "externalIP", result.ExternalIP)
	} else {
		logger.Log.Info("VirtualServer reached terminal phase",
			"name", vs.Name, "namespace", vs.Namespace, "phase", string(phase))
	}
	return result
}
