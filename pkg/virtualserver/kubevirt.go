package virtualserver

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime/schema"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"

	"github.com/outerbounds/vsctl/internal/logger"
)

// The control plane realizes a VirtualServer as a KubeVirt VirtualMachine of
// the same name. Power state changes go through the KubeVirt subresource API
// rather than the VirtualServer object itself.
var kubevirtSubresourceGV = schema.GroupVersion{Group: "subresources.kubevirt.io", Version: "v1"}

// Start powers the instance on through the KubeVirt start subresource.
func (c *Client) Start(ctx context.Context, namespace, name string) error {
	return c.putSubresource(ctx, namespace, name, "start")
}

// Stop powers the instance off. The control plane reports it Stopped once the
// guest has shut down.
func (c *Client) Stop(ctx context.Context, namespace, name string) error {
	return c.putSubresource(ctx, namespace, name, "stop")
}

func (c *Client) putSubresource(ctx context.Context, namespace, name, verb string) error {
	if c.cfg == nil {
		return fmt.Errorf("lifecycle operations need a REST config, construct the client with NewClient")
	}
	restClient, err := newSubresourceClient(c.cfg)
	if err != nil {
		return err
	}

	logger.Log.Info("requesting VirtualServer power state change",
		"name", name, "namespace", namespace, "verb", verb)

	result := restClient.Put().
		AbsPath("/apis", kubevirtSubresourceGV.Group, kubevirtSubresourceGV.Version,
			"namespaces", namespace, "virtualmachines", name, verb).
		Do(ctx)
	if err := result.Error(); err != nil {
		return fmt.Errorf("failed to %s virtual machine %s/%s: %w", verb, namespace, name, err)
	}
	return nil
}

func newSubresourceClient(cfg *rest.Config) (rest.Interface, error) {
	config := rest.CopyConfig(cfg)
	config.GroupVersion = &kubevirtSubresourceGV
	config.APIPath = "/apis"
	config.NegotiatedSerializer = clientgoscheme.Codecs.WithoutConversion()

	restClient, err := rest.RESTClientFor(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubevirt subresource client: %w", err)
	}
	return restClient, nil
}
