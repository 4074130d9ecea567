// Package cli implements the vsctl command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/outerbounds/vsctl/internal/logger"
	"github.com/outerbounds/vsctl/pkg/virtualserver"
)

var (
	kubeconfigPath string
	namespace      string
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vsctl",
		Short:         "Manage CoreWeave VirtualServers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&kubeconfigPath, "kubeconfig", "",
		"Path to the kubeconfig file. Defaults to $KUBECONFIG, then ~/.kube/config.")
	cmd.PersistentFlags().StringVarP(&namespace, "namespace", "n", os.Getenv("KUBERNETES_NAMESPACE"),
		"Tenant namespace. Defaults to $KUBERNETES_NAMESPACE. Find yours at https://cloud.coreweave.com/namespaces/.")

	cmd.AddCommand(
		createCmd(),
		getCmd(),
		listCmd(),
		deleteCmd(),
		startCmd(),
		stopCmd(),
		statusCmd(),
	)
	return cmd
}

// Execute is the primary entrypoint for cobra.
func Execute() {
	if _, err := logger.InitLogger(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := rootCmd().Execute(); err != nil {
		logger.SyncLogger()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logger.SyncLogger()
}

func newClient() (*virtualserver.Client, error) {
	return virtualserver.NewClientFromKubeconfig(kubeconfigPath)
}

func requireNamespace() (string, error) {
	if namespace == "" {
		return "", fmt.Errorf("namespace is required: set --namespace or KUBERNETES_NAMESPACE")
	}
	return namespace, nil
}
