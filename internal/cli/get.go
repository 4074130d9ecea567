package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	vsv1alpha1 "github.com/outerbounds/vsctl/api/v1alpha1"
)

func getCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Print a VirtualServer manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := requireNamespace()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			vs, err := client.Get(cmd.Context(), ns, args[0])
			if err != nil {
				return err
			}
			vs.ManagedFields = nil

			var raw []byte
			switch output {
			case "yaml":
				raw, err = yaml.Marshal(vs)
			case "json":
				raw, err = json.MarshalIndent(vs, "", "  ")
				raw = append(raw, '\n')
			default:
				return fmt.Errorf("unknown output format %q, expected yaml or json", output)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json.")
	return cmd
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List VirtualServers in the namespace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := requireNamespace()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			list, err := client.List(cmd.Context(), ns)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tREGION\tPHASE\tEXTERNAL-IP")
			for i := range list.Items {
				vs := &list.Items[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					vs.Name, vs.Spec.Region, vs.CurrentPhase(), externalIP(vs))
			}
			return w.Flush()
		},
	}
	return cmd
}

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a VirtualServer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := requireNamespace()
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.Delete(cmd.Context(), ns, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s/%s\n", ns, args[0])
			return nil
		},
	}
	return cmd
}

func externalIP(vs *vsv1alpha1.VirtualServer) string {
	if vs.Status.Network.ExternalIP == "" {
		return "<none>"
	}
	return vs.Status.Network.ExternalIP
}
