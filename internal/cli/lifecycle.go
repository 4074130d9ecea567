package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	vsv1alpha1 "github.com/outerbounds/vsctl/api/v1alpha1"
)

func startCmd() *cobra.Command {
	var noWait bool
	cmd := &cobra.Command{
		Use:   "start NAME",
		Short: "Start a stopped VirtualServer",
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
			if err := client.Start(cmd.Context(), ns, args[0]); err != nil {
				return err
			}
			if noWait {
				return nil
			}
			result, err := client.WaitFor(cmd.Context(), ns, args[0], vsv1alpha1.PhaseReady)
			if err != nil {
				return err
			}
			if result.Phase != vsv1alpha1.PhaseReady {
				return fmt.Errorf("%s/%s entered phase %s instead of becoming ready", ns, args[0], result.Phase)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is ready at %s\n", args[0], result.ExternalIP)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Return immediately after the start request is accepted.")
	return cmd
}

func stopCmd() *cobra.Command {
	var noWait bool
	cmd := &cobra.Command{
		Use:   "stop NAME",
		Short: "Stop a running VirtualServer",
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
			if err := client.Stop(cmd.Context(), ns, args[0]); err != nil {
				return err
			}
			if noWait {
				return nil
			}
			result, err := client.WaitFor(cmd.Context(), ns, args[0], vsv1alpha1.PhaseStopped)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", args[0], result.Phase)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Return immediately after the stop request is accepted.")
	return cmd
}

func statusCmd() *cobra.Command {
	var waitFor string
	cmd := &cobra.Command{
		Use:   "status NAME",
		Short: "Print the current phase of a VirtualServer, optionally waiting for one",
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

			if waitFor != "" {
				want, err := parsePhase(waitFor)
				if err != nil {
					return err
				}
				result, err := client.WaitFor(cmd.Context(), ns, args[0], want)
				if err != nil {
					return err
				}
				if result.ExternalIP != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", result.Phase, result.ExternalIP)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Phase)
				return nil
			}

			vs, err := client.Get(cmd.Context(), ns, args[0])
			if err != nil {
				return err
			}
			phase := vs.CurrentPhase()
			if ip := vs.Status.Network.ExternalIP; ip != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", phase, ip)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), phase)
			return nil
		},
	}
	cmd.Flags().StringVar(&waitFor, "wait-for", "", "Block until the instance reaches this phase (Ready or Stopped).")
	return cmd
}

func parsePhase(s string) (vsv1alpha1.Phase, error) {
	switch vsv1alpha1.Phase(s) {
	case vsv1alpha1.PhaseReady, vsv1alpha1.PhaseStopped, vsv1alpha1.PhaseTerminating:
		return vsv1alpha1.Phase(s), nil
	}
	return "", fmt.Errorf("unknown phase %q, expected Ready, Stopped or Terminating", s)
}
