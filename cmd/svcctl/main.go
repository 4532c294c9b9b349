// Command svcctl is a standalone controller binary: it never links the
// workload it manages, only svcmgr.Manager, matching the common
// deployment shape where installation/control is driven from a
// different binary than the one that runs as the service.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hlandau/svcrun/svcmgr"
)

var (
	flagPrefix string
	flagUser   bool

	flagPath        string
	flagArgs        []string
	flagDisplayName string
	flagDescription string
	flagAutostart   bool
	flagRestart     bool
	flagRunAsUser   string
	flagPassword    string
	flagGroup       string

	flagTimeout time.Duration
)

func main() {
	root := &cobra.Command{
		Use:   "svcctl <name>",
		Short: "Install, start, stop and query services managed by svcrun",
	}
	root.PersistentFlags().StringVar(&flagPrefix, "prefix", "", "service name prefix (e.g. reverse-DNS on macOS)")
	root.PersistentFlags().BoolVar(&flagUser, "user", false, "target a per-user install rather than system-wide")

	root.AddCommand(installCmd(), uninstallCmd(), startCmd(), stopCmd(), statusCmd(), waitCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withManager(name string, fn func(m *svcmgr.Manager) error) error {
	m, err := svcmgr.New(name, flagPrefix, flagUser)
	if err != nil {
		return err
	}
	return fn(m)
}

func installCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <name>",
		Short: "Install a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(args[0], func(m *svcmgr.Manager) error {
				spec := svcmgr.NewSpec(flagPath)
				for _, a := range flagArgs {
					spec = spec.Arg(a)
				}
				if flagDisplayName != "" {
					spec = spec.DisplayName(flagDisplayName)
				}
				if flagDescription != "" {
					spec = spec.Description(flagDescription)
				}
				spec = spec.Autostart(flagAutostart).RestartOnFailure(flagRestart)
				if flagRunAsUser != "" {
					spec = spec.User(flagRunAsUser)
				}
				if flagPassword != "" {
					spec = spec.Password(flagPassword)
				}
				if flagGroup != "" {
					spec = spec.Group(flagGroup)
				}
				built, err := spec.Build()
				if err != nil {
					return err
				}
				return m.Install(built)
			})
		},
	}
	cmd.Flags().StringVar(&flagPath, "path", "", "path to the service executable")
	cmd.Flags().StringArrayVar(&flagArgs, "arg", nil, "argument to pass to the executable (repeatable)")
	cmd.Flags().StringVar(&flagDisplayName, "display-name", "", "human-readable display name")
	cmd.Flags().StringVar(&flagDescription, "description", "", "service description")
	cmd.Flags().BoolVar(&flagAutostart, "autostart", false, "start automatically at boot/logon")
	cmd.Flags().BoolVar(&flagRestart, "restart-on-failure", false, "restart the service if it exits non-zero")
	cmd.Flags().StringVar(&flagRunAsUser, "run-as-user", "", "run the service as this user (system services only)")
	cmd.Flags().StringVar(&flagPassword, "password", "", "password for --run-as-user (required on some platforms)")
	cmd.Flags().StringVar(&flagGroup, "group", "", "run the service as this group, where supported")
	cmd.MarkFlagRequired("path")
	return cmd
}

func uninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <name>",
		Short: "Uninstall a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(args[0], func(m *svcmgr.Manager) error { return m.Uninstall() })
		},
	}
}

func startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <name>",
		Short: "Start a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(args[0], func(m *svcmgr.Manager) error { return m.Start() })
		},
	}
}

func stopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <name>",
		Short: "Stop a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(args[0], func(m *svcmgr.Manager) error { return m.Stop() })
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <name>",
		Short: "Print the current status of a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(args[0], func(m *svcmgr.Manager) error {
				st, err := m.Status()
				if err != nil {
					return err
				}
				fmt.Println(colorizeStatus(st))
				return nil
			})
		},
	}
}

func waitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait <name> <status>",
		Short: "Block until a service reaches the given status, or time out",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseStatus(args[1])
			if err != nil {
				return err
			}
			return withManager(args[0], func(m *svcmgr.Manager) error {
				return m.WaitForStatus(target, flagTimeout)
			})
		},
	}
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 3*time.Second, "maximum time to wait")
	return cmd
}

func parseStatus(s string) (svcmgr.Status, error) {
	for _, st := range []svcmgr.Status{
		svcmgr.NotInstalled, svcmgr.Stopped, svcmgr.StartPending, svcmgr.StopPending,
		svcmgr.Running, svcmgr.ContinuePending, svcmgr.PausePending, svcmgr.Paused,
	} {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("svcctl: unrecognized status %q", s)
}

func colorizeStatus(st svcmgr.Status) string {
	switch st {
	case svcmgr.Running:
		return color.GreenString(st.String())
	case svcmgr.StartPending, svcmgr.StopPending, svcmgr.ContinuePending, svcmgr.PausePending:
		return color.YellowString(st.String())
	case svcmgr.Stopped, svcmgr.Paused:
		return color.RedString(st.String())
	default:
		return color.New(color.Faint).Sprint(st.String())
	}
}
