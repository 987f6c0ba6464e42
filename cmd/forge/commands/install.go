package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	var settings []string
	var parallelism int

	cmd := &cobra.Command{
		Use:   "install [path]",
		Short: "Resolve requirements, pin them and generate build files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := parseSettingOverrides(settings)
			if err != nil {
				return err
			}

			result, err := c.app.Install(cmd.Context(), app.InstallOptions{
				BaseDir:     baseDirFromArgs(args),
				Settings:    overrides,
				Parallelism: parallelism,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.LockReused {
				fmt.Fprintln(out, "lockfile up to date")
			} else {
				fmt.Fprintf(out, "pinned %d package(s)\n", len(result.Lockfile.Packages))
			}
			for _, file := range result.Written {
				fmt.Fprintf(out, "generated %s\n", file)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&settings, "settings", "s", nil, "Override a setting axis (axis=value), repeatable")
	cmd.Flags().IntVarP(&parallelism, "parallelism", "j", 0, "Bound concurrent resolution and generation (0 = number of CPUs)")

	return cmd
}

// parseSettingOverrides parses repeated -s axis=value flags.
func parseSettingOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		axis, value, found := strings.Cut(pair, "=")
		if !found || axis == "" || value == "" {
			return nil, zerr.With(domain.ErrInvalidSettingOverride, "flag", pair)
		}
		overrides[axis] = value
	}
	return overrides, nil
}
