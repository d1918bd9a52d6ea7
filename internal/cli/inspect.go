package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgresolver/internal/app"
)

type inspectOptions struct {
	Manifest string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report registry statistics for a manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file path")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("units: %d, packages: %d, interned constraints: %d\n", result.UnitCount, result.PackageCount, result.ConstraintCount)
	for _, pkg := range result.Packages {
		fmt.Printf("- %s: %d version(s)\n", pkg.Name, pkg.VersionCount)
	}
	return nil
}
