package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgresolver/internal/app"
)

type resolveOptions struct {
	Manifest             string
	Policy               string
	Prefer               []string
	Lock                 string
	StopAfterPropagation bool
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a manifest to a minimum-cost set of unit versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file path")
	cmd.Flags().StringVar(&opts.Policy, "policy", "newest", "Cost policy: newest, stable, or pinned")
	cmd.Flags().StringSliceVar(&opts.Prefer, "prefer", nil, "Preferred version for the pinned policy, name@version (repeatable)")
	cmd.Flags().StringVar(&opts.Lock, "lock", "", "Lock file output path (optional)")
	cmd.Flags().BoolVar(&opts.StopAfterPropagation, "stop-after-propagation", false, "Stop once exact-constraint propagation closes, without free search")

	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("policy", cmd.Flags().Lookup("policy"))
	_ = viper.BindPFlag("prefer", cmd.Flags().Lookup("prefer"))
	_ = viper.BindPFlag("lock", cmd.Flags().Lookup("lock"))
	_ = viper.BindPFlag("stop_after_propagation", cmd.Flags().Lookup("stop-after-propagation"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		ManifestPath:         resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Policy:               resolveString(cmd, opts.Policy, "policy", "policy"),
		Prefer:               resolveStrings(cmd, opts.Prefer, "prefer", "prefer"),
		LockPath:             resolveString(cmd, opts.Lock, "lock", "lock"),
		StopAfterPropagation: resolveBool(cmd, opts.StopAfterPropagation, "stop_after_propagation", "stop-after-propagation"),
	})
	if err != nil {
		return err
	}

	for _, pkg := range result.Packages {
		fmt.Printf("%s@%s\n", pkg.Name, pkg.Version)
	}
	fmt.Printf("cost: %g\n", result.Cost)
	if result.LockPath != "" {
		fmt.Printf("lock written to %s\n", result.LockPath)
	}
	return nil
}
