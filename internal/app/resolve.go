package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgresolver/internal/core"
	"pkgresolver/internal/policies"
	"pkgresolver/internal/types"
)

// Resolve loads a manifest, registers its units, and searches for a
// minimum-cost assignment of one version per requested package. On
// success it writes a lock file when req.LockPath is set.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	assert.NotEmpty(ctx, req.ManifestPath, "manifest path must be set")
	logger := log.Ctx(ctx)

	manifest, err := s.ManifestLoader.Load(req.ManifestPath)
	if err != nil {
		return ResolveResult{}, err
	}

	resolver, depNames, constraintStrings, err := buildRegistry(ctx, manifest)
	if err != nil {
		return ResolveResult{}, err
	}

	var constraints types.ConstraintsList
	for _, raw := range constraintStrings {
		c, err := resolver.GetConstraintFromString(raw)
		if err != nil {
			return ResolveResult{}, err
		}
		constraints = constraints.Push(c)
	}

	preferred, err := preferredVersions(manifest, req.Prefer)
	if err != nil {
		return ResolveResult{}, err
	}

	opts, err := selectPolicy(req.Policy, resolver, preferred)
	if err != nil {
		return ResolveResult{}, err
	}
	opts.StopAfterFirstPropagation = req.StopAfterPropagation

	logger.Debug().Str("policy", req.Policy).Int("dependencies", len(depNames)).Msg("starting resolve")

	solution, err := resolver.Resolve(depNames, constraints, types.ChoiceList{}, opts)
	if err != nil {
		return ResolveResult{}, err
	}

	result := ResolveResult{Cost: solution.Cost}
	for _, uv := range solution.Choices {
		result.Packages = append(result.Packages, ResolvedPackage{Name: uv.Name, Version: uv.Version.String()})
	}

	if req.LockPath != "" {
		if err := s.LockWriter.WriteLock(req.LockPath, solution); err != nil {
			return ResolveResult{}, err
		}
		result.LockPath = req.LockPath
	}

	logger.Info().Int("packages", len(result.Packages)).Float64("cost", result.Cost).Msg("resolve complete")
	return result, nil
}

func selectPolicy(name string, resolver *core.Resolver, preferred map[string]string) (types.SolveOptions, error) {
	switch name {
	case "", "newest":
		return policies.NewNewestPolicy(resolver), nil
	case "stable":
		return policies.NewStablePolicy(resolver), nil
	case "pinned":
		return policies.NewPinnedPolicy(preferred), nil
	default:
		return types.SolveOptions{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown cost policy — " + name)
	}
}
