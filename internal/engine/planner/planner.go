// Package planner implements the install plan for a loaded recipe.
package planner

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Step names used for status tracking and telemetry vertices.
const (
	StepLayout   = "layout"
	StepResolve  = "resolve"
	StepGenerate = "generate"
)

// Result is the outcome of one executed install plan.
type Result struct {
	// Layout is the folder set the layout policy produced.
	Layout domain.Layout

	// Lockfile is the lockfile the plan ran against, freshly resolved or reused.
	Lockfile domain.Lockfile

	// Written lists all files the generators emitted, sorted.
	Written []string

	// LockReused is true when the existing lockfile already covered the recipe.
	LockReused bool
}

// Planner executes the install plan: layout, resolution, lockfile, generators.
type Planner struct {
	layouts    ports.LayoutRegistry
	generators ports.GeneratorRegistry
	resolver   ports.DependencyResolver
	store      ports.LockfileStore
	hasher     ports.RecipeHasher
	telemetry  ports.Telemetry

	mu         sync.RWMutex
	stepStatus map[string]domain.VertexStatus
}

// NewPlanner creates a new Planner.
func NewPlanner(
	layouts ports.LayoutRegistry,
	generators ports.GeneratorRegistry,
	resolver ports.DependencyResolver,
	store ports.LockfileStore,
	hasher ports.RecipeHasher,
	telemetry ports.Telemetry,
) *Planner {
	return &Planner{
		layouts:    layouts,
		generators: generators,
		resolver:   resolver,
		store:      store,
		hasher:     hasher,
		telemetry:  telemetry,
		stepStatus: make(map[string]domain.VertexStatus),
	}
}

// StepStatus returns the recorded status of the given step.
func (p *Planner) StepStatus(step string) domain.VertexStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	status, ok := p.stepStatus[step]
	if !ok {
		return domain.VertexStatusPending
	}
	return status
}

func (p *Planner) setStatus(step string, status domain.VertexStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stepStatus[step] = status
}

// Run executes the plan for the given recipe and build context.
// Generators and requirement resolution run concurrently, bounded by parallelism.
func (p *Planner) Run(ctx context.Context, recipe *domain.Recipe, bctx *domain.BuildContext, parallelism int) (*Result, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	layout, err := p.applyLayout(ctx, recipe, bctx)
	if err != nil {
		return nil, err
	}

	lock, reused, err := p.resolveLock(ctx, recipe, parallelism)
	if err != nil {
		return nil, err
	}

	written, err := p.generate(ctx, recipe, bctx, layout, lock, parallelism)
	if err != nil {
		return nil, err
	}

	return &Result{
		Layout:     layout,
		Lockfile:   *lock,
		Written:    written,
		LockReused: reused,
	}, nil
}

func (p *Planner) applyLayout(ctx context.Context, recipe *domain.Recipe, bctx *domain.BuildContext) (domain.Layout, error) {
	p.setStatus(StepLayout, domain.VertexStatusRunning)
	ctx, vertex := p.telemetry.Record(ctx, fmt.Sprintf("%s (%s)", StepLayout, recipe.Layout().String()))

	policy, err := p.layouts.Policy(recipe.Layout().String())
	if err != nil {
		p.setStatus(StepLayout, domain.VertexStatusFailed)
		vertex.Complete(err)
		return domain.Layout{}, err
	}

	layout, err := policy.Apply(ctx, bctx)
	vertex.Complete(err)
	if err != nil {
		p.setStatus(StepLayout, domain.VertexStatusFailed)
		return domain.Layout{}, err
	}

	p.setStatus(StepLayout, domain.VertexStatusCompleted)
	return layout, nil
}

func (p *Planner) resolveLock(ctx context.Context, recipe *domain.Recipe, parallelism int) (*domain.Lockfile, bool, error) {
	p.setStatus(StepResolve, domain.VertexStatusRunning)
	digest := p.hasher.Digest(recipe)
	requirements := recipe.Requirements()

	existing, err := p.store.Read()
	if err != nil {
		p.setStatus(StepResolve, domain.VertexStatusFailed)
		return nil, false, err
	}

	if existing != nil && existing.Covers(digest, requirements) {
		_, vertex := p.telemetry.Record(ctx, StepResolve)
		vertex.Cached()
		p.setStatus(StepResolve, domain.VertexStatusCached)
		return existing, true, nil
	}

	pins := make(map[string]domain.PinnedDependency, len(requirements))
	var pinsMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for _, req := range requirements {
		g.Go(func() error {
			vctx, vertex := p.telemetry.Record(gctx, fmt.Sprintf("%s %s", StepResolve, req.String()))

			pin, err := p.resolver.Resolve(vctx, req)
			vertex.Complete(err)
			if err != nil {
				return err
			}

			pinsMu.Lock()
			pins[pin.Name] = pin
			pinsMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.setStatus(StepResolve, domain.VertexStatusFailed)
		return nil, false, err
	}

	lock := domain.Lockfile{
		Version:      domain.LockfileVersion,
		RecipeDigest: digest,
		Packages:     pins,
	}
	if err := p.store.Write(lock); err != nil {
		p.setStatus(StepResolve, domain.VertexStatusFailed)
		return nil, false, err
	}

	p.setStatus(StepResolve, domain.VertexStatusCompleted)
	return &lock, false, nil
}

func (p *Planner) generate(ctx context.Context, recipe *domain.Recipe, bctx *domain.BuildContext, layout domain.Layout, lock *domain.Lockfile, parallelism int) ([]string, error) {
	p.setStatus(StepGenerate, domain.VertexStatusRunning)

	generators, err := p.generators.Select(recipe.Generators())
	if err != nil {
		p.setStatus(StepGenerate, domain.VertexStatusFailed)
		return nil, err
	}

	if len(generators) == 0 {
		p.setStatus(StepGenerate, domain.VertexStatusSkipped)
		return nil, nil
	}

	var written []string
	var writtenMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for _, gen := range generators {
		g.Go(func() error {
			vctx, vertex := p.telemetry.Record(gctx, fmt.Sprintf("%s %s", StepGenerate, gen.Name()))

			files, err := gen.Emit(vctx, recipe, bctx, layout, lock)
			vertex.Complete(err)
			if err != nil {
				return zerr.With(err, "generator", gen.Name())
			}

			writtenMu.Lock()
			written = append(written, files...)
			writtenMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.setStatus(StepGenerate, domain.VertexStatusFailed)
		return nil, err
	}

	sort.Strings(written)
	p.setStatus(StepGenerate, domain.VertexStatusCompleted)
	return written, nil
}
