// Package simulation implements the orchestrator around the shop simulator:
// it resolves monster plans from the catalog, caps iteration counts, runs
// the engine, and keeps results fetchable for a while.
package simulation

//go:generate mockgen -destination=mock/mock_service.go -package=simulationmock github.com/arcspirits/spirits-api/internal/orchestrators/simulation Service

import (
	"context"
	"time"

	"github.com/arcspirits/spirits-api/internal/engine/shopsim"
	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/pkg/idgen"
	monsterrepo "github.com/arcspirits/spirits-api/internal/repositories/monster"
	simrun "github.com/arcspirits/spirits-api/internal/repositories/sim_run"
)

const (
	// DefaultMaxIterations caps how much work one request can ask for.
	DefaultMaxIterations = 100_000

	// DefaultResultTTL is how long completed runs stay fetchable.
	DefaultResultTTL = 1 * time.Hour

	// MaxStages bounds the per-run stage count. The engine allocates
	// per-stage aggregates up front, so this is a memory bound, not a
	// gameplay one.
	MaxStages = 1_000

	// MaxShopSize bounds the visible shop slots per stage.
	MaxShopSize = 1_000

	// MaxPlayers bounds the simulated player count.
	MaxPlayers = 1_000

	// MaxPoolCopies bounds the total card copies across all rarities.
	MaxPoolCopies = 1_000_000
)

// Service defines the interface for simulation operations
type Service interface {
	// RunShopSimulation executes a Monte-Carlo run and stores the result.
	RunShopSimulation(ctx context.Context, input *RunShopSimulationInput) (*RunShopSimulationOutput, error)

	// GetSimulation re-fetches a stored run by ID.
	GetSimulation(ctx context.Context, input *GetSimulationInput) (*GetSimulationOutput, error)
}

// RunShopSimulationInput contains the simulation request
type RunShopSimulationInput struct {
	// Params for the engine. The RNG field is ignored; use Seed.
	Params shopsim.Params

	// Seed makes the run reproducible when set.
	Seed *uint64

	// UseCatalogMonsters replaces Params.Monsters with plans derived from
	// the monster catalog.
	UseCatalogMonsters bool

	// Progress, when set, receives periodic iteration counts.
	Progress func(completed, total int)
}

// RunShopSimulationOutput contains the stored run
type RunShopSimulationOutput struct {
	Run *simrun.Run
}

// GetSimulationInput identifies the run to fetch
type GetSimulationInput struct {
	RunID string
}

// GetSimulationOutput contains the fetched run
type GetSimulationOutput struct {
	Run *simrun.Run
}

// Config holds the dependencies for the simulation orchestrator
type Config struct {
	SimRunRepo  simrun.Repository
	MonsterRepo monsterrepo.Repository
	IDGenerator idgen.Generator

	// MaxIterations caps requested iteration counts; zero means
	// DefaultMaxIterations.
	MaxIterations int

	// ResultTTL is how long runs stay fetchable; zero means
	// DefaultResultTTL.
	ResultTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SimRunRepo == nil {
		vb.RequiredField("SimRunRepo")
	}
	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	simRunRepo    simrun.Repository
	monsterRepo   monsterrepo.Repository
	idGen         idgen.Generator
	maxIterations int
	resultTTL     time.Duration
}

// NewOrchestrator creates a new simulation orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxIter := cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	ttl := cfg.ResultTTL
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}

	return &orchestrator{
		simRunRepo:    cfg.SimRunRepo,
		monsterRepo:   cfg.MonsterRepo,
		idGen:         cfg.IDGenerator,
		maxIterations: maxIter,
		resultTTL:     ttl,
	}, nil
}

// RunShopSimulation executes a Monte-Carlo run and stores the result
func (o *orchestrator) RunShopSimulation(ctx context.Context, input *RunShopSimulationInput) (*RunShopSimulationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if len(input.Params.CopiesByRarity) == 0 {
		return nil, errors.InvalidArgument("copies_by_rarity cannot be empty")
	}
	if err := boundParams(&input.Params); err != nil {
		return nil, err
	}

	params := input.Params
	if params.Iterations > o.maxIterations {
		params.Iterations = o.maxIterations
	}
	params.Progress = input.Progress

	params.RNG = nil
	if input.Seed != nil {
		params.RNG = shopsim.NewSeededRNG(*input.Seed)
	}

	if input.UseCatalogMonsters {
		plans, err := o.catalogMonsterPlans(ctx)
		if err != nil {
			return nil, err
		}
		params.Monsters = plans
	}

	result := shopsim.Run(params)

	run := &simrun.Run{
		ID:     o.idGen.Generate(),
		Params: params,
		Seed:   input.Seed,
		Result: result,
	}
	stored, err := o.simRunRepo.Create(ctx, simrun.CreateInput{
		Run: run,
		TTL: o.resultTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store simulation run")
	}

	return &RunShopSimulationOutput{Run: stored.Run}, nil
}

// GetSimulation re-fetches a stored run by ID
func (o *orchestrator) GetSimulation(ctx context.Context, input *GetSimulationInput) (*GetSimulationOutput, error) {
	if input == nil || input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}

	out, err := o.simRunRepo.Get(ctx, simrun.GetInput{ID: input.RunID})
	if err != nil {
		return nil, err
	}

	return &GetSimulationOutput{Run: out.Run}, nil
}

// boundParams rejects requests whose size fields would make the engine
// allocate unreasonable amounts of memory. The engine clamps values for
// correctness; the API refuses them outright.
func boundParams(p *shopsim.Params) error {
	vb := errors.NewValidationBuilder()

	if p.Stages > MaxStages {
		vb.Fieldf("stages", "must be at most %d", MaxStages)
	}
	if p.ShopSize > MaxShopSize {
		vb.Fieldf("shop_size", "must be at most %d", MaxShopSize)
	}
	if p.Players > MaxPlayers {
		vb.Fieldf("players", "must be at most %d", MaxPlayers)
	}

	total := 0
	for _, n := range p.CopiesByRarity {
		if n > 0 {
			total += n
		}
	}
	if total > MaxPoolCopies {
		vb.Fieldf("copies_by_rarity", "total copies must be at most %d", MaxPoolCopies)
	}

	return vb.Build()
}

// catalogMonsterPlans turns the monster catalog into engine plans.
func (o *orchestrator) catalogMonsterPlans(ctx context.Context) ([]shopsim.MonsterPlan, error) {
	out, err := o.monsterRepo.List(ctx, monsterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog monsters")
	}

	plans := make([]shopsim.MonsterPlan, 0, len(out.Monsters))
	for _, m := range out.Monsters {
		if m.Count <= 0 || m.ShopTakeLimit <= 0 {
			continue
		}
		plans = append(plans, shopsim.MonsterPlan{
			Rarity:        m.Rarity,
			Count:         m.Count,
			ShopTakeLimit: m.ShopTakeLimit,
			StageMin:      m.StageMin,
			StageMax:      m.StageMax,
		})
	}
	return plans, nil
}
