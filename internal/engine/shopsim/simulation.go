// Package shopsim implements the Monte-Carlo shop/draw estimator for the
// stage-based draft loop: a supply pool feeds a fixed-size shop, monsters
// consume matching-rarity cards each stage, and players attempt probabilistic
// purchases against a per-stage plan. Results are expected values averaged
// over many independent iterations.
package shopsim

import (
	"github.com/arcspirits/spirits-api/internal/entities/spirits"
)

const (
	// DefaultPurchaseSuccessRate is the chance a single purchase attempt
	// succeeds when the caller does not override it.
	DefaultPurchaseSuccessRate = 0.5

	// DefaultIterations balances accuracy against latency for interactive
	// what-if runs.
	DefaultIterations = 1000

	// emptySlot marks an unfilled shop slot.
	emptySlot = spirits.Rarity("")
)

// MonsterPlan configures one monster entry for the simulation: how many
// occurrences are in play, which rarity they consume, how many cards each
// occurrence may take in total, and the stage window they are active in.
type MonsterPlan struct {
	Rarity        spirits.Rarity `json:"rarity"`
	Count         int            `json:"count"`
	ShopTakeLimit int            `json:"shop_take_limit"`
	StageMin      int            `json:"stage_min"`
	StageMax      int            `json:"stage_max"`
}

// StagePurchasePlan maps rarity to the per-player target acquisition count
// for one stage.
type StagePurchasePlan map[spirits.Rarity]int

// Params describes one simulation run. Malformed values are clamped rather
// than rejected; this is a best-effort estimator.
type Params struct {
	// CopiesByRarity is the supply pool composition.
	CopiesByRarity map[spirits.Rarity]int `json:"copies_by_rarity"`

	// Players is the number of simulated players.
	Players int `json:"players"`

	// ShopSize is the number of visible draft slots.
	ShopSize int `json:"shop_size"`

	// Stages is the number of rounds of the monster/purchase loop.
	Stages int `json:"stages"`

	// PurchaseSuccessRate is the per-attempt success probability. Nil means
	// DefaultPurchaseSuccessRate; an explicit zero disables purchases.
	PurchaseSuccessRate *float64 `json:"purchase_success_rate,omitempty"`

	// Monsters configures the monster-removal phase.
	Monsters []MonsterPlan `json:"monsters,omitempty"`

	// PurchasePlans is indexed by stage; stages beyond the slice have no
	// purchase targets.
	PurchasePlans []StagePurchasePlan `json:"purchase_plans,omitempty"`

	// Iterations is the Monte-Carlo sample count. Zero or negative means
	// DefaultIterations.
	Iterations int `json:"iterations"`

	// RNG overrides the randomness source, for reproducible runs. Nil means
	// the crypto-backed default.
	RNG RandomSource `json:"-"`

	// Progress, when set, is invoked periodically with the number of
	// completed iterations so long runs can report liveness.
	Progress func(completed, total int) `json:"-"`
}

// progressInterval is how many iterations pass between Progress callbacks.
const progressInterval = 100

// StageExpectation holds the expected per-rarity counts after one stage,
// averaged over all iterations. PlayerHoldings and MonsterHoldings are
// cumulative from the start of the run.
type StageExpectation struct {
	Stage           int                        `json:"stage"`
	Shop            map[spirits.Rarity]float64 `json:"shop"`
	Pool            map[spirits.Rarity]float64 `json:"pool"`
	PlayerHoldings  map[spirits.Rarity]float64 `json:"player_holdings"`
	MonsterHoldings map[spirits.Rarity]float64 `json:"monster_holdings"`
}

// Result is the aggregate outcome of a simulation run. Immutable once
// returned.
type Result struct {
	Iterations     int                `json:"iterations"`
	Stages         []StageExpectation `json:"stages"`
	TotalPurchases Stats              `json:"total_purchases"`
}

// normalized returns a copy of p with defaults applied and malformed values
// clamped to zero.
func (p Params) normalized() Params {
	out := p
	if out.Players < 0 {
		out.Players = 0
	}
	if out.ShopSize < 0 {
		out.ShopSize = 0
	}
	if out.Stages < 0 {
		out.Stages = 0
	}
	if out.Iterations <= 0 {
		out.Iterations = DefaultIterations
	}
	if out.PurchaseSuccessRate == nil {
		rate := DefaultPurchaseSuccessRate
		out.PurchaseSuccessRate = &rate
	} else {
		rate := *out.PurchaseSuccessRate
		if rate < 0 {
			rate = 0
		}
		if rate > 1 {
			rate = 1
		}
		out.PurchaseSuccessRate = &rate
	}
	if out.RNG == nil {
		out.RNG = DefaultRNG()
	}

	copies := make(map[spirits.Rarity]int, len(out.CopiesByRarity))
	for r, n := range out.CopiesByRarity {
		if n > 0 {
			copies[r] = n
		}
	}
	out.CopiesByRarity = copies

	monsters := make([]MonsterPlan, 0, len(out.Monsters))
	for _, m := range out.Monsters {
		// A plan with no valid rarity would match empty shop slots.
		if !m.Rarity.IsValid() {
			continue
		}
		if m.Count < 0 {
			m.Count = 0
		}
		if m.ShopTakeLimit < 0 {
			m.ShopTakeLimit = 0
		}
		monsters = append(monsters, m)
	}
	out.Monsters = monsters

	return out
}

// iterationState is the mutable world for a single Monte-Carlo iteration.
type iterationState struct {
	pool            []spirits.Rarity
	shop            []spirits.Rarity
	playerHoldings  map[spirits.Rarity]int
	monsterHoldings map[spirits.Rarity]int
	totalPurchases  int

	// monsterUse counts shop takes per monster occurrence; grown lazily as
	// occurrences are first seen so plan edits between runs stay cheap.
	monsterUse []int
}

func newIteration(p Params) *iterationState {
	st := &iterationState{
		pool:            BuildPool(p.CopiesByRarity),
		shop:            make([]spirits.Rarity, p.ShopSize),
		playerHoldings:  make(map[spirits.Rarity]int),
		monsterHoldings: make(map[spirits.Rarity]int),
	}
	for i := range st.shop {
		if r, ok := DrawFromPool(&st.pool, nil, false, p.RNG); ok {
			st.shop[i] = r
		} else {
			st.shop[i] = emptySlot
		}
	}
	return st
}

// takeFromShop removes the first matching card from the shop and refills the
// slot from the pool. Returns false when no matching card is visible.
func (st *iterationState) takeFromShop(r spirits.Rarity, rng RandomSource) bool {
	for i, slot := range st.shop {
		if slot != r {
			continue
		}
		if refill, ok := DrawFromPool(&st.pool, nil, true, rng); ok {
			st.shop[i] = refill
		} else {
			st.shop[i] = emptySlot
		}
		return true
	}
	return false
}

// occurrenceCounter returns a pointer to the usage counter for the given
// running occurrence index, growing the array as needed.
func (st *iterationState) occurrenceCounter(idx int) *int {
	for len(st.monsterUse) <= idx {
		st.monsterUse = append(st.monsterUse, 0)
	}
	return &st.monsterUse[idx]
}

// runMonsterPhase lets each active monster occurrence consume one
// matching-rarity card from the shop, within its take limit.
func (st *iterationState) runMonsterPhase(p Params, stage int) {
	occ := 0
	for _, m := range p.Monsters {
		for i := 0; i < m.Count; i++ {
			counter := st.occurrenceCounter(occ)
			occ++

			if stage < m.StageMin || stage > m.StageMax {
				continue
			}
			if *counter >= m.ShopTakeLimit {
				continue
			}
			if st.takeFromShop(m.Rarity, p.RNG) {
				st.monsterHoldings[m.Rarity]++
				*counter++
			}
		}
	}
}

// runPurchasePhase gives every player its per-stage purchase attempts. Each
// attempt succeeds with the configured probability; a success removes one
// matching card from the shop and refills the slot from the pool.
func (st *iterationState) runPurchasePhase(p Params, stage int) {
	if stage >= len(p.PurchasePlans) {
		return
	}
	plan := p.PurchasePlans[stage]
	if len(plan) == 0 {
		return
	}
	rate := *p.PurchaseSuccessRate

	for player := 0; player < p.Players; player++ {
		for _, r := range planRarities(plan) {
			target := plan[r]
			for attempt := 0; attempt < target; attempt++ {
				if rate <= 0 {
					continue
				}
				if rate < 1 && p.RNG.Float64() >= rate {
					continue
				}
				if st.takeFromShop(r, p.RNG) {
					st.playerHoldings[r]++
					st.totalPurchases++
				}
			}
		}
	}
}

// planRarities returns the plan's rarities with nonzero targets in
// deterministic tier order.
func planRarities(plan StagePurchasePlan) []spirits.Rarity {
	out := make([]spirits.Rarity, 0, len(plan))
	for _, r := range spirits.AllRarities() {
		if plan[r] > 0 {
			out = append(out, r)
		}
	}
	if plan[spirits.RarityUnknown] > 0 {
		out = append(out, spirits.RarityUnknown)
	}
	return out
}

// counts tallies a slice of rarity tags, skipping empty slots.
func counts(tags []spirits.Rarity) map[spirits.Rarity]int {
	out := make(map[spirits.Rarity]int)
	for _, r := range tags {
		if r != emptySlot {
			out[r]++
		}
	}
	return out
}

// Run executes the simulation and returns expected per-stage counts averaged
// over all iterations. It never fails: malformed parameters are clamped and
// exhausted pools simply shorten phases.
func Run(params Params) *Result {
	p := params.normalized()

	type stageSums struct {
		shop     map[spirits.Rarity]float64
		pool     map[spirits.Rarity]float64
		players  map[spirits.Rarity]float64
		monsters map[spirits.Rarity]float64
	}
	sums := make([]stageSums, p.Stages)
	for i := range sums {
		sums[i] = stageSums{
			shop:     make(map[spirits.Rarity]float64),
			pool:     make(map[spirits.Rarity]float64),
			players:  make(map[spirits.Rarity]float64),
			monsters: make(map[spirits.Rarity]float64),
		}
	}

	purchaseSamples := make([]int, p.Iterations)

	for iter := 0; iter < p.Iterations; iter++ {
		st := newIteration(p)

		for stage := 0; stage < p.Stages; stage++ {
			st.runMonsterPhase(p, stage)
			st.runPurchasePhase(p, stage)

			for r, n := range counts(st.shop) {
				sums[stage].shop[r] += float64(n)
			}
			for r, n := range counts(st.pool) {
				sums[stage].pool[r] += float64(n)
			}
			for r, n := range st.playerHoldings {
				sums[stage].players[r] += float64(n)
			}
			for r, n := range st.monsterHoldings {
				sums[stage].monsters[r] += float64(n)
			}
		}

		purchaseSamples[iter] = st.totalPurchases

		if p.Progress != nil && (iter+1)%progressInterval == 0 {
			p.Progress(iter+1, p.Iterations)
		}
	}

	divide := func(m map[spirits.Rarity]float64) map[spirits.Rarity]float64 {
		out := make(map[spirits.Rarity]float64, len(m))
		for r, v := range m {
			out[r] = v / float64(p.Iterations)
		}
		return out
	}

	result := &Result{
		Iterations:     p.Iterations,
		Stages:         make([]StageExpectation, p.Stages),
		TotalPurchases: calcStats(purchaseSamples),
	}
	for i := range sums {
		result.Stages[i] = StageExpectation{
			Stage:           i,
			Shop:            divide(sums[i].shop),
			Pool:            divide(sums[i].pool),
			PlayerHoldings:  divide(sums[i].players),
			MonsterHoldings: divide(sums[i].monsters),
		}
	}
	return result
}
