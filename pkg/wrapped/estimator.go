package wrapped

import (
	"math/rand/v2"
	"sync"
)

// Personas a deck may be labelled with.
var Personas = []string{"Code Wizard", "UI Master", "Dev Ninja"}

// Bounds of the fabricated figures.
const (
	MinContributions  = 50
	ContribPerRepo    = 12
	ContribJitter     = 600
	HeatmapMaxCount   = 25 // exclusive
	MinLongestStreak  = 15
	MaxLongestStreak  = 60 // exclusive
	personaStreakSeed = 0x9e3779b97f4a7c15
)

// EstimateInput anchors the fabricated figures. The counts only raise the
// floor of the random range; they do not seed it.
type EstimateInput struct {
	RepoCount  int
	EventCount int
}

// Estimate holds figures the anonymous REST API cannot supply.
// None of them reflect real activity.
type Estimate struct {
	Contributions int
	Heatmap       Heatmap
	LongestStreak int
	Persona       string
}

// StatsEstimator fabricates the statistics missing from the public API.
// A real contribution-calendar source can replace it without touching
// aggregation or rendering.
type StatsEstimator interface {
	Estimate(in EstimateInput) Estimate
}

// intSource is the subset of math/rand/v2 the estimators draw from.
type intSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// RandomEstimator draws from the process-wide random source.
// Results are not reproducible.
type RandomEstimator struct{}

// NewRandomEstimator returns an unseeded estimator.
func NewRandomEstimator() RandomEstimator { return RandomEstimator{} }

// Estimate implements [StatsEstimator].
func (RandomEstimator) Estimate(in EstimateInput) Estimate {
	return estimate(globalSource{}, in)
}

// SeededEstimator draws from a PCG source so the same seed and the same
// sequence of calls produce the same figures. It is safe for concurrent use.
type SeededEstimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededEstimator returns a deterministic estimator.
func NewSeededEstimator(seed uint64) *SeededEstimator {
	return &SeededEstimator{rng: rand.New(rand.NewPCG(seed, seed^personaStreakSeed))}
}

// Estimate implements [StatsEstimator].
func (e *SeededEstimator) Estimate(in EstimateInput) Estimate {
	e.mu.Lock()
	defer e.mu.Unlock()
	return estimate(e.rng, in)
}

func estimate(src intSource, in EstimateInput) Estimate {
	base := max(in.RepoCount, 0)*ContribPerRepo + max(in.EventCount, 0)
	contributions := max(MinContributions, base+src.IntN(ContribJitter))

	counts := make([]int, HeatmapCells)
	for i := range counts {
		counts[i] = src.IntN(HeatmapMaxCount)
	}

	return Estimate{
		Contributions: contributions,
		Heatmap:       NewHeatmap(counts, contributions),
		LongestStreak: MinLongestStreak + src.IntN(MaxLongestStreak-MinLongestStreak),
		Persona:       Personas[src.IntN(len(Personas))],
	}
}
