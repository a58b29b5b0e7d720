// Package driver runs the evolutionary loop shared by NSGA-II and
// NSGA-III: select parents, recombine, mutate, evaluate, sort, and hand
// off to an algorithm-specific survival selector, polling a stopping
// condition at the end of every generation. It generalizes the teacher's
// NSGAII.Run worker-pool loop (algorithms/nsga2.go) to an
// algorithm-agnostic shape driven by the SurvivalSelector interface.
package driver

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/internal/log"
	"github.com/ashwinyue/optirustic-go/optimizer"
	"github.com/ashwinyue/optirustic-go/optimizer/operator"
	"github.com/ashwinyue/optirustic-go/optimizer/stopping"
)

// SurvivalSelector trims a combined parent+offspring set down to the
// target population size. Implemented by nsga2.SurvivalSelector and
// nsga3.SurvivalSelector. An error aborts the run (§7): NSGA-III's
// implementation returns one if association discovers a reference point
// with a coordinate outside [0, 1].
type SurvivalSelector interface {
	Select(combined []*optimizer.Individual, targetCount int) ([]*optimizer.Individual, error)
}

// Config configures a Driver run.
type Config struct {
	// AlgorithmName is recorded in history exports ("NSGA-II", "NSGA-III").
	AlgorithmName string
	// PopulationSize is N, required to be at least 3.
	PopulationSize int
	// ForceEvenPopulation silently decrements an odd PopulationSize by one
	// instead of rejecting it, matching NSGA-III's tolerance for an
	// uneven split front. NSGA-II requires a population size that is
	// already a multiple of 2 and rejects an odd value as a
	// configuration error.
	ForceEvenPopulation bool
	// Crossover recombines two parents into two children.
	Crossover *operator.SimulatedBinaryCrossover
	// Mutation perturbs one offspring.
	Mutation *operator.PolynomialMutation
	// TournamentComparator orders two individuals for binary-tournament
	// mating selection. Defaults to operator.CrowdedComparator.
	TournamentComparator operator.Comparator
	// Survival is the algorithm-specific environmental selection step.
	Survival SurvivalSelector
	// Stop terminates the loop once met, checked at the end of every
	// generation.
	Stop stopping.Condition
	// Parallel evaluates each generation's unevaluated individuals over a
	// worker pool sized to runtime.NumCPU instead of serially. Default
	// false; callers following the spec's convention set Parallel=true
	// for NSGA-III and leave it false for NSGA-II.
	Parallel bool
	// Rng is the single RNG instance owned by the driver; it is never
	// shared with the evaluator or with parallel workers.
	Rng *rand.Rand
	// History, if non-nil, is invoked once per generation (after survival
	// selection) so the caller can serialise a History snapshot.
	History func(h *History) error
	// HistoryEvery gates how often History is invoked: every N
	// generations. 0 or 1 means every generation.
	HistoryEvery int
}

// Driver runs the evolutionary loop against a Problem until Config.Stop
// is met.
type Driver struct {
	cfg        Config
	problem    *optimizer.Problem
	generation int
	startTime  time.Time
	funcEvals  int
}

// New validates cfg and builds a Driver for problem. The initial
// population is not yet created; call Run to execute.
func New(problem *optimizer.Problem, cfg Config) (*Driver, error) {
	if cfg.PopulationSize < 3 {
		return nil, fmt.Errorf("%w: population size must be at least 3, got %d", optimizer.ErrConfiguration, cfg.PopulationSize)
	}
	if cfg.Crossover == nil || cfg.Mutation == nil {
		return nil, fmt.Errorf("%w: crossover and mutation operators are required", optimizer.ErrConfiguration)
	}
	if cfg.Survival == nil {
		return nil, fmt.Errorf("%w: a survival selector is required", optimizer.ErrConfiguration)
	}
	for _, v := range problem.Variables {
		if v.Kind != optimizer.Real && v.Kind != optimizer.Integer {
			return nil, fmt.Errorf("%w: SBX crossover and polynomial mutation only support Real and Integer variables, got %q of kind %s", optimizer.ErrConfiguration, v.Name, v.Kind)
		}
	}
	if cfg.Stop == nil {
		return nil, fmt.Errorf("%w: a stopping condition is required", optimizer.ErrConfiguration)
	}
	if cfg.Rng == nil {
		return nil, fmt.Errorf("%w: an RNG is required", optimizer.ErrConfiguration)
	}
	if cfg.TournamentComparator == nil {
		cfg.TournamentComparator = operator.CrowdedComparator
	}
	if cfg.PopulationSize%2 != 0 {
		if !cfg.ForceEvenPopulation {
			return nil, fmt.Errorf("%w: population size %d is not a multiple of 2", optimizer.ErrConfiguration, cfg.PopulationSize)
		}
		cfg.PopulationSize--
		log.Warningf("population size forced even, now %d", cfg.PopulationSize)
	}
	return &Driver{cfg: cfg, problem: problem}, nil
}

// Run executes generations until the stopping condition is met and
// returns the final population.
func (d *Driver) Run() (*optimizer.Population, error) {
	d.startTime = time.Now()

	log.InfoS("starting evolutionary run",
		"algorithm", d.cfg.AlgorithmName,
		"populationSize", d.cfg.PopulationSize,
		"parallel", d.cfg.Parallel)

	population := optimizer.NewRandomPopulation(d.problem, d.cfg.PopulationSize, d.cfg.Rng)
	if err := d.evaluate(population.Individuals()); err != nil {
		return nil, fmt.Errorf("initial population evaluation: %w", err)
	}
	d.generation = 1

	for {
		offspring := d.produceOffspring(population.Individuals())
		if err := d.evaluate(offspring); err != nil {
			return nil, fmt.Errorf("generation %d offspring evaluation: %w", d.generation, err)
		}

		combined := make([]*optimizer.Individual, 0, population.Len()+len(offspring))
		combined = append(combined, population.Individuals()...)
		combined = append(combined, offspring...)

		survivors, err := d.cfg.Survival.Select(combined, d.cfg.PopulationSize)
		if err != nil {
			return nil, fmt.Errorf("generation %d survival selection: %w", d.generation, err)
		}
		population = optimizer.NewPopulation(d.problem)
		for _, ind := range survivors {
			population.Append(ind)
		}

		if d.cfg.History != nil && d.shouldExportHistory() {
			if err := d.cfg.History(d.buildHistory(population)); err != nil {
				return nil, fmt.Errorf("generation %d history export: %w", d.generation, err)
			}
		}

		log.V(log.LevelGeneration).InfoS("generation complete",
			"generation", d.generation, "elapsed", time.Since(d.startTime))

		state := stopping.State{
			Generation:          d.generation,
			FunctionEvaluations: d.funcEvals,
			Elapsed:             time.Since(d.startTime),
		}
		if d.cfg.Stop.Met(state) {
			log.InfoS("stopping condition met", "condition", d.cfg.Stop.Name(), "generation", d.generation)
			return population, nil
		}
		d.generation++
	}
}

func (d *Driver) shouldExportHistory() bool {
	every := d.cfg.HistoryEvery
	if every <= 1 {
		return true
	}
	return d.generation%every == 0
}

// produceOffspring runs N/2 binary-tournament-select + crossover +
// mutate pairs, per §4.11 step 1.
func (d *Driver) produceOffspring(population []*optimizer.Individual) []*optimizer.Individual {
	pairs := d.cfg.PopulationSize / 2
	offspring := make([]*optimizer.Individual, 0, pairs*2)

	for i := 0; i < pairs; i++ {
		p1 := operator.TournamentSelect(d.cfg.Rng, population, 2, d.cfg.TournamentComparator)
		p2 := operator.TournamentSelect(d.cfg.Rng, population, 2, d.cfg.TournamentComparator)
		c1, c2 := d.cfg.Crossover.GenerateOffspring(d.cfg.Rng, p1, p2)
		c1 = d.cfg.Mutation.Mutate(d.cfg.Rng, c1)
		c2 = d.cfg.Mutation.Mutate(d.cfg.Rng, c2)
		offspring = append(offspring, c1, c2)
	}
	return offspring
}

// evaluate runs Evaluate over every unevaluated individual, serially or
// over a worker pool sized to runtime.NumCPU per Config.Parallel,
// mirroring the teacher's worker-channel pattern.
func (d *Driver) evaluate(individuals []*optimizer.Individual) error {
	pending := make([]*optimizer.Individual, 0, len(individuals))
	for _, ind := range individuals {
		if !ind.Evaluated() {
			pending = append(pending, ind)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	if !d.cfg.Parallel {
		for _, ind := range pending {
			if err := ind.Evaluate(); err != nil {
				return err
			}
			d.funcEvals++
		}
		return nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(pending) {
		numWorkers = len(pending)
	}
	workChan := make(chan *optimizer.Individual, len(pending))
	errs := make(chan error, numWorkers)
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ind := range workChan {
				if err := ind.Evaluate(); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	for _, ind := range pending {
		workChan <- ind
	}
	close(workChan)
	wg.Wait()
	close(errs)

	d.funcEvals += len(pending)
	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
