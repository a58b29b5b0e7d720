// Command nsga3-dtlz1 runs NSGA-III against the 3-objective DTLZ1
// benchmark (spec.md scenario S2), generating its Das-Dennis reference
// points and reporting the hyper-volume of the final front.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer/domsort"
	"github.com/ashwinyue/optirustic-go/optimizer/driver"
	"github.com/ashwinyue/optirustic-go/optimizer/hv"
	"github.com/ashwinyue/optirustic-go/optimizer/metrics"
	"github.com/ashwinyue/optirustic-go/optimizer/nsga3"
	"github.com/ashwinyue/optirustic-go/optimizer/operator"
	"github.com/ashwinyue/optirustic-go/optimizer/problem"
	"github.com/ashwinyue/optirustic-go/optimizer/refpoint"
	"github.com/ashwinyue/optirustic-go/optimizer/stopping"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		partitions    int
		generations   int
		numVars       int
		seed          int64
		historyPath   string
		distIndex     float64
		crossoverProb float64
	)

	cmd := &cobra.Command{
		Use:   "nsga3-dtlz1",
		Short: "Solve the 3-objective DTLZ1 problem with NSGA-III",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(partitions, generations, numVars, seed, distIndex, crossoverProb, historyPath)
		},
	}

	flags := cmd.Flags()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	flags.IntVar(&partitions, "partitions", 12, "Das-Dennis one-layer partition count (91 points at 12 for 3 objectives)")
	flags.IntVar(&generations, "generations", 400, "number of generations to evolve")
	flags.IntVar(&numVars, "num-vars", 7, "number of decision variables (numObjectives+k-1, k=5)")
	flags.Int64Var(&seed, "seed", 1, "random seed")
	flags.Float64Var(&distIndex, "distribution-index", 30, "SBX distribution index")
	flags.Float64Var(&crossoverProb, "crossover-probability", 1, "SBX crossover probability")
	flags.StringVar(&historyPath, "history", "", "optional path to write the final generation's JSON history snapshot")

	return cmd
}

func run(partitions, generations, numVars int, seed int64, distIndex, crossoverProb float64, historyPath string) error {
	const numObjectives = 3

	dtlz1, err := problem.NewDTLZ1(numVars, numObjectives)
	if err != nil {
		return fmt.Errorf("build DTLZ1 problem: %w", err)
	}

	referencePoints := refpoint.DasDennis(numObjectives, partitions)
	fmt.Printf("generated %d reference points (C(%d+%d-1,%d))\n",
		len(referencePoints), numObjectives, partitions, partitions)

	populationSize := len(referencePoints)
	if populationSize%2 != 0 {
		populationSize--
	}

	crossover, err := operator.NewSimulatedBinaryCrossover(operator.SimulatedBinaryCrossoverArgs{
		DistributionIndex:    distIndex,
		CrossoverProbability: crossoverProb,
		VariableProbability:  0.5,
	})
	if err != nil {
		return fmt.Errorf("build SBX crossover: %w", err)
	}
	mutation, err := operator.NewPolynomialMutation(operator.DefaultPolynomialMutationArgs(numVars))
	if err != nil {
		return fmt.Errorf("build polynomial mutation: %w", err)
	}

	rng := rand.New(rand.NewSource(uint64(seed)))
	survival := nsga3.NewSurvivalSelector(referencePoints, numObjectives, rng)

	var lastHistory *driver.History
	cfg := driver.Config{
		AlgorithmName:        "NSGA-III",
		PopulationSize:       populationSize,
		ForceEvenPopulation:  true,
		Crossover:            crossover,
		Mutation:             mutation,
		TournamentComparator: domsort.ConstrainedDominates,
		Survival:             survival,
		Stop:                 stopping.MaxGeneration(generations),
		Rng:                  rng,
		Parallel:             true,
	}
	if historyPath != "" {
		cfg.History = func(h *driver.History) error {
			lastHistory = h
			return nil
		}
	}

	d, err := driver.New(dtlz1, cfg)
	if err != nil {
		return fmt.Errorf("build driver: %w", err)
	}

	population, err := d.Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	fmt.Printf("final population: %d individuals over %d generations\n", population.Len(), generations)

	withinPlane := 0
	for i := 0; i < population.Len(); i++ {
		values := population.At(i).ExportObjectiveValues()
		sum := values["f1"] + values["f2"] + values["f3"]
		if sum >= 0.47 && sum <= 0.53 {
			withinPlane++
		}
	}
	fmt.Printf("%.1f%% of final individuals lie within the [0.47, 0.53] Pareto plane band\n",
		100*float64(withinPlane)/float64(population.Len()))

	refPoint := hv.EstimateReferencePoint(population.Individuals(), 1.0)
	volume, err := hv.Compute(population.Individuals(), refPoint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hyper-volume: %v\n", err)
	} else {
		fmt.Printf("hyper-volume (reference %v): %.6f\n", refPoint, volume)
	}

	spread := metrics.Spread(metrics.FrontPoints(population.Individuals()))
	fmt.Printf("spread: %.6f\n", spread)

	if historyPath != "" && lastHistory != nil {
		if err := writeHistory(historyPath, lastHistory); err != nil {
			return fmt.Errorf("write history: %w", err)
		}
	}
	return nil
}

func writeHistory(path string, h *driver.History) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(h)
}
