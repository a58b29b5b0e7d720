// Command nsga2-sch runs NSGA-II against Schaffer's SCH benchmark (spec.md
// scenario S1) and optionally renders the resulting Pareto front next to
// its analytical optimum as an HTML scatter chart.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
	"github.com/ashwinyue/optirustic-go/optimizer/driver"
	"github.com/ashwinyue/optirustic-go/optimizer/nsga2"
	"github.com/ashwinyue/optirustic-go/optimizer/operator"
	"github.com/ashwinyue/optirustic-go/optimizer/problem"
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
		populationSize int
		generations    int
		seed           int64
		plotPath       string
		historyPath    string
	)

	cmd := &cobra.Command{
		Use:   "nsga2-sch",
		Short: "Solve Schaffer's SCH problem with NSGA-II",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(populationSize, generations, seed, plotPath, historyPath)
		},
	}

	flags := cmd.Flags()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	flags.IntVar(&populationSize, "population-size", 100, "number of individuals per generation (even)")
	flags.IntVar(&generations, "generations", 250, "number of generations to evolve")
	flags.Int64Var(&seed, "seed", 10, "random seed")
	flags.StringVar(&plotPath, "plot", "", "optional path to write an HTML scatter chart of the final front")
	flags.StringVar(&historyPath, "history", "", "optional path to write the final generation's JSON history snapshot")

	return cmd
}

func run(populationSize, generations int, seed int64, plotPath, historyPath string) error {
	sch, err := problem.NewSCH()
	if err != nil {
		return fmt.Errorf("build SCH problem: %w", err)
	}

	crossover, err := operator.NewSimulatedBinaryCrossover(operator.DefaultSimulatedBinaryCrossoverArgs())
	if err != nil {
		return fmt.Errorf("build SBX crossover: %w", err)
	}
	mutation, err := operator.NewPolynomialMutation(operator.DefaultPolynomialMutationArgs(1))
	if err != nil {
		return fmt.Errorf("build polynomial mutation: %w", err)
	}

	var lastHistory *driver.History
	cfg := driver.Config{
		AlgorithmName:  "NSGA-II",
		PopulationSize: populationSize,
		Crossover:      crossover,
		Mutation:       mutation,
		Survival:       nsga2.NewSurvivalSelector(),
		Stop:           stopping.MaxGeneration(generations),
		Rng:            rand.New(rand.NewSource(uint64(seed))),
		Parallel:       false,
	}
	if historyPath != "" {
		cfg.History = func(h *driver.History) error {
			lastHistory = h
			return nil
		}
	}

	d, err := driver.New(sch, cfg)
	if err != nil {
		return fmt.Errorf("build driver: %w", err)
	}

	population, err := d.Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	fmt.Printf("final population: %d individuals over %d generations\n", population.Len(), generations)
	for i := 0; i < population.Len(); i++ {
		ind := population.At(i)
		values := ind.ExportObjectiveValues()
		fmt.Printf("  x=%8.4f f1=%10.4f f2=%10.4f\n", ind.Variables["x"].Real, values["f1"], values["f2"])
	}

	if historyPath != "" && lastHistory != nil {
		if err := writeHistory(historyPath, lastHistory); err != nil {
			return fmt.Errorf("write history: %w", err)
		}
	}
	if plotPath != "" {
		if err := plotFront(plotPath, population); err != nil {
			return fmt.Errorf("plot: %w", err)
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

// plotFront renders the final front next to the problem's analytical
// Pareto-optimal curve, grounded on the teacher's util.PlotResults scatter
// layout.
func plotFront(path string, population *optimizer.Population) error {
	trueFront := problem.SCHTrueParetoFront(500)
	trueSeries := make([]opts.ScatterData, len(trueFront))
	for i, p := range trueFront {
		trueSeries[i] = opts.ScatterData{Value: []float64{p[0], p[1]}, Symbol: "circle", SymbolSize: 3}
	}

	foundSeries := make([]opts.ScatterData, population.Len())
	for i := 0; i < population.Len(); i++ {
		values := population.At(i).ExportObjectiveValues()
		foundSeries[i] = opts.ScatterData{
			Value:      []float64{values["f1"], values["f2"]},
			Symbol:     "triangle",
			SymbolSize: 8,
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "NSGA-II Results for SCH Benchmark"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithXAxisOpts(opts.XAxis{Name: "f1(x)", SplitLine: &opts.SplitLine{Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "f2(x)", SplitLine: &opts.SplitLine{Show: opts.Bool(true)}}),
	)
	scatter.AddSeries("True Pareto Front", trueSeries).
		AddSeries("NSGA-II Solutions", foundSeries).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return scatter.Render(f)
}
