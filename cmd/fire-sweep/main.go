package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"pixelsand/internal/sims/sandbox"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type paramSet struct {
	lifetimeMin  int
	lifetimeMax  int
	igniteChance float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("life=[%d,%d] ignite=%.2f", p.lifetimeMin, p.lifetimeMax, p.igniteChance)
}

type scenarioResult struct {
	params      paramSet
	burned      float64
	stepsToOut  int
	extinguish  int
	firePeak    int
	initialOil  int
	seedsBurned int
}

func main() {
	steps := flag.Int("steps", 600, "ticks to simulate per scenario")
	seeds := flag.Int("seeds", 4, "seeds averaged per parameter set")
	size := flag.Int("size", 80, "square grid size")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var overrides kvList
	flag.Var(&overrides, "set", "base setting override as key=value (repeatable)")
	flag.Parse()

	baseCfg := sandbox.DefaultConfig()
	baseCfg.Width = *size
	baseCfg.Height = *size
	baseCfg.Scene = sandbox.SceneOilFire
	base := map[string]string{}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "invalid -set %q, want key=value\n", kv)
			os.Exit(2)
		}
		base[key] = value
	}
	baseCfg.Apply(base)

	lifetimeOptions := []struct{ min, max int }{
		{min: 5, max: 10},
		{min: 15, max: 30},
		{min: 30, max: 60},
	}
	igniteOptions := []float64{0.05, 0.1, 0.2, 0.3, 0.5, 0.8}

	var sets []paramSet
	for _, life := range lifetimeOptions {
		for _, ignite := range igniteOptions {
			sets = append(sets, paramSet{lifetimeMin: life.min, lifetimeMax: life.max, igniteChance: ignite})
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %d seeds)\n", len(sets), *workers, *steps, *seeds)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *steps, *seeds)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].burned > all[j].burned })
	elapsed := time.Since(start)

	fmt.Printf("\nResults by burned oil fraction (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		out := "still burning"
		if res.extinguish == res.seedsBurned && res.seedsBurned > 0 {
			out = fmt.Sprintf("out after %d steps", res.stepsToOut)
		}
		fmt.Printf("%2d) burned=%5.1f%% ignited=%d/%d firePeak=%d oil=%d %s params=%s\n",
			i+1, res.burned*100, res.seedsBurned, *seeds, res.firePeak, res.initialOil, out, res.params)
	}
}

// runScenario averages one parameter set over several seeds of the oil fire
// scene. stepsToOut is the mean step at which the last flame died, over the
// seeds where the fire went out.
func runScenario(base sandbox.Config, params paramSet, steps, seeds int) scenarioResult {
	cfg := base
	cfg.Params.FireLifetimeMin = params.lifetimeMin
	cfg.Params.FireLifetimeMax = params.lifetimeMax
	cfg.Params.IgniteChance = params.igniteChance

	res := scenarioResult{params: params}
	var burnedSum float64
	var outSum int
	for seed := 1; seed <= seeds; seed++ {
		world := sandbox.NewWithConfig(cfg)
		world.Reset(int64(seed))
		oil := world.Census()[sandbox.Oil]
		res.initialOil = oil

		outAt := -1
		for step := 0; step < steps; step++ {
			world.Step()
			fire := world.Census()[sandbox.Fire]
			if fire > res.firePeak {
				res.firePeak = fire
			}
			if fire == 0 {
				outAt = step + 1
				break
			}
		}

		left := world.Census()[sandbox.Oil]
		if left < oil {
			res.seedsBurned++
		}
		if oil > 0 {
			burnedSum += float64(oil-left) / float64(oil)
		}
		if outAt >= 0 && left < oil {
			res.extinguish++
			outSum += outAt
		}
	}
	res.burned = burnedSum / float64(seeds)
	if res.extinguish > 0 {
		res.stepsToOut = outSum / res.extinguish
	}
	return res
}
