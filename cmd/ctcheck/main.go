// Command ctcheck is a smoke test for timing leaks in field multiplication.
//
// For each selected parameter set it times batches of multiplications whose
// left operand is either fixed to zero or uniformly random, and compares the
// two timing distributions with Welch's t-test. A |t| above the threshold
// hints at a data-dependent running time. This is a coarse check in the
// spirit of dudect, not a proof of constant-time behaviour.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/mpcith/banquet/field"
	"github.com/mpcith/banquet/params"
	"github.com/mpcith/banquet/utils/sampling"
)

var (
	flagParams    = flag.String("params", "all", "parameter set name, or \"all\"")
	flagSamples   = flag.Int("samples", 2000, "number of timed batches per class")
	flagBatch     = flag.Int("batch", 512, "multiplications per timed batch")
	flagThreshold = flag.Float64("threshold", 4.5, "|t| above which a leak is reported")
	flagStrict    = flag.Bool("strict", false, "exit with a non-zero status if a leak is reported")
	flagSeed      = flag.String("seed", "", "seed for reproducible operands (default: operating system randomness)")
)

type result struct {
	ps         params.ParameterSet
	f          *field.Field
	fixed      stats.Float64Data
	random     stats.Float64Data
	tStatistic float64
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	sets, err := selectParameterSets(*flagParams)
	if err != nil {
		log.Fatal(err)
	}

	prng, err := newPRNG(*flagSeed)
	if err != nil {
		log.Fatal(err)
	}

	// Parameter sets sharing a lambda exercise the same field.
	done := map[int]bool{}

	leak := false
	for _, ps := range sets {
		inst := params.MustGet(ps)
		if done[inst.Lambda] {
			continue
		}
		done[inst.Lambda] = true

		f, err := field.NewField(inst.Lambda)
		if err != nil {
			log.Fatal(err)
		}

		res, err := measure(ps, f, field.NewUniformSampler(prng, f), *flagSamples, *flagBatch)
		if err != nil {
			log.Fatal(err)
		}

		if err := report(res); err != nil {
			log.Fatal(err)
		}

		if math.Abs(res.tStatistic) > *flagThreshold {
			leak = true
		}
	}

	if leak && *flagStrict {
		os.Exit(1)
	}
}

// newPRNG returns the operand source: a stream derived from seed, or the
// operating system CSPRNG when seed is empty.
func newPRNG(seed string) (sampling.PRNG, error) {
	if seed == "" {
		return sampling.NewPRNG()
	}
	return sampling.NewSeededPRNG("ctcheck", []byte(seed))
}

func selectParameterSets(name string) ([]params.ParameterSet, error) {
	if name == "all" {
		return params.All(), nil
	}
	ps, err := params.ParameterSetFromString(name)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, params.Names())
	}
	return []params.ParameterSet{ps}, nil
}

func measure(ps params.ParameterSet, f *field.Field, sampler *field.UniformSampler, samples, batch int) (res *result, err error) {

	res = &result{
		ps:     ps,
		f:      f,
		fixed:  make(stats.Float64Data, 0, samples),
		random: make(stats.Float64Data, 0, samples),
	}

	right, err := sampler.ReadVector(batch)
	if err != nil {
		return nil, err
	}

	fixed := make([]field.Element, batch)

	var sink field.Element
	for i := 0; i < samples; i++ {

		left, err := sampler.ReadVector(batch)
		if err != nil {
			return nil, err
		}

		// Alternate the class measured first to spread drift over both.
		classes := [2][]field.Element{fixed, left}
		if i&1 == 1 {
			classes[0], classes[1] = classes[1], classes[0]
		}

		for j, operands := range classes {
			start := time.Now()
			for k := range operands {
				sink ^= f.Mul(operands[k], right[k])
			}
			elapsed := float64(time.Since(start).Nanoseconds()) / float64(batch)

			if (j == 0) == (i&1 == 0) {
				res.fixed = append(res.fixed, elapsed)
			} else {
				res.random = append(res.random, elapsed)
			}
		}
	}

	if res.tStatistic, err = welch(res.fixed, res.random); err != nil {
		return nil, err
	}

	// Keeps the multiplications from being optimized away.
	if sink == 1<<63 {
		log.Println("unreachable")
	}

	return res, nil
}

// welch returns Welch's t statistic of the two samples.
func welch(a, b stats.Float64Data) (float64, error) {
	meanA, err := stats.Mean(a)
	if err != nil {
		return 0, err
	}
	meanB, err := stats.Mean(b)
	if err != nil {
		return 0, err
	}
	varA, err := stats.SampleVariance(a)
	if err != nil {
		return 0, err
	}
	varB, err := stats.SampleVariance(b)
	if err != nil {
		return 0, err
	}

	den := math.Sqrt(varA/float64(len(a)) + varB/float64(len(b)))
	if den == 0 {
		return 0, nil
	}
	return (meanA - meanB) / den, nil
}

func report(res *result) error {
	medianFixed, err := stats.Median(res.fixed)
	if err != nil {
		return err
	}
	medianRandom, err := stats.Median(res.random)
	if err != nil {
		return err
	}
	stddev, err := stats.StandardDeviation(append(append(stats.Float64Data{}, res.fixed...), res.random...))
	if err != nil {
		return err
	}

	verdict := "ok"
	if math.Abs(res.tStatistic) > *flagThreshold {
		verdict = "POSSIBLE LEAK"
	}

	log.Printf("%s %v: median fixed %.2f ns/mul, median random %.2f ns/mul, stddev %.2f, t = %.2f: %s",
		res.ps, res.f, medianFixed, medianRandom, stddev, res.tStatistic, verdict)

	return nil
}
