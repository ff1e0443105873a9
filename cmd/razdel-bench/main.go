package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	razdel "github.com/mawolabs/go-razdel"
	"github.com/mawolabs/go-razdel/internal/bench"
)

func main() {
	var (
		corpusDir = flag.String("corpus", "internal/bench/testdata/corpus", "Directory containing gold corpus files")
		tolerance = flag.Int("tolerance", 1, "Rune tolerance for boundary matching")
		wp        = flag.Float64("wp", 1.0, "Precision weight")
		wr        = flag.Float64("wr", 1.0, "Recall weight")
		perDoc    = flag.Bool("per-doc", false, "Print per-document metrics")
	)
	flag.Parse()

	docs, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		fmt.Fprintf(os.Stderr, "no corpus files in %s\n", *corpusDir)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d documents from %s\n\n", len(docs), *corpusDir)

	cfg := bench.Config{
		Tolerance:       *tolerance,
		PrecisionWeight: *wp,
		RecallWeight:    *wr,
	}

	seg := razdel.New()

	var engineMetrics, baselineMetrics []bench.Metrics
	for _, doc := range docs {
		em := bench.Evaluate(seg.FindBoundaries(doc.Text), doc.Boundaries, cfg)
		bm := bench.Evaluate(bench.BaselineBoundaries(doc.Text), doc.Boundaries, cfg)
		engineMetrics = append(engineMetrics, em)
		baselineMetrics = append(baselineMetrics, bm)

		if *perDoc {
			fmt.Printf("%-20s engine F1=%.2f baseline F1=%.2f\n", doc.ID, em.F1, bm.F1)
		}
	}
	if *perDoc {
		fmt.Println()
	}

	engine := bench.Accumulate(cfg, engineMetrics...)
	baseline := bench.Accumulate(cfg, baselineMetrics...)

	fmt.Printf("Results (tolerance=%d, wp=%.1f, wr=%.1f)\n", cfg.Tolerance, *wp, *wr)
	fmt.Println(strings.Repeat("-", 56))
	fmt.Printf("%-10s %-8s %-8s %-8s %-8s\n", "", "Prec", "Rec", "F1", "Weighted")
	printRow("engine", engine)
	printRow("baseline", baseline)
	fmt.Println(strings.Repeat("-", 56))

	if engine.F1 >= baseline.F1 {
		fmt.Printf("Engine beats baseline by %.3f F1\n", engine.F1-baseline.F1)
	} else {
		fmt.Printf("Engine trails baseline by %.3f F1\n", baseline.F1-engine.F1)
	}
}

func printRow(name string, m bench.Metrics) {
	fmt.Printf("%-10s %-8.3f %-8.3f %-8.3f %-8.3f\n",
		name, m.Precision, m.Recall, m.F1, m.WeightedScore)
}
