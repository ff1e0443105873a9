package bench

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // rune offset match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       1,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Evaluate compares predicted boundaries against gold boundaries. Both
// slices must be ascending; matching is greedy left to right within
// the configured tolerance.
func Evaluate(predicted, gold []int, cfg Config) Metrics {
	tp := 0
	j := 0
	for _, p := range predicted {
		for j < len(gold) && gold[j] < p-cfg.Tolerance {
			j++
		}
		if j < len(gold) && abs(gold[j]-p) <= cfg.Tolerance {
			tp++
			j++
		}
	}

	return finalize(tp, len(predicted)-tp, len(gold)-tp, cfg)
}

// Accumulate merges per-document metrics into corpus totals, recomputing
// the derived rates from the raw counts.
func Accumulate(cfg Config, ms ...Metrics) Metrics {
	var tp, fp, fn int
	for _, m := range ms {
		tp += m.TruePositives
		fp += m.FalsePositives
		fn += m.FalseNegatives
	}
	return finalize(tp, fp, fn, cfg)
}

func finalize(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	if wp, wr := cfg.PrecisionWeight, cfg.RecallWeight; wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}
	return m
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
