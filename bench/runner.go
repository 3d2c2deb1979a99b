package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("vrc.bench")

// Result is the outcome of one probe over one workload.
type Result struct {
	RunID     string
	Workload  string
	Probe     string
	Count     int
	Successes uint64
	Elapsed   time.Duration
	CreatedAt time.Time
}

// OpsPerSec returns casts per second, or 0 when nothing was timed.
func (r Result) OpsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Count) / r.Elapsed.Seconds()
}

// Report collects the results of one run.
type Report struct {
	RunID   string
	Results []Result
}

// Workload returns the results recorded for the named workload, in probe order.
func (r *Report) Workload(name string) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Workload == name {
			out = append(out, res)
		}
	}
	return out
}

// Average returns the mean ops/sec of the probes below the root: the
// baseline and the A probe are excluded.
func Average(results []Result) float64 {
	var sum float64
	var n int
	for _, r := range results {
		if r.Probe == BaselineProbe || r.Probe == "A" {
			continue
		}
		sum += r.OpsPerSec()
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Relative returns each result's ops/sec as a fraction of the baseline's.
// It returns nil when results carry no timed baseline.
func Relative(results []Result) map[string]float64 {
	var base float64
	for _, r := range results {
		if r.Probe == BaselineProbe {
			base = r.OpsPerSec()
		}
	}
	if base == 0 {
		return nil
	}
	rel := make(map[string]float64, len(results))
	for _, r := range results {
		rel[r.Probe] = r.OpsPerSec() / base
	}
	return rel
}

// RunnerOption configures a Runner.
type RunnerOption func(*runnerConfig)

type runnerConfig struct {
	store  *Store
	warmup bool
}

// WithStore records every workload's results in store.
func WithStore(store *Store) RunnerOption {
	return func(c *runnerConfig) { c.store = store }
}

// WithWarmup controls the untimed pass over each data set before its
// probes run. Warmup is on by default.
func WithWarmup(on bool) RunnerOption {
	return func(c *runnerConfig) { c.warmup = on }
}

// Runner executes workloads: it generates each data set, optionally
// shuffles it, then times every probe over it in turn.
type Runner struct {
	cfg runnerConfig
}

// NewRunner creates a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	cfg := runnerConfig{
		warmup: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner{cfg: cfg}
}

// Run executes every workload in cfg under a fresh run ID.
func (r *Runner) Run(ctx context.Context, cfg *Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.New().String()}
	log.Infof("run %s: %d workloads", report.RunID, len(cfg.Workloads))

	for _, w := range cfg.Workloads {
		results, err := r.RunWorkload(ctx, report.RunID, w, cfg.Defaults.Seed)
		if err != nil {
			return report, err
		}
		report.Results = append(report.Results, results...)
	}
	return report, nil
}

// RunWorkload generates w's data set from seed and times the baseline and
// every probe of its hierarchy over it.
func (r *Runner) RunWorkload(ctx context.Context, runID string, w Workload, seed uint64) ([]Result, error) {
	shape, err := ShapeByName(w.Hierarchy)
	if err != nil {
		return nil, fmt.Errorf("workload %q: %w", w.Name, err)
	}

	rng := NewRand(seed)
	nodes, err := Generate(shape, w.From, w.Width, w.Count, rng)
	if err != nil {
		return nil, fmt.Errorf("workload %q: %w", w.Name, err)
	}
	if w.Shuffle {
		Shuffle(nodes, rng)
	}

	if r.cfg.warmup {
		Count(nodes, staticProbe)
	}

	probes := append([]Probe{staticProbe}, shape.Probes...)
	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("workload %q: %w", w.Name, err)
		}

		start := time.Now()
		successes := Count(nodes, p)
		elapsed := time.Since(start)

		res := Result{
			RunID:     runID,
			Workload:  w.Name,
			Probe:     p.Name,
			Count:     len(nodes),
			Successes: successes,
			Elapsed:   elapsed,
			CreatedAt: start,
		}
		log.Debug("probe finished",
			"workload", w.Name,
			"probe", p.Name,
			"successes", successes,
			"elapsed", elapsed)
		results = append(results, res)
	}

	log.Info("workload finished",
		"workload", w.Name,
		"hierarchy", w.Hierarchy,
		"objects", len(nodes),
		"average", Average(results))

	if r.cfg.store != nil {
		if err := r.cfg.store.Save(ctx, results); err != nil {
			return nil, fmt.Errorf("workload %q: %w", w.Name, err)
		}
	}
	return results, nil
}
