package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// Engine defaults.
const (
	DefaultMinDataPoints   = 5
	DefaultRefreshInterval = 60 * time.Second

	topPerformerCount = 3
)

// Options configures an Analyzer. Start from DefaultOptions and override;
// the zero value of a field is not treated as "unset".
type Options struct {
	AutoRefresh       bool          // Enable the periodic refresh scheduler
	RefreshInterval   time.Duration // Scheduler tick interval
	EnableTrends      bool          // Run trend analysis on refresh
	EnableInsights    bool          // Run insight generation on refresh
	EnablePredictions bool          // Run prediction on refresh
	MinDataPoints     int           // Minimum records before derivations fire

	// OnInsight is invoked once per emitted insight after a refresh
	// publishes. Optional.
	OnInsight func(schema.Insight)

	// OnError is invoked for every failed derivation step and for lookup
	// failures. Defaults to a stderr warning.
	OnError func(error)
}

// DefaultOptions returns the engine defaults: manual refresh, trends and
// insights on, predictions off, five-record minimum.
func DefaultOptions() Options {
	return Options{
		AutoRefresh:       false,
		RefreshInterval:   DefaultRefreshInterval,
		EnableTrends:      true,
		EnableInsights:    true,
		EnablePredictions: false,
		MinDataPoints:     DefaultMinDataPoints,
	}
}

// normalize fills in unusable option values and the default error sink.
func (o Options) normalize() Options {
	if o.RefreshInterval <= 0 {
		o.RefreshInterval = DefaultRefreshInterval
	}
	if o.MinDataPoints <= 0 {
		o.MinDataPoints = DefaultMinDataPoints
	}
	if o.OnError == nil {
		o.OnError = func(err error) {
			contract.LogWarn("analytics", err)
		}
	}
	return o
}

// State is one complete derived snapshot. Every refresh recomputes a new
// State and replaces the old one atomically; readers never observe a
// partially updated snapshot. A failed derivation step carries the previous
// refresh's value forward and records Err.
type State struct {
	Aggregated  *schema.AggregateOutput
	Trends      []schema.TrendResult
	Insights    []schema.Insight
	Predictions map[string]schema.Prediction
	Report      *schema.Report
	LastUpdate  time.Time
	Err         error
}

// Analyzer is the metrics analytics engine. It owns a snapshot of the
// supplied records plus the most recent derived State, and recomputes
// everything from scratch on each refresh. All computation is synchronous;
// the only goroutine is the optional auto-refresh scheduler.
type Analyzer struct {
	mu      sync.RWMutex
	opts    Options
	records []schema.MetricRecord
	state   State

	// analyzing gates refresh reentrancy: a refresh requested while one is
	// in flight is dropped, not interleaved.
	analyzing atomic.Bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewAnalyzer creates an engine over the given record snapshot. Records must
// be ordered newest-first; the engine never mutates them. A nil record set
// is valid and simply yields empty derivations.
func NewAnalyzer(records []schema.MetricRecord, opts Options) *Analyzer {
	return &Analyzer{
		opts:    opts.normalize(),
		records: records,
	}
}

// Configure replaces the engine options. The next refresh uses the new
// options; a refresh already in flight finishes with the old ones.
func (a *Analyzer) Configure(opts Options) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.opts = opts.normalize()
}

// CurrentOptions returns a copy of the active engine options.
func (a *Analyzer) CurrentOptions() Options {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.opts
}

// SetRecords replaces the record snapshot. Records must be newest-first.
// Derived state is not recomputed until the next refresh.
func (a *Analyzer) SetRecords(records []schema.MetricRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = records
}

// Records returns the current record snapshot. Callers must treat the
// returned slice as read-only.
func (a *Analyzer) Records() []schema.MetricRecord {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.records
}

// Snapshot returns the most recent complete derived state.
func (a *Analyzer) Snapshot() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// IsAnalyzing reports whether a refresh or report build is in flight.
func (a *Analyzer) IsAnalyzing() bool {
	return a.analyzing.Load()
}

// HasEnoughData reports whether the record set clears the minimum for
// derivations to fire.
func (a *Analyzer) HasEnoughData() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.records) >= a.opts.MinDataPoints
}

// Refresh runs the full pipeline over the current record snapshot and
// republishes the derived state wholesale. Each step runs independently: a
// failure (including a recovered panic) keeps that field at its previous
// value, records the error, fires OnError, and lets the remaining steps run.
//
// Refresh is not reentrant. A call arriving while another refresh is in
// flight returns false without computing anything.
func (a *Analyzer) Refresh() bool {
	if !a.analyzing.CompareAndSwap(false, true) {
		return false
	}
	defer a.analyzing.Store(false)

	a.mu.RLock()
	records := a.records
	opts := a.opts
	prev := a.state
	a.mu.RUnlock()

	next, insights := a.derive(records, opts, prev)
	next.Report = prev.Report // GenerateReport owns this field

	a.mu.Lock()
	a.state = next
	a.mu.Unlock()

	if opts.OnInsight != nil {
		for _, in := range insights {
			opts.OnInsight(in)
		}
	}
	return true
}

// derive computes a new State from a record snapshot, carrying failed steps
// forward from prev. Returns the newly generated insights separately so the
// caller can fire OnInsight only for fresh emissions.
func (a *Analyzer) derive(records []schema.MetricRecord, opts Options, prev State) (State, []schema.Insight) {
	next := State{LastUpdate: time.Now().UTC()}
	var firstErr error

	next.Aggregated = runStep("aggregate", opts.OnError, &firstErr, prev.Aggregated,
		func() *schema.AggregateOutput { return AggregateByAlgorithm(records) })

	if opts.EnableTrends {
		next.Trends = runStep("trends", opts.OnError, &firstErr, prev.Trends,
			func() []schema.TrendResult { return AnalyzeTrends(records, opts.MinDataPoints) })
	}

	var fresh []schema.Insight
	if opts.EnableInsights {
		next.Insights = runStep("insights", opts.OnError, &firstErr, prev.Insights,
			func() []schema.Insight {
				fresh = GenerateInsights(next.Aggregated, next.Trends, opts.MinDataPoints)
				return fresh
			})
	}

	if opts.EnablePredictions {
		next.Predictions = runStep("predictions", opts.OnError, &firstErr, prev.Predictions,
			func() map[string]schema.Prediction {
				return GeneratePredictions(records, next.Aggregated, opts.MinDataPoints)
			})
	}

	next.Err = firstErr
	return next, fresh
}

// runStep executes one derivation step, converting a panic into an error and
// falling back to the previous refresh's value on failure.
func runStep[T any](name string, onError func(error), firstErr *error, prev T, fn func() T) T {
	var out T
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s derivation failed: %v", name, r)
			}
		}()
		out = fn()
		return nil
	}()
	if err != nil {
		if *firstErr == nil {
			*firstErr = err
		}
		if onError != nil {
			onError(err)
		}
		return prev
	}
	return out
}

// AggregateByAlgorithm runs the aggregation sub-step standalone.
func (a *Analyzer) AggregateByAlgorithm() *schema.AggregateOutput {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return AggregateByAlgorithm(a.records)
}

// AggregateByTimePeriod runs the time bucketing sub-step standalone.
func (a *Analyzer) AggregateByTimePeriod(period schema.Period) []schema.TimeBucket {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return BucketByPeriod(a.records, period)
}

// AnalyzeTrends runs the trend analysis sub-step standalone.
func (a *Analyzer) AnalyzeTrends() []schema.TrendResult {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return AnalyzeTrends(a.records, a.opts.MinDataPoints)
}

// GenerateInsights runs the insight sub-step standalone against a fresh
// aggregation of the current records.
func (a *Analyzer) GenerateInsights() []schema.Insight {
	a.mu.RLock()
	records, opts := a.records, a.opts
	a.mu.RUnlock()
	output := AggregateByAlgorithm(records)
	trends := AnalyzeTrends(records, opts.MinDataPoints)
	return GenerateInsights(output, trends, opts.MinDataPoints)
}

// GeneratePredictions runs the prediction sub-step standalone.
func (a *Analyzer) GeneratePredictions() map[string]schema.Prediction {
	a.mu.RLock()
	records, opts := a.records, a.opts
	a.mu.RUnlock()
	return GeneratePredictions(records, AggregateByAlgorithm(records), opts.MinDataPoints)
}

// CompareAlgorithms is an on-demand, side-effect-free query against the most
// recent aggregated stats (aggregating fresh when no refresh has run yet).
// Unknown names yield a nil result plus an error, reported through OnError;
// the engine never panics across this boundary.
func (a *Analyzer) CompareAlgorithms(name1, name2 string) (*schema.ComparisonResult, error) {
	a.mu.RLock()
	output := a.state.Aggregated
	records := a.records
	onError := a.opts.OnError
	a.mu.RUnlock()

	if output == nil {
		output = AggregateByAlgorithm(records)
	}
	result, err := CompareAlgorithms(output, name1, name2)
	if err != nil && onError != nil {
		onError(err)
	}
	return result, err
}

// GenerateReport recomputes the pipeline, composes a report for the given
// period and caches it in the derived state. The analyzing flag is held for
// the duration; a concurrent refresh or report build yields the previously
// cached report instead of interleaving.
func (a *Analyzer) GenerateReport(period schema.Period) *schema.Report {
	if !a.analyzing.CompareAndSwap(false, true) {
		a.mu.RLock()
		defer a.mu.RUnlock()
		return a.state.Report
	}
	defer a.analyzing.Store(false)

	a.mu.RLock()
	records := a.records
	opts := a.opts
	prev := a.state
	a.mu.RUnlock()

	next, insights := a.derive(records, opts, prev)
	report := BuildReport(records, next.Aggregated, next.Trends, next.Insights, next.Predictions, period)
	next.Report = &report

	a.mu.Lock()
	a.state = next
	a.mu.Unlock()

	if opts.OnInsight != nil {
		for _, in := range insights {
			opts.OnInsight(in)
		}
	}
	return &report
}

// TopPerformers returns up to three algorithm names ordered by ascending
// average time; first-seen order breaks ties.
func (a *Analyzer) TopPerformers() []string {
	return a.rankByAvgTime(true)
}

// WorstPerformers returns up to three algorithm names ordered by descending
// average time; first-seen order breaks ties.
func (a *Analyzer) WorstPerformers() []string {
	return a.rankByAvgTime(false)
}

func (a *Analyzer) rankByAvgTime(ascending bool) []string {
	a.mu.RLock()
	output := a.state.Aggregated
	records := a.records
	a.mu.RUnlock()

	if output == nil {
		output = AggregateByAlgorithm(records)
	}
	names := make([]string, len(output.Order))
	copy(names, output.Order)
	sort.SliceStable(names, func(i, j int) bool {
		if ascending {
			return output.Stats[names[i]].AvgTime < output.Stats[names[j]].AvgTime
		}
		return output.Stats[names[i]].AvgTime > output.Stats[names[j]].AvgTime
	})
	if len(names) > topPerformerCount {
		names = names[:topPerformerCount]
	}
	return names
}

// Start launches the auto-refresh scheduler. It is a no-op unless
// AutoRefresh is enabled or when a scheduler is already running. The
// scheduler stops on Stop or when ctx is canceled; a refresh in flight when
// the scheduler stops runs to completion.
func (a *Analyzer) Start(ctx context.Context) {
	a.mu.Lock()
	if !a.opts.AutoRefresh || a.cancel != nil {
		a.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.done = make(chan struct{})
	interval := a.opts.RefreshInterval
	done := a.done
	a.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.Refresh()
			}
		}
	}()
}

// Stop cancels the auto-refresh scheduler and waits for it to exit.
func (a *Analyzer) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
