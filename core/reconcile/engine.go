package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mnp-alarm/core/metrics"

	"go.uber.org/zap"
)

// ErrEmptyReference is returned when a run is started without any group.
var ErrEmptyReference = errors.New("reference set is empty")

// Fetcher looks up a batch of subscriber numbers.
// The returned map holds exactly one entry per input number; a per-number
// failure is reported in its LookupResult, while a returned error means the
// whole batch failed.
type Fetcher interface {
	FetchMany(ctx context.Context, numbers []string) (map[string]LookupResult, error)
}

// AlertSender delivers an alert text. Implementations escape the text as
// their transport requires.
type AlertSender interface {
	Send(ctx context.Context, text string) error
}

// Options controls a single run.
type Options struct {
	// DryRun builds the alert body without sending it.
	DryRun bool
}

// Engine drives lookups, normalization and diffing for a reference set.
// It holds no state between runs.
type Engine struct {
	fetcher    Fetcher
	sender     AlertSender
	normalizer Normalizer
	logger     *zap.Logger
	metrics    *metrics.Recorder
}

// NewEngine creates an Engine. recorder may be nil.
func NewEngine(fetcher Fetcher, sender AlertSender, normalizer Normalizer, logger *zap.Logger, recorder *metrics.Recorder) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		fetcher:    fetcher,
		sender:     sender,
		normalizer: normalizer,
		logger:     logger,
		metrics:    recorder,
	}
}

// Run reconciles every group of reference against live lookups, one group at
// a time in group order, and sends at most one alert aggregating the
// discrepancies of all mismatched groups. The alert outcome is recorded in the
// report but never changes Results.
func (e *Engine) Run(ctx context.Context, reference ReferenceSet, opts Options) (*Report, error) {
	if reference.Len() == 0 {
		return nil, ErrEmptyReference
	}

	started := time.Now()
	report := &Report{
		Results:   make(RunResult, reference.Len()),
		StartedAt: started,
	}

	var body strings.Builder
	for _, name := range reference.GroupNames() {
		group := e.reconcileGroup(ctx, name, reference.Group(name))
		report.Results[name] = group.Matched
		report.Groups = append(report.Groups, group)

		if !group.Matched {
			body.WriteString(alertBlock(group))
		}
	}

	matched := report.Matched()
	e.metrics.ObserveRun(matched)

	if !matched {
		report.AlertBody = body.String()
		e.alert(ctx, report, opts)
	}

	report.Duration = time.Since(started).String()
	e.logger.Info("Reconciliation finished",
		zap.Bool("matched", matched),
		zap.Int("groups", len(report.Groups)),
		zap.Bool("alerted", report.Alerted),
		zap.String("duration", report.Duration),
	)

	return report, nil
}

// reconcileGroup looks up one group and diffs it against the reference.
func (e *Engine) reconcileGroup(ctx context.Context, name string, reference Group) GroupReport {
	l := e.logger.With(zap.String("group", name))
	numbers := reference.Numbers()
	result := GroupReport{Name: name, Numbers: len(numbers)}

	live := make(Live, len(numbers))
	if len(numbers) == 0 {
		result.Matched = true
		l.Info("Group is empty, nothing to look up")
		return result
	}

	results, err := e.fetcher.FetchMany(ctx, numbers)
	if err != nil {
		// Leaving live empty makes every reference field compare against nil.
		l.Warn("Group lookup failed", zap.Error(err))
		result.BatchError = err.Error()
	} else {
		for _, number := range numbers {
			res, ok := results[number]
			if !ok || res.Failed() {
				result.LookupFailures++
				if ok {
					l.Debug("Lookup failed", zap.String("number", number), zap.Error(res.Err))
				}
			}
			live[number] = e.normalizer.NormalizeResult(res)
		}
	}

	result.Discrepancies = Diff(reference, live)
	// A failed batch never counts as a match, even when every reference
	// field is null and the diff comes back empty.
	result.Matched = result.BatchError == "" && len(result.Discrepancies) == 0
	e.metrics.ObserveDiscrepancies(name, len(result.Discrepancies))

	l.Info("Group reconciled",
		zap.Int("numbers", result.Numbers),
		zap.Bool("matched", result.Matched),
		zap.Int("discrepancies", len(result.Discrepancies)),
		zap.Int("lookup_failures", result.LookupFailures),
	)
	return result
}

// alert hands the aggregated body to the sender once. Delivery is best-effort.
func (e *Engine) alert(ctx context.Context, report *Report, opts Options) {
	if opts.DryRun {
		e.logger.Info("Dry run, alert not sent", zap.String("body", report.AlertBody))
		return
	}

	report.Alerted = true
	err := e.sender.Send(ctx, report.AlertBody)
	e.metrics.ObserveAlert(err)
	if err != nil {
		report.AlertError = err.Error()
		e.logger.Error("Alert delivery failed", zap.Error(err))
		return
	}
	e.logger.Info("Alert sent")
}

// alertBlock renders one group's discrepancies, one per line, with a trailing
// line break. A failed batch with nothing to report is named instead, so the
// alert never goes out blank.
func alertBlock(group GroupReport) string {
	if len(group.Discrepancies) == 0 {
		return fmt.Sprintf("%s lookup failed - %s\n", group.Name, group.BatchError)
	}
	lines := make([]string, len(group.Discrepancies))
	for i, d := range group.Discrepancies {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n") + "\n"
}
