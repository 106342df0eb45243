package check

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mnp-alarm/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticSource struct {
	set reconcile.ReferenceSet
	err error
}

func (s *staticSource) Load(ctx context.Context) (reconcile.ReferenceSet, error) {
	return s.set, s.err
}

// tableFetcher answers every number with the same provider record.
type tableFetcher struct {
	network string
	owner   string
	calls   atomic.Int32
	gate    chan struct{}
}

func (f *tableFetcher) FetchMany(ctx context.Context, numbers []string) (map[string]reconcile.LookupResult, error) {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	out := make(map[string]reconcile.LookupResult, len(numbers))
	for _, n := range numbers {
		out[n] = reconcile.LookupResult{Raw: reconcile.RawRecord{"mccmnc": f.network, "ownerID": f.owner}}
	}
	return out, nil
}

type recordingSender struct {
	mu    sync.Mutex
	texts []string
}

func (s *recordingSender) Send(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
	return nil
}

func ptr(s string) *string { return &s }

func referenceSet() reconcile.ReferenceSet {
	return reconcile.SetOf(map[string]reconcile.Group{
		"DE": reconcile.GroupOf(map[string]reconcile.Record{"4915": {NetworkID: ptr("26201"), OwnerID: ptr("D1")}}),
		"US": reconcile.GroupOf(map[string]reconcile.Record{
			"1555": {NetworkID: ptr("310260"), OwnerID: ptr("TMO")},
			"1556": {NetworkID: ptr("310260"), OwnerID: ptr("TMO")},
		}),
	})
}

func newTestService(source *staticSource, fetcher *tableFetcher, sender *recordingSender) *Service {
	engine := reconcile.NewEngine(fetcher, sender, reconcile.DefaultNormalizer(), zap.NewNop(), nil)
	return NewService(source, engine, zap.NewNop())
}

func TestService_Run(t *testing.T) {
	fetcher := &tableFetcher{network: "310260", owner: "TMO"}
	sender := &recordingSender{}
	svc := newTestService(&staticSource{set: referenceSet()}, fetcher, sender)

	report, err := svc.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, reconcile.RunResult{"DE": false, "US": true}, report.Results)
	assert.True(t, report.Alerted)
	require.Len(t, sender.texts, 1)
	assert.Equal(t, "4915 network_id - 310260 expected 26201\n4915 owner_id - TMO expected D1\n", sender.texts[0])
}

func TestService_Run_DryRun(t *testing.T) {
	fetcher := &tableFetcher{network: "1", owner: "x"}
	sender := &recordingSender{}
	svc := newTestService(&staticSource{set: referenceSet()}, fetcher, sender)

	report, err := svc.Run(context.Background(), true)
	require.NoError(t, err)

	assert.False(t, report.Matched())
	assert.NotEmpty(t, report.AlertBody)
	assert.False(t, report.Alerted)
	assert.Empty(t, sender.texts)
}

func TestService_Run_SourceError(t *testing.T) {
	fetcher := &tableFetcher{}
	svc := newTestService(&staticSource{err: errors.New("bucket missing")}, fetcher, &recordingSender{})

	_, err := svc.Run(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket missing")
	assert.Zero(t, fetcher.calls.Load())
}

func TestService_Run_EmptyReference(t *testing.T) {
	svc := newTestService(&staticSource{}, &tableFetcher{}, &recordingSender{})

	_, err := svc.Run(context.Background(), false)
	assert.ErrorIs(t, err, reconcile.ErrEmptyReference)
}

func TestService_Run_CoalescesConcurrentRuns(t *testing.T) {
	fetcher := &tableFetcher{network: "0", owner: "0", gate: make(chan struct{})}
	sender := &recordingSender{}
	set := reconcile.SetOf(map[string]reconcile.Group{
		"US": reconcile.GroupOf(map[string]reconcile.Record{"1555": {NetworkID: ptr("310260")}}),
	})
	svc := newTestService(&staticSource{set: set}, fetcher, sender)

	var wg sync.WaitGroup
	reports := make([]*reconcile.Report, 2)
	for i := range reports {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := svc.Run(context.Background(), false)
			assert.NoError(t, err)
			reports[i] = r
		}(i)
	}

	// Wait until the first run is inside the lookup, then give the second
	// caller a chance to join before releasing it.
	require.Eventually(t, func() bool { return fetcher.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	close(fetcher.gate)
	wg.Wait()

	assert.Same(t, reports[0], reports[1])
	assert.Len(t, sender.texts, 1)
}

func TestService_Reference(t *testing.T) {
	svc := newTestService(&staticSource{set: referenceSet()}, &tableFetcher{}, &recordingSender{})

	groups, err := svc.Reference(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "DE", groups[0].Name)
	assert.Equal(t, 1, groups[0].Numbers)
	assert.Equal(t, "US", groups[1].Name)
	assert.Equal(t, 2, groups[1].Numbers)
}
