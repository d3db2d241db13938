package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcc/internal/domain"
	"vcc/internal/store"
)

type fakeClient struct {
	mu       sync.Mutex
	rows     map[string][]json.RawMessage
	listErr  map[string]error
	upserted map[string][]any
	deleted  map[string][]string
	failNext int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		rows:     map[string][]json.RawMessage{},
		listErr:  map[string]error{},
		upserted: map[string][]any{},
		deleted:  map[string][]string{},
	}
}

func (f *fakeClient) List(_ context.Context, table string) ([]json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.listErr[table]; err != nil {
		return nil, err
	}
	return f.rows[table], nil
}

func (f *fakeClient) Upsert(_ context.Context, table string, row any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext > 0 {
		f.failNext--
		return errors.New("remote unavailable")
	}
	f.upserted[table] = append(f.upserted[table], row)
	return nil
}

func (f *fakeClient) Delete(_ context.Context, table, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext > 0 {
		f.failNext--
		return errors.New("remote unavailable")
	}
	f.deleted[table] = append(f.deleted[table], id)
	return nil
}

func (f *fakeClient) upsertCount(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.upserted[table])
}

func (f *fakeClient) deletedIDs(table string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted[table]...)
}

type fakeFeed struct {
	events chan Event
}

func (f *fakeFeed) Next(ctx context.Context) (Event, error) {
	select {
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case ev, ok := <-f.events:
		if !ok {
			return Event{}, io.EOF
		}
		return ev, nil
	}
}

func (f *fakeFeed) Close() error { return nil }

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestBulkLoadReplacesCollections(t *testing.T) {
	client := newFakeClient()
	client.rows[domain.TableVentures] = []json.RawMessage{
		mustJSON(t, domain.Venture{ID: "v9", Name: "Remote Venture"}),
	}

	st := store.New(store.Snapshot{Ventures: []domain.Venture{{ID: "v1", Name: "Local"}}})
	r := New(client, nil, st)
	r.bulkLoad(context.Background())

	snap := st.Snapshot()
	require.Len(t, snap.Ventures, 1)
	assert.Equal(t, "v9", snap.Ventures[0].ID)
}

func TestBulkLoadCoversInsights(t *testing.T) {
	client := newFakeClient()
	client.rows[domain.TableInsights] = []json.RawMessage{
		mustJSON(t, domain.Insight{ID: "i1", VentureID: "v1", Title: "Deadline slipping", Severity: domain.SeverityWarning}),
	}

	st := store.New(store.Snapshot{})
	r := New(client, nil, st)
	r.bulkLoad(context.Background())

	snap := st.Snapshot()
	require.Len(t, snap.Insights, 1)
	assert.Equal(t, "Deadline slipping", snap.Insights[0].Title)
}

func TestBulkLoadSkipsEmptyAndFailedTables(t *testing.T) {
	client := newFakeClient()
	client.listErr[domain.TableTasks] = errors.New("boom")
	// ventures returns no rows at all

	st := store.New(store.Snapshot{
		Ventures: []domain.Venture{{ID: "v1", Name: "Local"}},
		Tasks:    []domain.Task{{ID: "t1", VentureID: "v1", Title: "Keep me"}},
	})
	r := New(client, nil, st)
	r.bulkLoad(context.Background())

	snap := st.Snapshot()
	assert.Len(t, snap.Ventures, 1, "empty remote table must not erase local rows")
	assert.Len(t, snap.Tasks, 1, "failed fetch must not erase local rows")
}

func TestFeedUpdateAppliesFullRow(t *testing.T) {
	feed := &fakeFeed{events: make(chan Event, 2)}
	feed.events <- Event{
		Type:   EventUpdate,
		Table:  domain.TableTasks,
		Record: mustJSON(t, domain.Task{ID: "t1", VentureID: "v1", Title: "Renamed", Status: domain.StatusDone}),
	}
	close(feed.events)

	st := store.New(store.Snapshot{Tasks: []domain.Task{{ID: "t1", VentureID: "v1", Title: "Old", Status: domain.StatusTodo}}})
	r := New(newFakeClient(), nil, st)
	r.consume(context.Background(), feed)

	snap := st.Snapshot()
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, "Renamed", snap.Tasks[0].Title)
	assert.Equal(t, domain.StatusDone, snap.Tasks[0].Status)
}

func TestFeedInsertOfUnknownRowIsDropped(t *testing.T) {
	feed := &fakeFeed{events: make(chan Event, 1)}
	feed.events <- Event{
		Type:   EventInsert,
		Table:  domain.TableVentures,
		Record: mustJSON(t, domain.Venture{ID: "v-new", Name: "Never Seen"}),
	}
	close(feed.events)

	st := store.New(store.Snapshot{})
	r := New(newFakeClient(), nil, st)
	r.consume(context.Background(), feed)

	assert.Empty(t, st.Snapshot().Ventures)
}

func TestFeedDeleteRemovesRow(t *testing.T) {
	feed := &fakeFeed{events: make(chan Event, 1)}
	feed.events <- Event{Type: EventDelete, Table: domain.TableMilestones, OldID: "m1"}
	close(feed.events)

	st := store.New(store.Snapshot{Milestones: []domain.Milestone{{ID: "m1", VentureID: "v1", Name: "MVP"}}})
	r := New(newFakeClient(), nil, st)
	r.consume(context.Background(), feed)

	assert.Empty(t, st.Snapshot().Milestones)
}

func TestReplayedEventBatchConverges(t *testing.T) {
	batch := []Event{
		{Type: EventUpdate, Table: domain.TableVentures, Record: mustJSON(t, domain.Venture{ID: "v1", Name: "Renamed"})},
		{Type: EventUpdate, Table: domain.TableTasks, Record: mustJSON(t, domain.Task{ID: "t1", VentureID: "v1", Status: domain.StatusDone})},
		{Type: EventDelete, Table: domain.TableMilestones, OldID: "m1"},
	}
	feedOf := func() *fakeFeed {
		f := &fakeFeed{events: make(chan Event, len(batch))}
		for _, ev := range batch {
			f.events <- ev
		}
		close(f.events)
		return f
	}

	st := store.New(store.Snapshot{
		Ventures:   []domain.Venture{{ID: "v1", Name: "Alpha"}},
		Tasks:      []domain.Task{{ID: "t1", VentureID: "v1", Status: domain.StatusTodo}},
		Milestones: []domain.Milestone{{ID: "m1", VentureID: "v1", Name: "MVP"}},
	})
	r := New(newFakeClient(), nil, st)

	r.consume(context.Background(), feedOf())
	first := st.Snapshot()

	// a reconnect replaying the same batch changes nothing
	r.consume(context.Background(), feedOf())
	assert.Equal(t, first, st.Snapshot())
}

func TestLocalMutationIsPushed(t *testing.T) {
	client := newFakeClient()
	st := store.New(store.Snapshot{Tasks: []domain.Task{{ID: "t1", VentureID: "v1"}}})
	r := New(client, func(ctx context.Context) (Feed, error) {
		return &fakeFeed{events: make(chan Event)}, nil
	}, st)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return r.State() == StateSubscribed }, 2*time.Second, 10*time.Millisecond)
	st.Dispatch(store.AddTask(domain.Task{ID: "t2", VentureID: "v1", Title: "New"}))
	st.Dispatch(store.DeleteTask("t1"))

	require.Eventually(t, func() bool {
		return client.upsertCount(domain.TableTasks) == 1 && len(client.deletedIDs(domain.TableTasks)) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"t1"}, client.deletedIDs(domain.TableTasks))

	cancel()
	<-done
	assert.Equal(t, StateDisconnected, r.State())
}

func TestRemoteEchoIsNotPushedBack(t *testing.T) {
	client := newFakeClient()
	st := store.New(store.Snapshot{Tasks: []domain.Task{{ID: "t1", VentureID: "v1"}}})
	r := New(client, nil, st)
	cancel := st.Subscribe(r.onCommand)
	defer cancel()

	st.DispatchRemote(store.UpdateTask(domain.Task{ID: "t1", VentureID: "v1", Title: "From remote"}))

	assert.Empty(t, r.pushCh)
	assert.Zero(t, r.PendingCount())
}

func TestSetCommandsStayLocal(t *testing.T) {
	client := newFakeClient()
	st := store.New(store.Snapshot{})
	r := New(client, nil, st)
	cancel := st.Subscribe(r.onCommand)
	defer cancel()

	st.Dispatch(store.SetTasks([]domain.Task{{ID: "t1", VentureID: "v1"}}))

	assert.Empty(t, r.pushCh)
}

func TestFailedPushIsRetried(t *testing.T) {
	client := newFakeClient()
	client.failNext = 1

	st := store.New(store.Snapshot{})
	r := New(client, nil, st)

	op := outboundOp{table: domain.TableVentures, id: "v1", record: domain.Venture{ID: "v1", Name: "Alpha"}}
	r.push(context.Background(), op)
	require.Equal(t, 1, r.PendingCount())

	r.retryPending(context.Background())
	assert.Zero(t, r.PendingCount())
	assert.Equal(t, 1, client.upsertCount(domain.TableVentures))
}

func TestOpenCircuitParksPushesUntilRetryProbeSucceeds(t *testing.T) {
	client := newFakeClient()
	client.failNext = 5

	st := store.New(store.Snapshot{})
	r := New(client, nil, st)

	op := outboundOp{table: domain.TableVentures, id: "v1", record: domain.Venture{ID: "v1", Name: "Alpha"}}
	for range 5 {
		r.attempt(context.Background(), op)
	}
	require.True(t, r.breaker.IsOpen())

	// new pushes go straight to pending without touching the client
	other := outboundOp{table: domain.TableVentures, id: "v2", record: domain.Venture{ID: "v2", Name: "Beta"}}
	r.push(context.Background(), other)
	assert.Equal(t, 2, r.PendingCount())
	assert.Zero(t, client.upsertCount(domain.TableVentures))

	// the retry pass probes, succeeds, and closes the circuit
	r.retryPending(context.Background())
	assert.False(t, r.breaker.IsOpen())
	assert.Zero(t, r.PendingCount())
	assert.Equal(t, 2, client.upsertCount(domain.TableVentures))
}

func TestEventCommandRejectsUnknownTable(t *testing.T) {
	_, err := eventCommand(Event{Type: EventUpdate, Table: "documents", Record: json.RawMessage(`{}`)})
	assert.Error(t, err)
}
