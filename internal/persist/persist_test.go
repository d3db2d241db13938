package persist

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcc/internal/domain"
	"vcc/internal/store"
)

func openTestAdapter(t *testing.T, opts ...Option) *Adapter {
	t.Helper()
	a, err := Open(t.TempDir(), opts...)
	require.NoError(t, err)
	return a
}

func TestLoadMissingBlobReportsNotFound(t *testing.T) {
	a := openTestAdapter(t)
	defer a.Close()

	_, ok := a.Load(domain.DefaultSeed())
	assert.False(t, ok)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	a := openTestAdapter(t)
	defer a.Close()

	snap := store.Snapshot{
		Ventures: []domain.Venture{{ID: "v1", Name: "TruCycle", Prefix: "TC"}},
		Tasks:    []domain.Task{{ID: "t1", VentureID: "v1", Title: "Collect pilot data", Status: domain.StatusInProgress}},
	}
	require.NoError(t, a.Save(snap))

	loaded, ok := a.Load(domain.Seed{})
	require.True(t, ok)
	require.Len(t, loaded.Ventures, 1)
	assert.Equal(t, "TruCycle", loaded.Ventures[0].Name)
	require.Len(t, loaded.Tasks, 1)
	assert.Equal(t, domain.StatusInProgress, loaded.Tasks[0].Status)
}

func TestLoadEmptyCollectionFallsBackToSeed(t *testing.T) {
	a := openTestAdapter(t)
	defer a.Close()

	require.NoError(t, a.Save(store.Snapshot{
		Ventures: []domain.Venture{{ID: "v1", Name: "Solo"}},
	}))

	seed := domain.Seed{
		Risks: []domain.Risk{{ID: "r1", VentureID: "v1", Title: "Single supplier", Likelihood: 3, Impact: 4}},
	}
	loaded, ok := a.Load(seed)
	require.True(t, ok)
	assert.Len(t, loaded.Ventures, 1)
	// empty in the blob, present in the seed
	require.Len(t, loaded.Risks, 1)
	assert.Equal(t, "Single supplier", loaded.Risks[0].Title)
}

func TestLoadCorruptBlobReportsNotFound(t *testing.T) {
	a := openTestAdapter(t)
	defer a.Close()

	err := a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(stateKey), []byte("{not json"))
	})
	require.NoError(t, err)

	_, ok := a.Load(domain.DefaultSeed())
	assert.False(t, ok)
}

func TestWatchDebouncesAndWrites(t *testing.T) {
	a, err := OpenInMemory(WithDebounce(20 * time.Millisecond))
	require.NoError(t, err)

	st := store.New(store.Snapshot{})
	cancel := a.Watch(st)
	defer cancel()

	st.Dispatch(store.AddVenture(domain.Venture{ID: "v1", Name: "Alpha"}))
	st.Dispatch(store.AddVenture(domain.Venture{ID: "v2", Name: "Beta"}))

	require.Eventually(t, func() bool {
		loaded, ok := a.Load(domain.Seed{})
		return ok && len(loaded.Ventures) == 2
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, a.Close())
}

func TestCloseFlushesPendingWrite(t *testing.T) {
	dir := t.TempDir()
	a, err := Open(dir, WithDebounce(time.Hour))
	require.NoError(t, err)

	st := store.New(store.Snapshot{})
	a.Watch(st)
	st.Dispatch(store.AddVenture(domain.Venture{ID: "v1", Name: "Alpha"}))
	require.NoError(t, a.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, ok := reopened.Load(domain.Seed{})
	require.True(t, ok)
	assert.Len(t, loaded.Ventures, 1)
}

func TestInsightsSurviveRestart(t *testing.T) {
	a := openTestAdapter(t)
	defer a.Close()

	require.NoError(t, a.Save(store.Snapshot{
		Insights: []domain.Insight{{ID: "i1", VentureID: "v1", Title: "Deadline slipping", IsRead: true}},
	}))

	loaded, ok := a.Load(domain.DefaultSeed())
	require.True(t, ok)
	require.Len(t, loaded.Insights, 1)
	assert.Equal(t, "Deadline slipping", loaded.Insights[0].Title)
	assert.True(t, loaded.Insights[0].IsRead)
}

func TestBlobExcludesViewState(t *testing.T) {
	raw, err := json.Marshal(persistedState{})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "session")
	assert.NotContains(t, string(raw), "active_view")
}
