package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"vcc/internal/domain"
)

type StoreSuite struct {
	suite.Suite
	store *Store
}

func (s *StoreSuite) SetupTest() {
	s.store = New(Snapshot{
		Ventures: []domain.Venture{
			{ID: "v1", Name: "Alpha", Prefix: "AL", Tier: domain.TierActive},
			{ID: "v2", Name: "Beta", Prefix: "BE", Tier: domain.TierParked},
		},
		Tasks: []domain.Task{
			{ID: "t1", VentureID: "v1", Title: "Ship login", Status: domain.StatusTodo},
		},
	})
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) TestDispatchAddAppends() {
	snap := s.store.Dispatch(AddTask(domain.Task{ID: "t2", VentureID: "v1", Title: "Write docs", Status: domain.StatusBacklog}))

	s.Require().Len(snap.Tasks, 2)
	s.Equal("t2", snap.Tasks[1].ID)
}

func (s *StoreSuite) TestDispatchUpdateReplacesWholesale() {
	snap := s.store.Dispatch(UpdateTask(domain.Task{ID: "t1", VentureID: "v1", Title: "Ship login", Status: domain.StatusDone}))

	s.Require().Len(snap.Tasks, 1)
	s.Equal(domain.StatusDone, snap.Tasks[0].Status)
}

func (s *StoreSuite) TestUpdateUnknownIDIsNoOp() {
	before := s.store.Snapshot()
	after := s.store.Dispatch(UpdateTask(domain.Task{ID: "ghost", Title: "Never lands"}))

	s.Equal(before, after)
}

func (s *StoreSuite) TestDeleteUnknownIDIsNoOp() {
	before := s.store.Snapshot()
	after := s.store.Dispatch(DeleteTask("ghost"))

	s.Equal(before, after)
}

func (s *StoreSuite) TestDeleteRemovesOnlyTarget() {
	s.store.Dispatch(AddTask(domain.Task{ID: "t2", VentureID: "v1", Title: "Second"}))
	snap := s.store.Dispatch(DeleteTask("t1"))

	s.Require().Len(snap.Tasks, 1)
	s.Equal("t2", snap.Tasks[0].ID)
}

func (s *StoreSuite) TestVentureDeleteDoesNotCascade() {
	snap := s.store.Dispatch(DeleteVenture("v1"))

	s.Len(snap.Ventures, 1)
	// child records keep their dangling reference
	s.Require().Len(snap.Tasks, 1)
	s.Equal("v1", snap.Tasks[0].VentureID)
}

func (s *StoreSuite) TestSetReplacesCollection() {
	snap := s.store.Dispatch(SetTasks([]domain.Task{
		{ID: "n1", VentureID: "v2", Title: "Fresh start"},
	}))

	s.Require().Len(snap.Tasks, 1)
	s.Equal("n1", snap.Tasks[0].ID)
}

func (s *StoreSuite) TestApplyLeavesInputUntouched() {
	before := s.store.Snapshot()
	after := Apply(before, UpdateTask(domain.Task{ID: "t1", Title: "Mutated", Status: domain.StatusBlocked}))

	s.Equal("Ship login", before.Tasks[0].Title)
	s.Equal("Mutated", after.Tasks[0].Title)
}

func (s *StoreSuite) TestApplyIsDeterministic() {
	base := s.store.Snapshot()
	cmd := UpdateTask(domain.Task{ID: "t1", VentureID: "v1", Title: "Ship login", Status: domain.StatusReview})

	s.Equal(Apply(base, cmd), Apply(base, cmd))
}

func (s *StoreSuite) TestApplyIsIdempotentForUpdatesAndDeletes() {
	base := s.store.Snapshot()

	update := UpdateTask(domain.Task{ID: "t1", VentureID: "v1", Title: "Ship login", Status: domain.StatusReview})
	once := Apply(base, update)
	s.Equal(once, Apply(once, update))

	del := DeleteTask("t1")
	gone := Apply(base, del)
	s.Equal(gone, Apply(gone, del))
}

func (s *StoreSuite) TestMarkInsightRead() {
	s.store.Dispatch(AddInsight(domain.Insight{ID: "i1", Title: "Blocked pileup", Severity: domain.SeverityWarning}))
	snap := s.store.Dispatch(MarkInsightRead("i1"))

	s.Require().Len(snap.Insights, 1)
	s.True(snap.Insights[0].IsRead)
}

func (s *StoreSuite) TestSubscriberSeesEveryCommandInOrder() {
	var got []string
	s.store.Subscribe(func(snap Snapshot, cmd Command, origin Origin) {
		got = append(got, cmd.Collection()+":"+string(cmd.Kind()))
	})

	s.store.Dispatch(AddTask(domain.Task{ID: "t2", VentureID: "v1"}))
	s.store.DispatchRemote(DeleteTask("t1"))

	s.Equal([]string{"tasks:add", "tasks:delete"}, got)
}

func (s *StoreSuite) TestSubscriberReceivesOrigin() {
	var origins []Origin
	s.store.Subscribe(func(snap Snapshot, cmd Command, origin Origin) {
		origins = append(origins, origin)
	})

	s.store.Dispatch(DeleteTask("t1"))
	s.store.DispatchRemote(AddVenture(domain.Venture{ID: "v3", Name: "Gamma"}))

	s.Equal([]Origin{OriginLocal, OriginRemote}, origins)
}

func (s *StoreSuite) TestUnsubscribeStopsDelivery() {
	calls := 0
	cancel := s.store.Subscribe(func(Snapshot, Command, Origin) { calls++ })

	s.store.Dispatch(DeleteTask("t1"))
	cancel()
	s.store.Dispatch(AddTask(domain.Task{ID: "t9", VentureID: "v1"}))

	s.Equal(1, calls)
}

func (s *StoreSuite) TestConcurrentDispatchLosesNothing() {
	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.store.Dispatch(AddTask(domain.Task{ID: domain.NewID(), VentureID: "v1"}))
		}()
	}
	wg.Wait()

	s.Len(s.store.Snapshot().Tasks, n+1)
}

func TestCommandMetadata(t *testing.T) {
	add := AddRisk(domain.Risk{ID: "r1", Title: "Key person", Likelihood: 4, Impact: 4})
	assert.Equal(t, domain.TableRisks, add.Collection())
	assert.Equal(t, KindAdd, add.Kind())
	assert.Equal(t, "r1", add.TargetID())
	rec, ok := add.Record()
	require.True(t, ok)
	assert.IsType(t, domain.Risk{}, rec)

	del := DeleteRisk("r1")
	assert.Equal(t, KindDelete, del.Kind())
	_, ok = del.Record()
	assert.False(t, ok)

	set := SetRisks(nil)
	assert.Equal(t, KindSet, set.Kind())
	assert.Empty(t, set.TargetID())
}

func TestHealthSnapshotsAreAppendOnly(t *testing.T) {
	st := New(Snapshot{})
	st.Dispatch(AddHealthSnapshot(domain.HealthSnapshot{ID: "h1", VentureID: "v1", Score: 60, RecordedAt: "2026-08-01T00:00:00Z"}))
	snap := st.Dispatch(AddHealthSnapshot(domain.HealthSnapshot{ID: "h2", VentureID: "v1", Score: 52, RecordedAt: "2026-08-08T00:00:00Z"}))

	require.Len(t, snap.HealthSnapshots, 2)
	assert.Equal(t, 60, snap.HealthSnapshots[0].Score)
}
