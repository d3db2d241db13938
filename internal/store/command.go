package store

import "vcc/internal/domain"

// Kind names the four command families supported for every collection.
type Kind string

const (
	KindSet    Kind = "set"
	KindAdd    Kind = "add"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// Command is one discrete, named mutation. The set of commands is closed:
// values are built only through the constructors in this package. The
// metadata accessors let subscribers (the reconciler in particular) mirror
// a command outward without knowing its concrete type.
type Command interface {
	// Collection is the logical table the command targets.
	Collection() string
	// Kind is the command family.
	Kind() Kind
	// Record returns the full record payload for add/update commands.
	Record() (any, bool)
	// TargetID is the affected record id; empty for set commands.
	TargetID() string

	apply(Snapshot) Snapshot
}

// lens binds a collection name to its slice inside a snapshot. The generic
// commands below are written once against a lens instead of once per
// entity type.
type lens[T domain.Entity] struct {
	table string
	slice func(*Snapshot) *[]T
}

var (
	ventures        = lens[domain.Venture]{domain.TableVentures, func(s *Snapshot) *[]domain.Venture { return &s.Ventures }}
	tasks           = lens[domain.Task]{domain.TableTasks, func(s *Snapshot) *[]domain.Task { return &s.Tasks }}
	milestones      = lens[domain.Milestone]{domain.TableMilestones, func(s *Snapshot) *[]domain.Milestone { return &s.Milestones }}
	teamRoles       = lens[domain.TeamRole]{domain.TableTeamRoles, func(s *Snapshot) *[]domain.TeamRole { return &s.TeamRoles }}
	registrations   = lens[domain.Registration]{domain.TableRegistrations, func(s *Snapshot) *[]domain.Registration { return &s.Registrations }}
	activityStats   = lens[domain.ActivityStats]{domain.TableActivityStats, func(s *Snapshot) *[]domain.ActivityStats { return &s.ActivityStats }}
	insights        = lens[domain.Insight]{domain.TableInsights, func(s *Snapshot) *[]domain.Insight { return &s.Insights }}
	healthSnapshots = lens[domain.HealthSnapshot]{domain.TableHealthSnapshots, func(s *Snapshot) *[]domain.HealthSnapshot { return &s.HealthSnapshots }}
	recurringTasks  = lens[domain.RecurringTask]{domain.TableRecurringTasks, func(s *Snapshot) *[]domain.RecurringTask { return &s.RecurringTasks }}
	financials      = lens[domain.FinancialRecord]{domain.TableFinancials, func(s *Snapshot) *[]domain.FinancialRecord { return &s.Financials }}
	documents       = lens[domain.Document]{domain.TableDocuments, func(s *Snapshot) *[]domain.Document { return &s.Documents }}
	risks           = lens[domain.Risk]{domain.TableRisks, func(s *Snapshot) *[]domain.Risk { return &s.Risks }}
	resourceShares  = lens[domain.ResourceShare]{domain.TableResourceShares, func(s *Snapshot) *[]domain.ResourceShare { return &s.ResourceShares }}
)

type setCmd[T domain.Entity] struct {
	l       lens[T]
	records []T
}

func (c setCmd[T]) Collection() string  { return c.l.table }
func (c setCmd[T]) Kind() Kind          { return KindSet }
func (c setCmd[T]) Record() (any, bool) { return nil, false }
func (c setCmd[T]) TargetID() string    { return "" }

func (c setCmd[T]) apply(s Snapshot) Snapshot {
	*c.l.slice(&s) = append([]T(nil), c.records...)
	return s
}

type addCmd[T domain.Entity] struct {
	l      lens[T]
	record T
}

func (c addCmd[T]) Collection() string  { return c.l.table }
func (c addCmd[T]) Kind() Kind          { return KindAdd }
func (c addCmd[T]) Record() (any, bool) { return c.record, true }
func (c addCmd[T]) TargetID() string    { return c.record.EntityID() }

func (c addCmd[T]) apply(s Snapshot) Snapshot {
	cur := *c.l.slice(&s)
	next := make([]T, 0, len(cur)+1)
	next = append(next, cur...)
	next = append(next, c.record)
	*c.l.slice(&s) = next
	return s
}

type updateCmd[T domain.Entity] struct {
	l      lens[T]
	record T
}

func (c updateCmd[T]) Collection() string  { return c.l.table }
func (c updateCmd[T]) Kind() Kind          { return KindUpdate }
func (c updateCmd[T]) Record() (any, bool) { return c.record, true }
func (c updateCmd[T]) TargetID() string    { return c.record.EntityID() }

// apply replaces the record with a matching id wholesale. An unknown id is
// a no-op: the collection is left untouched, not extended.
func (c updateCmd[T]) apply(s Snapshot) Snapshot {
	cur := *c.l.slice(&s)
	idx := -1
	for i := range cur {
		if cur[i].EntityID() == c.record.EntityID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	next := append([]T(nil), cur...)
	next[idx] = c.record
	*c.l.slice(&s) = next
	return s
}

type deleteCmd[T domain.Entity] struct {
	l  lens[T]
	id string
}

func (c deleteCmd[T]) Collection() string  { return c.l.table }
func (c deleteCmd[T]) Kind() Kind          { return KindDelete }
func (c deleteCmd[T]) Record() (any, bool) { return nil, false }
func (c deleteCmd[T]) TargetID() string    { return c.id }

func (c deleteCmd[T]) apply(s Snapshot) Snapshot {
	cur := *c.l.slice(&s)
	found := false
	for i := range cur {
		if cur[i].EntityID() == c.id {
			found = true
			break
		}
	}
	if !found {
		return s
	}
	next := make([]T, 0, len(cur)-1)
	for i := range cur {
		if cur[i].EntityID() != c.id {
			next = append(next, cur[i])
		}
	}
	*c.l.slice(&s) = next
	return s
}

// Ventures. Deleting a venture deliberately does not cascade to its child
// records; readers filter dangling references instead.

func SetVentures(v []domain.Venture) Command { return setCmd[domain.Venture]{ventures, v} }
func AddVenture(v domain.Venture) Command { return addCmd[domain.Venture]{ventures, v} }
func UpdateVenture(v domain.Venture) Command { return updateCmd[domain.Venture]{ventures, v} }
func DeleteVenture(id string) Command { return deleteCmd[domain.Venture]{ventures, id} }

// Tasks.

func SetTasks(t []domain.Task) Command { return setCmd[domain.Task]{tasks, t} }
func AddTask(t domain.Task) Command { return addCmd[domain.Task]{tasks, t} }
func UpdateTask(t domain.Task) Command { return updateCmd[domain.Task]{tasks, t} }
func DeleteTask(id string) Command { return deleteCmd[domain.Task]{tasks, id} }

// Milestones.

func SetMilestones(m []domain.Milestone) Command { return setCmd[domain.Milestone]{milestones, m} }
func AddMilestone(m domain.Milestone) Command { return addCmd[domain.Milestone]{milestones, m} }
func UpdateMilestone(m domain.Milestone) Command { return updateCmd[domain.Milestone]{milestones, m} }
func DeleteMilestone(id string) Command { return deleteCmd[domain.Milestone]{milestones, id} }

// Team roles.

func SetTeamRoles(r []domain.TeamRole) Command { return setCmd[domain.TeamRole]{teamRoles, r} }
func AddTeamRole(r domain.TeamRole) Command { return addCmd[domain.TeamRole]{teamRoles, r} }
func UpdateTeamRole(r domain.TeamRole) Command { return updateCmd[domain.TeamRole]{teamRoles, r} }
func DeleteTeamRole(id string) Command { return deleteCmd[domain.TeamRole]{teamRoles, id} }

// Registrations.

func SetRegistrations(r []domain.Registration) Command {
	return setCmd[domain.Registration]{registrations, r}
}
func AddRegistration(r domain.Registration) Command {
	return addCmd[domain.Registration]{registrations, r}
}
func UpdateRegistration(r domain.Registration) Command {
	return updateCmd[domain.Registration]{registrations, r}
}

// External activity stats, overwritten wholesale per sync. The statutory
// registration rows and synced stats have no per-row delete.

func SetActivityStats(a []domain.ActivityStats) Command {
	return setCmd[domain.ActivityStats]{activityStats, a}
}

// Insights.

func SetInsights(i []domain.Insight) Command { return setCmd[domain.Insight]{insights, i} }
func AddInsight(i domain.Insight) Command { return addCmd[domain.Insight]{insights, i} }
func DeleteInsight(id string) Command { return deleteCmd[domain.Insight]{insights, id} }

// markInsightReadCmd flips the read flag on one insight. Modeled as an
// update so subscribers mirror it like any other full-record replacement.
type markInsightReadCmd struct {
	id string
}

func (c markInsightReadCmd) Collection() string  { return domain.TableInsights }
func (c markInsightReadCmd) Kind() Kind          { return KindUpdate }
func (c markInsightReadCmd) Record() (any, bool) { return nil, false }
func (c markInsightReadCmd) TargetID() string    { return c.id }

func (c markInsightReadCmd) apply(s Snapshot) Snapshot {
	idx := -1
	for i := range s.Insights {
		if s.Insights[i].ID == c.id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}
	next := append([]domain.Insight(nil), s.Insights...)
	next[idx].IsRead = true
	s.Insights = next
	return s
}

func MarkInsightRead(id string) Command { return markInsightReadCmd{id} }

// Health snapshots are an append-only log: no update or delete commands
// exist for them, only bulk replacement (reconciliation) and append.

func SetHealthSnapshots(h []domain.HealthSnapshot) Command {
	return setCmd[domain.HealthSnapshot]{healthSnapshots, h}
}
func AddHealthSnapshot(h domain.HealthSnapshot) Command {
	return addCmd[domain.HealthSnapshot]{healthSnapshots, h}
}

// Recurring tasks.

func SetRecurringTasks(r []domain.RecurringTask) Command {
	return setCmd[domain.RecurringTask]{recurringTasks, r}
}
func AddRecurringTask(r domain.RecurringTask) Command {
	return addCmd[domain.RecurringTask]{recurringTasks, r}
}
func UpdateRecurringTask(r domain.RecurringTask) Command {
	return updateCmd[domain.RecurringTask]{recurringTasks, r}
}
func DeleteRecurringTask(id string) Command {
	return deleteCmd[domain.RecurringTask]{recurringTasks, id}
}

// Financial records.

func SetFinancials(f []domain.FinancialRecord) Command {
	return setCmd[domain.FinancialRecord]{financials, f}
}
func AddFinancial(f domain.FinancialRecord) Command {
	return addCmd[domain.FinancialRecord]{financials, f}
}
func DeleteFinancial(id string) Command { return deleteCmd[domain.FinancialRecord]{financials, id} }

// Documents.

func SetDocuments(d []domain.Document) Command { return setCmd[domain.Document]{documents, d} }
func AddDocument(d domain.Document) Command { return addCmd[domain.Document]{documents, d} }
func DeleteDocument(id string) Command { return deleteCmd[domain.Document]{documents, id} }

// Risks.

func SetRisks(r []domain.Risk) Command { return setCmd[domain.Risk]{risks, r} }
func AddRisk(r domain.Risk) Command { return addCmd[domain.Risk]{risks, r} }
func UpdateRisk(r domain.Risk) Command { return updateCmd[domain.Risk]{risks, r} }
func DeleteRisk(id string) Command { return deleteCmd[domain.Risk]{risks, id} }

// Resource shares.

func SetResourceShares(r []domain.ResourceShare) Command {
	return setCmd[domain.ResourceShare]{resourceShares, r}
}
func AddResourceShare(r domain.ResourceShare) Command {
	return addCmd[domain.ResourceShare]{resourceShares, r}
}
func DeleteResourceShare(id string) Command {
	return deleteCmd[domain.ResourceShare]{resourceShares, id}
}
