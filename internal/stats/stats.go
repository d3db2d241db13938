// Package stats is the derived statistics engine: pure functions over a
// snapshot that compute per-venture aggregates and the composite health
// score. It holds no state and has no mutation rights; callers may invoke
// it repeatedly and concurrently against any snapshot they hold. These
// functions are the only sanctioned way to read aggregate numbers.
package stats

import (
	"math"
	"sort"
	"strings"

	"vcc/internal/domain"
	"vcc/internal/store"
)

// TaskSummary counts a venture's tasks by status. Every task has exactly
// one status, so the six buckets always sum to Total.
type TaskSummary struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	InProgress int `json:"inProgress"`
	Blocked    int `json:"blocked"`
	Backlog    int `json:"backlog"`
	Todo       int `json:"todo"`
	Review     int `json:"review"`
}

type TeamSummary struct {
	Filled int               `json:"filled"`
	Total  int               `json:"total"`
	Roles  []domain.TeamRole `json:"roles"`
}

// RegistrationSummary is the four-way checklist state. Missing
// registration records default to false; TotalCount is always 4.
type RegistrationSummary struct {
	Domain         bool `json:"domain"`
	Company        bool `json:"company"`
	Bank           bool `json:"bank"`
	Legal          bool `json:"legal"`
	CompletedCount int  `json:"completedCount"`
	TotalCount     int  `json:"totalCount"`
}

// VentureStats is a venture together with its derived aggregates.
type VentureStats struct {
	domain.Venture
	Tasks         TaskSummary           `json:"tasks"`
	Milestones    []domain.Milestone    `json:"milestones"`
	Team          TeamSummary           `json:"team"`
	Registrations RegistrationSummary   `json:"regs"`
	Activity      *domain.ActivityStats `json:"activity"`
	HealthScore   int                   `json:"healthScore"`
}

// SummarizeTasks computes the status breakdown for a task list.
func SummarizeTasks(tasks []domain.Task) TaskSummary {
	s := TaskSummary{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusDone:
			s.Done++
		case domain.StatusInProgress:
			s.InProgress++
		case domain.StatusBlocked:
			s.Blocked++
		case domain.StatusBacklog:
			s.Backlog++
		case domain.StatusTodo:
			s.Todo++
		case domain.StatusReview:
			s.Review++
		}
	}
	return s
}

// SummarizeTeam computes role coverage for a role list.
func SummarizeTeam(roles []domain.TeamRole) TeamSummary {
	s := TeamSummary{Total: len(roles), Roles: roles}
	for _, r := range roles {
		if r.Status == domain.RoleFilled {
			s.Filled++
		}
	}
	return s
}

// SummarizeRegistrations folds a venture's registration records into the
// fixed checklist. Fewer than four records never errors.
func SummarizeRegistrations(regs []domain.Registration) RegistrationSummary {
	s := RegistrationSummary{TotalCount: 4}
	for _, r := range regs {
		if r.Completed {
			s.CompletedCount++
		}
		switch r.Type {
		case domain.RegDomain:
			s.Domain = s.Domain || r.Completed
		case domain.RegCompany:
			s.Company = s.Company || r.Completed
		case domain.RegBank:
			s.Bank = s.Bank || r.Completed
		case domain.RegLegal:
			s.Legal = s.Legal || r.Completed
		}
	}
	return s
}

// HealthScore computes the weighted composite 0-100 health metric. The
// weights and the 300x blocker multiplier are load-bearing: sorting,
// alerting, and trend detection all key off this exact number.
//
//	task velocity          30%  done/total       (0 when no tasks)
//	blocker penalty        20%  100 - 300*blocked/total, floored at 0
//	team coverage          20%  filled/total     (neutral 50 when no roles)
//	milestone progress     20%  mean progress    (0 when no milestones)
//	registration complete  10%  completed/4
func HealthScore(v VentureStats) int {
	taskScore := 0.0
	blockerPenalty := 100.0
	if v.Tasks.Total > 0 {
		total := float64(v.Tasks.Total)
		taskScore = float64(v.Tasks.Done) / total * 100
		blockerPenalty = math.Max(0, 100-float64(v.Tasks.Blocked)/total*300)
	}

	teamScore := 50.0
	if v.Team.Total > 0 {
		teamScore = float64(v.Team.Filled) / float64(v.Team.Total) * 100
	}

	milestoneScore := 0.0
	if len(v.Milestones) > 0 {
		sum := 0.0
		for _, m := range v.Milestones {
			sum += float64(m.Progress)
		}
		milestoneScore = sum / float64(len(v.Milestones))
	}

	regScore := float64(v.Registrations.CompletedCount) / float64(v.Registrations.TotalCount) * 100

	weighted := taskScore*0.3 + blockerPenalty*0.2 + teamScore*0.2 + milestoneScore*0.2 + regScore*0.1
	return int(math.Round(math.Min(100, math.Max(0, weighted))))
}

// ForVenture computes the full derived view for one venture. Child
// records referencing a missing venture are simply never visited, and a
// missing venture id reports ok=false rather than failing.
func ForVenture(snap store.Snapshot, ventureID string) (VentureStats, bool) {
	for _, v := range snap.Ventures {
		if v.ID == ventureID {
			return statsFor(snap, v), true
		}
	}
	return VentureStats{}, false
}

// All computes derived views for every venture in the snapshot.
func All(snap store.Snapshot) []VentureStats {
	out := make([]VentureStats, 0, len(snap.Ventures))
	for _, v := range snap.Ventures {
		out = append(out, statsFor(snap, v))
	}
	return out
}

func statsFor(snap store.Snapshot, v domain.Venture) VentureStats {
	var vTasks []domain.Task
	for _, t := range snap.Tasks {
		if t.VentureID == v.ID {
			vTasks = append(vTasks, t)
		}
	}
	var vMilestones []domain.Milestone
	for _, m := range snap.Milestones {
		if m.VentureID == v.ID {
			vMilestones = append(vMilestones, m)
		}
	}
	var vRoles []domain.TeamRole
	for _, r := range snap.TeamRoles {
		if r.VentureID == v.ID {
			vRoles = append(vRoles, r)
		}
	}
	var vRegs []domain.Registration
	for _, r := range snap.Registrations {
		if r.VentureID == v.ID {
			vRegs = append(vRegs, r)
		}
	}
	var activity *domain.ActivityStats
	for i := range snap.ActivityStats {
		if snap.ActivityStats[i].VentureID == v.ID {
			a := snap.ActivityStats[i]
			activity = &a
			break
		}
	}

	vs := VentureStats{
		Venture:       v,
		Tasks:         SummarizeTasks(vTasks),
		Milestones:    vMilestones,
		Team:          SummarizeTeam(vRoles),
		Registrations: SummarizeRegistrations(vRegs),
		Activity:      activity,
	}
	vs.HealthScore = HealthScore(vs)
	return vs
}

// PortfolioTotals aggregates across all ventures.
type PortfolioTotals struct {
	TotalVentures int                `json:"totalVentures"`
	TotalTasks    int                `json:"totalTasks"`
	DoneTasks     int                `json:"doneTasks"`
	BlockedTasks  int                `json:"blockedTasks"`
	TotalTeam     int                `json:"totalTeam"`
	FilledTeam    int                `json:"filledTeam"`
	RegsComplete  int                `json:"regsComplete"`
	RegsTotal     int                `json:"regsTotal"`
	AvgHealth     int                `json:"avgHealth"`
	ByCurrency    map[string]float64 `json:"financialsByCurrency"`
}

// Totals computes portfolio-wide aggregates, including net financials per
// currency (revenue and funding positive, expenses negative).
func Totals(snap store.Snapshot) PortfolioTotals {
	t := PortfolioTotals{
		TotalVentures: len(snap.Ventures),
		TotalTasks:    len(snap.Tasks),
		TotalTeam:     len(snap.TeamRoles),
		RegsTotal:     len(snap.Registrations),
		ByCurrency:    map[string]float64{},
	}
	for _, task := range snap.Tasks {
		switch task.Status {
		case domain.StatusDone:
			t.DoneTasks++
		case domain.StatusBlocked:
			t.BlockedTasks++
		}
	}
	for _, r := range snap.TeamRoles {
		if r.Status == domain.RoleFilled {
			t.FilledTeam++
		}
	}
	for _, r := range snap.Registrations {
		if r.Completed {
			t.RegsComplete++
		}
	}
	for _, f := range snap.Financials {
		amount := f.Amount
		if f.Type == domain.FinExpense {
			amount = -amount
		}
		t.ByCurrency[f.Currency] += amount
	}

	all := All(snap)
	if len(all) > 0 {
		sum := 0
		for _, v := range all {
			sum += v.HealthScore
		}
		t.AvgHealth = int(math.Round(float64(sum) / float64(len(all))))
	}
	return t
}

// Trend compares the two most recent health snapshots for a venture.
type Trend struct {
	Latest    int  `json:"latest"`
	Previous  int  `json:"previous"`
	Declining bool `json:"declining"`
}

// HealthTrend reports ok=false when fewer than two snapshots exist. A
// drop of more than five points between the two latest entries counts as
// declining.
func HealthTrend(snap store.Snapshot, ventureID string) (Trend, bool) {
	var points []domain.HealthSnapshot
	for _, h := range snap.HealthSnapshots {
		if h.VentureID == ventureID {
			points = append(points, h)
		}
	}
	if len(points) < 2 {
		return Trend{}, false
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].RecordedAt > points[j].RecordedAt
	})
	t := Trend{Latest: points[0].Score, Previous: points[1].Score}
	t.Declining = t.Latest < t.Previous-5
	return t, true
}

// Filter narrows and orders the derived venture list for list views.
type Filter struct {
	Tier   string `json:"tier"`   // tier value or "all"
	Geo    string `json:"geo"`    // geo value or "all"
	Search string `json:"search"` // matches name or prefix, case-insensitive
	SortBy string `json:"sortBy"` // name | health | activity | tasks
}

// FilterVentures applies a filter to an already-derived venture list.
func FilterVentures(all []VentureStats, f Filter) []VentureStats {
	out := make([]VentureStats, 0, len(all))
	q := strings.ToLower(f.Search)
	for _, v := range all {
		if f.Tier != "" && f.Tier != "all" && string(v.Tier) != f.Tier {
			continue
		}
		if f.Geo != "" && f.Geo != "all" && v.Geo != f.Geo {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(v.Name), q) && !strings.Contains(strings.ToLower(v.Prefix), q) {
			continue
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch f.SortBy {
		case "health":
			return out[i].HealthScore > out[j].HealthScore
		case "activity":
			return out[i].UpdatedAt > out[j].UpdatedAt
		case "tasks":
			return out[i].Tasks.Total > out[j].Tasks.Total
		default:
			return out[i].Name < out[j].Name
		}
	})
	return out
}
