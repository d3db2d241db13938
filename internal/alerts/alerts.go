// Package alerts derives predictive warnings from a snapshot. Evaluation
// is pure and recomputed on demand; alerts are not stored and carry no
// identity across evaluations.
package alerts

import (
	"fmt"
	"time"

	"vcc/internal/domain"
	"vcc/internal/stats"
	"vcc/internal/store"
)

type Kind string

const (
	KindDeadline      Kind = "milestone_deadline"
	KindBlockedPileup Kind = "blocked_pileup"
	KindHiringGap     Kind = "hiring_gap"
	KindHealthDecline Kind = "health_decline"
	KindRiskExposure  Kind = "risk_exposure"
	KindStagnation    Kind = "stagnation"
)

// Alert is one evaluated finding. VentureID is empty for portfolio-wide
// findings.
type Alert struct {
	VentureID   string                 `json:"venture_id"`
	VentureName string                 `json:"venture_name"`
	Kind        Kind                   `json:"kind"`
	Severity    domain.InsightSeverity `json:"severity"`
	Title       string                 `json:"title"`
	Message     string                 `json:"message"`
}

// Evaluate runs every rule against every venture, then the
// portfolio-wide rules, and returns the findings in venture order.
// Deadline rules compare milestone target dates against today
// (YYYY-MM-DD).
func Evaluate(snap store.Snapshot, today string) []Alert {
	var out []Alert
	for _, v := range snap.Ventures {
		out = append(out, evaluateVenture(snap, v, today)...)
	}

	// stagnation is a portfolio signal: open work exists but nothing at
	// all is moving
	total := stats.SummarizeTasks(snap.Tasks)
	if total.Total > 0 && total.InProgress == 0 && total.Done < total.Total {
		out = append(out, Alert{
			Kind:     KindStagnation,
			Severity: domain.SeverityWarning,
			Title:    "No work in progress",
			Message:  "the portfolio has open tasks but nothing in progress",
		})
	}
	return out
}

func evaluateVenture(snap store.Snapshot, v domain.Venture, today string) []Alert {
	var out []Alert

	var tasks []domain.Task
	for _, t := range snap.Tasks {
		if t.VentureID == v.ID {
			tasks = append(tasks, t)
		}
	}
	summary := stats.SummarizeTasks(tasks)

	for _, m := range snap.Milestones {
		if m.VentureID != v.ID || m.Progress >= 100 {
			continue
		}
		days, ok := daysUntil(today, m.TargetDate)
		if !ok {
			continue
		}
		switch {
		case days < 0:
			out = append(out, Alert{
				VentureID:   v.ID,
				VentureName: v.Name,
				Kind:        KindDeadline,
				Severity:    domain.SeverityCritical,
				Title:       "Milestone overdue",
				Message:     fmt.Sprintf("%s was due %d days ago at %d%% progress", m.Name, -days, m.Progress),
			})
		case days <= 14 && m.Progress < 50:
			out = append(out, Alert{
				VentureID:   v.ID,
				VentureName: v.Name,
				Kind:        KindDeadline,
				Severity:    domain.SeverityWarning,
				Title:       "Milestone at risk",
				Message:     fmt.Sprintf("%s is due in %d days at %d%% progress", m.Name, days, m.Progress),
			})
		case days <= 30 && m.Progress < 25:
			out = append(out, Alert{
				VentureID:   v.ID,
				VentureName: v.Name,
				Kind:        KindDeadline,
				Severity:    domain.SeverityInfo,
				Title:       "Milestone barely started",
				Message:     fmt.Sprintf("%s is due in %d days at %d%% progress", m.Name, days, m.Progress),
			})
		}
	}

	if summary.Blocked >= 2 {
		sev := domain.SeverityWarning
		if summary.Blocked >= 3 {
			sev = domain.SeverityCritical
		}
		out = append(out, Alert{
			VentureID:   v.ID,
			VentureName: v.Name,
			Kind:        KindBlockedPileup,
			Severity:    sev,
			Title:       "Blocked task pileup",
			Message:     fmt.Sprintf("%d tasks are blocked in %s", summary.Blocked, v.Name),
		})
	}

	if v.Tier == domain.TierActive {
		hiring := 0
		for _, r := range snap.TeamRoles {
			if r.VentureID == v.ID && r.Status == domain.RoleHiring {
				hiring++
			}
		}
		if hiring >= 3 {
			out = append(out, Alert{
				VentureID:   v.ID,
				VentureName: v.Name,
				Kind:        KindHiringGap,
				Severity:    domain.SeverityWarning,
				Title:       "Hiring gap on active venture",
				Message:     fmt.Sprintf("%s is in Active Build with %d roles still hiring", v.Name, hiring),
			})
		}
	}

	if trend, ok := stats.HealthTrend(snap, v.ID); ok && trend.Declining {
		out = append(out, Alert{
			VentureID:   v.ID,
			VentureName: v.Name,
			Kind:        KindHealthDecline,
			Severity:    domain.SeverityWarning,
			Title:       "Health declining",
			Message:     fmt.Sprintf("%s health dropped from %d to %d", v.Name, trend.Previous, trend.Latest),
		})
	}

	for _, r := range snap.Risks {
		if r.VentureID != v.ID || r.Status != domain.RiskActive {
			continue
		}
		if r.Likelihood >= 3 && r.Impact >= 4 {
			sev := domain.SeverityWarning
			if r.Likelihood >= 4 {
				sev = domain.SeverityCritical
			}
			out = append(out, Alert{
				VentureID:   v.ID,
				VentureName: v.Name,
				Kind:        KindRiskExposure,
				Severity:    sev,
				Title:       "High risk exposure",
				Message:     fmt.Sprintf("%s: likelihood %d, impact %d", r.Title, r.Likelihood, r.Impact),
			})
		}
	}

	return out
}

// daysUntil returns whole days from today to target, both YYYY-MM-DD.
// Negative when target is in the past.
func daysUntil(today, target string) (int, bool) {
	from, err := time.Parse("2006-01-02", today)
	if err != nil {
		return 0, false
	}
	to, err := time.Parse("2006-01-02", target)
	if err != nil {
		return 0, false
	}
	return int(to.Sub(from).Hours() / 24), true
}
