// Package store holds the single mutable source of truth for the
// portfolio. All mutations, local or remote, are expressed as commands and
// funneled through one serialized apply path; every accepted command
// produces a new immutable snapshot value.
package store

import "vcc/internal/domain"

// Snapshot is one complete, immutable in-memory representation of all
// domain collections at a point in time. Snapshots are never mutated in
// place; readers may hold one indefinitely and compute over it freely.
type Snapshot struct {
	Ventures        []domain.Venture
	Tasks           []domain.Task
	Milestones      []domain.Milestone
	TeamRoles       []domain.TeamRole
	Registrations   []domain.Registration
	ActivityStats   []domain.ActivityStats
	Insights        []domain.Insight
	HealthSnapshots []domain.HealthSnapshot
	RecurringTasks  []domain.RecurringTask
	Financials      []domain.FinancialRecord
	Documents       []domain.Document
	Risks           []domain.Risk
	ResourceShares  []domain.ResourceShare
}

// FromSeed builds the initial snapshot from the fixed seed dataset.
func FromSeed(seed domain.Seed) Snapshot {
	return Snapshot{
		Ventures:        seed.Ventures,
		Tasks:           seed.Tasks,
		Milestones:      seed.Milestones,
		TeamRoles:       seed.TeamRoles,
		Registrations:   seed.Registrations,
		ActivityStats:   seed.ActivityStats,
		RecurringTasks:  seed.RecurringTasks,
		Financials:      seed.Financials,
		Documents:       seed.Documents,
		Risks:           seed.Risks,
		ResourceShares:  seed.ResourceShares,
		HealthSnapshots: seed.HealthSnapshots,
	}
}

// Apply runs one command against a snapshot and returns the resulting
// snapshot. It is total and pure: no I/O, no side effects, and identical
// inputs always yield the identical output. Updates and deletes naming an
// unknown identifier return the snapshot unchanged rather than erroring,
// since remote echoes may race with local deletes.
func Apply(s Snapshot, cmd Command) Snapshot {
	return cmd.apply(s)
}
