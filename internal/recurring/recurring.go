// Package recurring materializes due recurring rules into concrete
// tasks. Generation is expressed as store commands so the caller decides
// when they land; the functions here never touch the store directly.
package recurring

import (
	"vcc/internal/domain"
	"vcc/internal/store"
)

// Generate materializes one rule into a todo task and advances the
// rule's schedule. The returned commands must be dispatched in order.
func Generate(rule domain.RecurringTask, today string) []store.Command {
	task := domain.Task{
		ID:          domain.NewID(),
		VentureID:   rule.VentureID,
		Title:       rule.Title,
		Description: rule.Description,
		Status:      domain.StatusTodo,
		Priority:    rule.Priority,
		DueDate:     rule.NextDue,
		Tags:        []string{"recurring"},
		CreatedAt:   domain.Now(),
		UpdatedAt:   domain.Now(),
	}
	advanced := rule
	advanced.NextDue = domain.AdvanceRecurrence(rule.NextDue, rule.Recurrence)
	advanced.LastGenerated = today
	return []store.Command{
		store.AddTask(task),
		store.UpdateRecurringTask(advanced),
	}
}

// GenerateDue materializes every active rule whose next due date is
// today or earlier. Rules already generated today are skipped so the
// sweep is safe to run more than once a day.
func GenerateDue(snap store.Snapshot, today string) []store.Command {
	var out []store.Command
	for _, rule := range snap.RecurringTasks {
		if !rule.Active || rule.NextDue == "" || rule.NextDue > today {
			continue
		}
		if rule.LastGenerated == today {
			continue
		}
		out = append(out, Generate(rule, today)...)
	}
	return out
}
