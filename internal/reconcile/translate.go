package reconcile

import (
	"encoding/json"
	"fmt"

	"vcc/internal/domain"
	"vcc/internal/store"
)

// FeedTables are the collections the realtime feed covers. The rest only
// converge through bulk loads.
var FeedTables = []string{domain.TableVentures, domain.TableTasks, domain.TableMilestones}

// BulkTables are every remotely synced collection, fetched on connect.
var BulkTables = []string{
	domain.TableVentures,
	domain.TableTasks,
	domain.TableMilestones,
	domain.TableTeamRoles,
	domain.TableRegistrations,
	domain.TableActivityStats,
	domain.TableHealthSnapshots,
	domain.TableRecurringTasks,
	domain.TableFinancials,
	domain.TableDocuments,
	domain.TableRisks,
	domain.TableResourceShares,
	domain.TableInsights,
}

func decodeRows[T any](rows []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, raw := range rows {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// bulkCommand turns one table's full row set into the Set command that
// replaces the local collection.
func bulkCommand(table string, rows []json.RawMessage) (store.Command, error) {
	switch table {
	case domain.TableVentures:
		recs, err := decodeRows[domain.Venture](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetVentures(recs), nil
	case domain.TableTasks:
		recs, err := decodeRows[domain.Task](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetTasks(recs), nil
	case domain.TableMilestones:
		recs, err := decodeRows[domain.Milestone](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetMilestones(recs), nil
	case domain.TableTeamRoles:
		recs, err := decodeRows[domain.TeamRole](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetTeamRoles(recs), nil
	case domain.TableRegistrations:
		recs, err := decodeRows[domain.Registration](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetRegistrations(recs), nil
	case domain.TableActivityStats:
		recs, err := decodeRows[domain.ActivityStats](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetActivityStats(recs), nil
	case domain.TableHealthSnapshots:
		recs, err := decodeRows[domain.HealthSnapshot](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetHealthSnapshots(recs), nil
	case domain.TableRecurringTasks:
		recs, err := decodeRows[domain.RecurringTask](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetRecurringTasks(recs), nil
	case domain.TableFinancials:
		recs, err := decodeRows[domain.FinancialRecord](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetFinancials(recs), nil
	case domain.TableDocuments:
		recs, err := decodeRows[domain.Document](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetDocuments(recs), nil
	case domain.TableRisks:
		recs, err := decodeRows[domain.Risk](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetRisks(recs), nil
	case domain.TableResourceShares:
		recs, err := decodeRows[domain.ResourceShare](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetResourceShares(recs), nil
	case domain.TableInsights:
		recs, err := decodeRows[domain.Insight](rows)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		return store.SetInsights(recs), nil
	}
	return nil, fmt.Errorf("unknown table %q", table)
}

// eventCommand turns one feed event into a store command. Inserts and
// updates both become full-row updates; a row the local store has never
// seen is dropped by the update's unknown-id rule and recovered by the
// next bulk load.
func eventCommand(ev Event) (store.Command, error) {
	if ev.Type == EventDelete {
		switch ev.Table {
		case domain.TableVentures:
			return store.DeleteVenture(ev.OldID), nil
		case domain.TableTasks:
			return store.DeleteTask(ev.OldID), nil
		case domain.TableMilestones:
			return store.DeleteMilestone(ev.OldID), nil
		}
		return nil, fmt.Errorf("unhandled feed table %q", ev.Table)
	}

	switch ev.Table {
	case domain.TableVentures:
		var rec domain.Venture
		if err := json.Unmarshal(ev.Record, &rec); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", ev.Table, err)
		}
		return store.UpdateVenture(rec), nil
	case domain.TableTasks:
		var rec domain.Task
		if err := json.Unmarshal(ev.Record, &rec); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", ev.Table, err)
		}
		return store.UpdateTask(rec), nil
	case domain.TableMilestones:
		var rec domain.Milestone
		if err := json.Unmarshal(ev.Record, &rec); err != nil {
			return nil, fmt.Errorf("decode %s event: %w", ev.Table, err)
		}
		return store.UpdateMilestone(rec), nil
	}
	return nil, fmt.Errorf("unhandled feed table %q", ev.Table)
}
