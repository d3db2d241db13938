// Package domain defines the entity model for the venture portfolio:
// typed records referencing each other by identifier. It is pure data
// shape; all behavior lives in the store and stats packages.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is implemented by every record that lives in a snapshot collection.
type Entity interface {
	EntityID() string
}

// Logical table names, shared by the persistence blob and the remote store.
const (
	TableVentures        = "ventures"
	TableTasks           = "tasks"
	TableMilestones      = "milestones"
	TableTeamRoles       = "team_roles"
	TableRegistrations   = "registrations"
	TableActivityStats   = "activity_stats"
	TableInsights        = "insights"
	TableHealthSnapshots = "health_snapshots"
	TableRecurringTasks  = "recurring_tasks"
	TableFinancials      = "financials"
	TableDocuments       = "documents"
	TableRisks           = "risks"
	TableResourceShares  = "resource_shares"
)

// VentureTier is the lifecycle tier of a venture.
type VentureTier string

const (
	TierActive     VentureTier = "Active Build"
	TierIncubating VentureTier = "Incubating"
	TierParked     VentureTier = "Parked"
)

type TaskStatus string

const (
	StatusBacklog    TaskStatus = "backlog"
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
	StatusBlocked    TaskStatus = "blocked"
)

type TaskPriority string

const (
	PriorityP0 TaskPriority = "P0"
	PriorityP1 TaskPriority = "P1"
	PriorityP2 TaskPriority = "P2"
	PriorityP3 TaskPriority = "P3"
)

type RoleStatus string

const (
	RoleFilled RoleStatus = "filled"
	RoleHiring RoleStatus = "hiring"
	RoleLater  RoleStatus = "later"
	RoleOpen   RoleStatus = "open"
)

// RegistrationType is the fixed four-way legal checklist.
type RegistrationType string

const (
	RegDomain  RegistrationType = "domain"
	RegCompany RegistrationType = "company"
	RegBank    RegistrationType = "bank"
	RegLegal   RegistrationType = "legal"
)

// RegistrationTypes lists all checklist items in display order.
var RegistrationTypes = []RegistrationType{RegDomain, RegCompany, RegBank, RegLegal}

type InsightType string

const (
	InsightSummary    InsightType = "summary"
	InsightAlert      InsightType = "alert"
	InsightSuggestion InsightType = "suggestion"
	InsightHealth     InsightType = "health"
)

type InsightSeverity string

const (
	SeverityInfo     InsightSeverity = "info"
	SeverityWarning  InsightSeverity = "warning"
	SeverityCritical InsightSeverity = "critical"
)

type RecurrencePattern string

const (
	RecurDaily    RecurrencePattern = "daily"
	RecurWeekly   RecurrencePattern = "weekly"
	RecurBiweekly RecurrencePattern = "biweekly"
	RecurMonthly  RecurrencePattern = "monthly"
)

type FinancialType string

const (
	FinExpense FinancialType = "expense"
	FinRevenue FinancialType = "revenue"
	FinFunding FinancialType = "funding"
	FinRunway  FinancialType = "runway"
)

type RiskStatus string

const (
	RiskActive    RiskStatus = "active"
	RiskMitigated RiskStatus = "mitigated"
	RiskAccepted  RiskStatus = "accepted"
	RiskResolved  RiskStatus = "resolved"
)

type ResourceType string

const (
	ResourcePerson    ResourceType = "person"
	ResourceTool      ResourceType = "tool"
	ResourceBudget    ResourceType = "budget"
	ResourceKnowledge ResourceType = "knowledge"
)

type SharingStatus string

const (
	SharingActive    SharingStatus = "active"
	SharingCompleted SharingStatus = "completed"
	SharingCancelled SharingStatus = "cancelled"
)

// Venture is one tracked project or business unit within the portfolio.
// The prefix is short and unique across the portfolio; lookups rely on it
// but no constraint enforces it.
type Venture struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Prefix      string      `json:"prefix"`
	Geo         string      `json:"geo"`
	Tier        VentureTier `json:"tier"`
	Status      string      `json:"status"`
	Stage       string      `json:"stage"`
	Color       string      `json:"color"`
	LightColor  string      `json:"lightColor"`
	Description string      `json:"description,omitempty"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

func (v Venture) EntityID() string { return v.ID }

// Task belongs to exactly one venture. The venture reference must exist at
// creation time but may dangle after a venture delete; readers filter.
// BlockedBy forms a directed dependency graph with no cycle guarantee.
type Task struct {
	ID          string       `json:"id"`
	VentureID   string       `json:"venture_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	ParentID    string       `json:"parent_id,omitempty"`
	MilestoneID string       `json:"milestone_id,omitempty"`
	BlockedBy   string       `json:"blocked_by,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

func (t Task) EntityID() string { return t.ID }

type Milestone struct {
	ID         string `json:"id"`
	VentureID  string `json:"venture_id"`
	Name       string `json:"name"`
	TargetDate string `json:"target_date"`
	Progress   int    `json:"progress"` // 0..100
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func (m Milestone) EntityID() string { return m.ID }

type TeamRole struct {
	ID           string     `json:"id"`
	VentureID    string     `json:"venture_id"`
	RoleName     string     `json:"role_name"`
	Status       RoleStatus `json:"status"`
	AssigneeName string     `json:"assignee_name,omitempty"`
}

func (r TeamRole) EntityID() string { return r.ID }

type Registration struct {
	ID        string           `json:"id"`
	VentureID string           `json:"venture_id"`
	Type      RegistrationType `json:"type"`
	Completed bool             `json:"completed"`
	Notes     string           `json:"notes,omitempty"`
}

func (r Registration) EntityID() string { return r.ID }

// ActivityStats is a point-in-time snapshot of external repository
// activity for a venture. Counts only; overwritten wholesale per sync.
type ActivityStats struct {
	ID           string `json:"id"`
	VentureID    string `json:"venture_id"`
	Repos        int    `json:"repos"`
	Commits7d    int    `json:"commits_7d"`
	PRsOpen      int    `json:"prs_open"`
	IssuesOpen   int    `json:"issues_open"`
	LastActivity string `json:"last_activity"`
	SyncedAt     string `json:"synced_at"`
}

func (a ActivityStats) EntityID() string { return a.ID }

// Insight is a generated observation, tied to a venture or portfolio-wide
// (empty VentureID).
type Insight struct {
	ID          string          `json:"id"`
	VentureID   string          `json:"venture_id,omitempty"`
	Type        InsightType     `json:"type"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Severity    InsightSeverity `json:"severity"`
	IsRead      bool            `json:"is_read"`
	GeneratedAt string          `json:"generated_at"`
}

func (i Insight) EntityID() string { return i.ID }

// HealthSnapshot is an append-only time series point used for trend
// detection. Never mutated after insertion.
type HealthSnapshot struct {
	ID         string `json:"id"`
	VentureID  string `json:"venture_id"`
	Score      int    `json:"score"`
	WeekLabel  string `json:"week_label,omitempty"`
	RecordedAt string `json:"recorded_at"`
}

func (h HealthSnapshot) EntityID() string { return h.ID }

type RecurringTask struct {
	ID            string            `json:"id"`
	VentureID     string            `json:"venture_id"`
	Title         string            `json:"title"`
	Description   string            `json:"description,omitempty"`
	Priority      TaskPriority      `json:"priority"`
	Recurrence    RecurrencePattern `json:"recurrence"`
	NextDue       string            `json:"next_due"` // date, YYYY-MM-DD
	LastGenerated string            `json:"last_generated,omitempty"`
	Active        bool              `json:"active"`
	CreatedAt     string            `json:"created_at"`
}

func (r RecurringTask) EntityID() string { return r.ID }

type FinancialRecord struct {
	ID        string        `json:"id"`
	VentureID string        `json:"venture_id"`
	Type      FinancialType `json:"type"`
	Amount    float64       `json:"amount"`
	Currency  string        `json:"currency"`
	Label     string        `json:"label"`
	Date      string        `json:"date"`
	Recurring bool          `json:"recurring,omitempty"`
	Notes     string        `json:"notes,omitempty"`
}

func (f FinancialRecord) EntityID() string { return f.ID }

type Document struct {
	ID        string `json:"id"`
	VentureID string `json:"venture_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	URL       string `json:"url"`
	Notes     string `json:"notes,omitempty"`
	AddedAt   string `json:"added_at"`
}

func (d Document) EntityID() string { return d.ID }

type Risk struct {
	ID          string     `json:"id"`
	VentureID   string     `json:"venture_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Likelihood  int        `json:"likelihood"` // 1..5
	Impact      int        `json:"impact"`     // 1..5
	Status      RiskStatus `json:"status"`
	Mitigation  string     `json:"mitigation,omitempty"`
	CreatedAt   string     `json:"created_at"`
}

func (r Risk) EntityID() string { return r.ID }

type ResourceShare struct {
	ID            string        `json:"id"`
	FromVentureID string        `json:"from_venture_id"`
	ToVentureID   string        `json:"to_venture_id"`
	ResourceType  ResourceType  `json:"resource_type"`
	ResourceName  string        `json:"resource_name"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date,omitempty"`
	Status        SharingStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     string        `json:"created_at"`
}

func (r ResourceShare) EntityID() string { return r.ID }

// NewID returns a fresh unique record identifier.
func NewID() string { return uuid.NewString() }

// Now returns the current wall-clock time in the wire timestamp format.
func Now() string { return time.Now().UTC().Format(time.RFC3339) }

// Today returns the current date in the wire date format.
func Today() string { return time.Now().UTC().Format("2006-01-02") }

// AdvanceRecurrence returns the next due date after one recurrence period.
// Unknown patterns and unparseable dates are returned unchanged.
func AdvanceRecurrence(date string, pattern RecurrencePattern) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	switch pattern {
	case RecurDaily:
		d = d.AddDate(0, 0, 1)
	case RecurWeekly:
		d = d.AddDate(0, 0, 7)
	case RecurBiweekly:
		d = d.AddDate(0, 0, 14)
	case RecurMonthly:
		d = d.AddDate(0, 1, 0)
	default:
		return date
	}
	return d.Format("2006-01-02")
}
