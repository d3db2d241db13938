package domain

// Seed is the fixed dataset the store initializes from when no persisted
// state exists. Venture ids are stable so child records can reference them;
// child ids are freshly generated per process, which is fine because the
// seed is only ever loaded once and then persisted.
type Seed struct {
	Ventures        []Venture
	Tasks           []Task
	Milestones      []Milestone
	TeamRoles       []TeamRole
	Registrations   []Registration
	ActivityStats   []ActivityStats
	RecurringTasks  []RecurringTask
	Financials      []FinancialRecord
	Documents       []Document
	Risks           []Risk
	ResourceShares  []ResourceShare
	HealthSnapshots []HealthSnapshot
}

const (
	seedTruCycle     = "v-trucycle-001"
	seedDepositGuard = "v-depositguard-002"
	seedPathMate     = "v-pathmate-003"
	seedFixars       = "v-fixars-004"
	seedConceptNexus = "v-conceptnexus-005"
	seedSkillsCanvas = "v-skillscanvas-006"
	seedCollabBoard  = "v-collabboard-007"
	seedVestDen      = "v-vestden-008"
	seedPayPaddy     = "v-paypaddy-009"
	seedFaShop       = "v-fashop-010"
)

// DefaultSeed builds the initial venture portfolio.
func DefaultSeed() Seed {
	s := Seed{
		Ventures: []Venture{
			{ID: seedTruCycle, Name: "TruCycle", Prefix: "TC", Geo: "UK", Tier: TierActive, Color: "#27AE60", LightColor: "#D5F5E3", Status: "Registered", Stage: "MVP Development", Description: "Circular economy marketplace for verified pre-owned goods", CreatedAt: "2025-11-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: seedDepositGuard, Name: "DepositGuard", Prefix: "DG", Geo: "UK", Tier: TierActive, Color: "#2E86C1", LightColor: "#D6EAF8", Status: "Pending Registration", Stage: "Pre-Registration", Description: "Tenant deposit protection and management platform", CreatedAt: "2025-12-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: seedPathMate, Name: "PathMate", Prefix: "PM", Geo: "UK", Tier: TierIncubating, Color: "#8E44AD", LightColor: "#E8DAEF", Status: "Concept", Stage: "Research & Validation", Description: "Social rideshare platform connecting verified commuters", CreatedAt: "2025-12-15T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: seedFixars, Name: "Fixars", Prefix: "FX", Geo: "NG", Tier: TierIncubating, Color: "#E67E22", LightColor: "#FDEBD0", Status: "Pending CAC", Stage: "Registration & Architecture", Description: "Nigerian superapp ecosystem for services and commerce", CreatedAt: "2025-10-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: seedConceptNexus, Name: "ConceptNexus", Prefix: "CN", Geo: "NG", Tier: TierParked, Color: "#E67E22", LightColor: "#FDEBD0", Status: "Planning", Stage: "Under Fixars", Description: "Innovation and brainstorming platform (Fixars sub-app)", CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: seedSkillsCanvas, Name: "SkillsCanvas", Prefix: "SC", Geo: "NG", Tier: TierParked, Color: "#E67E22", LightColor: "#FDEBD0", Status: "Planning", Stage: "Under Fixars", Description: "Talent and skills marketplace (Fixars sub-app)", CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: seedCollabBoard, Name: "CollabBoard", Prefix: "CB", Geo: "NG", Tier: TierParked, Color: "#E67E22", LightColor: "#FDEBD0", Status: "Planning", Stage: "Under Fixars", Description: "Collaborative project board (Fixars sub-app)", CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: seedVestDen, Name: "VestDen", Prefix: "VD", Geo: "NG", Tier: TierParked, Color: "#E67E22", LightColor: "#FDEBD0", Status: "Planning", Stage: "Under Fixars", Description: "Investment and portfolio tracking (Fixars sub-app)", CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: seedPayPaddy, Name: "PayPaddy", Prefix: "PP", Geo: "NG", Tier: TierParked, Color: "#E67E22", LightColor: "#FDEBD0", Status: "Planning", Stage: "Under Fixars", Description: "Payment and fintech layer (Fixars sub-app)", CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: seedFaShop, Name: "FaShop", Prefix: "FS", Geo: "NG", Tier: TierParked, Color: "#E67E22", LightColor: "#FDEBD0", Status: "Concept", Stage: "Under Fixars", Description: "E-commerce and shopping hub (Fixars sub-app)", CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
		},
		Milestones: []Milestone{
			{ID: NewID(), VentureID: seedTruCycle, Name: "MVP Launch", TargetDate: "2026-06-30", Progress: 33, CreatedAt: "2025-11-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedTruCycle, Name: "First 100 Users", TargetDate: "2026-08-31", Progress: 0, CreatedAt: "2025-11-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Name: "Ltd Registration", TargetDate: "2026-03-31", Progress: 20, CreatedAt: "2025-12-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Name: "Legal Model Validated", TargetDate: "2026-04-30", Progress: 40, CreatedAt: "2025-12-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Name: "Platform Beta", TargetDate: "2026-07-31", Progress: 0, CreatedAt: "2025-12-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedPathMate, Name: "Competitive Analysis", TargetDate: "2026-04-30", Progress: 10, CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedPathMate, Name: "Company Registration", TargetDate: "2026-05-31", Progress: 0, CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedFixars, Name: "CAC Registration", TargetDate: "2026-03-31", Progress: 15, CreatedAt: "2025-10-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedFixars, Name: "Auth/Identity Layer", TargetDate: "2026-06-30", Progress: 5, CreatedAt: "2025-10-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedFixars, Name: "First Sub-App Live", TargetDate: "2026-09-30", Progress: 0, CreatedAt: "2025-10-01T00:00:00Z", UpdatedAt: "2026-02-16T00:00:00Z"},
		},
		ActivityStats: []ActivityStats{
			{ID: NewID(), VentureID: seedTruCycle, Repos: 3, Commits7d: 0, PRsOpen: 0, IssuesOpen: 2, LastActivity: "Awaiting CTO", SyncedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Repos: 2, Commits7d: 0, PRsOpen: 0, IssuesOpen: 1, LastActivity: "Awaiting Dev", SyncedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedPathMate, Repos: 0, Commits7d: 0, PRsOpen: 0, IssuesOpen: 0, LastActivity: "Not started", SyncedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedFixars, Repos: 2, Commits7d: 0, PRsOpen: 0, IssuesOpen: 3, LastActivity: "Architecture planning", SyncedAt: "2026-02-16T00:00:00Z"},
		},
		RecurringTasks: []RecurringTask{
			{ID: NewID(), VentureID: seedTruCycle, Title: "Review website analytics", Recurrence: RecurWeekly, Priority: PriorityP2, Active: true, NextDue: "2026-02-21", CreatedAt: "2026-01-15T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Title: "Check competition updates", Recurrence: RecurBiweekly, Priority: PriorityP3, Active: true, NextDue: "2026-02-28", CreatedAt: "2026-02-01T00:00:00Z"},
			{ID: NewID(), VentureID: seedFixars, Title: "Follow up on CAC status", Recurrence: RecurWeekly, Priority: PriorityP0, Active: true, NextDue: "2026-02-19", CreatedAt: "2026-02-05T00:00:00Z"},
		},
		Financials: []FinancialRecord{
			{ID: NewID(), VentureID: seedTruCycle, Type: FinExpense, Amount: 120, Currency: "GBP", Label: "Domain & hosting", Date: "2026-01-10"},
			{ID: NewID(), VentureID: seedTruCycle, Type: FinExpense, Amount: 49, Currency: "GBP", Label: "Vercel Pro plan", Date: "2026-02-01"},
			{ID: NewID(), VentureID: seedTruCycle, Type: FinExpense, Amount: 250, Currency: "GBP", Label: "Logo and branding", Date: "2025-12-15"},
			{ID: NewID(), VentureID: seedDepositGuard, Type: FinExpense, Amount: 15, Currency: "GBP", Label: "Domain registration", Date: "2026-01-15"},
			{ID: NewID(), VentureID: seedDepositGuard, Type: FinExpense, Amount: 200, Currency: "GBP", Label: "Legal consultation", Date: "2026-02-05"},
			{ID: NewID(), VentureID: seedFixars, Type: FinExpense, Amount: 15000, Currency: "NGN", Label: "CAC registration fee", Date: "2026-02-01"},
			{ID: NewID(), VentureID: seedFixars, Type: FinExpense, Amount: 5000, Currency: "NGN", Label: "Domain registration", Date: "2025-12-01"},
		},
		Documents: []Document{
			{ID: NewID(), VentureID: seedTruCycle, Name: "TruCycle PRD", URL: "https://docs.google.com/document/d/trucycle-prd", Category: "technical", AddedAt: "2026-01-10T00:00:00Z"},
			{ID: NewID(), VentureID: seedTruCycle, Name: "Pitch Deck v2", URL: "https://docs.google.com/presentation/d/trucycle-pitch", Category: "pitch", AddedAt: "2026-02-01T00:00:00Z"},
			{ID: NewID(), VentureID: seedTruCycle, Name: "Terms of Service", URL: "https://docs.google.com/document/d/trucycle-tos", Category: "legal", AddedAt: "2026-01-20T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Name: "Legal Framework", URL: "https://docs.google.com/document/d/dg-legal-framework", Category: "legal", AddedAt: "2026-01-15T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Name: "DepositFlow Wireframes", URL: "https://figma.com/file/depositflow-wireframes", Category: "technical", AddedAt: "2026-02-10T00:00:00Z"},
			{ID: NewID(), VentureID: seedFixars, Name: "Fixars PRD", URL: "https://docs.google.com/document/d/fixars-prd", Category: "technical", AddedAt: "2025-11-01T00:00:00Z"},
			{ID: NewID(), VentureID: seedPathMate, Name: "Market Research", URL: "https://docs.google.com/document/d/pathmate-research", Category: "marketing", AddedAt: "2026-01-05T00:00:00Z"},
		},
		Risks: []Risk{
			{ID: NewID(), VentureID: seedTruCycle, Title: "No CTO hired yet", Description: "Technical leadership gap could delay MVP", Likelihood: 4, Impact: 5, Status: RiskActive, Mitigation: "Actively networking and posting on LinkedIn", CreatedAt: "2026-01-15T00:00:00Z"},
			{ID: NewID(), VentureID: seedTruCycle, Title: "Bank account delay", Description: "Unable to accept payments without bank account", Likelihood: 3, Impact: 4, Status: RiskActive, Mitigation: "Exploring alternative payment providers", CreatedAt: "2026-02-01T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Title: "Regulatory compliance risk", Description: "TDS regulations may require FCA authorization", Likelihood: 3, Impact: 5, Status: RiskActive, Mitigation: "Consulting with solicitor, exploring custodial model", CreatedAt: "2026-01-20T00:00:00Z"},
			{ID: NewID(), VentureID: seedFixars, Title: "CAC registration delay", Description: "Nigerian CAC processes can take 2-6 weeks", Likelihood: 4, Impact: 3, Status: RiskActive, Mitigation: "Filed through registered agent", CreatedAt: "2026-02-05T00:00:00Z"},
			{ID: NewID(), VentureID: seedPathMate, Title: "Transport regulation changes", Description: "TfL may change ride-sharing regulations", Likelihood: 2, Impact: 4, Status: RiskAccepted, CreatedAt: "2026-01-01T00:00:00Z"},
		},
		ResourceShares: []ResourceShare{
			{ID: NewID(), FromVentureID: seedTruCycle, ToVentureID: seedDepositGuard, ResourceType: ResourceKnowledge, ResourceName: "Supabase setup template", Status: SharingActive, StartDate: "2026-02-01", CreatedAt: "2026-02-01T00:00:00Z"},
			{ID: NewID(), FromVentureID: seedFixars, ToVentureID: seedConceptNexus, ResourceType: ResourcePerson, ResourceName: "Ade — cross-project coordination", Status: SharingActive, StartDate: "2025-10-01", CreatedAt: "2025-10-01T00:00:00Z"},
		},
		HealthSnapshots: []HealthSnapshot{
			{ID: NewID(), VentureID: seedTruCycle, Score: 65, RecordedAt: "2026-01-01T00:00:00Z"},
			{ID: NewID(), VentureID: seedTruCycle, Score: 68, RecordedAt: "2026-01-15T00:00:00Z"},
			{ID: NewID(), VentureID: seedTruCycle, Score: 70, RecordedAt: "2026-02-01T00:00:00Z"},
			{ID: NewID(), VentureID: seedTruCycle, Score: 72, RecordedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Score: 30, RecordedAt: "2026-01-01T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Score: 38, RecordedAt: "2026-01-15T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Score: 42, RecordedAt: "2026-02-01T00:00:00Z"},
			{ID: NewID(), VentureID: seedDepositGuard, Score: 45, RecordedAt: "2026-02-16T00:00:00Z"},
			{ID: NewID(), VentureID: seedFixars, Score: 20, RecordedAt: "2026-01-01T00:00:00Z"},
			{ID: NewID(), VentureID: seedFixars, Score: 28, RecordedAt: "2026-01-15T00:00:00Z"},
			{ID: NewID(), VentureID: seedFixars, Score: 33, RecordedAt: "2026-02-01T00:00:00Z"},
			{ID: NewID(), VentureID: seedFixars, Score: 35, RecordedAt: "2026-02-16T00:00:00Z"},
		},
	}

	s.Tasks = seedTasks()
	s.TeamRoles = seedTeamRoles()
	s.Registrations = seedRegistrations()
	return s
}

func seedTasks() []Task {
	type t struct {
		venture  string
		title    string
		status   TaskStatus
		priority TaskPriority
	}
	rows := []t{
		{seedTruCycle, "Set up CI/CD pipeline", StatusDone, PriorityP1},
		{seedTruCycle, "Design database schema", StatusDone, PriorityP0},
		{seedTruCycle, "Implement user authentication", StatusDone, PriorityP0},
		{seedTruCycle, "Build product listing API", StatusDone, PriorityP0},
		{seedTruCycle, "Design landing page", StatusDone, PriorityP1},
		{seedTruCycle, "Implement product verification flow", StatusDone, PriorityP0},
		{seedTruCycle, "Build search and filter system", StatusDone, PriorityP1},
		{seedTruCycle, "Integrate payment gateway (Stripe)", StatusDone, PriorityP0},
		{seedTruCycle, "Build seller dashboard", StatusInProgress, PriorityP1},
		{seedTruCycle, "Implement review & rating system", StatusInProgress, PriorityP1},
		{seedTruCycle, "Order tracking & notifications", StatusInProgress, PriorityP1},
		{seedTruCycle, "Mobile responsive optimization", StatusInProgress, PriorityP2},
		{seedTruCycle, "Admin moderation panel", StatusInProgress, PriorityP1},
		{seedTruCycle, "Open bank account", StatusBlocked, PriorityP0},
		{seedTruCycle, "Set up analytics (Mixpanel)", StatusTodo, PriorityP2},
		{seedTruCycle, "Hire CTO", StatusTodo, PriorityP0},
		{seedTruCycle, "SEO optimization", StatusBacklog, PriorityP2},
		{seedTruCycle, "Launch marketing campaign", StatusBacklog, PriorityP1},
		{seedTruCycle, "Build referral system", StatusBacklog, PriorityP2},
		{seedTruCycle, "Write API documentation", StatusBacklog, PriorityP3},
		{seedTruCycle, "Performance load testing", StatusBacklog, PriorityP2},
		{seedTruCycle, "Set up customer support system", StatusBacklog, PriorityP2},
		{seedTruCycle, "Legal terms of service review", StatusBacklog, PriorityP1},
		{seedTruCycle, "User onboarding flow", StatusBacklog, PriorityP1},

		{seedDepositGuard, "Research tenancy deposit regulations", StatusDone, PriorityP0},
		{seedDepositGuard, "Draft legal framework document", StatusDone, PriorityP0},
		{seedDepositGuard, "Validate legal model with solicitor", StatusDone, PriorityP0},
		{seedDepositGuard, "Build DepositFlow prototype", StatusInProgress, PriorityP0},
		{seedDepositGuard, "Design UI/UX for tenant portal", StatusInProgress, PriorityP1},
		{seedDepositGuard, "Implement Supabase backend", StatusInProgress, PriorityP0},
		{seedDepositGuard, "Deed of Assignment feature", StatusInProgress, PriorityP1},
		{seedDepositGuard, "Register Ltd company", StatusBlocked, PriorityP0},
		{seedDepositGuard, "Open business bank account", StatusBlocked, PriorityP0},
		{seedDepositGuard, "Landlord portal MVP", StatusBacklog, PriorityP1},
		{seedDepositGuard, "Payment integration", StatusBacklog, PriorityP0},
		{seedDepositGuard, "Compliance audit preparation", StatusBacklog, PriorityP1},
		{seedDepositGuard, "Marketing website", StatusBacklog, PriorityP2},
		{seedDepositGuard, "Beta user recruitment", StatusBacklog, PriorityP1},
		{seedDepositGuard, "Dispute resolution workflow", StatusBacklog, PriorityP1},
		{seedDepositGuard, "Automated deposit protection certificates", StatusBacklog, PriorityP2},
		{seedDepositGuard, "Hire lead developer", StatusTodo, PriorityP0},

		{seedPathMate, "Market research: UK rideshare landscape", StatusDone, PriorityP0},
		{seedPathMate, "Competitive analysis document", StatusInProgress, PriorityP0},
		{seedPathMate, "Define MVP feature set", StatusInProgress, PriorityP0},
		{seedPathMate, "User persona research", StatusBacklog, PriorityP1},
		{seedPathMate, "Regulatory requirements (TfL, insurance)", StatusBacklog, PriorityP0},
		{seedPathMate, "Company registration", StatusBacklog, PriorityP1},
		{seedPathMate, "Technical architecture design", StatusBacklog, PriorityP1},
		{seedPathMate, "UI/UX wireframes", StatusBacklog, PriorityP1},
		{seedPathMate, "Pitch deck draft", StatusBacklog, PriorityP2},
		{seedPathMate, "Safety & verification model", StatusBacklog, PriorityP0},
		{seedPathMate, "Route matching algorithm research", StatusBacklog, PriorityP1},
		{seedPathMate, "Partnership outreach plan", StatusBacklog, PriorityP3},

		{seedFixars, "Define superapp architecture", StatusDone, PriorityP0},
		{seedFixars, "Create PRD document", StatusDone, PriorityP0},
		{seedFixars, "Build demo prototype", StatusDone, PriorityP1},
		{seedFixars, "Implement cross-app features", StatusDone, PriorityP0},
		{seedFixars, "CAC registration filing", StatusInProgress, PriorityP0},
		{seedFixars, "Design auth/identity layer", StatusInProgress, PriorityP0},
		{seedFixars, "Supabase integration setup", StatusInProgress, PriorityP1},
		{seedFixars, "Finalize CAC documents", StatusBlocked, PriorityP0},
	}
	fixarsBacklog := []string{
		"Design shared component library", "Implement real-time data sync", "Build notification service",
		"User profile microservice", "Payment gateway integration", "File upload service",
		"Search indexing service", "Analytics dashboard", "Admin panel",
		"API gateway setup", "Mobile app shell (React Native)", "Push notification service",
		"Geolocation service", "Chat/messaging service", "Content moderation system",
		"Rate limiting & security", "Logging infrastructure", "Automated testing setup",
		"Deploy staging environment", "Documentation site", "Open source contribution guide",
		"Launch first sub-app beta",
	}
	for i, title := range fixarsBacklog {
		p := PriorityP3
		switch {
		case i < 5:
			p = PriorityP1
		case i < 12:
			p = PriorityP2
		}
		rows = append(rows, t{seedFixars, title, StatusBacklog, p})
	}

	tasks := make([]Task, 0, len(rows))
	for _, r := range rows {
		tasks = append(tasks, Task{
			ID:        NewID(),
			VentureID: r.venture,
			Title:     r.title,
			Status:    r.status,
			Priority:  r.priority,
			CreatedAt: "2026-02-10T00:00:00Z",
			UpdatedAt: "2026-02-16T00:00:00Z",
		})
	}
	return tasks
}

func seedTeamRoles() []TeamRole {
	type r struct {
		venture  string
		role     string
		status   RoleStatus
		assignee string
	}
	rows := []r{
		{seedTruCycle, "Founder / CEO", RoleFilled, "Ade"},
		{seedTruCycle, "CTO", RoleHiring, ""},
		{seedTruCycle, "Ops Lead", RoleHiring, ""},
		{seedTruCycle, "UX Designer", RoleHiring, ""},
		{seedTruCycle, "Marketing Lead", RoleHiring, ""},
		{seedDepositGuard, "Founder / CEO", RoleFilled, "Ade"},
		{seedDepositGuard, "Lead Developer", RoleHiring, ""},
		{seedDepositGuard, "Legal Advisor", RoleHiring, ""},
		{seedDepositGuard, "UX Designer", RoleHiring, ""},
		{seedPathMate, "Mobile Developer", RoleLater, ""},
		{seedPathMate, "Backend Engineer", RoleLater, ""},
		{seedPathMate, "UX Designer", RoleLater, ""},
		{seedPathMate, "Growth Manager", RoleLater, ""},
		{seedPathMate, "Regulatory Advisor", RoleLater, ""},
		{seedFixars, "CTO / Architect", RoleHiring, ""},
		{seedFixars, "Full-Stack Developer", RoleHiring, ""},
		{seedFixars, "Product Designer", RoleHiring, ""},
		{seedFixars, "Community Lead", RoleHiring, ""},
		{seedFixars, "Biz Ops", RoleHiring, ""},
		{seedFixars, "Mobile Developer", RoleHiring, ""},
	}
	roles := make([]TeamRole, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, TeamRole{ID: NewID(), VentureID: row.venture, RoleName: row.role, Status: row.status, AssigneeName: row.assignee})
	}
	return roles
}

func seedRegistrations() []Registration {
	regs := []Registration{
		{ID: NewID(), VentureID: seedTruCycle, Type: RegDomain, Completed: true, Notes: "trucycle.co.uk"},
		{ID: NewID(), VentureID: seedTruCycle, Type: RegCompany, Completed: true, Notes: "TruCycle Ltd registered"},
		{ID: NewID(), VentureID: seedTruCycle, Type: RegBank, Completed: false, Notes: "Pending Tide application"},
		{ID: NewID(), VentureID: seedTruCycle, Type: RegLegal, Completed: true, Notes: "T&C drafted"},
		{ID: NewID(), VentureID: seedDepositGuard, Type: RegDomain, Completed: true, Notes: "depositguard.co.uk"},
		{ID: NewID(), VentureID: seedDepositGuard, Type: RegCompany, Completed: false},
		{ID: NewID(), VentureID: seedDepositGuard, Type: RegBank, Completed: false},
		{ID: NewID(), VentureID: seedDepositGuard, Type: RegLegal, Completed: false},
		{ID: NewID(), VentureID: seedPathMate, Type: RegDomain, Completed: true, Notes: "pathmate.co.uk"},
		{ID: NewID(), VentureID: seedPathMate, Type: RegCompany, Completed: false},
		{ID: NewID(), VentureID: seedPathMate, Type: RegBank, Completed: false},
		{ID: NewID(), VentureID: seedPathMate, Type: RegLegal, Completed: false},
		{ID: NewID(), VentureID: seedFixars, Type: RegDomain, Completed: true, Notes: "fixars.ng"},
		{ID: NewID(), VentureID: seedFixars, Type: RegCompany, Completed: false, Notes: "CAC filing in progress"},
		{ID: NewID(), VentureID: seedFixars, Type: RegBank, Completed: false},
		{ID: NewID(), VentureID: seedFixars, Type: RegLegal, Completed: false},
	}
	// Parked sub-apps carry a completed domain registration only.
	for _, v := range []string{seedConceptNexus, seedSkillsCanvas, seedCollabBoard, seedVestDen, seedPayPaddy, seedFaShop} {
		for _, typ := range RegistrationTypes {
			regs = append(regs, Registration{ID: NewID(), VentureID: v, Type: typ, Completed: typ == RegDomain})
		}
	}
	return regs
}
