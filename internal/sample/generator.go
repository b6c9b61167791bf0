// Package sample produces a synthetic but structurally valid audit
// dataset for demo purposes: a believable two-week shape with randomized
// category and activity selection.
package sample

import (
	"math/rand"
	"sort"
	"time"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/registry"
)

// activities holds sample activity descriptions per category.
var activities = map[int][]string{
	registry.CategoryClientAdvisory: {
		"AI Council meeting with Acme Corp",
		"Strategy session - Digital transformation roadmap",
		"Executive presentation on AI adoption",
		"Advisory call with CFO on ROI metrics",
		"Workshop facilitation - AI use case identification",
	},
	registry.CategoryPilotManagement: {
		"Pilot status review - Customer service chatbot",
		"Documentation of pilot outcomes",
		"Troubleshooting integration issues",
		"Team sync on pilot progress",
		"Success metrics review meeting",
	},
	registry.CategoryResearch: {
		"Reading latest AI industry reports",
		"Evaluating new LLM capabilities",
		"Vendor demo - Document processing tool",
		"Competitive analysis research",
		"Testing new automation platform",
	},
	registry.CategoryGovernance: {
		"Updating AI usage policy",
		"Writing compliance documentation",
		"Framework revision for data governance",
		"Process documentation updates",
		"Risk assessment template creation",
	},
	registry.CategoryCommunication: {
		"Email responses and follow-ups",
		"Slack messages and team updates",
		"Writing weekly status report",
		"Preparing training materials",
		"Meeting notes and action items",
	},
	registry.CategoryAdministration: {
		"Scheduling upcoming meetings",
		"Invoice preparation",
		"File organization and cleanup",
		"Calendar management",
		"Expense report submission",
	},
}

// Generator produces sample audit entries.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// NewGenerator creates a generator seeded from the current time.
func NewGenerator() *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewGeneratorWithSeed creates a deterministic generator for tests.
func NewGeneratorWithSeed(seed int64, now func() time.Time) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Generate produces entries for the trailing 14 days, skipping
// weekends. Each weekday gets a believable shape: a morning
// advisory/pilot block, communication blocks mid-morning and late
// afternoon, an optional research/governance block, an afternoon mixed
// block, and optional end-of-day admin. Output is sorted by date
// descending, then start time ascending, and every entry satisfies the
// document invariants (positive duration, registered category, date in
// window).
func (g *Generator) Generate() []domain.TimeEntry {
	today := g.now()
	var entries []domain.TimeEntry

	for daysBack := 1; daysBack <= 14; daysBack++ {
		date := today.AddDate(0, 0, -daysBack)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}
		dateStr := date.Format(domain.DateFormat)

		// Morning block - typically meetings/advisory
		if g.rnd.Float64() > 0.3 {
			category := registry.CategoryClientAdvisory
			if g.rnd.Float64() > 0.5 {
				category = registry.CategoryPilotManagement
			}
			entries = append(entries, g.entry(dateStr, "09:00", "10:30", 1.5, category))
		}

		// Mid-morning - often communication
		entries = append(entries, g.entry(dateStr, "10:30", "11:00", 0.5, registry.CategoryCommunication))

		// Late morning - research or governance
		if g.rnd.Float64() > 0.4 {
			category := registry.CategoryResearch
			if g.rnd.Float64() > 0.5 {
				category = registry.CategoryGovernance
			}
			entries = append(entries, g.entry(dateStr, "11:00", "12:00", 1, category))
		}

		// Afternoon - mixed
		afternoonPool := []int{
			registry.CategoryClientAdvisory,
			registry.CategoryPilotManagement,
			registry.CategoryResearch,
			registry.CategoryCommunication,
		}
		afternoonCategory := afternoonPool[g.rnd.Intn(len(afternoonPool))]
		entries = append(entries, g.entry(dateStr, "14:00", "15:30", 1.5, afternoonCategory))

		// Late afternoon - communication and admin
		entries = append(entries, g.entry(dateStr, "15:30", "16:00", 0.5, registry.CategoryCommunication))

		// End of day admin
		if g.rnd.Float64() > 0.5 {
			entries = append(entries, g.entry(dateStr, "16:00", "16:30", 0.5, registry.CategoryAdministration))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].StartTime < entries[j].StartTime
	})
	return entries
}

func (g *Generator) entry(date, startTime, endTime string, duration float64, categoryID int) domain.TimeEntry {
	pool := activities[categoryID]
	return domain.NewTimeEntry(
		date,
		startTime,
		endTime,
		duration,
		pool[g.rnd.Intn(len(pool))],
		categoryID,
		"",
	)
}
