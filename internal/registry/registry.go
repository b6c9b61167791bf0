// Package registry holds the fixed set of six work categories every time
// entry is tagged with, plus the benchmark distributions used for
// comparison. The set is fixed at build time; there are no mutation
// operations.
package registry

// Category IDs, in registry order.
const (
	CategoryClientAdvisory   = 1
	CategoryPilotManagement  = 2
	CategoryResearch         = 3
	CategoryGovernance       = 4
	CategoryCommunication    = 5
	CategoryAdministration   = 6
)

// Category represents one of the six fixed work classifications.
type Category struct {
	ID            int
	Name          string
	ShortCode     string
	Color         string
	BgColor       string
	Description   string
	Examples      []string
	IsHighValue   bool
	IsAutomatable bool
}

var categories = []Category{
	{
		ID:          CategoryClientAdvisory,
		Name:        "Client Advisory",
		ShortCode:   "ADV",
		Color:       "#0038ff",
		BgColor:     "#e6ebff",
		Description: "High-value strategic work. This is what clients pay for.",
		Examples: []string{
			"AI Council meetings",
			"Strategy sessions",
			"Executive recommendations",
			"Client workshops",
			"Stakeholder presentations",
			"Advisory calls",
		},
		IsHighValue:   true,
		IsAutomatable: false,
	},
	{
		ID:          CategoryPilotManagement,
		Name:        "Pilot Management",
		ShortCode:   "PLT",
		Color:       "#7c3aed",
		BgColor:     "#ede9fe",
		Description: "Tracking progress, documenting outcomes, troubleshooting. Necessary work that keeps initiatives on track.",
		Examples: []string{
			"Pilot status reviews",
			"Progress documentation",
			"Troubleshooting issues",
			"Success metrics tracking",
			"Team coordination",
			"Implementation support",
		},
		IsHighValue:   true,
		IsAutomatable: false,
	},
	{
		ID:          CategoryResearch,
		Name:        "Research & Evaluation",
		ShortCode:   "RES",
		Color:       "#0891b2",
		BgColor:     "#cffafe",
		Description: "Monitoring the AI landscape. Assessing new tools. Evaluating vendors. Staying current so your advice stays relevant.",
		Examples: []string{
			"Reading AI news and updates",
			"Tool evaluations",
			"Vendor assessments",
			"Industry research",
			"Competitive analysis",
			"Technology exploration",
		},
		IsHighValue:   false,
		IsAutomatable: false,
	},
	{
		ID:          CategoryGovernance,
		Name:        "Governance & Documentation",
		ShortCode:   "GOV",
		Color:       "#059669",
		BgColor:     "#d1fae5",
		Description: "Policies, frameworks, compliance materials. The paperwork that protects organizations and enables scale.",
		Examples: []string{
			"Policy writing",
			"Framework development",
			"Compliance documentation",
			"Process documentation",
			"Guidelines creation",
			"Audit preparation",
		},
		IsHighValue:   false,
		IsAutomatable: false,
	},
	{
		ID:          CategoryCommunication,
		Name:        "Communication",
		ShortCode:   "COM",
		Color:       "#d97706",
		BgColor:     "#fef3c7",
		Description: "Executive updates, stakeholder reports, training materials, emails, Slack. The connective tissue between everything else.",
		Examples: []string{
			"Email responses",
			"Status updates",
			"Slack messages",
			"Report writing",
			"Training materials",
			"Meeting follow-ups",
		},
		IsHighValue:   false,
		IsAutomatable: true,
	},
	{
		ID:          CategoryAdministration,
		Name:        "Administration",
		ShortCode:   "ADM",
		Color:       "#dc2626",
		BgColor:     "#fee2e2",
		Description: "Scheduling, invoicing, file management, general overhead. Work that has to happen but doesn't drive client outcomes.",
		Examples: []string{
			"Scheduling meetings",
			"Calendar management",
			"Invoicing",
			"File organization",
			"Expense reports",
			"General admin tasks",
		},
		IsHighValue:   false,
		IsAutomatable: true,
	},
}

// trapBenchmark is the distribution typical of a CAIO stuck in low-value
// work. Percentages sum to 100.
var trapBenchmark = map[int]int{
	CategoryClientAdvisory:  8,
	CategoryPilotManagement: 7,
	CategoryResearch:        20,
	CategoryGovernance:      15,
	CategoryCommunication:   30,
	CategoryAdministration:  20,
}

// idealTarget is the distribution to aim for. Percentages sum to 100.
var idealTarget = map[int]int{
	CategoryClientAdvisory:  30,
	CategoryPilotManagement: 25,
	CategoryResearch:        15,
	CategoryGovernance:      10,
	CategoryCommunication:   15,
	CategoryAdministration:  5,
}

// All returns the fixed ordered list of categories.
func All() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IDs returns the category ids in registry order.
func IDs() []int {
	ids := make([]int, len(categories))
	for i, cat := range categories {
		ids[i] = cat.ID
	}
	return ids
}

// ByID looks up a category by id. The second return value is false when
// no category with that id exists; callers must handle absence.
func ByID(id int) (Category, bool) {
	for _, cat := range categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Exists reports whether a category with the given id is registered.
func Exists(id int) bool {
	_, ok := ByID(id)
	return ok
}

// HighValue returns the categories flagged as client-billable strategic work.
func HighValue() []Category {
	return filter(func(c Category) bool { return c.IsHighValue })
}

// Automatable returns the categories flagged as automation candidates.
func Automatable() []Category {
	return filter(func(c Category) bool { return c.IsAutomatable })
}

// TrapBenchmark returns the benchmark percentage for the category, or 0
// for an unknown id.
func TrapBenchmark(id int) int {
	return trapBenchmark[id]
}

// IdealTarget returns the ideal target percentage for the category, or 0
// for an unknown id.
func IdealTarget(id int) int {
	return idealTarget[id]
}

func filter(keep func(Category) bool) []Category {
	var out []Category
	for _, cat := range categories {
		if keep(cat) {
			out = append(out, cat)
		}
	}
	return out
}
