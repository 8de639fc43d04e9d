package roster

import (
	"sync"
	"time"
)

// View is the state of one activated dashboard: an immutable roster plus
// the mutable filter. Rows are recomputed from the roster on every read;
// the whole-roster stats are computed once per roster.
type View struct {
	mu        sync.RWMutex
	employees []Employee
	search    string
	lead      string
	stats     Stats
	createdAt time.Time
}

type Snapshot struct {
	Search      string
	Lead        string
	Rows        []Employee
	Total       int
	Stats       Stats
	LeadOptions []string
	CreatedAt   time.Time
}

func NewView(employees []Employee, createdAt time.Time) *View {
	return &View{
		employees: employees,
		lead:      AllLeads,
		stats:     ComputeStats(employees),
		createdAt: createdAt,
	}
}

// HasLead reports whether lead is a valid filter choice for this roster.
func (v *View) HasLead(lead string) bool {
	if lead == AllLeads {
		return true
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, e := range v.employees {
		if e.IsLead && e.Name == lead {
			return true
		}
	}
	return false
}

func (v *View) SetFilter(search, lead string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = search
	v.lead = lead
}

func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Snapshot{
		Search:      v.search,
		Lead:        v.lead,
		Rows:        Filter(v.employees, v.search, v.lead),
		Total:       len(v.employees),
		Stats:       v.stats,
		LeadOptions: LeadOptions(v.employees),
		CreatedAt:   v.createdAt,
	}
}

// Employees returns a copy of the full roster.
func (v *View) Employees() []Employee {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Employee, len(v.employees))
	copy(out, v.employees)
	return out
}

// Close drops the roster. The view must not be used afterwards.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.employees = nil
}
