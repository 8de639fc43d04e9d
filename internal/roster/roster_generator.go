package roster

import (
	"fmt"

	"visionmines/internal/shared/counter"
)

const (
	// FirstEmployeeNumber is the numeric part of the first generated id.
	FirstEmployeeNumber = 1001
	// MaxRosterSize caps a generated roster; extra records are dropped.
	MaxRosterSize = 60

	minTeamSize             = 5
	leadNonComplianceRate   = 0.10
	memberNonComplianceRate = 0.15
)

// DefaultTeamLeads is the fixed, ordered list of leads.
var DefaultTeamLeads = []string{
	"John Mitchell", "Sarah Connor", "Mike Johnson", "Lisa Anderson",
	"David Brown", "Emma Wilson", "Tom Harris", "Anna Davis",
	"Chris Taylor", "Rachel Green",
}

// DefaultMemberNames is the pool member names are drawn from.
var DefaultMemberNames = []string{
	"Alex Thompson", "Brian Clark", "Catherine Lee", "Daniel Martinez", "Emily Rodriguez",
	"Frank Wilson", "Grace Kim", "Henry Adams", "Isabella Garcia", "Jack Nelson",
	"Kate Phillips", "Liam Parker", "Maya Singh", "Nathan Cooper", "Olivia Turner",
	"Paul Evans", "Quinn Roberts", "Ruby White", "Sam Miller", "Tara Johnson",
}

// RandSource is the subset of *rand.Rand (math/rand/v2) the generator uses.
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

type Generator struct {
	rng     RandSource
	leads   []string
	names   []string
	maxSize int
}

type GeneratorOption func(*Generator)

// WithTeamLeads overrides the lead list.
func WithTeamLeads(leads []string) GeneratorOption {
	return func(g *Generator) { g.leads = leads }
}

// WithMemberNames overrides the member name pool. It must not be empty.
func WithMemberNames(names []string) GeneratorOption {
	return func(g *Generator) { g.names = names }
}

func WithMaxSize(n int) GeneratorOption {
	return func(g *Generator) { g.maxSize = n }
}

func NewGenerator(rng RandSource, opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng:     rng,
		leads:   DefaultTeamLeads,
		names:   DefaultMemberNames,
		maxSize: MaxRosterSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a fresh roster: every lead followed by 5 or 6 members,
// truncated to the size cap.
func (g *Generator) Generate() []Employee {
	ids := counter.NewSequence(FirstEmployeeNumber)
	employees := make([]Employee, 0, len(g.leads)*(minTeamSize+2))

	for leadIndex, lead := range g.leads {
		employees = append(employees, Employee{
			ID:        fmt.Sprintf("EMP%d", ids.Next()),
			Name:      lead,
			Contact:   g.contact(),
			TeamLead:  TeamLeadMarker,
			PPEStatus: g.status(leadNonComplianceRate),
			IsLead:    true,
		})

		teamSize := minTeamSize + g.rng.IntN(2)
		for i := 0; i < teamSize; i++ {
			name := g.names[g.rng.IntN(len(g.names))]
			employees = append(employees, Employee{
				ID:        fmt.Sprintf("EMP%d", ids.Next()),
				Name:      fmt.Sprintf("%s %d%d", name, leadIndex, i),
				Contact:   g.contact(),
				TeamLead:  lead,
				PPEStatus: g.status(memberNonComplianceRate),
			})
		}
	}

	if len(employees) > g.maxSize {
		employees = employees[:g.maxSize]
	}
	return employees
}

func (g *Generator) contact() string {
	return fmt.Sprintf("+1-555-%d", 1000+g.rng.IntN(9000))
}

func (g *Generator) status(nonComplianceRate float64) PPEStatus {
	if g.rng.Float64() > nonComplianceRate {
		return StatusCompliant
	}
	return StatusNonCompliant
}
