package roster

type PPEStatus string

const (
	StatusCompliant    PPEStatus = "Compliant"
	StatusNonCompliant PPEStatus = "Non-Compliant"
)

const (
	// TeamLeadMarker is stored in TeamLead for the leads themselves.
	TeamLeadMarker = "Team Lead"
	// AllLeads selects every team in Filter.
	AllLeads = "All"
)

type Employee struct {
	ID        string
	Name      string
	Contact   string
	TeamLead  string
	PPEStatus PPEStatus
	IsLead    bool
}

func (e Employee) Compliant() bool {
	return e.PPEStatus == StatusCompliant
}
