package roster

import (
	"math"
	"strings"
)

type Summary struct {
	TotalEmployees int
	Compliant      int
	NonCompliant   int
	TeamLeads      int
}

type ChartSlice struct {
	Name  string
	Value int
	Color string
}

type TeamCompliance struct {
	Lead       string
	Label      string
	TeamSize   int
	Compliant  int
	Compliance int
}

// Stats are the whole-roster aggregates. They ignore the filter.
type Stats struct {
	Summary         Summary
	ComplianceSplit []ChartSlice
	Teams           []TeamCompliance
}

const (
	compliantColor    = "#10B981"
	nonCompliantColor = "#EF4444"
)

func Summarize(employees []Employee) Summary {
	s := Summary{
		TotalEmployees: len(employees),
		TeamLeads:      len(LeadNames(employees)),
	}
	for _, e := range employees {
		switch e.PPEStatus {
		case StatusCompliant:
			s.Compliant++
		case StatusNonCompliant:
			s.NonCompliant++
		}
	}
	return s
}

func ComplianceSplit(s Summary) []ChartSlice {
	return []ChartSlice{
		{Name: string(StatusCompliant), Value: s.Compliant, Color: compliantColor},
		{Name: string(StatusNonCompliant), Value: s.NonCompliant, Color: nonCompliantColor},
	}
}

// TeamComplianceByLead computes round(100*compliant/teamSize) per lead,
// with the lead counted as a member of their own team.
func TeamComplianceByLead(employees []Employee) []TeamCompliance {
	leads := LeadNames(employees)
	teams := make([]TeamCompliance, 0, len(leads))

	for _, lead := range leads {
		tc := TeamCompliance{Lead: lead, Label: ChartLabel(lead)}
		for _, e := range employees {
			if e.TeamLead != lead && e.Name != lead {
				continue
			}
			tc.TeamSize++
			if e.Compliant() {
				tc.Compliant++
			}
		}
		// TeamSize >= 1: the lead itself is always counted.
		tc.Compliance = int(math.Round(100 * float64(tc.Compliant) / float64(tc.TeamSize)))
		teams = append(teams, tc)
	}
	return teams
}

// ChartLabel shortens a lead name to its first token. Leads sharing a
// first name get the same label.
func ChartLabel(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}

func ComputeStats(employees []Employee) Stats {
	summary := Summarize(employees)
	return Stats{
		Summary:         summary,
		ComplianceSplit: ComplianceSplit(summary),
		Teams:           TeamComplianceByLead(employees),
	}
}
