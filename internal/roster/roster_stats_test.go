package roster_test

import (
	"testing"

	"visionmines/internal/roster"

	"github.com/stretchr/testify/assert"
)

func TestTeamComplianceByLead(t *testing.T) {
	t.Run("lead counts toward own team", func(t *testing.T) {
		employees := []roster.Employee{
			{ID: "EMP1001", Name: "Lead A", TeamLead: roster.TeamLeadMarker, PPEStatus: roster.StatusCompliant, IsLead: true},
			{ID: "EMP1002", Name: "Member 00", TeamLead: "Lead A", PPEStatus: roster.StatusCompliant},
			{ID: "EMP1003", Name: "Member 01", TeamLead: "Lead A", PPEStatus: roster.StatusNonCompliant},
		}

		teams := roster.TeamComplianceByLead(employees)

		assert.Len(t, teams, 1)
		assert.Equal(t, 3, teams[0].TeamSize)
		assert.Equal(t, 2, teams[0].Compliant)
		assert.Equal(t, 67, teams[0].Compliance)
		assert.Equal(t, "Lead", teams[0].Label)
	})

	t.Run("lone non-compliant lead", func(t *testing.T) {
		teams := roster.TeamComplianceByLead([]roster.Employee{
			{ID: "EMP1001", Name: "Solo Lead", TeamLead: roster.TeamLeadMarker, PPEStatus: roster.StatusNonCompliant, IsLead: true},
		})

		assert.Equal(t, 0, teams[0].Compliance)
		assert.Equal(t, 1, teams[0].TeamSize)
	})

	t.Run("half rounds up", func(t *testing.T) {
		teams := roster.TeamComplianceByLead([]roster.Employee{
			{ID: "EMP1001", Name: "Lead A", TeamLead: roster.TeamLeadMarker, PPEStatus: roster.StatusCompliant, IsLead: true},
			{ID: "EMP1002", Name: "M 00", TeamLead: "Lead A", PPEStatus: roster.StatusNonCompliant},
		})

		assert.Equal(t, 50, teams[0].Compliance)
	})
}

func TestComputeStats_Properties(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		employees := roster.NewGenerator(seeded(seed)).Generate()
		stats := roster.ComputeStats(employees)

		assert.Equal(t, len(employees), stats.Summary.TotalEmployees)
		assert.Equal(t, len(employees), stats.Summary.Compliant+stats.Summary.NonCompliant)
		assert.Equal(t, len(roster.LeadNames(employees)), stats.Summary.TeamLeads)

		for _, team := range stats.Teams {
			assert.GreaterOrEqual(t, team.Compliance, 0)
			assert.LessOrEqual(t, team.Compliance, 100)
			assert.GreaterOrEqual(t, team.TeamSize, 1)
		}

		assert.Equal(t, stats.Summary.Compliant, stats.ComplianceSplit[0].Value)
		assert.Equal(t, stats.Summary.NonCompliant, stats.ComplianceSplit[1].Value)
	}
}

func TestSummarize_IgnoresFilter(t *testing.T) {
	employees := smallRoster()
	filtered := roster.Filter(employees, "grace", roster.AllLeads)

	view := roster.NewView(employees, fixedTime)
	view.SetFilter("grace", roster.AllLeads)
	snap := view.Snapshot()

	assert.Equal(t, ids(filtered), ids(snap.Rows))
	assert.Equal(t, 5, snap.Stats.Summary.TotalEmployees)
	assert.Equal(t, 3, snap.Stats.Summary.Compliant)
	assert.Equal(t, 2, snap.Stats.Summary.NonCompliant)
}

func TestChartLabel(t *testing.T) {
	assert.Equal(t, "John", roster.ChartLabel("John Mitchell"))
	assert.Equal(t, "Cher", roster.ChartLabel("Cher"))
	assert.Equal(t, "", roster.ChartLabel(""))
	// Same first name, same label.
	assert.Equal(t, roster.ChartLabel("Anna Davis"), roster.ChartLabel("Anna Smith"))
}
