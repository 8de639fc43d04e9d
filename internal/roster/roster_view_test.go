package roster_test

import (
	"testing"
	"time"

	"visionmines/internal/roster"

	"github.com/stretchr/testify/assert"
)

var fixedTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestView_Snapshot(t *testing.T) {
	view := roster.NewView(smallRoster(), fixedTime)

	snap := view.Snapshot()
	assert.Equal(t, roster.AllLeads, snap.Lead)
	assert.Equal(t, "", snap.Search)
	assert.Len(t, snap.Rows, 5)
	assert.Equal(t, 5, snap.Total)
	assert.Equal(t, []string{roster.AllLeads, "Lead A", "Lead B"}, snap.LeadOptions)
	assert.Equal(t, fixedTime, snap.CreatedAt)

	view.SetFilter("kim", "Lead A")
	snap = view.Snapshot()
	assert.Equal(t, []string{"EMP1002"}, ids(snap.Rows))
	assert.Equal(t, 5, snap.Total, "roster itself is untouched by the filter")
}

func TestView_HasLead(t *testing.T) {
	view := roster.NewView(smallRoster(), fixedTime)

	assert.True(t, view.HasLead(roster.AllLeads))
	assert.True(t, view.HasLead("Lead B"))
	assert.False(t, view.HasLead("Grace Kim 00"), "members are not leads")
	assert.False(t, view.HasLead(roster.TeamLeadMarker))
}

func TestView_EmployeesIsCopy(t *testing.T) {
	view := roster.NewView(smallRoster(), fixedTime)

	employees := view.Employees()
	employees[0].Name = "changed"

	assert.Equal(t, "Lead A", view.Employees()[0].Name)
}

func TestView_Close(t *testing.T) {
	view := roster.NewView(smallRoster(), fixedTime)
	view.Close()

	assert.Empty(t, view.Snapshot().Rows)
}
