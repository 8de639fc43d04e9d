package roster

import "strings"

// Filter keeps the records whose name or id contains searchTerm
// (case-insensitive) and that belong to selectedLead's team. A lead
// belongs to its own team. Order is preserved.
func Filter(employees []Employee, searchTerm, selectedLead string) []Employee {
	term := strings.ToLower(searchTerm)
	out := make([]Employee, 0, len(employees))

	for _, e := range employees {
		matchesSearch := strings.Contains(strings.ToLower(e.Name), term) ||
			strings.Contains(strings.ToLower(e.ID), term)
		matchesLead := selectedLead == AllLeads ||
			e.TeamLead == selectedLead ||
			e.Name == selectedLead
		if matchesSearch && matchesLead {
			out = append(out, e)
		}
	}
	return out
}

// LeadNames returns the distinct lead names in roster order.
func LeadNames(employees []Employee) []string {
	seen := make(map[string]bool)
	var leads []string
	for _, e := range employees {
		if e.IsLead && !seen[e.Name] {
			seen[e.Name] = true
			leads = append(leads, e.Name)
		}
	}
	return leads
}

// LeadOptions is the filter choice list: All followed by every lead.
func LeadOptions(employees []Employee) []string {
	return append([]string{AllLeads}, LeadNames(employees)...)
}
