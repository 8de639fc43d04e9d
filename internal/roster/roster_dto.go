package roster

type UpdateFilterRequest struct {
	Search string `json:"search" binding:"max=100"`
	Lead   string `json:"lead" binding:"max=100"`
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	TeamLead  string `json:"team_lead"`
	PPEStatus string `json:"ppe_status"`
	IsLead    bool   `json:"is_lead"`
}

type SummaryResponse struct {
	TotalEmployees int `json:"total_employees"`
	Compliant      int `json:"compliant"`
	NonCompliant   int `json:"non_compliant"`
	TeamLeads      int `json:"team_leads"`
}

type ChartSliceResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type TeamComplianceResponse struct {
	Lead       string `json:"lead"`
	Name       string `json:"name"`
	TeamSize   int    `json:"team_size"`
	Compliance int    `json:"compliance"`
}

type FilterResponse struct {
	Search string `json:"search"`
	Lead   string `json:"lead"`
}

type DashboardResponse struct {
	ViewID         string                   `json:"view_id,omitempty"`
	Filter         FilterResponse           `json:"filter"`
	LeadOptions    []string                 `json:"lead_options"`
	Summary        SummaryResponse          `json:"summary"`
	PieData        []ChartSliceResponse     `json:"pie_data"`
	TeamCompliance []TeamComplianceResponse `json:"team_compliance"`
	Employees      []EmployeeResponse       `json:"employees"`
	EmptyMessage   string                   `json:"empty_message,omitempty"`
}
