package page

type NavItemResponse struct {
	Slug  string `json:"slug"`
	Path  string `json:"path"`
	Label string `json:"label"`
}

type CardResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SectionResponse struct {
	Title string         `json:"title"`
	Body  string         `json:"body,omitempty"`
	Cards []CardResponse `json:"cards,omitempty"`
	List  []string       `json:"list,omitempty"`
}

type PageResponse struct {
	Slug     string            `json:"slug"`
	Title    string            `json:"title"`
	Heading  string            `json:"heading"`
	Tagline  string            `json:"tagline"`
	Sections []SectionResponse `json:"sections"`
	Nav      []NavItemResponse `json:"nav"`
}
