package contact

import "time"

type SubmitRequest struct {
	Name    string `json:"name" binding:"max=100"`
	Email   string `json:"email" binding:"max=254"`
	Message string `json:"message" binding:"max=5000"`
}

type InfoCardResponse struct {
	Kind  string   `json:"kind"`
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

type ViewResponse struct {
	ViewID   string     `json:"view_id"`
	State    string     `json:"state"`
	ResetsAt *time.Time `json:"resets_at,omitempty"`
	Sent     int        `json:"sent"`
	Notice   string     `json:"notice,omitempty"`
}
