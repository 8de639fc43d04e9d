package contact

import (
	"strings"
	"time"

	"visionmines/internal/shared/apperror"
)

type InfoCard struct {
	Kind  string
	Title string
	Lines []string
}

// Info is what the contact page lists next to the form.
var Info = []InfoCard{
	{Kind: "email", Title: "Email", Lines: []string{"contact@visionmines.com"}},
	{Kind: "phone", Title: "Phone", Lines: []string{"+1 (555) 123-MINE"}},
	{Kind: "office", Title: "Office", Lines: []string{"1234 Mining District", "Industrial Zone, City State 12345"}},
	{Kind: "hours", Title: "Business Hours", Lines: []string{"Monday - Friday: 8:00 AM - 6:00 PM"}},
}

type Message struct {
	Name   string
	Email  string
	Body   string
	SentAt time.Time
}

func (m Message) Validate() error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return apperror.RequiredField("Name")
	case strings.TrimSpace(m.Email) == "":
		return apperror.RequiredField("Email")
	case strings.TrimSpace(m.Body) == "":
		return apperror.RequiredField("Message")
	}
	return nil
}
