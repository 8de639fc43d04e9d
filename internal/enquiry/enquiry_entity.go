package enquiry

import (
	"path/filepath"
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Catalog is the list of PPE items offered by the request form.
var Catalog = []string{
	"Hard Hat/Helmet",
	"Safety Vest",
	"Work Gloves",
	"Safety Boots",
	"Safety Goggles",
	"Ear Protection",
	"Respirator Mask",
	"Fall Protection Harness",
	"High-Visibility Clothing",
	"Knee Pads",
	"Cut-Resistant Gloves",
	"Safety Glasses",
}

// AcceptedDocumentTypes are the file extensions the form accepts.
var AcceptedDocumentTypes = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}

type LineItem struct {
	Item     string
	Quantity int
}

// Valid line items name something and ask for at least one.
func (li LineItem) Valid() bool {
	return strings.TrimSpace(li.Item) != "" && li.Quantity > 0
}

// Attachment describes a selected file. The contents are never kept.
type Attachment struct {
	Name        string
	Size        int64
	ContentType string
}

type EmployeeDetails struct {
	EmployeeID    string
	EmployeeName  string
	TeamLead      string
	ContactNumber string
}

type Enquiry struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	TeamLead     string
	Contact      string
	Items        []LineItem
	Documents    []Attachment
	Status       Status
	SubmittedAt  time.Time
}

func (e Enquiry) Actionable() bool {
	return e.Status == StatusPending
}

// Approved and rejected are terminal.
func isAllowedStatusTransition(current, target Status) bool {
	if current != StatusPending {
		return false
	}
	return target == StatusApproved || target == StatusRejected
}

func AcceptsDocument(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range AcceptedDocumentTypes {
		if ext == accepted {
			return true
		}
	}
	return false
}
