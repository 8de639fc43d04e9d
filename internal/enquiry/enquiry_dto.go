package enquiry

import "time"

type UpdateEmployeeRequest struct {
	EmployeeID    string `json:"employee_id" binding:"max=50"`
	EmployeeName  string `json:"employee_name" binding:"max=100"`
	TeamLead      string `json:"team_lead" binding:"max=100"`
	ContactNumber string `json:"contact_number" binding:"max=30"`
}

// LineItemRequest fields are pointers so an empty body on add can fall
// back to the default line item.
type LineItemRequest struct {
	Item     *string `json:"item" binding:"omitempty,max=100"`
	Quantity *int    `json:"quantity" binding:"omitempty,gte=0,lte=1000"`
}

type LineItemResponse struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type AttachmentResponse struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type EmployeeDetailsResponse struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	TeamLead      string `json:"team_lead"`
	ContactNumber string `json:"contact_number"`
}

type FormResponse struct {
	State     string                  `json:"state"`
	ResetsAt  *time.Time              `json:"resets_at,omitempty"`
	CanSubmit bool                    `json:"can_submit"`
	Employee  EmployeeDetailsResponse `json:"employee"`
	Items     []LineItemResponse      `json:"items"`
	Documents []AttachmentResponse    `json:"documents"`
}

type EnquiryResponse struct {
	ID            string               `json:"id"`
	EmployeeID    string               `json:"employee_id"`
	EmployeeName  string               `json:"employee_name"`
	TeamLead      string               `json:"team_lead"`
	ContactNumber string               `json:"contact_number"`
	Items         []LineItemResponse   `json:"items"`
	Documents     []AttachmentResponse `json:"documents"`
	Status        string               `json:"status"`
	SubmittedAt   time.Time            `json:"submitted_at"`
}

type ViewResponse struct {
	ViewID    string            `json:"view_id"`
	Form      FormResponse      `json:"form"`
	Enquiries []EnquiryResponse `json:"enquiries"`
}

type CatalogResponse struct {
	Items                 []string `json:"items"`
	AcceptedDocumentTypes []string `json:"accepted_document_types"`
}
