package enquiry

import (
	"strings"

	enquiryerrors "visionmines/internal/enquiry/errors"
	"visionmines/internal/shared/apperror"
)

// Form is the draft being edited in the request form.
type Form struct {
	Employee  EmployeeDetails
	Items     []LineItem
	Documents []Attachment
}

// NewLineItem is what "Add Item" appends: no item chosen, quantity one.
func NewLineItem() LineItem {
	return LineItem{Quantity: 1}
}

func (f *Form) AddItem(li LineItem) int {
	f.Items = append(f.Items, li)
	return len(f.Items) - 1
}

func (f *Form) UpdateItem(index int, li LineItem) error {
	if index < 0 || index >= len(f.Items) {
		return enquiryerrors.ErrLineItemNotFound
	}
	f.Items[index] = li
	return nil
}

// PatchItem changes only the fields that are set.
func (f *Form) PatchItem(index int, item *string, quantity *int) error {
	if index < 0 || index >= len(f.Items) {
		return enquiryerrors.ErrLineItemNotFound
	}
	li := f.Items[index]
	if item != nil {
		li.Item = *item
	}
	if quantity != nil {
		li.Quantity = *quantity
	}
	return f.UpdateItem(index, li)
}

func (f *Form) RemoveItem(index int) error {
	if index < 0 || index >= len(f.Items) {
		return enquiryerrors.ErrLineItemNotFound
	}
	f.Items = append(f.Items[:index], f.Items[index+1:]...)
	return nil
}

// AddDocuments appends all files or none.
func (f *Form) AddDocuments(docs []Attachment) error {
	if len(docs) == 0 {
		return enquiryerrors.ErrNoDocuments
	}
	for _, d := range docs {
		if !AcceptsDocument(d.Name) {
			return enquiryerrors.ErrUnsupportedDocument
		}
	}
	f.Documents = append(f.Documents, docs...)
	return nil
}

func (f *Form) RemoveDocument(index int) error {
	if index < 0 || index >= len(f.Documents) {
		return enquiryerrors.ErrDocumentNotFound
	}
	f.Documents = append(f.Documents[:index], f.Documents[index+1:]...)
	return nil
}

// CanSubmit mirrors the submit button: enabled once any line item exists.
func (f *Form) CanSubmit() bool {
	return len(f.Items) > 0
}

func (f *Form) ValidItems() []LineItem {
	var out []LineItem
	for _, li := range f.Items {
		if li.Valid() {
			out = append(out, LineItem{Item: strings.TrimSpace(li.Item), Quantity: li.Quantity})
		}
	}
	return out
}

// Validate runs the checks a submit must pass.
func (f *Form) Validate() error {
	if !f.CanSubmit() {
		return enquiryerrors.ErrNoLineItems
	}
	required := []struct {
		label string
		value string
	}{
		{"Employee ID", f.Employee.EmployeeID},
		{"Employee Name", f.Employee.EmployeeName},
		{"Team Lead", f.Employee.TeamLead},
		{"Contact Number", f.Employee.ContactNumber},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return apperror.RequiredField(r.label)
		}
	}
	if len(f.ValidItems()) == 0 {
		return enquiryerrors.ErrNoValidLineItems
	}
	return nil
}

func (f *Form) Clear() {
	*f = Form{}
}
