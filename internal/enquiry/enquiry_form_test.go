package enquiry

import (
	"testing"

	enquiryerrors "visionmines/internal/enquiry/errors"
	"visionmines/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeEmployee() EmployeeDetails {
	return EmployeeDetails{
		EmployeeID:    "EMP1007",
		EmployeeName:  "Jane Doe",
		TeamLead:      "John Mitchell",
		ContactNumber: "+1-555-1234",
	}
}

func TestIsAllowedStatusTransition(t *testing.T) {
	tests := []struct {
		current, target Status
		want            bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusApproved, false},
		{StatusRejected, StatusApproved, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.current)+"->"+string(tt.target), func(t *testing.T) {
			assert.Equal(t, tt.want, isAllowedStatusTransition(tt.current, tt.target))
		})
	}
}

func TestAcceptsDocument(t *testing.T) {
	for _, name := range []string{"cert.pdf", "form.DOC", "a.docx", "photo.jpg", "photo.JPEG", "scan.png"} {
		assert.True(t, AcceptsDocument(name), name)
	}
	for _, name := range []string{"run.exe", "notes.txt", "pdf", ""} {
		assert.False(t, AcceptsDocument(name), name)
	}
}

func TestForm_Validate(t *testing.T) {
	t.Run("no line items", func(t *testing.T) {
		f := Form{Employee: completeEmployee()}
		assert.ErrorIs(t, f.Validate(), enquiryerrors.ErrNoLineItems)
		assert.False(t, f.CanSubmit())
	})

	t.Run("missing employee field", func(t *testing.T) {
		f := Form{Employee: completeEmployee()}
		f.Employee.ContactNumber = "  "
		f.AddItem(LineItem{Item: "Safety Vest", Quantity: 1})

		err := f.Validate()
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
		assert.Contains(t, appErr.Message, "Contact Number")
	})

	t.Run("only invalid items", func(t *testing.T) {
		f := Form{Employee: completeEmployee()}
		f.AddItem(NewLineItem())
		f.AddItem(LineItem{Item: "Knee Pads", Quantity: 0})
		assert.True(t, f.CanSubmit())
		assert.ErrorIs(t, f.Validate(), enquiryerrors.ErrNoValidLineItems)
	})

	t.Run("valid", func(t *testing.T) {
		f := Form{Employee: completeEmployee()}
		f.AddItem(LineItem{Item: "Hard Hat/Helmet", Quantity: 2})
		assert.NoError(t, f.Validate())
	})
}

func TestForm_ValidItemsDropsIncomplete(t *testing.T) {
	f := Form{}
	f.AddItem(LineItem{Item: " Work Gloves ", Quantity: 3})
	f.AddItem(NewLineItem())
	f.AddItem(LineItem{Item: "Ear Protection", Quantity: -1})
	f.AddItem(LineItem{Item: "Safety Glasses", Quantity: 1})

	assert.Equal(t, []LineItem{
		{Item: "Work Gloves", Quantity: 3},
		{Item: "Safety Glasses", Quantity: 1},
	}, f.ValidItems())
}

func TestForm_ItemEditing(t *testing.T) {
	f := Form{}
	assert.Equal(t, 0, f.AddItem(NewLineItem()))
	assert.Equal(t, 1, f.AddItem(NewLineItem()))
	assert.Equal(t, LineItem{Quantity: 1}, f.Items[0])

	item := "Respirator Mask"
	require.NoError(t, f.PatchItem(0, &item, nil))
	assert.Equal(t, LineItem{Item: "Respirator Mask", Quantity: 1}, f.Items[0])

	qty := 4
	require.NoError(t, f.PatchItem(0, nil, &qty))
	assert.Equal(t, 4, f.Items[0].Quantity)

	assert.ErrorIs(t, f.PatchItem(5, &item, nil), enquiryerrors.ErrLineItemNotFound)
	assert.ErrorIs(t, f.RemoveItem(-1), enquiryerrors.ErrLineItemNotFound)

	require.NoError(t, f.RemoveItem(1))
	assert.Len(t, f.Items, 1)
	assert.Equal(t, "Respirator Mask", f.Items[0].Item)
}

func TestForm_Documents(t *testing.T) {
	f := Form{}

	assert.ErrorIs(t, f.AddDocuments(nil), enquiryerrors.ErrNoDocuments)

	err := f.AddDocuments([]Attachment{{Name: "ok.pdf"}, {Name: "bad.exe"}})
	assert.ErrorIs(t, err, enquiryerrors.ErrUnsupportedDocument)
	assert.Empty(t, f.Documents, "rejected batch adds nothing")

	require.NoError(t, f.AddDocuments([]Attachment{{Name: "a.pdf", Size: 10}, {Name: "b.png", Size: 20}}))
	require.NoError(t, f.RemoveDocument(0))
	assert.Equal(t, []Attachment{{Name: "b.png", Size: 20}}, f.Documents)
	assert.ErrorIs(t, f.RemoveDocument(3), enquiryerrors.ErrDocumentNotFound)
}

func TestForm_Clear(t *testing.T) {
	f := Form{Employee: completeEmployee()}
	f.AddItem(NewLineItem())
	require.NoError(t, f.AddDocuments([]Attachment{{Name: "a.pdf"}}))

	f.Clear()

	assert.Equal(t, Form{}, f)
}
