package enquiry

import (
	"fmt"
	"sync"
	"time"

	enquiryerrors "visionmines/internal/enquiry/errors"
	"visionmines/internal/shared/counter"
	"visionmines/internal/shared/formstate"
)

// View owns one request form and the enquiries submitted through it.
type View struct {
	mu        sync.Mutex
	form      Form
	machine   *formstate.Machine
	enquiries []Enquiry
	ids       *counter.Sequence
	onReset   func()
}

// NewView returns an idle view whose form resets resetDelay after each
// submit. onReset, when set, runs after the form has been cleared.
func NewView(resetDelay time.Duration, onReset func()) *View {
	v := &View{
		ids:     counter.NewSequence(0),
		onReset: onReset,
	}
	v.machine = formstate.New(&v.mu, resetDelay)
	return v
}

// OnReset replaces the hook run after each form reset.
func (v *View) OnReset(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onReset = fn
}

// Snapshot is a copy of the view taken under its lock.
type Snapshot struct {
	Form      Form
	State     formstate.State
	ResetsAt  time.Time
	Enquiries []Enquiry
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *View) snapshotLocked() Snapshot {
	return Snapshot{
		Form: Form{
			Employee:  v.form.Employee,
			Items:     append([]LineItem(nil), v.form.Items...),
			Documents: append([]Attachment(nil), v.form.Documents...),
		},
		State:     v.machine.State(),
		ResetsAt:  v.machine.ResetsAt(),
		Enquiries: cloneEnquiries(v.enquiries),
	}
}

// edit applies fn to the form when it accepts input.
func (v *View) edit(fn func(f *Form) error) (Snapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.machine.Editable(); err != nil {
		return Snapshot{}, err
	}
	if err := fn(&v.form); err != nil {
		return Snapshot{}, err
	}
	return v.snapshotLocked(), nil
}

func (v *View) SetEmployee(details EmployeeDetails) (Snapshot, error) {
	return v.edit(func(f *Form) error {
		f.Employee = details
		return nil
	})
}

func (v *View) AddItem(li LineItem) (Snapshot, error) {
	return v.edit(func(f *Form) error {
		f.AddItem(li)
		return nil
	})
}

func (v *View) PatchItem(index int, item *string, quantity *int) (Snapshot, error) {
	return v.edit(func(f *Form) error { return f.PatchItem(index, item, quantity) })
}

func (v *View) RemoveItem(index int) (Snapshot, error) {
	return v.edit(func(f *Form) error { return f.RemoveItem(index) })
}

func (v *View) AddDocuments(docs []Attachment) (Snapshot, error) {
	return v.edit(func(f *Form) error { return f.AddDocuments(docs) })
}

func (v *View) RemoveDocument(index int) (Snapshot, error) {
	return v.edit(func(f *Form) error { return f.RemoveDocument(index) })
}

// Submit records a pending enquiry from the form and locks the form until
// the reset fires.
func (v *View) Submit(now time.Time) (Enquiry, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.machine.Editable(); err != nil {
		return Enquiry{}, err
	}
	if err := v.form.Validate(); err != nil {
		return Enquiry{}, err
	}

	e := Enquiry{
		ID:           fmt.Sprintf("ENQ-%d", v.ids.NextAtLeast(now.UnixMilli())),
		EmployeeID:   v.form.Employee.EmployeeID,
		EmployeeName: v.form.Employee.EmployeeName,
		TeamLead:     v.form.Employee.TeamLead,
		Contact:      v.form.Employee.ContactNumber,
		Items:        v.form.ValidItems(),
		Documents:    append([]Attachment(nil), v.form.Documents...),
		Status:       StatusPending,
		SubmittedAt:  now,
	}

	if err := v.machine.Submit(now, v.resetLocked); err != nil {
		return Enquiry{}, err
	}
	v.enquiries = append(v.enquiries, e)
	return cloneEnquiry(e), nil
}

func (v *View) resetLocked() {
	v.form.Clear()
	if v.onReset != nil {
		v.onReset()
	}
}

// Transition moves a pending enquiry to approved or rejected.
func (v *View) Transition(enquiryID string, target Status) (Enquiry, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.enquiries {
		if v.enquiries[i].ID != enquiryID {
			continue
		}
		if !isAllowedStatusTransition(v.enquiries[i].Status, target) {
			return Enquiry{}, enquiryerrors.ErrInvalidStatusTransition
		}
		v.enquiries[i].Status = target
		return cloneEnquiry(v.enquiries[i]), nil
	}
	return Enquiry{}, enquiryerrors.ErrEnquiryNotFound
}

// Actionable lists the enquiries an admin can still approve or reject.
func (v *View) Actionable() []Enquiry {
	v.mu.Lock()
	defer v.mu.Unlock()

	var out []Enquiry
	for _, e := range v.enquiries {
		if e.Actionable() {
			out = append(out, cloneEnquiry(e))
		}
	}
	return out
}

// Close cancels a pending reset.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.machine.Stop()
}

func cloneEnquiry(e Enquiry) Enquiry {
	e.Items = append([]LineItem(nil), e.Items...)
	e.Documents = append([]Attachment(nil), e.Documents...)
	return e
}

func cloneEnquiries(in []Enquiry) []Enquiry {
	out := make([]Enquiry, len(in))
	for i, e := range in {
		out[i] = cloneEnquiry(e)
	}
	return out
}
