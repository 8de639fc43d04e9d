package enquiry

import (
	"context"
	"time"

	enquiryerrors "visionmines/internal/enquiry/errors"
	"visionmines/internal/shared/contextutil"
	"visionmines/internal/shared/formstate"
	"visionmines/internal/viewstore"

	"go.uber.org/zap"
)

//go:generate mockgen -source=enquiry_service.go -destination=mock/enquiry_service_mock.go -package=mock
type Service interface {
	Catalog(ctx context.Context) CatalogResponse
	OpenView(ctx context.Context) (ViewResponse, error)
	GetView(ctx context.Context, viewID string) (ViewResponse, error)
	UpdateEmployee(ctx context.Context, viewID string, req UpdateEmployeeRequest) (ViewResponse, error)
	AddItem(ctx context.Context, viewID string, req LineItemRequest) (ViewResponse, error)
	UpdateItem(ctx context.Context, viewID string, index int, req LineItemRequest) (ViewResponse, error)
	RemoveItem(ctx context.Context, viewID string, index int) (ViewResponse, error)
	AddDocuments(ctx context.Context, viewID string, docs []Attachment) (ViewResponse, error)
	RemoveDocument(ctx context.Context, viewID string, index int) (ViewResponse, error)
	Submit(ctx context.Context, viewID string) (EnquiryResponse, error)
	ListActionable(ctx context.Context, viewID string) ([]EnquiryResponse, error)
	Approve(ctx context.Context, viewID, enquiryID string) (EnquiryResponse, error)
	Reject(ctx context.Context, viewID, enquiryID string) (EnquiryResponse, error)
	CloseView(ctx context.Context, viewID string) error
}

type service struct {
	views      *viewstore.Store[*View]
	resetDelay time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(views *viewstore.Store[*View], resetDelay time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("enquiry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("enquiry.service")
	}
	if resetDelay <= 0 {
		resetDelay = formstate.DefaultResetDelay
	}
	return &service{
		views:      views,
		resetDelay: resetDelay,
		now:        time.Now,
		logger:     l,
	}
}

func (s *service) Catalog(ctx context.Context) CatalogResponse {
	return CatalogResponse{
		Items:                 append([]string(nil), Catalog...),
		AcceptedDocumentTypes: append([]string(nil), AcceptedDocumentTypes...),
	}
}

func (s *service) OpenView(ctx context.Context) (ViewResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	view := NewView(s.resetDelay, nil)
	viewID := s.views.Open(view)
	view.OnReset(func() {
		s.logger.Info("enquiry form reset", zap.String("view_id", viewID))
	})

	log.Info("enquiry view opened", zap.String("view_id", viewID))
	return mapToViewResponse(viewID, view.Snapshot()), nil
}

func (s *service) GetView(ctx context.Context, viewID string) (ViewResponse, error) {
	view, err := s.findView(ctx, viewID)
	if err != nil {
		return ViewResponse{}, err
	}
	return mapToViewResponse(viewID, view.Snapshot()), nil
}

func (s *service) UpdateEmployee(ctx context.Context, viewID string, req UpdateEmployeeRequest) (ViewResponse, error) {
	return s.editView(ctx, viewID, "update employee", func(v *View) (Snapshot, error) {
		return v.SetEmployee(EmployeeDetails{
			EmployeeID:    req.EmployeeID,
			EmployeeName:  req.EmployeeName,
			TeamLead:      req.TeamLead,
			ContactNumber: req.ContactNumber,
		})
	})
}

func (s *service) AddItem(ctx context.Context, viewID string, req LineItemRequest) (ViewResponse, error) {
	li := NewLineItem()
	if req.Item != nil {
		li.Item = *req.Item
	}
	if req.Quantity != nil {
		li.Quantity = *req.Quantity
	}
	return s.editView(ctx, viewID, "add line item", func(v *View) (Snapshot, error) {
		return v.AddItem(li)
	})
}

func (s *service) UpdateItem(ctx context.Context, viewID string, index int, req LineItemRequest) (ViewResponse, error) {
	return s.editView(ctx, viewID, "update line item", func(v *View) (Snapshot, error) {
		return v.PatchItem(index, req.Item, req.Quantity)
	})
}

func (s *service) RemoveItem(ctx context.Context, viewID string, index int) (ViewResponse, error) {
	return s.editView(ctx, viewID, "remove line item", func(v *View) (Snapshot, error) {
		return v.RemoveItem(index)
	})
}

func (s *service) AddDocuments(ctx context.Context, viewID string, docs []Attachment) (ViewResponse, error) {
	return s.editView(ctx, viewID, "add documents", func(v *View) (Snapshot, error) {
		return v.AddDocuments(docs)
	})
}

func (s *service) RemoveDocument(ctx context.Context, viewID string, index int) (ViewResponse, error) {
	return s.editView(ctx, viewID, "remove document", func(v *View) (Snapshot, error) {
		return v.RemoveDocument(index)
	})
}

func (s *service) Submit(ctx context.Context, viewID string) (EnquiryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit enquiry requested", zap.String("view_id", viewID))

	view, err := s.findView(ctx, viewID)
	if err != nil {
		return EnquiryResponse{}, err
	}

	e, err := view.Submit(s.now())
	if err != nil {
		log.Warn("submit enquiry rejected", zap.String("view_id", viewID), zap.Error(err))
		return EnquiryResponse{}, err
	}

	log.Info("submit enquiry success",
		zap.String("view_id", viewID),
		zap.String("enquiry_id", e.ID),
		zap.Int("items", len(e.Items)),
		zap.Int("documents", len(e.Documents)),
	)
	return mapToEnquiryResponse(e), nil
}

func (s *service) ListActionable(ctx context.Context, viewID string) ([]EnquiryResponse, error) {
	view, err := s.findView(ctx, viewID)
	if err != nil {
		return nil, err
	}
	return mapToEnquiryListResponse(view.Actionable()), nil
}

func (s *service) Approve(ctx context.Context, viewID, enquiryID string) (EnquiryResponse, error) {
	return s.transition(ctx, viewID, enquiryID, StatusApproved)
}

func (s *service) Reject(ctx context.Context, viewID, enquiryID string) (EnquiryResponse, error) {
	return s.transition(ctx, viewID, enquiryID, StatusRejected)
}

func (s *service) CloseView(ctx context.Context, viewID string) error {
	if !s.views.Close(viewID) {
		return enquiryerrors.ErrViewNotFound
	}
	contextutil.GetLogger(ctx, s.logger).Info("enquiry view closed", zap.String("view_id", viewID))
	return nil
}

func (s *service) transition(ctx context.Context, viewID, enquiryID string, target Status) (EnquiryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("enquiry status change requested",
		zap.String("view_id", viewID),
		zap.String("enquiry_id", enquiryID),
		zap.String("target", string(target)),
	)

	view, err := s.findView(ctx, viewID)
	if err != nil {
		return EnquiryResponse{}, err
	}

	e, err := view.Transition(enquiryID, target)
	if err != nil {
		log.Warn("enquiry status change refused",
			zap.String("view_id", viewID),
			zap.String("enquiry_id", enquiryID),
			zap.Error(err),
		)
		return EnquiryResponse{}, err
	}

	log.Info("enquiry status changed",
		zap.String("enquiry_id", e.ID),
		zap.String("status", string(e.Status)),
	)
	return mapToEnquiryResponse(e), nil
}

func (s *service) editView(ctx context.Context, viewID, action string, fn func(v *View) (Snapshot, error)) (ViewResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	view, err := s.findView(ctx, viewID)
	if err != nil {
		return ViewResponse{}, err
	}

	snap, err := fn(view)
	if err != nil {
		log.Warn(action+" rejected", zap.String("view_id", viewID), zap.Error(err))
		return ViewResponse{}, err
	}
	log.Debug(action+" applied", zap.String("view_id", viewID))
	return mapToViewResponse(viewID, snap), nil
}

func (s *service) findView(ctx context.Context, viewID string) (*View, error) {
	view, ok := s.views.Get(viewID)
	if !ok {
		contextutil.GetLogger(ctx, s.logger).Warn("enquiry view not found", zap.String("view_id", viewID))
		return nil, enquiryerrors.ErrViewNotFound
	}
	return view, nil
}

func mapToViewResponse(viewID string, snap Snapshot) ViewResponse {
	form := FormResponse{
		State:     string(snap.State),
		CanSubmit: snap.Form.CanSubmit() && snap.State == formstate.StateIdle,
		Employee: EmployeeDetailsResponse{
			EmployeeID:    snap.Form.Employee.EmployeeID,
			EmployeeName:  snap.Form.Employee.EmployeeName,
			TeamLead:      snap.Form.Employee.TeamLead,
			ContactNumber: snap.Form.Employee.ContactNumber,
		},
		Items:     mapToLineItemResponses(snap.Form.Items),
		Documents: mapToAttachmentResponses(snap.Form.Documents),
	}
	if !snap.ResetsAt.IsZero() {
		t := snap.ResetsAt
		form.ResetsAt = &t
	}
	return ViewResponse{
		ViewID:    viewID,
		Form:      form,
		Enquiries: mapToEnquiryListResponse(snap.Enquiries),
	}
}

func mapToEnquiryResponse(e Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		EmployeeName:  e.EmployeeName,
		TeamLead:      e.TeamLead,
		ContactNumber: e.Contact,
		Items:         mapToLineItemResponses(e.Items),
		Documents:     mapToAttachmentResponses(e.Documents),
		Status:        string(e.Status),
		SubmittedAt:   e.SubmittedAt,
	}
}

func mapToEnquiryListResponse(enquiries []Enquiry) []EnquiryResponse {
	res := make([]EnquiryResponse, len(enquiries))
	for i, e := range enquiries {
		res[i] = mapToEnquiryResponse(e)
	}
	return res
}

func mapToLineItemResponses(items []LineItem) []LineItemResponse {
	res := make([]LineItemResponse, len(items))
	for i, li := range items {
		res[i] = LineItemResponse{Item: li.Item, Quantity: li.Quantity}
	}
	return res
}

func mapToAttachmentResponses(docs []Attachment) []AttachmentResponse {
	res := make([]AttachmentResponse, len(docs))
	for i, d := range docs {
		res[i] = AttachmentResponse{Name: d.Name, Size: d.Size, ContentType: d.ContentType}
	}
	return res
}
