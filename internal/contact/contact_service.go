package contact

import (
	"context"
	"time"

	contacterrors "visionmines/internal/contact/errors"
	"visionmines/internal/shared/contextutil"
	"visionmines/internal/shared/formstate"
	"visionmines/internal/viewstore"

	"go.uber.org/zap"
)

const sentNotice = "Message Sent! Thank you for contacting us. We'll get back to you within 24 hours."

//go:generate mockgen -source=contact_service.go -destination=mock/contact_service_mock.go -package=mock
type Service interface {
	Info(ctx context.Context) []InfoCardResponse
	OpenView(ctx context.Context) (ViewResponse, error)
	GetView(ctx context.Context, viewID string) (ViewResponse, error)
	Submit(ctx context.Context, viewID string, req SubmitRequest) (ViewResponse, error)
	CloseView(ctx context.Context, viewID string) error
}

type service struct {
	views      *viewstore.Store[*View]
	resetDelay time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(views *viewstore.Store[*View], resetDelay time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("contact.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contact.service")
	}
	if resetDelay <= 0 {
		resetDelay = formstate.DefaultResetDelay
	}
	return &service{views: views, resetDelay: resetDelay, now: time.Now, logger: l}
}

func (s *service) Info(ctx context.Context) []InfoCardResponse {
	res := make([]InfoCardResponse, len(Info))
	for i, card := range Info {
		res[i] = InfoCardResponse{
			Kind:  card.Kind,
			Title: card.Title,
			Lines: append([]string(nil), card.Lines...),
		}
	}
	return res
}

func (s *service) OpenView(ctx context.Context) (ViewResponse, error) {
	view := NewView(s.resetDelay)
	viewID := s.views.Open(view)
	view.OnReset(func() {
		s.logger.Debug("contact form reset", zap.String("view_id", viewID))
	})

	contextutil.GetLogger(ctx, s.logger).Info("contact view opened", zap.String("view_id", viewID))
	return mapToViewResponse(viewID, view.Snapshot()), nil
}

func (s *service) GetView(ctx context.Context, viewID string) (ViewResponse, error) {
	view, err := s.findView(ctx, viewID)
	if err != nil {
		return ViewResponse{}, err
	}
	return mapToViewResponse(viewID, view.Snapshot()), nil
}

func (s *service) Submit(ctx context.Context, viewID string, req SubmitRequest) (ViewResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit contact message requested", zap.String("view_id", viewID))

	view, err := s.findView(ctx, viewID)
	if err != nil {
		return ViewResponse{}, err
	}

	snap, err := view.Submit(Message{Name: req.Name, Email: req.Email, Body: req.Message}, s.now())
	if err != nil {
		log.Warn("submit contact message rejected", zap.String("view_id", viewID), zap.Error(err))
		return ViewResponse{}, err
	}

	log.Info("submit contact message success", zap.String("view_id", viewID), zap.Int("sent", snap.Sent))
	return mapToViewResponse(viewID, snap), nil
}

func (s *service) CloseView(ctx context.Context, viewID string) error {
	if !s.views.Close(viewID) {
		return contacterrors.ErrViewNotFound
	}
	contextutil.GetLogger(ctx, s.logger).Info("contact view closed", zap.String("view_id", viewID))
	return nil
}

func (s *service) findView(ctx context.Context, viewID string) (*View, error) {
	view, ok := s.views.Get(viewID)
	if !ok {
		contextutil.GetLogger(ctx, s.logger).Warn("contact view not found", zap.String("view_id", viewID))
		return nil, contacterrors.ErrViewNotFound
	}
	return view, nil
}

func mapToViewResponse(viewID string, snap Snapshot) ViewResponse {
	resp := ViewResponse{
		ViewID: viewID,
		State:  string(snap.State),
		Sent:   snap.Sent,
	}
	if snap.State == formstate.StateSubmitted {
		resp.Notice = sentNotice
	}
	if !snap.ResetsAt.IsZero() {
		t := snap.ResetsAt
		resp.ResetsAt = &t
	}
	return resp
}
