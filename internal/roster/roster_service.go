package roster

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	rostererrors "visionmines/internal/roster/errors"
	"visionmines/internal/shared/contextutil"
	"visionmines/internal/viewstore"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const emptyStateMessage = "No employees match the current search and team lead filter."

// GeneratorFactory returns a generator with its own random source. Each
// view gets a fresh one because rand sources are not safe for concurrent
// use.
type GeneratorFactory func() *Generator

// NewRandomGenerator seeds a PCG source from the runtime's random state.
func NewRandomGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

//go:generate mockgen -source=roster_service.go -destination=mock/roster_service_mock.go -package=mock
type Service interface {
	OpenView(ctx context.Context) (DashboardResponse, error)
	GetView(ctx context.Context, viewID string) (DashboardResponse, error)
	UpdateFilter(ctx context.Context, viewID string, req UpdateFilterRequest) (DashboardResponse, error)
	Export(ctx context.Context, viewID string) ([]byte, error)
	CloseView(ctx context.Context, viewID string) error
	// Render generates a throwaway roster for a single page load.
	Render(ctx context.Context, search, lead string) (DashboardResponse, error)
}

type service struct {
	views     *viewstore.Store[*View]
	generator GeneratorFactory
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(views *viewstore.Store[*View], generator GeneratorFactory, logger ...*zap.Logger) Service {
	l := zap.L().Named("roster.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roster.service")
	}
	if generator == nil {
		generator = NewRandomGenerator
	}
	return &service{
		views:     views,
		generator: generator,
		sf:        &singleflight.Group{},
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) OpenView(ctx context.Context) (DashboardResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	view := NewView(s.generator().Generate(), s.now())
	viewID := s.views.Open(view)

	snap := view.Snapshot()
	log.Info("dashboard view opened",
		zap.String("view_id", viewID),
		zap.Int("employees", snap.Total),
		zap.Int("non_compliant", snap.Stats.Summary.NonCompliant),
	)
	return mapToDashboardResponse(viewID, snap), nil
}

func (s *service) GetView(ctx context.Context, viewID string) (DashboardResponse, error) {
	view, err := s.findView(ctx, viewID)
	if err != nil {
		return DashboardResponse{}, err
	}
	return mapToDashboardResponse(viewID, view.Snapshot()), nil
}

func (s *service) UpdateFilter(ctx context.Context, viewID string, req UpdateFilterRequest) (DashboardResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update dashboard filter requested",
		zap.String("view_id", viewID),
		zap.String("search", req.Search),
		zap.String("lead", req.Lead),
	)

	view, err := s.findView(ctx, viewID)
	if err != nil {
		return DashboardResponse{}, err
	}

	lead := normalizeLead(req.Lead)
	if !view.HasLead(lead) {
		log.Warn("update dashboard filter unknown lead",
			zap.String("view_id", viewID),
			zap.String("lead", lead),
		)
		return DashboardResponse{}, rostererrors.ErrUnknownTeamLead
	}

	view.SetFilter(req.Search, lead)
	return mapToDashboardResponse(viewID, view.Snapshot()), nil
}

// Export renders the filtered rows of the view. Concurrent exports of the
// same view under the same filter share one workbook build.
func (s *service) Export(ctx context.Context, viewID string) ([]byte, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	view, err := s.findView(ctx, viewID)
	if err != nil {
		return nil, err
	}

	snap := view.Snapshot()
	v, err, shared := s.sf.Do(exportKey(viewID, snap), func() (any, error) {
		return ExportXLSX(snap.Rows, snap.Stats.Teams)
	})
	if err != nil {
		log.Error("export roster failed", zap.String("view_id", viewID), zap.Error(err))
		return nil, rostererrors.ErrExportFailed
	}

	log.Info("export roster success", zap.String("view_id", viewID), zap.Bool("shared", shared))
	return v.([]byte), nil
}

func (s *service) CloseView(ctx context.Context, viewID string) error {
	if !s.views.Close(viewID) {
		return rostererrors.ErrViewNotFound
	}
	contextutil.GetLogger(ctx, s.logger).Info("dashboard view closed", zap.String("view_id", viewID))
	return nil
}

func (s *service) Render(ctx context.Context, search, lead string) (DashboardResponse, error) {
	view := NewView(s.generator().Generate(), s.now())
	defer view.Close()

	lead = normalizeLead(lead)
	if !view.HasLead(lead) {
		return DashboardResponse{}, rostererrors.ErrUnknownTeamLead
	}
	view.SetFilter(search, lead)
	return mapToDashboardResponse("", view.Snapshot()), nil
}

func (s *service) findView(ctx context.Context, viewID string) (*View, error) {
	view, ok := s.views.Get(viewID)
	if !ok {
		contextutil.GetLogger(ctx, s.logger).Warn("dashboard view not found", zap.String("view_id", viewID))
		return nil, rostererrors.ErrViewNotFound
	}
	return view, nil
}

func exportKey(viewID string, snap Snapshot) string {
	return viewID + "\x00" + snap.Search + "\x00" + snap.Lead
}

func normalizeLead(lead string) string {
	lead = strings.TrimSpace(lead)
	if lead == "" {
		return AllLeads
	}
	return lead
}

func mapToDashboardResponse(viewID string, snap Snapshot) DashboardResponse {
	resp := DashboardResponse{
		ViewID:      viewID,
		Filter:      FilterResponse{Search: snap.Search, Lead: snap.Lead},
		LeadOptions: snap.LeadOptions,
		Summary: SummaryResponse{
			TotalEmployees: snap.Stats.Summary.TotalEmployees,
			Compliant:      snap.Stats.Summary.Compliant,
			NonCompliant:   snap.Stats.Summary.NonCompliant,
			TeamLeads:      snap.Stats.Summary.TeamLeads,
		},
		PieData:        make([]ChartSliceResponse, len(snap.Stats.ComplianceSplit)),
		TeamCompliance: make([]TeamComplianceResponse, len(snap.Stats.Teams)),
		Employees:      mapToListResponse(snap.Rows),
	}
	for i, sl := range snap.Stats.ComplianceSplit {
		resp.PieData[i] = ChartSliceResponse{Name: sl.Name, Value: sl.Value, Color: sl.Color}
	}
	for i, t := range snap.Stats.Teams {
		resp.TeamCompliance[i] = TeamComplianceResponse{
			Lead:       t.Lead,
			Name:       t.Label,
			TeamSize:   t.TeamSize,
			Compliance: t.Compliance,
		}
	}
	if len(snap.Rows) == 0 {
		resp.EmptyMessage = emptyStateMessage
	}
	return resp
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Contact:   e.Contact,
		TeamLead:  e.TeamLead,
		PPEStatus: string(e.PPEStatus),
		IsLead:    e.IsLead,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
