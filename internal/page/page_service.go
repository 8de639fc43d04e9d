package page

import (
	"context"
	"strings"

	pageerrors "visionmines/internal/page/errors"
	"visionmines/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=page_service.go -destination=mock/page_service_mock.go -package=mock
type Service interface {
	GetBySlug(ctx context.Context, slug string) (PageResponse, error)
	Nav(ctx context.Context) []NavItemResponse
}

type service struct {
	logger *zap.Logger
}

func NewService(logger ...*zap.Logger) Service {
	l := zap.L().Named("page.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("page.service")
	}
	return &service{logger: l}
}

func (s *service) GetBySlug(ctx context.Context, slug string) (PageResponse, error) {
	p, ok := Lookup(strings.ToLower(strings.TrimSpace(slug)))
	if !ok {
		contextutil.GetLogger(ctx, s.logger).Debug("page not found", zap.String("slug", slug))
		return PageResponse{}, pageerrors.ErrPageNotFound
	}
	return mapToResponse(p, s.Nav(ctx)), nil
}

func (s *service) Nav(ctx context.Context) []NavItemResponse {
	res := make([]NavItemResponse, len(Nav))
	for i, n := range Nav {
		res[i] = NavItemResponse{Slug: n.Slug, Path: n.Path, Label: n.Label}
	}
	return res
}

func mapToResponse(p Page, nav []NavItemResponse) PageResponse {
	resp := PageResponse{
		Slug:     p.Slug,
		Title:    p.Title,
		Heading:  p.Heading,
		Tagline:  p.Tagline,
		Sections: make([]SectionResponse, len(p.Sections)),
		Nav:      nav,
	}
	for i, sec := range p.Sections {
		out := SectionResponse{Title: sec.Title, Body: sec.Body}
		if len(sec.List) > 0 {
			out.List = append([]string(nil), sec.List...)
		}
		for _, c := range sec.Cards {
			out.Cards = append(out.Cards, CardResponse{Title: c.Title, Description: c.Description})
		}
		resp.Sections[i] = out
	}
	return resp
}
