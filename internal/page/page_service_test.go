package page_test

import (
	"context"
	"testing"

	"visionmines/internal/page"
	pageerrors "visionmines/internal/page/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPageService_GetBySlug(t *testing.T) {
	svc := page.NewService(zap.NewNop())
	ctx := context.Background()

	t.Run("home features", func(t *testing.T) {
		resp, err := svc.GetBySlug(ctx, "home")
		require.NoError(t, err)

		require.Len(t, resp.Sections, 1)
		titles := make([]string, 0, 3)
		for _, c := range resp.Sections[0].Cards {
			titles = append(titles, c.Title)
		}
		assert.Equal(t, []string{"PPE Management", "Employee Safety", "Real-time Analytics"}, titles)
		assert.Len(t, resp.Nav, 5)
	})

	t.Run("about values", func(t *testing.T) {
		resp, err := svc.GetBySlug(ctx, " About ")
		require.NoError(t, err)

		last := resp.Sections[len(resp.Sections)-1]
		assert.Equal(t, "Our Core Values", last.Title)
		assert.Len(t, last.Cards, 4)
		assert.Equal(t, "Safety First", last.Cards[0].Title)
	})

	t.Run("every nav entry has a page", func(t *testing.T) {
		for _, n := range svc.Nav(ctx) {
			_, err := svc.GetBySlug(ctx, n.Slug)
			assert.NoError(t, err, n.Slug)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := svc.GetBySlug(ctx, "careers")
		assert.ErrorIs(t, err, pageerrors.ErrPageNotFound)
	})
}

func TestPageService_NavOrder(t *testing.T) {
	nav := page.NewService(zap.NewNop()).Nav(context.Background())

	paths := make([]string, len(nav))
	for i, n := range nav {
		paths[i] = n.Path
	}
	assert.Equal(t, []string{"/", "/dashboard", "/about", "/contact", "/ppe-enquiries"}, paths)
}
