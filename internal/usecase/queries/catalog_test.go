//go:build unit

package queries_test

import (
	"context"
	"testing"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/pkg/errs"
	"reservas-web/internal/pkg/logger"
	"reservas-web/internal/usecase/queries"
	"reservas-web/tests/common/builder"
	queriesmock "reservas-web/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogQueries_LoadOptions(t *testing.T) {
	t.Run("one option per event, in backend order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := queriesmock.NewMockEventCatalog(ctrl)

		first := builder.NewEventBuilder().BuildDomain()
		second := builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
			b.ID = "3"
			b.Title = "Yoga al aire libre"
		}).BuildDomain()
		catalog.EXPECT().ListAvailableEvents(gomock.Any()).Return([]*event.Event{first, second}, nil).Times(1)

		options, err := queries.NewCatalogQueries(catalog, logger.Discard()).LoadOptions(context.Background())
		require.NoError(t, err)

		want := []event.Option{
			{Value: first.ID(), Label: "Taller de cerámica (2026-11-02)"},
			{Value: second.ID(), Label: "Yoga al aire libre (2026-11-02)"},
		}
		if diff := cmp.Diff(want, options, cmp.AllowUnexported(event.ID{})); diff != "" {
			t.Errorf("options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := queriesmock.NewMockEventCatalog(ctrl)
		catalog.EXPECT().ListAvailableEvents(gomock.Any()).Return([]*event.Event{}, nil)

		options, err := queries.NewCatalogQueries(catalog, logger.Discard()).LoadOptions(context.Background())
		require.NoError(t, err)
		assert.Empty(t, options)
	})

	t.Run("failure leaves no options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := queriesmock.NewMockEventCatalog(ctrl)
		catalog.EXPECT().ListAvailableEvents(gomock.Any()).Return(nil, errs.Mark(errs.New("bad payload"), errs.ErrMalformedResponse))

		options, err := queries.NewCatalogQueries(catalog, logger.Discard()).LoadOptions(context.Background())
		assert.Nil(t, options)
		assert.True(t, errs.Is(err, queries.ErrCatalogUnavailable))
		assert.True(t, errs.Is(err, errs.ErrMalformedResponse))
	})
}
