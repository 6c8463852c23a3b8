package usecase_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

func sampleReport() *entity.FunnelReport {
	return &entity.FunnelReport{
		GeneratedAt:  "2026-08-30T10:00:00Z",
		TotalEntries: 1000,
		Stages: []entity.FunnelStage{
			{Key: "interest", Name: "Interest", Count: 1000},
			{Key: "matched", Name: "Matched", Count: 400, ConversionRate: 40},
			{Key: "confirmed", Name: "Confirmed", Count: 120, ConversionRate: 30},
			{Key: "converted", Name: "Converted", Count: 5, ConversionRate: 4.2},
		},
	}
}

func TestFunnelFilterKey(t *testing.T) {
	a := usecase.FunnelFilter{DateFrom: "2026-08-01", DateTo: "2026-08-30", DestinationID: 3, SegmentID: "seg-1"}
	b := usecase.FunnelFilter{DateFrom: "2026-08-01", DateTo: "2026-08-30", DestinationID: 3, SegmentID: "seg-1"}
	c := usecase.FunnelFilter{DateFrom: "2026-08-01", DateTo: "2026-08-30", DestinationID: 4, SegmentID: "seg-1"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestFunnelFilterQueryOmitsEmptyFields(t *testing.T) {
	filter := usecase.FunnelFilter{DateFrom: "2026-08-01", DestinationID: 3}

	query := filter.Query()

	assert.Equal(t, "2026-08-01", query.Get("date_from"))
	assert.Equal(t, "3", query.Get("destination_id"))
	assert.False(t, query.Has("date_to"))
	assert.False(t, query.Has("segment_id"))
}

func TestFunnelReportServedFromCache(t *testing.T) {
	analytics := new(MockFunnelGateway)
	uc := usecase.NewFunnelUseCase(analytics, time.Minute)

	filter := usecase.FunnelFilter{DateFrom: "2026-08-01", DateTo: "2026-08-30"}
	analytics.On("FetchFunnel", context.Background(), "token", filter.Query()).Return(sampleReport(), nil).Once()

	first, err := uc.Report(context.Background(), "token", filter)
	assert.NoError(t, err)

	second, err := uc.Report(context.Background(), "token", filter)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	analytics.AssertNumberOfCalls(t, "FetchFunnel", 1)
}

func TestFunnelRefreshBypassesCache(t *testing.T) {
	analytics := new(MockFunnelGateway)
	uc := usecase.NewFunnelUseCase(analytics, time.Minute)

	filter := usecase.FunnelFilter{SegmentID: "seg-1"}
	analytics.On("FetchFunnel", context.Background(), "token", filter.Query()).Return(sampleReport(), nil).Twice()

	_, err := uc.Report(context.Background(), "token", filter)
	assert.NoError(t, err)

	_, err = uc.Refresh(context.Background(), "token", filter)
	assert.NoError(t, err)

	analytics.AssertNumberOfCalls(t, "FetchFunnel", 2)
}

func TestFunnelInvalidateForcesRefetch(t *testing.T) {
	analytics := new(MockFunnelGateway)
	uc := usecase.NewFunnelUseCase(analytics, time.Minute)

	filter := usecase.FunnelFilter{DestinationID: 9}
	analytics.On("FetchFunnel", context.Background(), "token", filter.Query()).Return(sampleReport(), nil).Twice()

	_, err := uc.Report(context.Background(), "token", filter)
	assert.NoError(t, err)

	uc.Invalidate(filter)

	_, err = uc.Report(context.Background(), "token", filter)
	assert.NoError(t, err)

	analytics.AssertNumberOfCalls(t, "FetchFunnel", 2)
}

func TestFunnelFetchFailure(t *testing.T) {
	analytics := new(MockFunnelGateway)
	uc := usecase.NewFunnelUseCase(analytics, time.Minute)

	filter := usecase.FunnelFilter{}
	analytics.On("FetchFunnel", context.Background(), "token", url.Values{}).Return(nil, assert.AnError)

	report, err := uc.Report(context.Background(), "token", filter)

	assert.Nil(t, report)
	assert.True(t, usecase.IsTechnicalError(err))
}

func TestBuildViewWidths(t *testing.T) {
	view := usecase.BuildView(sampleReport())

	assert.Len(t, view.Bars, 4)
	assert.Equal(t, 1000, view.TotalEntries)

	// Full stage draws at 100, never more.
	assert.Equal(t, 100.0, view.Bars[0].WidthPct)
	assert.Equal(t, 40.0, view.Bars[1].WidthPct)

	// 5 of 1000 is a 0.5% share but draws at the visibility floor.
	assert.Equal(t, 0.5, view.Bars[3].SharePct)
	assert.Equal(t, usecase.MinStageWidthPct, view.Bars[3].WidthPct)

	// Width never grows down the funnel.
	for i := 1; i < len(view.Bars); i++ {
		assert.LessOrEqual(t, view.Bars[i].WidthPct, view.Bars[i-1].WidthPct)
	}
}

func TestBuildViewZeroTotal(t *testing.T) {
	report := &entity.FunnelReport{
		TotalEntries: 0,
		Stages:       []entity.FunnelStage{{Key: "interest", Count: 0}},
	}

	view := usecase.BuildView(report)

	assert.Equal(t, 0.0, view.Bars[0].SharePct)
	assert.Equal(t, usecase.MinStageWidthPct, view.Bars[0].WidthPct)
}
