package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/infra/cache"
)

// MinStageWidthPct is the rendering floor: a stage with a sliver of the
// total still gets a visible bar.
const MinStageWidthPct = 4.0

// FunnelFilter is one filter combination of the funnel screen. Its Key
// is the canonical identity used for the cache, the singleflight group
// and the realtime topic, so one filter set can never race itself.
type FunnelFilter struct {
	DateFrom      string // YYYY-MM-DD
	DateTo        string // YYYY-MM-DD
	DestinationID int
	SegmentID     string
}

func (f FunnelFilter) Key() string {
	return fmt.Sprintf("funnel|%s|%s|%d|%s", f.DateFrom, f.DateTo, f.DestinationID, f.SegmentID)
}

func (f FunnelFilter) Query() url.Values {
	query := url.Values{}
	if f.DateFrom != "" {
		query.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		query.Set("date_to", f.DateTo)
	}
	if f.DestinationID > 0 {
		query.Set("destination_id", strconv.Itoa(f.DestinationID))
	}
	if f.SegmentID != "" {
		query.Set("segment_id", f.SegmentID)
	}
	return query
}

// FunnelUseCase fetches aggregated reports keyed by filter set. Reads
// hit a TTL cache; concurrent identical fetches collapse into one
// backend call, and results are stored atomically per key, so a stale
// response can never overwrite a fresher one for the same filter.
type FunnelUseCase struct {
	Analytics FunnelGateway
	cache     *cache.Cache
	ttl       time.Duration
	group     singleflight.Group
}

func NewFunnelUseCase(analytics FunnelGateway, ttl time.Duration) *FunnelUseCase {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &FunnelUseCase{
		Analytics: analytics,
		cache:     cache.New(),
		ttl:       ttl,
	}
}

// Report returns the funnel for a filter set, served from cache when
// fresh.
func (uc *FunnelUseCase) Report(ctx context.Context, token string, filter FunnelFilter) (*entity.FunnelReport, error) {
	key := filter.Key()
	if cached, ok := uc.cache.Get(key); ok {
		if report, ok := cached.(*entity.FunnelReport); ok {
			return report, nil
		}
	}

	result, err, _ := uc.group.Do(key, func() (interface{}, error) {
		report, err := uc.Analytics.FetchFunnel(ctx, token, filter.Query())
		if err != nil {
			return nil, mapGatewayErr(err)
		}
		uc.cache.Set(key, report, uc.ttl)
		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*entity.FunnelReport), nil
}

// Refresh bypasses the cache. The refresh worker uses it so broadcast
// reports are never stale copies of what subscribers already have.
func (uc *FunnelUseCase) Refresh(ctx context.Context, token string, filter FunnelFilter) (*entity.FunnelReport, error) {
	report, err := uc.Analytics.FetchFunnel(ctx, token, filter.Query())
	if err != nil {
		return nil, mapGatewayErr(err)
	}
	uc.cache.Set(filter.Key(), report, uc.ttl)
	return report, nil
}

// Invalidate drops the cached report for a filter set.
func (uc *FunnelUseCase) Invalidate(filter FunnelFilter) {
	uc.cache.Delete(filter.Key())
}

// StageBar is one rendered funnel stage. SharePct is the true share of
// total entries; WidthPct is the drawn width, floored so small stages
// stay visible.
type StageBar struct {
	entity.FunnelStage
	SharePct float64 `json:"share_pct"`
	WidthPct float64 `json:"width_pct"`
}

type FunnelView struct {
	GeneratedAt  string     `json:"generated_at"`
	TotalEntries int        `json:"total_entries"`
	Bars         []StageBar `json:"bars"`
}

// BuildView derives the presentation model. All arithmetic here is over
// server-computed aggregates; width is monotonic in stage count.
func BuildView(report *entity.FunnelReport) FunnelView {
	view := FunnelView{
		GeneratedAt:  report.GeneratedAt,
		TotalEntries: report.TotalEntries,
		Bars:         make([]StageBar, 0, len(report.Stages)),
	}

	for _, stage := range report.Stages {
		share := 0.0
		if report.TotalEntries > 0 {
			share = float64(stage.Count) / float64(report.TotalEntries) * 100
		}
		width := share
		if width < MinStageWidthPct {
			width = MinStageWidthPct
		}
		if width > 100 {
			width = 100
		}
		view.Bars = append(view.Bars, StageBar{
			FunnelStage: stage,
			SharePct:    share,
			WidthPct:    width,
		})
	}
	return view
}
