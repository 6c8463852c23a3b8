package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/power-mac-book/travelkit-web/internal/infra/http/middleware"
	"github.com/power-mac-book/travelkit-web/internal/infra/realtime"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

// FunnelRefreshWorker re-fetches every funnel filter set with live
// viewers on a fixed interval and pushes the fresh view to the hub.
// Each refresh runs with the subscriber's own token; when the backend
// stops accepting it, the topic is dropped instead of retried.
type FunnelRefreshWorker struct {
	funnel   *usecase.FunnelUseCase
	hub      *realtime.Hub
	interval time.Duration
}

func NewFunnelRefreshWorker(funnel *usecase.FunnelUseCase, hub *realtime.Hub, interval time.Duration) *FunnelRefreshWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &FunnelRefreshWorker{funnel: funnel, hub: hub, interval: interval}
}

func (w *FunnelRefreshWorker) Start(ctx context.Context) {
	slog.Info("funnel refresh worker started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("funnel refresh worker stopped")
			return
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

func (w *FunnelRefreshWorker) refreshAll(ctx context.Context) {
	subs := w.hub.ActiveSubscriptions()
	for _, sub := range subs {
		report, err := w.funnel.Refresh(ctx, sub.Token, sub.Filter)
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthenticated) {
				slog.Warn("funnel refresh token rejected, dropping topic", slog.String("topic", sub.Key))
				w.hub.DropTopic(sub.Key)
			} else {
				slog.Error("funnel refresh failed", slog.String("topic", sub.Key), slog.Any("error", err))
			}
			middleware.RecordFunnelRefresh("error")
			continue
		}

		w.hub.Broadcast(sub.Key, usecase.BuildView(report))
		middleware.RecordFunnelRefresh("ok")
	}

	if len(subs) > 0 {
		slog.Debug("funnel refresh pass complete", slog.Int("topics", len(subs)))
	}
}
