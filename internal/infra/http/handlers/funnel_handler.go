package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/power-mac-book/travelkit-web/internal/entity"
	"github.com/power-mac-book/travelkit-web/internal/infra/http/middleware"
	"github.com/power-mac-book/travelkit-web/internal/infra/http/web"
	"github.com/power-mac-book/travelkit-web/internal/infra/realtime"
	"github.com/power-mac-book/travelkit-web/internal/usecase"
)

type FunnelHandler struct {
	Funnel   *usecase.FunnelUseCase
	Catalog  *usecase.CatalogUseCase
	Segments *usecase.SegmentUseCase
	Hub      *realtime.Hub
	View     *web.Renderer
	upgrader websocket.Upgrader
}

func NewFunnelHandler(funnel *usecase.FunnelUseCase, catalog *usecase.CatalogUseCase, segments *usecase.SegmentUseCase, hub *realtime.Hub, view *web.Renderer) *FunnelHandler {
	return &FunnelHandler{
		Funnel:   funnel,
		Catalog:  catalog,
		Segments: segments,
		Hub:      hub,
		View:     view,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

type funnelPageView struct {
	Filter        usecase.FunnelFilter
	FilterQuery   string
	View          usecase.FunnelView
	Destinations  []entity.Destination
	Segments      []entity.Segment
	SelectedStage string
	LiveURL       string
}

func (h *FunnelHandler) Page(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	filter := parseFunnelFilter(r)

	report, err := h.Funnel.Report(r.Context(), token, filter)
	if err != nil {
		failPage(h.View, w, r, err)
		return
	}

	// Dropdown sources; a failure here degrades the filters, not the
	// funnel itself.
	destinations, err := h.Catalog.Destinations(r.Context(), token)
	if err != nil {
		slog.Warn("funnel filter destinations unavailable", slog.Any("error", err))
	}
	segments, err := h.Segments.List(r.Context(), token)
	if err != nil {
		slog.Warn("funnel filter segments unavailable", slog.Any("error", err))
	}

	h.View.Render(w, http.StatusOK, "funnel", pageData(r, "Conversion funnel", funnelPageView{
		Filter:        filter,
		FilterQuery:   filter.Query().Encode(),
		View:          usecase.BuildView(report),
		Destinations:  destinations,
		Segments:      segments,
		SelectedStage: r.URL.Query().Get("stage"),
		LiveURL:       "/admin/funnel/live?" + filter.Query().Encode(),
	}))
}

// Data serves the JSON view the page scripts poll as a websocket
// fallback.
func (h *FunnelHandler) Data(w http.ResponseWriter, r *http.Request) {
	report, err := h.Funnel.Report(r.Context(), sessionToken(r), parseFunnelFilter(r))
	if err != nil {
		failJSON(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usecase.BuildView(report))
}

// Live upgrades to a websocket subscribed to the request's filter set.
// Refreshed views arrive every refresh interval until the client hangs
// up or its token dies.
func (h *FunnelHandler) Live(w http.ResponseWriter, r *http.Request) {
	filter := parseFunnelFilter(r)
	token := sessionToken(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("funnel live upgrade failed", slog.Any("error", err))
		return
	}

	client := realtime.NewClient(conn)
	h.Hub.Subscribe(client, realtime.Subscription{
		Key:    filter.Key(),
		Filter: filter,
		Token:  token,
	})
	middleware.SetLiveClients(h.Hub.ClientCount())

	client.Run(h.Hub)
	middleware.SetLiveClients(h.Hub.ClientCount())
}

// parseFunnelFilter reads the filter set off the query string. The
// default window is the trailing 30 days.
func parseFunnelFilter(r *http.Request) usecase.FunnelFilter {
	q := r.URL.Query()
	filter := usecase.FunnelFilter{
		DateFrom:  q.Get("date_from"),
		DateTo:    q.Get("date_to"),
		SegmentID: q.Get("segment_id"),
	}
	filter.DestinationID, _ = strconv.Atoi(q.Get("destination_id"))

	now := time.Now()
	if filter.DateTo == "" {
		filter.DateTo = now.Format("2006-01-02")
	}
	if filter.DateFrom == "" {
		filter.DateFrom = now.AddDate(0, 0, -30).Format("2006-01-02")
	}
	return filter
}
