package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"workstatus-engine/internal/calendar"
	"workstatus-engine/internal/engine"
	"workstatus-engine/internal/metrics"
	"workstatus-engine/internal/model"
	"workstatus-engine/internal/roster"
)

const (
	endpointWeekly     = "weekly"
	endpointProjection = "projection"
)

var errMissingParam = errors.New("missing query parameter")

// Handler serves the weekly and projection reports over fasthttp.
type Handler struct {
	source         roster.Source
	metrics        *metrics.Metrics
	metricsHandler fasthttp.RequestHandler
	loc            *time.Location
	requestTimeout time.Duration
	now            func() time.Time
	logger         zerolog.Logger
}

type Options struct {
	Location       *time.Location
	RequestTimeout time.Duration
}

func New(source roster.Source, m *metrics.Metrics, opts Options, logger zerolog.Logger) *Handler {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	h := &Handler{
		source:         source,
		metrics:        m,
		loc:            opts.Location,
		requestTimeout: opts.RequestTimeout,
		now:            time.Now,
		logger:         logger.With().Str("component", "handler").Logger(),
	}
	if m != nil {
		h.metricsHandler = fasthttpadaptor.NewFastHTTPHandler(m.Handler())
	}
	return h
}

// Handle is the fasthttp entry point.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	reqID := uuid.New().String()
	ctx.Response.Header.Set("X-Request-ID", reqID)
	logger := h.logger.With().Str("request_id", reqID).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("request panicked")
			writeError(ctx, fasthttp.StatusInternalServerError, "internal error")
		}
	}()

	path := string(ctx.Path())
	switch path {
	case "/healthz":
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":"ok"}`)
		return
	case "/metrics":
		if h.metricsHandler == nil {
			ctx.SetBodyString("# No metrics collector configured\n")
			return
		}
		h.metricsHandler(ctx)
		return
	}

	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	logger.Info().Str("method", string(ctx.Method())).Str("path", path).Msg("report request")

	switch path {
	case "/api/weekly":
		h.serve(ctx, endpointWeekly, logger, h.weekly)
	case "/api/projection":
		h.serve(ctx, endpointProjection, logger, h.projection)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

type reportFunc func(ctx context.Context, args *fasthttp.Args, meta *model.CalculationMetadata) (any, error)

// serve runs fn and writes the envelope. Any failure is a 500.
func (h *Handler) serve(ctx *fasthttp.RequestCtx, endpoint string, logger zerolog.Logger, fn reportFunc) {
	start := time.Now()

	reqCtx, cancel := context.WithTimeout(context.Background(), h.requestTimeout)
	defer cancel()

	meta := &model.CalculationMetadata{CalculationID: uuid.New().String()}
	data, err := fn(reqCtx, ctx.QueryArgs(), meta)

	elapsed := time.Since(start)
	if h.metrics != nil {
		h.metrics.ObserveDuration(endpoint, elapsed.Seconds())
	}

	if err != nil {
		logger.Error().Err(err).Str("endpoint", endpoint).Msg("report failed")
		h.record(endpoint, fasthttp.StatusInternalServerError)
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	completed := time.Now().UTC()
	meta.CalculationStartedAt = completed.Add(-elapsed).Format(time.RFC3339)
	meta.CalculationCompletedAt = completed.Format(time.RFC3339)
	meta.CalculationDurationMs = elapsed.Milliseconds()

	h.record(endpoint, fasthttp.StatusOK)
	writeJSON(ctx, fasthttp.StatusOK, model.Response{Success: true, Data: data, Metadata: meta})
}

func (h *Handler) weekly(ctx context.Context, args *fasthttp.Args, meta *model.CalculationMetadata) (any, error) {
	year, month, err := yearMonth(args)
	if err != nil {
		return nil, err
	}

	week := engine.DefaultWeek(year, month, h.today())
	if args.Has("week") {
		if week, err = intArg(args, "week"); err != nil {
			return nil, err
		}
	}

	members, err := h.loadRoster(ctx, meta)
	if err != nil {
		return nil, err
	}
	return engine.BuildWeeklyReport(members, year, month, week)
}

func (h *Handler) projection(ctx context.Context, args *fasthttp.Args, meta *model.CalculationMetadata) (any, error) {
	year, month, err := yearMonth(args)
	if err != nil {
		return nil, err
	}

	members, err := h.loadRoster(ctx, meta)
	if err != nil {
		return nil, err
	}

	report, err := engine.Project(members, year, month, h.today())
	if err != nil {
		return nil, err
	}

	baseline := report.Baseline
	meta.Baseline = &baseline
	h.recordAssignments(report.Months)
	return report.Months, nil
}

func (h *Handler) loadRoster(ctx context.Context, meta *model.CalculationMetadata) ([]model.Member, error) {
	members, err := h.source.Members(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	meta.RosterSize = len(members)
	if h.metrics != nil {
		h.metrics.SetRosterSize(len(members))
	}
	return members, nil
}

func (h *Handler) today() calendar.Date {
	return calendar.FromTime(h.now().In(h.loc))
}

func (h *Handler) record(endpoint string, status int) {
	if h.metrics != nil {
		h.metrics.RecordRequest(endpoint, strconv.Itoa(status))
	}
}

func (h *Handler) recordAssignments(months []model.MonthlyProjection) {
	if h.metrics == nil {
		return
	}
	for _, m := range months {
		for category, c := range map[engine.Category]model.CategoryProjection{
			engine.CategoryNewStarting:    m.NewStarting,
			engine.CategorySwitching:      m.Switching,
			engine.CategoryProjectEnding:  m.ProjectEnding,
			engine.CategoryContractEnding: m.ContractEnding,
		} {
			for _, p := range c.Members {
				h.metrics.RecordAssignments(category.String(), string(p.Basis), 1)
			}
		}
	}
}

func yearMonth(args *fasthttp.Args) (int, int, error) {
	year, err := intArg(args, "year")
	if err != nil {
		return 0, 0, err
	}
	month, err := intArg(args, "month")
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

func intArg(args *fasthttp.Args, name string) (int, error) {
	raw := args.Peek(name)
	if len(raw) == 0 {
		return 0, fmt.Errorf("%s: %w", name, errMissingParam)
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return n, nil
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = fasthttp.StatusInternalServerError
		body = []byte(`{"success":false,"error":"encoding response"}`)
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.Response{Success: false, Error: message})
}
