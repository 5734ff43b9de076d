package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/errs"
	"event-ticket/common/otel"
	"event-ticket/model"
	"event-ticket/outbound/sqlgen"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const eventsPerPage = 10

type EventHttp struct {
	Querier  *sqlgen.Queries
	Cache    *redis.Client
	Validate *validator.Validate

	TimeNow func() time.Time

	cacheTTL time.Duration
}

func RegisterEventHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	querier *sqlgen.Queries,
	cache *redis.Client,
	validate *validator.Validate,
) *EventHttp {
	in := &EventHttp{
		Querier:  querier,
		Cache:    cache,
		Validate: validate,
		TimeNow:  time.Now,

		cacheTTL: cfg.GetDuration("events.cache_ttl"),
	}

	mux.HandleFunc("GET /api/events", in.index)
	mux.HandleFunc("GET /api/events/{id}", in.show)
	mux.HandleFunc("POST /api/events", in.create)
	mux.HandleFunc("PUT /api/events/{id}", in.update)
	mux.HandleFunc("DELETE /api/events/{id}", in.delete)

	return in
}

func (in EventHttp) index(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "EventHttp.index")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	page := parsePageQuery(r)

	cacheKey := fmt.Sprintf(constant.UpcomingEventsPage, page)
	cached, err := in.Cache.Get(ctx, cacheKey).Result()
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(cached))
		return
	}
	if err != redis.Nil {
		slog.ErrorContext(ctx, "failed to get upcoming events from cache", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	now := in.TimeNow()
	total, err := in.Querier.CountUpcomingEvents(ctx, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count upcoming events", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	events, err := in.Querier.ListUpcomingEvents(ctx, sqlgen.ListUpcomingEventsParams{
		After:  now,
		Limit:  eventsPerPage,
		Offset: (page - 1) * eventsPerPage,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to list upcoming events", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	response := model.ListEventsResponse{
		Events:  events,
		Page:    page,
		PerPage: eventsPerPage,
		Total:   total,
	}

	body, err := json.Marshal(response)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	err = in.Cache.Set(ctx, cacheKey, string(body), in.cacheTTL).Err()
	if err != nil {
		slog.ErrorContext(ctx, "failed to cache upcoming events", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (in EventHttp) show(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "EventHttp.show")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	event, err := in.Querier.FindEventById(ctx, id)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Event not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find event", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, event)
}

func (in EventHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.validateCreateEventRequest(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "EventHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create event receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	date, err := parseDateTime(req.Date)
	if err != nil {
		writeErrorResponse(w, &errs.HttpError{
			Code:    http.StatusUnprocessableEntity,
			Message: "Validation failed",
			Data:    map[string]any{"Date": "datetime"},
		})
		return
	}

	event, err := in.Querier.InsertEvent(ctx, sqlgen.InsertEventParams{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Image:       req.Image,
		Category:    req.Category,
		City:        req.City,
		Address:     req.Address,
		Status:      req.Status,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert event", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "insert event success", traceIdAttr, slog.Any(constant.LogFieldResponse, event.ID))

	writeJSONResponse(w, http.StatusCreated, event)
}

func (in EventHttp) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var req model.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.validateUpdateEventRequest(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "EventHttp.update")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "update event receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	var date *time.Time
	if req.Date != nil {
		parsed, err := parseDateTime(*req.Date)
		if err != nil {
			writeErrorResponse(w, &errs.HttpError{
				Code:    http.StatusUnprocessableEntity,
				Message: "Validation failed",
				Data:    map[string]any{"Date": "datetime"},
			})
			return
		}
		date = &parsed
	}

	event, err := in.Querier.UpdateEvent(ctx, sqlgen.UpdateEventParams{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Image:       req.Image,
		Category:    req.Category,
		City:        req.City,
		Address:     req.Address,
		Status:      req.Status,
	})
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Event not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to update event", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, event)
}

func (in EventHttp) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "EventHttp.delete")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	tag, err := in.Querier.DeleteEvent(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete event", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if tag.RowsAffected() == 0 {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Event not found"})
		return
	}

	writeJSONResponse(w, http.StatusOK, model.MessageResponse{Message: "Event deleted"})
}

func (in EventHttp) validateCreateEventRequest(req model.CreateEventRequest) error {
	if err := in.Validate.Struct(req); err != nil {
		return err
	}

	data := make(map[string]any)
	if !constant.EventCategories[req.Category] {
		data["Category"] = "oneof"
	}
	if !constant.EventStatuses[req.Status] {
		data["Status"] = "oneof"
	}

	if len(data) > 0 {
		return &errs.HttpError{
			Code:    http.StatusUnprocessableEntity,
			Message: "Validation failed",
			Data:    data,
		}
	}

	return nil
}

func (in EventHttp) validateUpdateEventRequest(req model.UpdateEventRequest) error {
	if err := in.Validate.Struct(req); err != nil {
		return err
	}

	data := make(map[string]any)
	if req.Category != nil && !constant.EventCategories[*req.Category] {
		data["Category"] = "oneof"
	}
	if req.Status != nil && !constant.EventStatuses[*req.Status] {
		data["Status"] = "oneof"
	}

	if len(data) > 0 {
		return &errs.HttpError{
			Code:    http.StatusUnprocessableEntity,
			Message: "Validation failed",
			Data:    data,
		}
	}

	return nil
}
