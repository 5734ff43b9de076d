package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/errs"
	"event-ticket/common/otel"
	"event-ticket/model"
	"event-ticket/outbound/sqlgen"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
)

type TicketTypeHttp struct {
	Querier  *sqlgen.Queries
	Validate *validator.Validate
}

func RegisterTicketTypeHttp(
	mux *http.ServeMux,
	querier *sqlgen.Queries,
	validate *validator.Validate,
) *TicketTypeHttp {
	in := &TicketTypeHttp{
		Querier:  querier,
		Validate: validate,
	}

	mux.HandleFunc("GET /api/events/{eventId}/ticket-types", in.indexByEvent)
	mux.HandleFunc("GET /api/ticket-types/{id}", in.show)
	mux.HandleFunc("POST /api/ticket-types", in.create)
	mux.HandleFunc("PUT /api/ticket-types/{id}", in.update)
	mux.HandleFunc("DELETE /api/ticket-types/{id}", in.delete)

	return in
}

func (in TicketTypeHttp) indexByEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "TicketTypeHttp.indexByEvent")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	eventId, err := parseIDPathValue(r, "eventId")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	_, err = in.Querier.FindEventById(ctx, eventId)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Event not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find event", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	types, err := in.Querier.ListTicketTypesByEventId(ctx, eventId)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list ticket types", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, types)
}

func (in TicketTypeHttp) show(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "TicketTypeHttp.show")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ticketType, err := in.Querier.FindTicketTypeById(ctx, id)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Ticket type not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find ticket type", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, ticketType)
}

func (in TicketTypeHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTicketTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "TicketTypeHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create ticket type receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	_, err := in.Querier.FindEventById(ctx, req.EventID)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Event not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find event", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	ticketType, err := in.Querier.InsertTicketType(ctx, sqlgen.InsertTicketTypeParams{
		EventID:       req.EventID,
		Name:          req.Name,
		Price:         req.Price,
		Quantity:      req.Quantity,
		RealQuantity:  req.RealQuantity,
		TotalQuantity: req.TotalQuantity,
		Description:   req.Description,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert ticket type", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "insert ticket type success", traceIdAttr, slog.Any(constant.LogFieldResponse, ticketType.ID))

	writeJSONResponse(w, http.StatusCreated, ticketType)
}

func (in TicketTypeHttp) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var req model.UpdateTicketTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "TicketTypeHttp.update")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "update ticket type receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	ticketType, err := in.Querier.UpdateTicketType(ctx, sqlgen.UpdateTicketTypeParams{
		ID:            id,
		Name:          req.Name,
		Price:         req.Price,
		Quantity:      req.Quantity,
		RealQuantity:  req.RealQuantity,
		TotalQuantity: req.TotalQuantity,
		Description:   req.Description,
	})
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Ticket type not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to update ticket type", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, ticketType)
}

func (in TicketTypeHttp) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "TicketTypeHttp.delete")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	tag, err := in.Querier.DeleteTicketType(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete ticket type", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if tag.RowsAffected() == 0 {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Ticket type not found"})
		return
	}

	writeJSONResponse(w, http.StatusOK, model.MessageResponse{Message: "Ticket type deleted"})
}
