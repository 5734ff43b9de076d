package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/errs"
	"event-ticket/common/otel"
	"event-ticket/outbound/pdf"
	"event-ticket/outbound/sqlgen"

	"github.com/jackc/pgx/v5"
)

type TicketHttp struct {
	Querier  *sqlgen.Queries
	Renderer *pdf.Renderer
}

func RegisterTicketHttp(
	mux *http.ServeMux,
	querier *sqlgen.Queries,
	renderer *pdf.Renderer,
) *TicketHttp {
	in := &TicketHttp{
		Querier:  querier,
		Renderer: renderer,
	}

	mux.HandleFunc("GET /api/download-tickets/{orderNumber}", in.download)
	mux.HandleFunc("GET /api/orders/{id}/tickets", in.indexByOrder)

	return in
}

// download streams the ticket document for an order. The route is open
// so the link mailed to the buyer works without an api key.
func (in TicketHttp) download(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "TicketHttp.download")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	orderNumber := r.PathValue("orderNumber")
	if orderNumber == "" {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid order number"})
		return
	}

	order, err := in.Querier.FindOrderByNumber(ctx, orderNumber)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Order not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find order by number", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	event, err := in.Querier.FindEventById(ctx, order.EventID)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Event not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find event", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	tickets, err := in.Querier.ListTicketDetailsByOrderId(ctx, order.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list tickets", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if len(tickets) == 0 {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "No tickets for this order"})
		return
	}

	document, err := in.Renderer.Render(order, event, tickets)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render ticket document", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "download tickets success", traceIdAttr, slog.Any(constant.LogFieldResponse, orderNumber))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "tickets-"+orderNumber+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(document)
}

func (in TicketHttp) indexByOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "TicketHttp.indexByOrder")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	orderId, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	tickets, err := in.Querier.ListTicketsByOrderId(ctx, orderId)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list tickets", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, tickets)
}
