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

const ordersPerPage = 10

type OrderHttp struct {
	Querier  *sqlgen.Queries
	Validate *validator.Validate
}

func RegisterOrderHttp(
	mux *http.ServeMux,
	querier *sqlgen.Queries,
	validate *validator.Validate,
) *OrderHttp {
	in := &OrderHttp{
		Querier:  querier,
		Validate: validate,
	}

	mux.HandleFunc("GET /api/orders", in.index)
	mux.HandleFunc("GET /api/orders/{id}", in.show)
	mux.HandleFunc("GET /api/orders/number/{number}", in.showByNumber)
	mux.HandleFunc("GET /api/user/orders", in.indexByUser)
	mux.HandleFunc("POST /api/orders", in.create)
	mux.HandleFunc("PUT /api/orders/{id}", in.update)
	mux.HandleFunc("DELETE /api/orders/{id}", in.delete)

	return in
}

func (in OrderHttp) index(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "OrderHttp.index")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	orders, err := in.Querier.ListOrders(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list orders", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, orders)
}

// indexByUser lists the caller's own orders, newest first.
func (in OrderHttp) indexByUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "OrderHttp.indexByUser")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	apiKey := ApiKeyFromContext(ctx)
	if apiKey == "" {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusUnauthorized, Message: "Unauthorized"})
		return
	}

	page := parsePageQuery(r)

	total, err := in.Querier.CountOrdersByApiKey(ctx, apiKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count user orders", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	orders, err := in.Querier.ListOrdersByApiKey(ctx, sqlgen.ListOrdersByApiKeyParams{
		ApiKey: apiKey,
		Limit:  ordersPerPage,
		Offset: (page - 1) * ordersPerPage,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to list user orders", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.ListOrdersResponse{
		Orders:  orders,
		Page:    page,
		PerPage: ordersPerPage,
		Total:   total,
	})
}

func (in OrderHttp) show(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "OrderHttp.show")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	order, err := in.Querier.FindOrderById(ctx, id)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Order not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find order", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, order)
}

func (in OrderHttp) showByNumber(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "OrderHttp.showByNumber")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	number := r.PathValue("number")
	if number == "" {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid order number"})
		return
	}

	order, err := in.Querier.FindOrderByNumber(ctx, number)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Order not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find order by number", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, order)
}

func (in OrderHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "OrderHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create order receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	apiKey := ApiKeyFromContext(ctx)
	if apiKey == "" {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusUnauthorized, Message: "Unauthorized"})
		return
	}

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

	orderId, err := in.Querier.InsertOrder(ctx, sqlgen.InsertOrderParams{
		Number:  req.Number,
		EventID: req.EventID,
		Price:   req.Price,
		Type:    req.Type,
		Payment: req.Payment,
		Info:    req.Info,
		ApiKey:  apiKey,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert order", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	order, err := in.Querier.FindOrderById(ctx, orderId)
	if err != nil {
		slog.ErrorContext(ctx, "failed to find order", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "insert order success", traceIdAttr, slog.Any(constant.LogFieldResponse, orderId))

	writeJSONResponse(w, http.StatusCreated, order)
}

func (in OrderHttp) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var req model.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "OrderHttp.update")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "update order receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	order, err := in.Querier.UpdateOrder(ctx, sqlgen.UpdateOrderParams{
		ID:      id,
		Price:   req.Price,
		Type:    req.Type,
		Payment: req.Payment,
		Info:    req.Info,
	})
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Order not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to update order", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, order)
}

func (in OrderHttp) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "OrderHttp.delete")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	tag, err := in.Querier.DeleteOrder(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete order", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if tag.RowsAffected() == 0 {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Order not found"})
		return
	}

	writeJSONResponse(w, http.StatusOK, model.MessageResponse{Message: "Order deleted"})
}
