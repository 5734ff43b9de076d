package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/contract"
	"event-ticket/common/errs"
	"event-ticket/common/otel"
	"event-ticket/model"
	"event-ticket/outbound/sqlgen"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/text/message"
)

type OrderIntentHttp struct {
	Db                   contract.DbConn
	Querier              *sqlgen.Queries
	Cache                *redis.Client
	Publisher            jetstream.Publisher
	Validate             *validator.Validate
	EurCurrencyFormatter *message.Printer

	TimeNow func() time.Time

	baseUrl string
}

func RegisterOrderIntentHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	db contract.DbConn,
	querier *sqlgen.Queries,
	cache *redis.Client,
	publisher jetstream.Publisher,
	validate *validator.Validate,
	eurCurrencyFormatter *message.Printer,
) *OrderIntentHttp {
	in := &OrderIntentHttp{
		Db:                   db,
		Querier:              querier,
		Cache:                cache,
		Publisher:            publisher,
		Validate:             validate,
		EurCurrencyFormatter: eurCurrencyFormatter,
		TimeNow:              time.Now,

		baseUrl: cfg.GetString("server.base_url"),
	}

	mux.HandleFunc("GET /api/order-intents", in.index)
	mux.HandleFunc("GET /api/order-intents/{id}", in.show)
	mux.HandleFunc("POST /api/order-intents", in.create)
	mux.HandleFunc("PUT /api/order-intents/{id}", in.update)
	mux.HandleFunc("DELETE /api/order-intents/{id}", in.delete)
	mux.HandleFunc("POST /api/order-intents/clean-expired", in.cleanExpired)
	mux.HandleFunc("POST /api/validate-order-intent/{id}", in.validate)

	return in
}

func (in OrderIntentHttp) index(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "OrderIntentHttp.index")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	intents, err := in.Querier.ListOrderIntents(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list order intents", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, intents)
}

func (in OrderIntentHttp) show(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "OrderIntentHttp.show")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	intent, err := in.Querier.FindOrderIntentById(ctx, id)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Order intent not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find order intent", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, intent)
}

func (in OrderIntentHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "OrderIntentHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create order intent receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	expirationDate, err := parseDateTime(req.ExpirationDate)
	if err != nil {
		writeErrorResponse(w, &errs.HttpError{
			Code:    http.StatusUnprocessableEntity,
			Message: "Validation failed",
			Data:    map[string]any{"ExpirationDate": "datetime"},
		})
		return
	}

	_, err = in.Querier.FindEventById(ctx, req.EventID)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Event not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find event", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	intent, err := in.Querier.InsertOrderIntent(ctx, sqlgen.InsertOrderIntentParams{
		EventID:        req.EventID,
		Price:          req.Price,
		Type:           req.Type,
		UserEmail:      req.UserEmail,
		UserPhone:      req.UserPhone,
		ExpirationDate: expirationDate,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert order intent", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "insert order intent success", traceIdAttr, slog.Any(constant.LogFieldResponse, intent.ID))

	writeJSONResponse(w, http.StatusCreated, intent)
}

func (in OrderIntentHttp) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	var req model.UpdateOrderIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "OrderIntentHttp.update")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "update order intent receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	var expirationDate *time.Time
	if req.ExpirationDate != nil {
		parsed, err := parseDateTime(*req.ExpirationDate)
		if err != nil {
			writeErrorResponse(w, &errs.HttpError{
				Code:    http.StatusUnprocessableEntity,
				Message: "Validation failed",
				Data:    map[string]any{"ExpirationDate": "datetime"},
			})
			return
		}
		expirationDate = &parsed
	}

	intent, err := in.Querier.UpdateOrderIntent(ctx, sqlgen.UpdateOrderIntentParams{
		ID:             id,
		Price:          req.Price,
		Type:           req.Type,
		UserEmail:      req.UserEmail,
		UserPhone:      req.UserPhone,
		ExpirationDate: expirationDate,
	})
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Order intent not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to update order intent", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, intent)
}

func (in OrderIntentHttp) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "OrderIntentHttp.delete")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	tag, err := in.Querier.DeleteOrderIntent(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete order intent", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if tag.RowsAffected() == 0 {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Order intent not found"})
		return
	}

	writeJSONResponse(w, http.StatusOK, model.MessageResponse{Message: "Order intent deleted"})
}

func (in OrderIntentHttp) cleanExpired(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "OrderIntentHttp.cleanExpired")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	deleted, err := in.Querier.DeleteExpiredOrderIntents(ctx, in.TimeNow())
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete expired order intents", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "clean expired order intents success", traceIdAttr, slog.Any(constant.LogFieldResponse, deleted))

	writeJSONResponse(w, http.StatusOK, model.CleanExpiredIntentsResponse{
		Message:      "Expired order intents cleaned",
		DeletedCount: deleted,
	})
}

// validate turns a pending intent into an order with its ticket. The
// intent row is consumed inside the same transaction so a replay of the
// call cannot issue a second ticket.
func (in OrderIntentHttp) validate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPathValue(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "OrderIntentHttp.validate")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "validate order intent receive request", slog.Any(constant.LogFieldPayload, id), traceIdAttr)

	apiKey := ApiKeyFromContext(ctx)
	if apiKey == "" {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusUnauthorized, Message: "Unauthorized"})
		return
	}

	lockKey := fmt.Sprintf(constant.OrderIntentLock, id)
	locked, err := in.Cache.SetNX(ctx, lockKey, true, constant.OrderIntentLockDefaultTTL).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to set order intent lock", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if !locked {
		slog.DebugContext(ctx, "order intent already being validated", traceIdAttr)
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Order intent is being validated"})
		return
	}

	// Release the lock even when the client has gone away mid-request.
	releaseCtx := context.WithoutCancel(ctx)
	defer func() {
		if err := in.Cache.Del(releaseCtx, lockKey).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to release order intent lock", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}()

	tx, err := in.Db.Begin(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to begin transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.ErrorContext(ctx, "failed to rollback transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}()

	withTx := in.Querier.WithTx(tx)

	intent, err := withTx.FindOrderIntentById(ctx, id)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Order intent not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find order intent", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if intent.ExpirationDate.Before(in.TimeNow()) {
		slog.DebugContext(ctx, "order intent expired", traceIdAttr)
		writeErrorResponse(w, &errs.HttpError{
			Code:    http.StatusBadRequest,
			Message: "Order intent validation failed",
			Cause:   fmt.Errorf("order intent has expired"),
		})
		return
	}

	event, err := withTx.FindEventById(ctx, intent.EventID)
	if err == pgx.ErrNoRows {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Event not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find event", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	ticketTypes, err := withTx.ListTicketTypesByEventId(ctx, event.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list ticket types", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	ticketType, ok := matchTicketType(ticketTypes, intent.Price)
	if !ok {
		slog.DebugContext(ctx, "no ticket type for event", traceIdAttr)
		writeErrorResponse(w, &errs.HttpError{
			Code:    http.StatusBadRequest,
			Message: "Order intent validation failed",
			Cause:   fmt.Errorf("no ticket type available for this event"),
		})
		return
	}

	orderNumber := newOrderNumber()
	orderId, err := withTx.InsertOrder(ctx, sqlgen.InsertOrderParams{
		Number:  orderNumber,
		EventID: event.ID,
		Price:   intent.Price,
		Type:    intent.Type,
		Payment: constant.OrderPaymentPending,
		Info:    "",
		ApiKey:  apiKey,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert order", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	ticketKey := newTicketKey()
	_, err = withTx.InsertTicket(ctx, sqlgen.InsertTicketParams{
		Key:          ticketKey,
		EventID:      event.ID,
		OrderID:      orderId,
		TicketTypeID: ticketType.ID,
		Email:        intent.UserEmail,
		Phone:        intent.UserPhone,
		Price:        intent.Price,
		Status:       constant.TicketStatusActive,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert ticket", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	tag, err := withTx.DeleteOrderIntent(ctx, intent.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete order intent", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if tag.RowsAffected() == 0 {
		slog.ErrorContext(ctx, "order intent already consumed", traceIdAttr)
		writeErrorResponse(w, fmt.Errorf("order intent already consumed"))
		return
	}

	err = tx.Commit(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	downloadUrl := fmt.Sprintf("%s/api/download-tickets/%s", in.baseUrl, orderNumber)

	emailPayload := model.SendEmailEventMessage{
		To:      intent.UserEmail,
		Subject: "Ticket Issued",
		Body:    in.buildTicketIssuedEmailBody(orderNumber, event.Title, ticketType.Name, intent.Price, downloadUrl),
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, emailPayload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish ticket issued message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	slog.InfoContext(ctx, "validate order intent success", traceIdAttr, slog.Any(constant.LogFieldResponse, orderNumber))

	writeJSONResponse(w, http.StatusOK, model.ValidateOrderIntentResponse{
		Message:           "Order intent validated",
		OrderNumber:       orderNumber,
		TicketDownloadUrl: downloadUrl,
	})
}

func (in OrderIntentHttp) buildTicketIssuedEmailBody(orderNumber, eventTitle, typeName string, price int64, downloadUrl string) string {
	priceFormattedEur := in.EurCurrencyFormatter.Sprintf("%d €", price)

	return fmt.Sprintf(constant.EmailTicketIssuedTemplate,
		orderNumber,
		eventTitle,
		typeName,
		priceFormattedEur,
		downloadUrl,
	)
}

func newOrderNumber() string {
	return "ORD-" + ulid.Make().String()
}

func newTicketKey() string {
	return "TIK-" + ulid.Make().String()
}

// matchTicketType picks the type whose price is closest to the intent
// price. Ties keep the earliest type, so callers must pass types in a
// stable order.
func matchTicketType(types []model.TicketType, price int64) (model.TicketType, bool) {
	if len(types) == 0 {
		return model.TicketType{}, false
	}

	best := types[0]
	bestDiff := absDiff(best.Price, price)
	for _, t := range types[1:] {
		diff := absDiff(t.Price, price)
		if diff < bestDiff {
			best = t
			bestDiff = diff
		}
	}

	return best, true
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
