package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/common/errs"
	"event-ticket/common/otel"
	"event-ticket/model"
	"event-ticket/outbound/sqlgen"

	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go/jetstream"
)

type ApiRequestHttp struct {
	Querier   *sqlgen.Queries
	Publisher jetstream.Publisher
	Validate  *validator.Validate
}

func RegisterApiRequestHttp(
	mux *http.ServeMux,
	querier *sqlgen.Queries,
	publisher jetstream.Publisher,
	validate *validator.Validate,
) *ApiRequestHttp {
	in := &ApiRequestHttp{
		Querier:   querier,
		Publisher: publisher,
		Validate:  validate,
	}

	mux.HandleFunc("POST /api/request", in.create)

	return in
}

// create registers a new api consumer. The generated key is only ever
// delivered by email, never in the response body.
func (in ApiRequestHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateApiRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "ApiRequestHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create api request receive request", slog.Any(constant.LogFieldPayload, req.Email), traceIdAttr)

	emailExists, err := in.Querier.ApiRequestEmailExists(ctx, req.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check api request email", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if emailExists {
		writeErrorResponse(w, &errs.HttpError{
			Code:    http.StatusUnprocessableEntity,
			Message: "Validation failed",
			Data:    map[string]any{"Email": "unique"},
		})
		return
	}

	apiKey, err := generateApiKey()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate api key", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	returnId, err := in.Querier.InsertApiRequest(ctx, sqlgen.InsertApiRequestParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Email:     req.Email,
		City:      req.City,
		Address:   req.Address,
		ApiKey:    apiKey,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert api request", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	emailPayload := model.SendEmailEventMessage{
		To:      req.Email,
		Subject: "Your API Key",
		Body:    fmt.Sprintf(constant.EmailApiKeyTemplate, req.FirstName+" "+req.LastName, apiKey),
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, emailPayload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish api key message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "insert api request success", traceIdAttr, slog.Any(constant.LogFieldResponse, returnId))

	writeJSONResponse(w, http.StatusCreated, model.MessageResponse{Message: "Request received, your api key will be sent by email"})
}
