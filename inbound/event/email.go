package event

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"event-ticket/common/constant"
	"event-ticket/model"
	emailOutbound "event-ticket/outbound/email"

	"github.com/oklog/ulid/v2"
)

type EmailEvent struct {
	Sender  emailOutbound.Sender
	Timeout time.Duration
}

func (in EmailEvent) SendEmailHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.SendEmailEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "send email event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	traceIdAttr := slog.String(constant.LogFieldTraceId, ulid.Make().String())
	reqAttr := slog.Any(constant.LogFieldPayload, string(msg))

	err = in.Sender.Send([]string{req.To}, req.Subject, req.Body)
	if err != nil {
		slog.ErrorContext(ctx, "send email event send error", slog.Any(constant.LogFieldErr, err), reqAttr, traceIdAttr)
		return err
	}

	slog.DebugContext(ctx, "send email event success", reqAttr, traceIdAttr)

	return nil
}
