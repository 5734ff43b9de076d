package cron

import (
	"context"
	"log/slog"
	"time"

	"event-ticket/common"
	"event-ticket/common/constant"
	"event-ticket/outbound/sqlgen"

	"github.com/spf13/viper"
)

type IntentCron struct {
	Cfg     *viper.Viper
	Querier *sqlgen.Queries

	TimeNow func() time.Time
}

func (in IntentCron) Start(ctx context.Context) {
	cleanTicker := time.NewTicker(in.Cfg.GetDuration("cron.intent.clean_interval"))
	defer cleanTicker.Stop()

	// Run initial clean
	in.Clean(ctx)

	slog.Info("intent cron started")

	// Block in the main function, not in a goroutine
	for {
		select {
		case <-cleanTicker.C:
			in.Clean(ctx)
		case <-ctx.Done():
			slog.Info("intent cron stopped")
			return
		}
	}
}

func (in IntentCron) Clean(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, in.Cfg.GetDuration("cron.intent.clean_timeout"))
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.DebugContext(ctx, "cleaning expired order intents", traceIdAttr)

	deleted, err := in.Querier.DeleteExpiredOrderIntents(ctx, in.TimeNow())
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete expired order intents", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return
	}

	if deleted > 0 {
		slog.InfoContext(ctx, "expired order intents cleaned", traceIdAttr, slog.Any(constant.LogFieldResponse, deleted))
		return
	}

	slog.DebugContext(ctx, "no expired order intents", traceIdAttr)
}
