package cmd

import (
	"context"
	"time"

	inboundCron "event-ticket/inbound/cron"
	"event-ticket/outbound/sqlgen"
)

// runCleanIntentsCmd performs a single cleanup pass, for use from an
// external scheduler instead of the built-in ticker.
func runCleanIntentsCmd(ctx context.Context) {
	cfg := newCfg("env")

	db := newDb(cfg)
	defer db.Close()

	intentCron := inboundCron.IntentCron{
		Cfg:     cfg,
		Querier: sqlgen.New(db),
		TimeNow: time.Now,
	}

	intentCron.Clean(ctx)
}
