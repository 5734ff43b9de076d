package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime/pprof"
	"time"

	"event-ticket/common/otel"
	inboundCron "event-ticket/inbound/cron"
	inboundHttp "event-ticket/inbound/http"
	"event-ticket/outbound/pdf"
	"event-ticket/outbound/sqlgen"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	if cfg.GetString("env") == "dev" {
		cpu, err := os.Create("http-cpu.prof")
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer cpu.Close()

		err = pprof.StartCPUProfile(cpu)
		if err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()

		mem, err := os.Create("http-mem.prof")
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer mem.Close()

		err = pprof.WriteHeapProfile(mem)
		if err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
		defer mem.Close()
	}

	if cfg.GetBool("otel.enabled") {
		shutdown, err := otel.InitProvider(ctx, cfg.GetString("otel.endpoint"))
		if err != nil {
			log.Fatalln("unable to init otel provider", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("unable to shutdown otel provider", slog.Any("error", err))
			}
		}()
	}

	validate := validator.New()

	db := newDb(cfg)
	defer db.Close()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	createStreamWorkQueue(ctx, js)

	querier := sqlgen.New(db)
	eurPrinter := message.NewPrinter(language.French)
	renderer := &pdf.Renderer{EurCurrencyFormatter: eurPrinter}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(20 * time.Second)
	apiKeyMiddleware := inboundHttp.ApiKeyMiddleware(querier, cacheClient)

	inboundHttp.RegisterDocumentationHttp(mux)
	inboundHttp.RegisterEventHttp(mux, cfg, querier, cacheClient, validate)
	inboundHttp.RegisterTicketTypeHttp(mux, querier, validate)
	inboundHttp.RegisterOrderIntentHttp(mux, cfg, db, querier, cacheClient, js, validate, eurPrinter)
	inboundHttp.RegisterOrderHttp(mux, querier, validate)
	inboundHttp.RegisterTicketHttp(mux, querier, renderer)
	inboundHttp.RegisterApiRequestHttp(mux, querier, js, validate)

	intentCron := &inboundCron.IntentCron{
		Cfg:     cfg,
		Querier: querier,
		TimeNow: time.Now,
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.CorsMiddleware(apiKeyMiddleware(mux))),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started")

	go func() {
		intentCron.Start(ctx)
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}
