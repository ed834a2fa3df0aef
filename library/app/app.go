package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Astemirdum/libranet/library/config"
	"github.com/Astemirdum/libranet/library/internal/ledger"
	"github.com/Astemirdum/libranet/library/internal/repository"
	"github.com/Astemirdum/libranet/library/internal/service"
	"github.com/Astemirdum/libranet/pkg/logger"
)

type App struct {
	cfg    *config.Config
	log    *zap.Logger
	clock  clockwork.Clock
	ledger *ledger.Ledger
	svc    *service.Service
}

func New(cfg *config.Config, clock clockwork.Clock, reg prometheus.Registerer, log *zap.Logger) *App {
	fines := ledger.New(cfg.Fines.PerDay)
	repo := repository.NewRepository(log)
	svc := service.NewService(repo, fines, service.NewMetrics(reg), log)
	return &App{
		cfg:    cfg,
		log:    log,
		clock:  clock,
		ledger: fines,
		svc:    svc,
	}
}

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	defer log.Sync() //nolint:errcheck

	reg := prometheus.NewRegistry()
	a := New(cfg, clockwork.NewRealClock(), reg, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := a.Demo(ctx); err != nil {
		log.Error("demo", zap.Error(err))
		return
	}
	logMetrics(log, reg)
	log.Info("demo finished", zap.Ints("debtors", a.ledger.Debtors()))
}

func logMetrics(log *zap.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Warn("gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := []zap.Field{zap.String("name", mf.GetName()), zap.Float64("value", m.GetCounter().GetValue())}
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			log.Debug("metric", fields...)
		}
	}
}
