package deps

import (
	"github.com/and161185/clubhouse/internal/auth"
	"github.com/and161185/clubhouse/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

type Deps struct {
	Logger       *zap.SugaredLogger
	TokenManager *auth.TokenManager
	Revocations  *auth.Revocations
	Registry     *prometheus.Registry
	Metrics      *metrics.Metrics
}

func NewDependencies(secretKey, logFile string) *Deps {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout"}
	if logFile != "" {
		logCfg.OutputPaths = append(logCfg.OutputPaths, logFile)
	}

	logger := zap.Must(logCfg.Build())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := Deps{
		Logger:       logger.Sugar(),
		TokenManager: auth.NewTokenManager(secretKey),
		Revocations:  auth.NewRevocations(10000),
		Registry:     reg,
		Metrics:      metrics.MustNewMetrics(reg),
	}

	return &deps
}
