// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"clearance-workers/internal/clearance/catalog"
	"clearance-workers/internal/common/aws"
	"clearance-workers/internal/common/config"
	"clearance-workers/internal/common/database"
	"clearance-workers/internal/common/logger"
	"clearance-workers/internal/common/observability"

	// Intake Workers (6)
	cs "clearance-workers/internal/workers/intake/classify-submission"
	dd "clearance-workers/internal/workers/intake/derive-documents"
	ee "clearance-workers/internal/workers/intake/evaluate-eligibility"
	rs "clearance-workers/internal/workers/intake/record-submission"
	ro "clearance-workers/internal/workers/intake/render-outcome"
	sh "clearance-workers/internal/workers/intake/search-history"

	// Document Workers (1)
	pa "clearance-workers/internal/workers/documents/parse-acord"

	// Communication Workers (1)
	es "clearance-workers/internal/workers/communication/email-send"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Every county, reason and document the rules reference must resolve
	// before any job is picked up.
	if err := catalog.Validate(); err != nil {
		zapLog.Fatal("catalog validation failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe Client with retry ---
	var zeebeClient zbc.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebeClient, err = zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		// Test the connection with context
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		// Test the connection
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		// Test the connection with context
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init SES client ---
	var sesClient *aws.SESClient
	if cfg.Integrations.AWS.SES.Enabled {
		sesClient, err = aws.NewSESClient(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("ses client failed", zap.Error(err))
		}
		zapLog.Info("SES client initialized")
	}

	historyIndex := cfg.Underwriting.HistoryIndex
	if historyIndex == "" {
		historyIndex = "submission-history"
	}
	recentCacheKey := historyIndex + ":recent"

	// --- START: Register ALL 8 Workers ---

	// --- 1. Intake Workers (6) ---
	if cfg.Workers[ee.TaskType].Enabled {
		handler := ee.NewHandler(
			&ee.Config{
				Timeout: time.Duration(cfg.Workers[ee.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, ee.TaskType, cfg.Workers[ee.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[dd.TaskType].Enabled {
		handler := dd.NewHandler(
			&dd.Config{
				Timeout: time.Duration(cfg.Workers[dd.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, dd.TaskType, cfg.Workers[dd.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[cs.TaskType].Enabled {
		handler := cs.NewHandler(
			&cs.Config{
				Timeout: time.Duration(cfg.Workers[cs.TaskType].Timeout) * time.Millisecond,
			},
			log,
		)
		startWorker(zeebeClient, cs.TaskType, cfg.Workers[cs.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[ro.TaskType].Enabled {
		roCfg := ro.LoadConfig()
		roCfg.Timeout = time.Duration(cfg.Workers[ro.TaskType].Timeout) * time.Millisecond
		if cfg.Underwriting.ReferralManager != "" {
			roCfg.ReferralManager = cfg.Underwriting.ReferralManager
		}
		handler := ro.NewHandler(roCfg, obs, log)
		startWorker(zeebeClient, ro.TaskType, cfg.Workers[ro.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[rs.TaskType].Enabled {
		handler := rs.NewHandler(
			&rs.Config{
				Timeout:        time.Duration(cfg.Workers[rs.TaskType].Timeout) * time.Millisecond,
				HistoryIndex:   historyIndex,
				RecentCacheKey: recentCacheKey,
			},
			rs.ServiceDependencies{
				DB:      pg.DB,
				Indexer: rs.NewESIndexer(esClient.Client, historyIndex),
				Cache:   redis,
			},
			log,
		)
		startWorker(zeebeClient, rs.TaskType, cfg.Workers[rs.TaskType], handler.Handle, zapLog)
	}

	if cfg.Workers[sh.TaskType].Enabled {
		shCfg := sh.LoadConfig()
		shCfg.Timeout = time.Duration(cfg.Workers[sh.TaskType].Timeout) * time.Millisecond
		shCfg.HistoryIndex = historyIndex
		shCfg.RecentCacheKey = recentCacheKey
		if cfg.Underwriting.HistoryCacheTTL > 0 {
			shCfg.CacheTTL = time.Duration(cfg.Underwriting.HistoryCacheTTL) * time.Second
		}
		handler := sh.NewHandler(
			shCfg,
			sh.ServiceDependencies{
				Searcher: sh.NewESSearcher(esClient.Client, historyIndex),
				Cache:    redis,
			},
			log,
		)
		startWorker(zeebeClient, sh.TaskType, cfg.Workers[sh.TaskType], handler.Handle, zapLog)
	}

	// --- 2. Document Workers (1) ---
	if cfg.Workers[pa.TaskType].Enabled {
		paCfg := pa.LoadConfig()
		paCfg.Timeout = time.Duration(cfg.Workers[pa.TaskType].Timeout) * time.Millisecond
		handler := pa.NewHandler(paCfg, log)
		startWorker(zeebeClient, pa.TaskType, cfg.Workers[pa.TaskType], handler.Handle, zapLog)
	}

	// --- 3. Communication Workers (1) ---
	if cfg.Workers[es.TaskType].Enabled {
		esCfg := es.LoadConfig()
		esCfg.Timeout = time.Duration(cfg.Workers[es.TaskType].Timeout) * time.Millisecond
		if cfg.Integrations.AWS.SES.FromEmail != "" {
			esCfg.FromEmail = cfg.Integrations.AWS.SES.FromEmail
		}
		deps := es.ServiceDependencies{}
		if sesClient != nil {
			deps.Sender = sesClient
		} else {
			esCfg.DryRun = true
		}
		handler := es.NewHandler(esCfg, deps, log)
		startWorker(zeebeClient, es.TaskType, cfg.Workers[es.TaskType], handler.Handle, zapLog)
	}

	zapLog.Info("All 8 workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_ = shutdownCtx

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handlerFunc func(worker.JobClient, entities.Job), log *zap.Logger) {
	if !wcfg.Enabled {
		log.Info("worker disabled", zap.String("taskType", taskType))
		return
	}

	client.NewJobWorker().
		JobType(taskType).
		Handler(handlerFunc).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	log.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
		zap.Int("timeout_ms", wcfg.Timeout),
	)
}
