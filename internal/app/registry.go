package app

import (
	"go-logbook/internal/auth"
	"go-logbook/internal/chillerlog"
	"go-logbook/internal/config"
	"go-logbook/internal/ledger"
	"go-logbook/internal/logbook"
	"go-logbook/internal/messaging/kafka"
	"go-logbook/internal/passwordreset"
	"go-logbook/internal/policy"
	"go-logbook/internal/user"
	"go-logbook/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// modules is the dependency graph shared by the api, worker, consumer and
// admin processes. Each process uses the subset it needs.
type modules struct {
	cfg    config.Config
	logger *zap.Logger

	engine *policy.Engine

	userRepo    user.Repository
	authRepo    auth.Repository
	resetRepo   passwordreset.Repository
	outboxRepo  kafka.OutboxRepository
	ledgerRepo  ledger.Repository
	chillerRepo chillerlog.Repository
	logbookRepo logbook.Repository

	sessions   *auth.SessionRevoker
	tokens     *auth.TokenManager
	userSvc    user.Service
	authSvc    auth.Service
	resetSvc   passwordreset.Service
	ledgerSvc  ledger.Service
	chillerSvc chillerlog.Service
	logbookSvc logbook.Service
}

func newModules(cfg config.Config, db *gorm.DB, rdb *redis.Client, logger *zap.Logger) (*modules, error) {
	engine, err := policy.NewEngine()
	if err != nil {
		return nil, err
	}

	m := &modules{cfg: cfg, logger: logger, engine: engine}

	// --- Repositories ---
	m.userRepo = user.NewRepository(db)
	m.authRepo = auth.NewRepository(db)
	m.resetRepo = passwordreset.NewRepository(db)
	m.outboxRepo = kafka.NewOutboxRepository(db)
	m.ledgerRepo = ledger.NewRepository(db)
	m.chillerRepo = chillerlog.NewRepository(db)
	m.logbookRepo = logbook.NewRepository(db)

	// --- Services ---
	m.sessions = auth.NewSessionRevoker(m.authRepo, logger)
	m.tokens = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)
	m.userSvc = user.NewService(db, m.userRepo, engine, m.sessions, logger)
	m.authSvc = auth.NewService(db, m.authRepo, m.userRepo, m.tokens, cfg.Auth.RefreshTokenTTL, logger)

	mailer := passwordreset.NewMailer(passwordreset.SMTPConfig{
		Host:     cfg.Mail.SMTPHost,
		Port:     cfg.Mail.SMTPPort,
		Username: cfg.Mail.SMTPUsername,
		Password: cfg.Mail.SMTPPassword,
		From:     cfg.Mail.From,
	}, logger)
	m.resetSvc = passwordreset.NewService(db, m.resetRepo, m.userRepo, m.sessions, mailer, passwordreset.Config{
		TokenTTL:        cfg.Reset.TokenTTL,
		FrontendBaseURL: cfg.Reset.FrontendBaseURL,
	}, logger)

	m.ledgerSvc = ledger.NewService(db, m.ledgerRepo, m.outboxRepo, rdb, engine, ledger.Config{
		CacheTTL:         cfg.ReportsCacheTTL,
		ClientTypeFilter: cfg.ReportsClientTypeFilter,
	}, logger)

	chillerApprover := workflow.NewApprover[chillerlog.ChillerLog](db, engine, m.ledgerSvc, logger)
	m.chillerSvc = chillerlog.NewService(db, m.chillerRepo, chillerApprover, m.ledgerSvc, engine, cfg.Location(), logger)

	// Logbook entries are approved without a ledger recorder.
	logbookApprover := workflow.NewApprover[logbook.Entry](db, engine, nil, logger)
	m.logbookSvc = logbook.NewService(db, m.logbookRepo, logbookApprover, engine, logger)

	return m, nil
}

// reportSources lists every log table whose approved rows feed the ledger.
func (m *modules) reportSources() []ledger.Source {
	return []ledger.Source{
		chillerlog.NewReportSource(m.chillerRepo),
	}
}

func (m *modules) reconciler() *ledger.Reconciler {
	return ledger.NewReconciler(m.ledgerSvc, m.ledgerRepo, m.reportSources(), m.cfg.Worker.ReconcileBatch, m.logger)
}

func registerModules(router *gin.Engine, m *modules, rdb *redis.Client) {
	// --- Handlers ---
	authHandler := auth.NewHandler(m.authSvc, auth.CookieConfig{
		Secure:     m.cfg.IsProduction(),
		AccessTTL:  m.cfg.Auth.AccessTokenTTL,
		RefreshTTL: m.cfg.Auth.RefreshTokenTTL,
	}, m.logger)
	resetHandler := passwordreset.NewHandler(m.resetSvc, m.logger)
	userHandler := user.NewHandler(m.userSvc, m.logger)
	ledgerHandler := ledger.NewHandler(m.ledgerSvc, m.logger)
	chillerHandler := chillerlog.NewHandler(m.chillerSvc, m.logger)
	logbookHandler := logbook.NewHandler(m.logbookSvc, m.logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, m.authSvc, m.cfg.Auth.LoginPerMinute, m.logger)
		passwordreset.RegisterRoutes(api, resetHandler, m.cfg.Reset.PerMinute, m.logger)
		user.RegisterRoutes(api, userHandler, m.authSvc, m.engine, m.logger)
		chillerlog.RegisterRoutes(api, chillerHandler, m.authSvc, m.engine, rdb, m.logger)
		logbook.RegisterRoutes(api, logbookHandler, m.authSvc, m.engine, m.logger)
		ledger.RegisterRoutes(api, ledgerHandler, m.authSvc, m.engine, m.logger)
	}
}
