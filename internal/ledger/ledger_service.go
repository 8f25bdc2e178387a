package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go-logbook/internal/events"
	ledgererrors "go-logbook/internal/ledger/errors"
	"go-logbook/internal/messaging/kafka"
	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/contextutil"
	"go-logbook/internal/shared/database"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	reportsGenerationKey = "reports:gen"
	reportsListKeyPrefix = "reports:list:"
	reportAggregate      = "report"
	defaultCacheTTL      = 5 * time.Minute
)

type Config struct {
	CacheTTL time.Duration
	// ClientTypeFilter limits client accounts to the client facing report
	// types. Off by default; see DESIGN.md.
	ClientTypeFilter bool
}

//go:generate mockgen -source=ledger_service.go -destination=mock/ledger_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, seed Seed) error
	Remove(ctx context.Context, sourceID uuid.UUID, sourceTable string) error
	List(ctx context.Context, actor *policy.Actor, q ListReportsQuery) ([]ReportResponse, int64, error)
	GetByID(ctx context.Context, actor *policy.Actor, id string) (ReportResponse, error)
	InvalidateReports(ctx context.Context) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	policy *policy.Engine
	cfg    Config
	now    func() time.Time
	logger *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	engine *policy.Engine,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("ledger.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ledger.service")
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outbox,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		policy: engine,
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func validateSeed(seed Seed) error {
	if seed.SourceID == uuid.Nil {
		return errors.New("report seed: source id is required")
	}
	if seed.SourceTable == "" {
		return errors.New("report seed: source table is required")
	}
	if !seed.ReportType.Valid() {
		return fmt.Errorf("report seed: invalid report type %q", seed.ReportType)
	}
	return nil
}

// Record inserts the report for seed once. A second call for the same source
// is a no-op.
func (s *service) Record(ctx context.Context, seed Seed) error {
	if err := validateSeed(seed); err != nil {
		return err
	}
	log := s.log(ctx)
	rep := seed.toReport(s.now())

	inserted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.repo.WithTx(tx).Insert(ctx, &rep)
		if err != nil || !ok {
			return err
		}
		inserted = true

		payload := events.ReportRecordedEvent{
			EventType:   events.ReportRecordedType,
			ReportID:    rep.ID.String(),
			ReportType:  string(rep.ReportType),
			SourceID:    rep.SourceID.String(),
			SourceTable: rep.SourceTable,
			Title:       rep.Title,
			Site:        rep.Site,
			ApprovedAt:  &rep.ApprovedAt,
			OccurredAt:  rep.RecordedAt,
		}
		if rep.ApprovedByID != nil {
			payload.ApprovedByID = rep.ApprovedByID.String()
		}
		ev, err := kafka.NewOutboxEvent(events.ReportRecordedTopic, events.ReportRecordedType,
			reportAggregate, rep.ID.String(), contextutil.GetRequestID(ctx), payload)
		if err != nil {
			return err
		}
		return s.outbox.WithTx(tx).Create(ctx, ev)
	})
	if err != nil {
		log.Error("record report failed",
			zap.String("source_table", seed.SourceTable),
			zap.String("source_id", seed.SourceID.String()),
			zap.Error(err),
		)
		return err
	}

	if !inserted {
		log.Debug("report already recorded", zap.String("source_id", seed.SourceID.String()))
		return nil
	}

	s.invalidate(ctx)
	log.Info("report recorded",
		zap.String("report_id", rep.ID.String()),
		zap.String("source_table", rep.SourceTable),
		zap.String("source_id", rep.SourceID.String()),
	)
	return nil
}

func (s *service) Remove(ctx context.Context, sourceID uuid.UUID, sourceTable string) error {
	log := s.log(ctx)

	var removed []Report
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		removed, err = s.repo.WithTx(tx).DeleteBySource(ctx, sourceID, sourceTable)
		if err != nil {
			return err
		}
		for _, rep := range removed {
			ev, err := kafka.NewOutboxEvent(events.ReportRemovedTopic, events.ReportRemovedType,
				reportAggregate, rep.ID.String(), contextutil.GetRequestID(ctx), events.ReportRemovedEvent{
					EventType:   events.ReportRemovedType,
					ReportID:    rep.ID.String(),
					SourceID:    sourceID.String(),
					SourceTable: sourceTable,
					OccurredAt:  s.now(),
				})
			if err != nil {
				return err
			}
			if err := s.outbox.WithTx(tx).Create(ctx, ev); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("remove report failed",
			zap.String("source_table", sourceTable),
			zap.String("source_id", sourceID.String()),
			zap.Error(err),
		)
		return err
	}

	if len(removed) > 0 {
		s.invalidate(ctx)
		log.Info("report removed",
			zap.String("source_table", sourceTable),
			zap.String("source_id", sourceID.String()),
			zap.Int("count", len(removed)),
		)
	}
	return nil
}

func (s *service) List(ctx context.Context, actor *policy.Actor, q ListReportsQuery) ([]ReportResponse, int64, error) {
	if err := s.policy.Explain(actor, policy.ActionReportView, nil); err != nil {
		return nil, 0, apperror.ErrForbidden
	}

	filter := ListFilter{Site: q.Site}
	filter.Page, filter.PageSize = database.NormalizePage(q.Page, q.PageSize)

	var requested []ReportType
	if q.Type != "" {
		t := ReportType(q.Type)
		if !t.Valid() {
			return nil, 0, ledgererrors.ErrInvalidReportType.Field("type")
		}
		requested = []ReportType{t}
	}

	scope := "all"
	filter.Types = requested
	if s.restricted(actor) {
		scope = "client"
		filter.Types = visibleTypes(requested)
		if len(filter.Types) == 0 {
			return []ReportResponse{}, 0, nil
		}
	}

	page, err := s.cachedList(ctx, scope, q.Type, filter)
	if err != nil {
		return nil, 0, err
	}
	return page.Items, page.Total, nil
}

func (s *service) GetByID(ctx context.Context, actor *policy.Actor, id string) (ReportResponse, error) {
	if err := s.policy.Explain(actor, policy.ActionReportView, nil); err != nil {
		return ReportResponse{}, apperror.ErrForbidden
	}
	rid, err := uuid.Parse(id)
	if err != nil {
		return ReportResponse{}, ledgererrors.ErrInvalidReportID
	}

	rep, err := s.repo.FindByID(ctx, rid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReportResponse{}, ledgererrors.ErrReportNotFound
		}
		return ReportResponse{}, err
	}
	if s.restricted(actor) && len(visibleTypes([]ReportType{rep.ReportType})) == 0 {
		return ReportResponse{}, ledgererrors.ErrReportNotFound
	}
	return mapToResponse(*rep), nil
}

// InvalidateReports bumps the generation so every cached page goes stale at
// once.
func (s *service) InvalidateReports(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Incr(ctx, reportsGenerationKey).Err()
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.InvalidateReports(ctx); err != nil {
		s.log(ctx).Warn("invalidate report cache failed", zap.Error(err))
	}
}

func (s *service) restricted(actor *policy.Actor) bool {
	return s.cfg.ClientTypeFilter && actor != nil && actor.Role == policy.RoleClient
}

func visibleTypes(requested []ReportType) []ReportType {
	if len(requested) == 0 {
		return clientReportTypes
	}
	var out []ReportType
	for _, t := range requested {
		for _, allowed := range clientReportTypes {
			if t == allowed {
				out = append(out, t)
			}
		}
	}
	return out
}

func (s *service) generation(ctx context.Context) string {
	gen, err := s.rdb.Get(ctx, reportsGenerationKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log(ctx).Warn("read report cache generation failed", zap.Error(err))
		}
		return "0"
	}
	return gen
}

func listCacheKey(gen, scope, reportType string, f ListFilter) string {
	return reportsListKeyPrefix + gen + ":" + scope + ":" + reportType + ":" + f.Site + ":" +
		strconv.Itoa(f.Page) + ":" + strconv.Itoa(f.PageSize)
}

func (s *service) cachedList(ctx context.Context, scope, reportType string, f ListFilter) (reportPage, error) {
	if s.rdb == nil {
		return s.loadPage(ctx, f)
	}

	cacheKey := listCacheKey(s.generation(ctx), scope, reportType, f)
	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var page reportPage
		if err := json.Unmarshal([]byte(cached), &page); err == nil {
			return page, nil
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		page, err := s.loadPage(ctx, f)
		if err != nil {
			return nil, err
		}
		if body, err := json.Marshal(page); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, body, s.cfg.CacheTTL).Err(); err != nil {
				s.log(ctx).Warn("cache report page failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
		return page, nil
	})
	if err != nil {
		return reportPage{}, err
	}
	return v.(reportPage), nil
}

func (s *service) loadPage(ctx context.Context, f ListFilter) (reportPage, error) {
	reports, total, err := s.repo.List(ctx, f)
	if err != nil {
		return reportPage{}, err
	}
	return reportPage{Items: mapToResponses(reports), Total: total}, nil
}
