package ledger_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-logbook/internal/events"
	"go-logbook/internal/ledger"
	ledgererrors "go-logbook/internal/ledger/errors"
	ledgermock "go-logbook/internal/ledger/mock"
	"go-logbook/internal/messaging/kafka"
	kafkamock "go-logbook/internal/messaging/kafka/mock"
	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	redis   redismock.ClientMock
	repo    *ledgermock.MockRepository
	outbox  *kafkamock.MockOutboxRepository
	service ledger.Service
}

func setupService(t *testing.T, cfg ledger.Config) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)
	rdb, rmock := redismock.NewClientMock()

	repo := ledgermock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	outbox := kafkamock.NewMockOutboxRepository(ctrl)
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox).AnyTimes()

	svc := ledger.NewService(db, repo, outbox, rdb, policy.MustNewEngine(), cfg, zap.NewNop())

	t.Cleanup(func() {
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		assert.NoError(t, rmock.ExpectationsWereMet())
	})
	return &serviceDeps{sqlMock: sqlMock, redis: rmock, repo: repo, outbox: outbox, service: svc}
}

func seed() ledger.Seed {
	approver := uuid.New()
	at := time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)
	return ledger.Seed{
		ReportType:   ledger.ReportTypeUtility,
		SourceID:     uuid.New(),
		SourceTable:  "chiller_logs",
		Title:        "Chiller Monitoring - CH-01",
		Site:         "CH-01",
		CreatedBy:    "Op One",
		CreatedAt:    at.Add(-time.Hour),
		ApprovedByID: &approver,
		ApprovedAt:   &at,
		Remarks:      "ok",
	}
}

func viewer(role policy.Role) *policy.Actor {
	return &policy.Actor{ID: uuid.New(), Role: role, Email: "viewer@plant.test"}
}

func TestService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts report and outbox event then invalidates cache", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})
		s := seed()

		testutil.ExpectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *ledger.Report) (bool, error) {
				assert.Equal(t, s.SourceID, r.SourceID)
				assert.Equal(t, "chiller_logs", r.SourceTable)
				assert.Equal(t, *s.ApprovedAt, r.ApprovedAt)
				assert.Equal(t, "Op One", r.CreatedBy)
				assert.NotEqual(t, uuid.Nil, r.ID)
				return true, nil
			})
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.ReportRecordedTopic, ev.Topic)
				assert.Equal(t, events.ReportRecordedType, ev.EventType)

				var payload events.ReportRecordedEvent
				require.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, s.SourceID.String(), payload.SourceID)
				assert.Equal(t, s.ApprovedByID.String(), payload.ApprovedByID)
				return nil
			})
		deps.redis.ExpectIncr("reports:gen").SetVal(1)

		require.NoError(t, deps.service.Record(ctx, s))
	})

	t.Run("already recorded is a no-op", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})

		testutil.ExpectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil)

		require.NoError(t, deps.service.Record(ctx, seed()))
	})

	t.Run("insert failure rolls back and is returned", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})

		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

		assert.EqualError(t, deps.service.Record(ctx, seed()), "db down")
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})

		testutil.ExpectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(true, nil)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

		assert.Error(t, deps.service.Record(ctx, seed()))
	})

	t.Run("rejects incomplete seed", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})
		s := seed()
		s.SourceTable = ""

		assert.Error(t, deps.service.Record(ctx, s))
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and emits one event per report", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})
		sourceID := uuid.New()
		reportID := uuid.New()

		testutil.ExpectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().DeleteBySource(gomock.Any(), sourceID, "chiller_logs").
			Return([]ledger.Report{{ID: reportID, SourceID: sourceID, SourceTable: "chiller_logs"}}, nil)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.ReportRemovedTopic, ev.Topic)
				assert.Equal(t, reportID.String(), ev.AggregateID)
				return nil
			})
		deps.redis.ExpectIncr("reports:gen").SetVal(2)

		require.NoError(t, deps.service.Remove(ctx, sourceID, "chiller_logs"))
	})

	t.Run("nothing to delete", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})
		sourceID := uuid.New()

		testutil.ExpectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().DeleteBySource(gomock.Any(), sourceID, "chiller_logs").Return(nil, nil)

		require.NoError(t, deps.service.Remove(ctx, sourceID, "chiller_logs"))
	})
}

// cachedPage has the same JSON shape as the service's cache entry.
type cachedPage struct {
	Items []ledger.ReportResponse `json:"items"`
	Total int64                   `json:"total"`
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss loads from repository and caches the page", func(t *testing.T) {
		deps := setupService(t, ledger.Config{CacheTTL: time.Minute})
		rep := ledger.Report{
			ID:          uuid.New(),
			ReportType:  ledger.ReportTypeUtility,
			SourceID:    uuid.New(),
			SourceTable: "chiller_logs",
			Title:       "Chiller Monitoring - CH-01",
			ApprovedAt:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		}
		key := "reports:list:3:all:utility::1:20"

		deps.redis.ExpectGet("reports:gen").SetVal("3")
		deps.redis.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().List(gomock.Any(), ledger.ListFilter{
			Types: []ledger.ReportType{ledger.ReportTypeUtility}, Page: 1, PageSize: 20,
		}).Return([]ledger.Report{rep}, int64(1), nil)

		body, err := json.Marshal(cachedPage{Items: []ledger.ReportResponse{{
			ID:              rep.ID.String(),
			ReportType:      "utility",
			ReportTypeLabel: "E Log Book",
			SourceID:        rep.SourceID.String(),
			SourceTable:     "chiller_logs",
			Title:           rep.Title,
			CreatedAt:       rep.CreatedAt.Format(time.RFC3339),
			ApprovedAt:      rep.ApprovedAt.Format(time.RFC3339),
			RecordedAt:      rep.RecordedAt.Format(time.RFC3339),
		}}, Total: 1})
		require.NoError(t, err)
		deps.redis.ExpectSet(key, body, time.Minute).SetVal("OK")

		items, total, err := deps.service.List(ctx, viewer(policy.RoleSupervisor), ledger.ListReportsQuery{Type: "utility"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "E Log Book", items[0].ReportTypeLabel)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})
		key := "reports:list:0:all:::1:20"
		cached, _ := json.Marshal(cachedPage{Items: []ledger.ReportResponse{{ID: "r-1"}}, Total: 7})

		deps.redis.ExpectGet("reports:gen").RedisNil()
		deps.redis.ExpectGet(key).SetVal(string(cached))

		items, total, err := deps.service.List(ctx, viewer(policy.RoleClient), ledger.ListReportsQuery{})

		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
		assert.Equal(t, "r-1", items[0].ID)
	})

	t.Run("client filter hides chemical reports", func(t *testing.T) {
		deps := setupService(t, ledger.Config{ClientTypeFilter: true})

		items, total, err := deps.service.List(ctx, viewer(policy.RoleClient), ledger.ListReportsQuery{Type: "chemical"})

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, items)
	})

	t.Run("client filter restricts unfiltered listing", func(t *testing.T) {
		deps := setupService(t, ledger.Config{ClientTypeFilter: true})

		deps.redis.ExpectGet("reports:gen").SetVal("1")
		deps.redis.ExpectGet("reports:list:1:client:::1:20").RedisNil()
		deps.repo.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f ledger.ListFilter) ([]ledger.Report, int64, error) {
				assert.NotContains(t, f.Types, ledger.ReportTypeChemical)
				assert.Contains(t, f.Types, ledger.ReportTypeUtility)
				return nil, 0, nil
			})
		deps.redis.Regexp().ExpectSet("reports:list:1:client:::1:20", `.*`, 5*time.Minute).SetVal("OK")

		_, _, err := deps.service.List(ctx, viewer(policy.RoleClient), ledger.ListReportsQuery{})
		require.NoError(t, err)
	})

	t.Run("invalid type", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})

		_, _, err := deps.service.List(ctx, viewer(policy.RoleManager), ledger.ListReportsQuery{Type: "weekly"})

		assert.ErrorIs(t, err, ledgererrors.ErrInvalidReportType)
	})

	t.Run("anonymous caller is forbidden", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})

		_, _, err := deps.service.List(ctx, nil, ledger.ListReportsQuery{})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})
		_, err := deps.service.GetByID(ctx, viewer(policy.RoleManager), "nope")
		assert.ErrorIs(t, err, ledgererrors.ErrInvalidReportID)
	})

	t.Run("client filter hides chemical report", func(t *testing.T) {
		deps := setupService(t, ledger.Config{ClientTypeFilter: true})
		id := uuid.New()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).
			Return(&ledger.Report{ID: id, ReportType: ledger.ReportTypeChemical}, nil)

		_, err := deps.service.GetByID(ctx, viewer(policy.RoleClient), id.String())
		assert.ErrorIs(t, err, ledgererrors.ErrReportNotFound)
	})

	t.Run("found", func(t *testing.T) {
		deps := setupService(t, ledger.Config{})
		id := uuid.New()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).
			Return(&ledger.Report{ID: id, ReportType: ledger.ReportTypeNVPC}, nil)

		resp, err := deps.service.GetByID(ctx, viewer(policy.RoleOperator), id.String())
		require.NoError(t, err)
		assert.Equal(t, "NVPC Test", resp.ReportTypeLabel)
	})
}
