package chillerlog_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go-logbook/internal/chillerlog"
	chillerlogerrors "go-logbook/internal/chillerlog/errors"
	chillermock "go-logbook/internal/chillerlog/mock"
	"go-logbook/internal/policy"
	"go-logbook/internal/shared/apperror"
	"go-logbook/internal/shared/testutil"
	"go-logbook/internal/workflow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ist = time.FixedZone("IST", 5*3600+1800)
	// 14:05 in IST
	fixedNow = time.Date(2026, 5, 4, 8, 35, 0, 0, time.UTC)
)

type serviceDeps struct {
	sqlMock  sqlmock.Sqlmock
	repo     *chillermock.MockRepository
	approver *chillermock.MockApprover
	reports  *chillermock.MockReportRemover
	service  chillerlog.Service
}

func setupService(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewGormMock(t)

	repo := chillermock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	approver := chillermock.NewMockApprover(ctrl)
	reports := chillermock.NewMockReportRemover(ctrl)

	svc := chillerlog.NewService(db, repo, approver, reports, policy.MustNewEngine(), ist, zap.NewNop())
	chillerlog.SetClock(svc, func() time.Time { return fixedNow })

	t.Cleanup(func() { assert.NoError(t, sqlMock.ExpectationsWereMet()) })
	return &serviceDeps{sqlMock: sqlMock, repo: repo, approver: approver, reports: reports, service: svc}
}

func operator() *policy.Actor {
	return &policy.Actor{ID: uuid.New(), Role: policy.RoleOperator, Email: "op@plant.test", Name: "Op One"}
}

func f(v float64) *float64 { return &v }

func createRequest(pump, remarks string) chillerlog.CreateChillerLogRequest {
	return chillerlog.CreateChillerLogRequest{
		EquipmentID: "CH-01",
		Readings: chillerlog.Readings{
			ChillerSupplyTemp:         f(7),
			ChillerReturnTemp:         f(12),
			CoolingTowerSupplyTemp:    f(29),
			CoolingTowerReturnTemp:    f(34),
			CTDifferentialTemp:        f(5),
			ChillerWaterInletPressure: f(2.1),
		},
		EquipmentStatus: chillerlog.EquipmentStatus{CoolingTowerPump: pump},
		Remarks:         remarks,
	}
}

func expectLock(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock(hashtext($1))`)).
		WithArgs("chiller:CH-01").
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func baselineLog() *chillerlog.ChillerLog {
	return &chillerlog.ChillerLog{
		ID:              uuid.New(),
		EquipmentID:     "CH-01",
		EquipmentStatus: chillerlog.EquipmentStatus{CoolingTowerPump: "ON"},
		Timestamp:       time.Date(2026, 5, 4, 2, 0, 0, 0, time.UTC),
	}
}

func TestService_Create_FirstLogOfDayIsBaseline(t *testing.T) {
	deps := setupService(t)
	actor := operator()

	expectLock(deps.sqlMock)
	deps.repo.EXPECT().
		FirstOfDay(gomock.Any(), "CH-01", time.Date(2026, 5, 4, 0, 0, 0, 0, ist), time.Date(2026, 5, 5, 0, 0, 0, 0, ist)).
		Return(nil, gorm.ErrRecordNotFound)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *chillerlog.ChillerLog) error {
			assert.Equal(t, workflow.StatusDraft, l.Status)
			assert.Equal(t, "ON", l.CoolingTowerPump)
			assert.Equal(t, "Op One", l.OperatorName)
			assert.Equal(t, actor.ID, *l.OperatorID)
			assert.Equal(t, fixedNow, l.Timestamp)
			return nil
		})
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Create(context.Background(), actor, createRequest("on", ""))

	require.NoError(t, err)
	assert.Equal(t, "draft", resp.Status)
	assert.Empty(t, resp.Remarks)
}

func TestService_Create_StatusChangeNeedsRemarks(t *testing.T) {
	deps := setupService(t)
	baseline := baselineLog()

	expectLock(deps.sqlMock)
	deps.repo.EXPECT().FirstOfDay(gomock.Any(), "CH-01", gomock.Any(), gomock.Any()).Return(baseline, nil)
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.Create(context.Background(), operator(), createRequest("OFF", "  "))

	require.ErrorIs(t, err, chillerlogerrors.ErrRemarksRequired)
	assert.Contains(t, apperror.ToHTTP(err).Details, "remarks")
	assert.Equal(t, 400, apperror.ToHTTP(err).Status)
}

func TestService_Create_StatusChangeWithRemarksIsAudited(t *testing.T) {
	deps := setupService(t)
	actor := operator()
	baseline := baselineLog()

	var created *chillerlog.ChillerLog
	expectLock(deps.sqlMock)
	deps.repo.EXPECT().FirstOfDay(gomock.Any(), "CH-01", gomock.Any(), gomock.Any()).Return(baseline, nil)
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *chillerlog.ChillerLog) error {
			created = l
			return nil
		})
	deps.repo.EXPECT().CreateStatusChanges(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, changes []chillerlog.ChillerStatusChange) error {
			require.Len(t, changes, 1)
			c := changes[0]
			assert.Equal(t, "cooling_tower_pump_status", c.Field)
			assert.Equal(t, "ON", c.OldValue)
			assert.Equal(t, "OFF", c.NewValue)
			assert.Equal(t, baseline.ID, c.BaselineLogID)
			assert.Equal(t, created.ID, c.ChillerLogID)
			assert.Equal(t, actor.ID, *c.ChangedByID)
			assert.Equal(t, "pump tripped", c.Context["remarks"])
			return nil
		})
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Create(context.Background(), actor, createRequest("off", "pump tripped"))

	require.NoError(t, err)
	assert.Equal(t, "pump tripped\n[Status change] Cooling Tower Pump: ON -> OFF at 14:05", resp.Remarks)
}

func TestService_Create_Validation(t *testing.T) {
	deps := setupService(t)

	req := createRequest("SOMETIMES", "")
	req.ChillerSupplyTemp = nil

	_, err := deps.service.Create(context.Background(), operator(), req)

	require.ErrorIs(t, err, chillerlogerrors.ErrInvalidChillerLog)
	details := apperror.ToHTTP(err).Details
	assert.Contains(t, details, "chiller_supply_temp")
	assert.Contains(t, details, "cooling_tower_pump_status")
}

func TestService_Create_ClientForbidden(t *testing.T) {
	deps := setupService(t)
	client := &policy.Actor{ID: uuid.New(), Role: policy.RoleClient}

	_, err := deps.service.Create(context.Background(), client, createRequest("ON", ""))

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("approved baseline is immutable", func(t *testing.T) {
		deps := setupService(t)
		entry := baselineLog()
		entry.Status = workflow.StatusApproved

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), entry.ID).Return(entry, nil)
		deps.repo.EXPECT().FirstOfDay(gomock.Any(), "CH-01", gomock.Any(), gomock.Any()).Return(entry, nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Update(ctx, operator(), entry.ID.String(), chillerlog.UpdateChillerLogRequest{
			Readings: chillerlog.Readings{ChillerSupplyTemp: f(8)},
		})

		assert.ErrorIs(t, err, chillerlogerrors.ErrImmutableAfterApproval)
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
	})

	t.Run("approved later log stays editable", func(t *testing.T) {
		deps := setupService(t)
		baseline := baselineLog()
		entry := baselineLog()
		entry.Status = workflow.StatusApproved
		entry.ChillerSupplyTemp = f(7)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), entry.ID).Return(entry, nil)
		deps.repo.EXPECT().FirstOfDay(gomock.Any(), "CH-01", gomock.Any(), gomock.Any()).Return(baseline, nil)
		deps.repo.EXPECT().Update(gomock.Any(), entry).Return(nil)
		deps.sqlMock.ExpectCommit()

		remarks := "recalibrated"
		resp, err := deps.service.Update(ctx, operator(), entry.ID.String(), chillerlog.UpdateChillerLogRequest{
			Readings: chillerlog.Readings{ChillerSupplyTemp: f(8)},
			Remarks:  &remarks,
		})

		require.NoError(t, err)
		assert.Equal(t, 8.0, *resp.ChillerSupplyTemp)
		assert.Equal(t, "recalibrated", resp.Remarks)
		assert.Equal(t, "ON", resp.CoolingTowerPump)
	})

	t.Run("draft baseline is editable without lookup", func(t *testing.T) {
		deps := setupService(t)
		entry := baselineLog()
		entry.Status = workflow.StatusDraft

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), entry.ID).Return(entry, nil)
		deps.repo.EXPECT().Update(gomock.Any(), entry).Return(nil)
		deps.sqlMock.ExpectCommit()

		_, err := deps.service.Update(ctx, operator(), entry.ID.String(), chillerlog.UpdateChillerLogRequest{})
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupService(t)
		id := uuid.New()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Update(ctx, operator(), id.String(), chillerlog.UpdateChillerLogRequest{})
		assert.ErrorIs(t, err, chillerlogerrors.ErrChillerLogNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	manager := &policy.Actor{ID: uuid.New(), Role: policy.RoleManager}

	t.Run("report removal failure does not fail delete", func(t *testing.T) {
		deps := setupService(t)
		id := uuid.New()

		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		deps.reports.EXPECT().Remove(gomock.Any(), id, "chiller_logs").Return(errors.New("ledger down"))

		assert.NoError(t, deps.service.Delete(ctx, manager, id.String()))
	})

	t.Run("operator may not delete", func(t *testing.T) {
		deps := setupService(t)
		err := deps.service.Delete(ctx, operator(), uuid.New().String())
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("missing log", func(t *testing.T) {
		deps := setupService(t)
		id := uuid.New()
		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(ctx, manager, id.String()), chillerlogerrors.ErrChillerLogNotFound)
	})
}

func TestService_ApproveDelegatesToWorkflow(t *testing.T) {
	deps := setupService(t)
	supervisor := &policy.Actor{ID: uuid.New(), Role: policy.RoleSupervisor}
	id := uuid.New()
	at := fixedNow
	approve := "approve"

	deps.approver.EXPECT().
		Decide(gomock.Any(), supervisor, id, workflow.Decision{Action: &approve, Remarks: "ok"}).
		Return(chillerlog.ChillerLog{
			ID:       id,
			Approval: workflow.Approval{Status: workflow.StatusApproved, ApprovedByID: &supervisor.ID, ApprovedAt: &at},
		}, nil)

	resp, err := deps.service.Approve(context.Background(), supervisor, id.String(), chillerlog.ApproveRequest{Action: &approve, Remarks: "ok"})

	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, supervisor.ID.String(), *resp.ApprovedByID)
}

func TestService_List(t *testing.T) {
	deps := setupService(t)

	deps.repo.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lf chillerlog.ListFilter) ([]chillerlog.ChillerLog, int64, error) {
			assert.Equal(t, workflow.StatusPending, lf.Status)
			assert.Equal(t, time.Date(2026, 5, 4, 0, 0, 0, 0, ist), *lf.From)
			assert.Equal(t, time.Date(2026, 5, 5, 0, 0, 0, 0, ist), *lf.To)
			return []chillerlog.ChillerLog{*baselineLog()}, 1, nil
		})

	items, total, err := deps.service.List(context.Background(), operator(), chillerlog.ListChillerLogsQuery{
		Status: "pending", Date: "2026-05-04", Page: 1, PageSize: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)

	_, _, err = deps.service.List(context.Background(), operator(), chillerlog.ListChillerLogsQuery{Date: "04/05/2026"})
	assert.ErrorIs(t, err, chillerlogerrors.ErrInvalidDate)
}

func TestService_StatusChanges(t *testing.T) {
	deps := setupService(t)
	entry := baselineLog()

	deps.repo.EXPECT().FindByID(gomock.Any(), entry.ID).Return(entry, nil)
	deps.repo.EXPECT().ListStatusChanges(gomock.Any(), entry.ID).Return([]chillerlog.ChillerStatusChange{{
		ID: uuid.New(), ChillerLogID: entry.ID, Field: "cooling_tower_pump_status", OldValue: "ON", NewValue: "OFF",
	}}, nil)

	out, err := deps.service.StatusChanges(context.Background(), operator(), entry.ID.String())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "OFF", out[0].NewValue)
}
