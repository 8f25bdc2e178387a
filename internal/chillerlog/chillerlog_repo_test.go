package chillerlog_test

import (
	"context"
	"regexp"
	"testing"

	"go-logbook/internal/chillerlog"
	"go-logbook/internal/shared/testutil"
	"go-logbook/internal/workflow"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepository_FindByIDForUpdateLocksRow(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := chillerlog.NewRepository(db)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "chiller_logs" WHERE id = $1 ORDER BY "chiller_logs"."id" LIMIT $2 FOR UPDATE`)).
		WithArgs(sqlmock.AnyArg(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "equipment_id", "status"}).
			AddRow(id.String(), "CH-01", "pending"))

	l, err := repo.FindByIDForUpdate(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "CH-01", l.EquipmentID)
	assert.Equal(t, workflow.StatusPending, l.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateKeepsApprovalAndStatusFlags(t *testing.T) {
	db, mock, statements := testutil.NewGormMockRecording(t)
	repo := chillerlog.NewRepository(db)

	l := baselineLog()
	l.ChillerSupplyTemp = f(8)
	l.Remarks = "recalibrated"

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "chiller_logs" SET .+ WHERE .*"id" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), l))
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, *statements, 1)

	stmt := (*statements)[0]
	for _, col := range []string{`"site_id"=`, `"chiller_supply_temp"=`, `"verified_by"=`, `"remarks"=`, `"updated_at"=`} {
		assert.Contains(t, stmt, col)
	}
	for _, col := range []string{
		`"status"=`, `"approved_by_id"`, `"approved_at"`,
		`"cooling_tower_pump_status"`, `"equipment_id"`, `"operator_id"`, `"timestamp"`,
	} {
		assert.NotContains(t, stmt, col)
	}
}

func TestRepository_UpdateMissingRow(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	repo := chillerlog.NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "chiller_logs" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), baselineLog())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
