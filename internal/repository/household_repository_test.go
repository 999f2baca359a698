package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ephanta/eva-app/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockRepo backs the repository with sqlmock so individual
// statements can be failed on purpose.
func setupMockRepo(t *testing.T) (HouseholdRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewHouseholdRepository(db), mock
}

func setupSQLiteRepo(t *testing.T) (HouseholdRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Household{},
		&models.HouseholdMember{},
		&models.PlannerEntry{},
		&models.ShoppingListItem{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewHouseholdRepository(db), db
}

func TestCreateWithOwner_CompensatesFailedMembership(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(`INSERT INTO "households"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec(`INSERT INTO "household_members"`).
		WillReturnError(errors.New("duplicate key value"))
	mock.ExpectExec(`DELETE FROM "households"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	household := &models.Household{Name: "Doomed", OwnerID: "user-1", InviteCode: "AAAA-BBBB-CCCC"}
	owner := &models.HouseholdMember{Role: models.RoleAdmin, JoinedAt: time.Now()}

	err := repo.CreateWithOwner(household, owner)
	require.ErrorIs(t, err, ErrCreateOwnerMembership)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithOwner_ReportsFailedCompensation(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery(`INSERT INTO "households"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(43))
	mock.ExpectExec(`INSERT INTO "household_members"`).
		WillReturnError(errors.New("duplicate key value"))
	mock.ExpectExec(`DELETE FROM "households"`).
		WillReturnError(errors.New("connection reset"))

	household := &models.Household{Name: "Stuck", OwnerID: "user-1", InviteCode: "DDDD-EEEE-FFFF"}
	owner := &models.HouseholdMember{Role: models.RoleAdmin, JoinedAt: time.Now()}

	err := repo.CreateWithOwner(household, owner)
	require.ErrorIs(t, err, ErrCreateOwnerMembership)
	require.Contains(t, err.Error(), "compensating delete failed")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithOwner_SeedsAdminMembership(t *testing.T) {
	repo, db := setupSQLiteRepo(t)

	household := &models.Household{Name: "Fresh", OwnerID: "user-1", InviteCode: "GGGG-HHHH-IIII"}
	owner := &models.HouseholdMember{JoinedAt: time.Now()}

	require.NoError(t, repo.CreateWithOwner(household, owner))
	require.NotZero(t, household.ID)

	var member models.HouseholdMember
	require.NoError(t, db.Where("household_id = ? AND member_uid = ?", household.ID, "user-1").
		First(&member).Error)
	require.Equal(t, models.RoleAdmin, member.Role)
}

func TestDelete_CascadesDependentRows(t *testing.T) {
	repo, db := setupSQLiteRepo(t)

	household := &models.Household{Name: "Condemned", OwnerID: "user-1", InviteCode: "JJJJ-KKKK-LLLL"}
	owner := &models.HouseholdMember{JoinedAt: time.Now()}
	require.NoError(t, repo.CreateWithOwner(household, owner))

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.PlannerEntry{
		HouseholdID: household.ID,
		Datum:       day,
		UserID:      "user-1",
	}).Error)
	require.NoError(t, db.Create(&models.ShoppingListItem{
		HouseholdID: household.ID,
		ItemName:    "Milk",
		Status:      models.ShoppingStatusPending,
		CreatedBy:   "user-1",
	}).Error)

	require.NoError(t, repo.Delete(household.ID))

	for _, model := range []interface{}{
		&models.HouseholdMember{},
		&models.PlannerEntry{},
		&models.ShoppingListItem{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Where("household_id = ?", household.ID).Count(&count).Error)
		require.Zero(t, count)
	}

	_, err := repo.FindByID(household.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
