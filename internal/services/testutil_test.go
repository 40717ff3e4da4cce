package services

import (
	"testing"
	"time"

	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database migrated with the full schema.
// The pool is pinned to a single connection because every :memory:
// connection is a separate database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.ServiceCategory{},
		&models.ProviderProfile{},
		&models.Booking{},
		&models.Review{},
		&models.SystemLog{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		Name:     "Test " + string(role),
		Email:    uuid.NewString() + "@example.com",
		Phone:    "5551234567",
		Password: "not-a-real-hash",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedCategory(t *testing.T, db *gorm.DB) *models.ServiceCategory {
	t.Helper()
	cat := models.ServiceCategory{
		ID:       uuid.New(),
		Name:     "Plumbing " + uuid.NewString()[:8],
		IsActive: true,
	}
	require.NoError(t, db.Create(&cat).Error)
	return &cat
}

// seedProvider creates a provider-role user together with an approved,
// active profile.
func seedProvider(t *testing.T, db *gorm.DB) (*models.User, *models.ProviderProfile) {
	t.Helper()
	user := seedUser(t, db, models.RoleProvider)
	cat := seedCategory(t, db)
	profile := models.ProviderProfile{
		ID:           uuid.New(),
		UserID:       user.ID,
		CategoryID:   cat.ID,
		ServiceTitle: "Pipe repair",
		Description:  "All kinds of pipe work",
		IsApproved:   true,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&profile).Error)
	return user, &profile
}

func seedBooking(t *testing.T, db *gorm.DB, customerID, providerID uuid.UUID, status models.BookingStatus) *models.Booking {
	t.Helper()
	booking := models.Booking{
		ID:             uuid.New(),
		CustomerID:     customerID,
		ProviderID:     providerID,
		ServiceDate:    time.Now().Add(24 * time.Hour),
		ServiceAddress: "12 Test Lane",
		Status:         status,
		PaymentStatus:  "pending",
	}
	require.NoError(t, db.Create(&booking).Error)
	return &booking
}

// completedBooking seeds a customer, provider and a booking already in
// the completed status, the common starting point for review tests.
func completedBooking(t *testing.T, db *gorm.DB) (*models.User, *models.ProviderProfile, *models.Booking) {
	t.Helper()
	customer := seedUser(t, db, models.RoleCustomer)
	_, profile := seedProvider(t, db)
	booking := seedBooking(t, db, customer.ID, profile.ID, models.BookingCompleted)
	return customer, profile, booking
}

func reloadProfile(t *testing.T, db *gorm.DB, id uuid.UUID) *models.ProviderProfile {
	t.Helper()
	var profile models.ProviderProfile
	require.NoError(t, db.First(&profile, "id = ?", id).Error)
	return &profile
}
