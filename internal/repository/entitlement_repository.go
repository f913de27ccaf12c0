package repository

import (
	"errors"
	"time"

	"github.com/mindtrace/bpdscreen/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntitlementRepository interface {
	Get(userID string) (bool, error)
	Set(userID string) error
}

type entitlementRepository struct {
	db *gorm.DB
}

func NewEntitlementRepository(db *gorm.DB) EntitlementRepository {
	return &entitlementRepository{db: db}
}

// Get returns false with a nil error when no row exists yet; "no entitlement
// row" is a normal state, not a failure.
func (r *entitlementRepository) Get(userID string) (bool, error) {
	var ent model.Entitlement
	err := r.db.First(&ent, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return ent.HasPaid, nil
}

// Set upserts the entitlement row to paid. Safe to call repeatedly.
func (r *entitlementRepository) Set(userID string) error {
	now := time.Now()
	ent := model.Entitlement{UserID: userID, HasPaid: true, PaidAt: &now}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"has_paid", "paid_at", "updated_at"}),
	}).Create(&ent).Error
}
