package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mindtrace/bpdscreen/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	UpsertByProvider(user *model.User) error
	FindByID(id string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// UpsertByProvider finds the user by (provider, provider id) and refreshes the
// profile fields, or creates the row with a fresh id. The resolved id is
// written back into user.
func (r *userRepository) UpsertByProvider(user *model.User) error {
	var existing model.User
	err := r.db.Where("provider = ? AND provider_id = ?", user.Provider, user.ProviderID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user.ID = uuid.NewString()
		return r.db.Create(user).Error
	}
	if err != nil {
		return err
	}
	existing.Email = user.Email
	existing.DisplayName = user.DisplayName
	existing.AvatarURL = user.AvatarURL
	if err := r.db.Save(&existing).Error; err != nil {
		return err
	}
	*user = existing
	return nil
}

func (r *userRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
