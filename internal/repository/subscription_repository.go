package repository

import (
	"errors"

	"github.com/mindtrace/bpdscreen/internal/model"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(sub *model.Subscription) error
	FindByOrderRef(orderRef string) (*model.Subscription, error)
	MarkPaid(orderRef, paymentRef string) error
	MarkPaidByUser(userID, paymentRef string) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(sub *model.Subscription) error {
	return r.db.Create(sub).Error
}

func (r *subscriptionRepository) FindByOrderRef(orderRef string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("order_ref = ?", orderRef).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// MarkPaid records the gateway's payment reference against the checkout row.
func (r *subscriptionRepository) MarkPaid(orderRef, paymentRef string) error {
	return r.db.Model(&model.Subscription{}).
		Where("order_ref = ?", orderRef).
		Updates(map[string]interface{}{"status": "paid", "payment_ref": paymentRef}).Error
}

// MarkPaidByUser settles the user's most recent pending subscription when the
// redirect carried a payment reference but no order reference to match on.
func (r *subscriptionRepository) MarkPaidByUser(userID, paymentRef string) error {
	var sub model.Subscription
	err := r.db.Where("user_id = ? AND status = ?", userID, "pending").
		Order("initiated_at DESC").First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.db.Model(&sub).
		Updates(map[string]interface{}{"status": "paid", "payment_ref": paymentRef}).Error
}
