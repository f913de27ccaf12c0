package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mindtrace/bpdscreen/config"
	"github.com/mindtrace/bpdscreen/internal/dto"
	"github.com/mindtrace/bpdscreen/internal/model"
	"github.com/mindtrace/bpdscreen/internal/payment"
	"github.com/mindtrace/bpdscreen/internal/repository"
	"github.com/rs/zerolog/log"
)

// PaymentService builds signed checkout requests for the gateway and records
// the pending subscription row they correspond to.
type PaymentService interface {
	Checkout(userID string) (*dto.CheckoutResponseDTO, error)
}

type paymentService struct {
	subscriptionRepo repository.SubscriptionRepository
	cfg              *config.Config
}

func NewPaymentService(subscriptionRepo repository.SubscriptionRepository, cfg *config.Config) PaymentService {
	return &paymentService{subscriptionRepo: subscriptionRepo, cfg: cfg}
}

func (s *paymentService) Checkout(userID string) (*dto.CheckoutResponseDTO, error) {
	orderRef := uuid.NewString()
	now := time.Now()

	sub := model.Subscription{
		UserID:      userID,
		OrderRef:    orderRef,
		Status:      "pending",
		Amount:      s.cfg.Payment.Amount,
		Currency:    s.cfg.Payment.Currency,
		InitiatedAt: now,
	}
	if err := s.subscriptionRepo.Create(&sub); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Checkout: failed to create pending subscription")
		return nil, fmt.Errorf("failed to record checkout: %w", err)
	}

	fields := map[string]string{
		"merchantId":  s.cfg.Payment.MerchantID,
		"orderId":     orderRef,
		"amount":      strconv.FormatFloat(s.cfg.Payment.Amount, 'f', 2, 64),
		"currency":    s.cfg.Payment.Currency,
		"description": "Full screening results access",
		"returnUrl":   s.cfg.Payment.ReturnURL,
	}
	signature := payment.Sign(fields, s.cfg.Payment.SecretKey)

	log.Info().Str("userID", userID).Str("orderRef", orderRef).Msg("Checkout: signed payment request issued")
	return &dto.CheckoutResponseDTO{
		GatewayURL: s.cfg.Payment.GatewayURL,
		Fields:     fields,
		Signature:  signature,
		OrderRef:   orderRef,
	}, nil
}
