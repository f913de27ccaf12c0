package service

import (
	"errors"
	"time"

	"github.com/mindtrace/bpdscreen/internal/payment"
	"github.com/mindtrace/bpdscreen/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrPaymentInconclusive reports that no redirect signal or cached context
// supported a grant. The caller routes the user back to payment initiation.
var ErrPaymentInconclusive = errors.New("could not confirm payment")

// ReconcileService converts ambiguous gateway redirect signals into a binary
// entitlement decision and applies its side effects. The decision itself
// lives in payment.Decide; this wrapper adds the store lookups and writes.
type ReconcileService interface {
	Reconcile(userID string, signals payment.Signals) (payment.Outcome, error)
	Entitled(userID string) (bool, error)
}

type reconcileService struct {
	entitlementRepo  repository.EntitlementRepository
	subscriptionRepo repository.SubscriptionRepository
	now              func() time.Time
}

func NewReconcileService(entitlementRepo repository.EntitlementRepository, subscriptionRepo repository.SubscriptionRepository) ReconcileService {
	return &reconcileService{
		entitlementRepo:  entitlementRepo,
		subscriptionRepo: subscriptionRepo,
		now:              time.Now,
	}
}

// Reconcile runs the decision table to a terminal outcome. An already
// entitled user short-circuits with no side effects, which makes re-running
// the procedure a no-op. Every granting branch attempts to persist the
// entitlement and settle the subscription row, but a failed write never
// revokes the grant for the current session: the store is eventually
// consistent via the next reconciliation.
func (s *reconcileService) Reconcile(userID string, signals payment.Signals) (payment.Outcome, error) {
	already, err := s.entitlementRepo.Get(userID)
	if err != nil {
		// A failed lookup must not manufacture entitlement; fall through to
		// the redirect signals with rule 1 unavailable.
		log.Error().Err(err).Str("userID", userID).Msg("Reconcile: entitlement lookup failed")
		already = false
	}
	signals.AlreadyEntitled = already

	outcome := payment.Decide(signals, s.now())
	if outcome == payment.OutcomeAlreadyEntitled {
		return outcome, nil
	}
	if !outcome.Granted() {
		log.Warn().Str("userID", userID).Msg("Reconcile: inconclusive, entitlement denied")
		return outcome, ErrPaymentInconclusive
	}

	if err := s.entitlementRepo.Set(userID); err != nil {
		log.Error().Err(err).Str("userID", userID).Str("outcome", string(outcome)).
			Msg("Reconcile: failed to persist entitlement, honoring grant for this session")
	}

	if signals.PaymentRef != "" {
		if err := s.settleSubscription(userID, signals); err != nil {
			log.Error().Err(err).Str("userID", userID).Msg("Reconcile: failed to settle subscription row")
		}
	}

	log.Info().Str("userID", userID).Str("outcome", string(outcome)).Msg("Reconcile: entitlement granted")
	return outcome, nil
}

func (s *reconcileService) settleSubscription(userID string, signals payment.Signals) error {
	if signals.OrderRef != "" {
		return s.subscriptionRepo.MarkPaid(signals.OrderRef, signals.PaymentRef)
	}
	return s.subscriptionRepo.MarkPaidByUser(userID, signals.PaymentRef)
}

func (s *reconcileService) Entitled(userID string) (bool, error) {
	return s.entitlementRepo.Get(userID)
}
