package payment

import (
	"net/url"
	"strings"
	"time"
)

// InitiationWindow is how long a locally cached "payment initiated at"
// timestamp is trusted as evidence of a same-tab return from the gateway.
const InitiationWindow = 5 * time.Minute

// Outcome is the terminal decision of one reconciliation attempt.
type Outcome string

const (
	// OutcomeAlreadyEntitled short-circuits: the store already says paid.
	OutcomeAlreadyEntitled Outcome = "already_entitled"
	// OutcomeConfirmed is a payment reference corroborated by at least one
	// other gateway signal.
	OutcomeConfirmed Outcome = "confirmed"
	// OutcomeReferenceOnly grants on a payment reference with no
	// corroboration. A false negative costs more than a false positive here,
	// so the reference alone is trusted.
	OutcomeReferenceOnly Outcome = "reference_only"
	// OutcomeRecentInitiation grants on a fresh cached initiation timestamp
	// when the redirect carried no signals at all.
	OutcomeRecentInitiation Outcome = "recent_initiation"
	// OutcomeInconclusive denies: nothing supported a grant.
	OutcomeInconclusive Outcome = "inconclusive"
)

// Granted reports whether the outcome entitles the subject.
func (o Outcome) Granted() bool {
	return o != OutcomeInconclusive
}

// Signals are the observed redirect-time parameters plus locally cached
// context. Any subset may be absent; empty string / zero time mean absent.
type Signals struct {
	PaymentRef  string
	OrderRef    string
	Status      string
	SuccessFlag string
	ResultCode  string
	// InitiatedAt is the advisory client-cached moment checkout was started.
	InitiatedAt time.Time
	// AlreadyEntitled is the store's current answer for the subject.
	AlreadyEntitled bool
}

// Historical aliases the gateway redirect has used for each signal.
var (
	paymentRefAliases = []string{"PaymentId", "paymentId", "payment_id", "paymentID"}
	orderRefAliases   = []string{"OrderId", "orderId", "order_id", "MERCHANT_ORDER_ID"}
	statusAliases     = []string{"Status", "status", "PaymentStatus"}
	successAliases    = []string{"Success", "success", "paid"}
	resultCodeAliases = []string{"RC", "ResultCode", "resultCode", "result_code"}
)

func firstPresent(values url.Values, aliases []string) string {
	for _, key := range aliases {
		if v := values.Get(key); v != "" {
			return v
		}
	}
	return ""
}

// SignalsFromQuery extracts the redirect signals from gateway callback query
// parameters, tolerating any subset being absent and all historical aliases.
func SignalsFromQuery(values url.Values) Signals {
	return Signals{
		PaymentRef:  firstPresent(values, paymentRefAliases),
		OrderRef:    firstPresent(values, orderRefAliases),
		Status:      firstPresent(values, statusAliases),
		SuccessFlag: firstPresent(values, successAliases),
		ResultCode:  firstPresent(values, resultCodeAliases),
	}
}

func statusConfirms(status string) bool {
	switch strings.ToUpper(status) {
	case "CONFIRMED", "AUTHORIZED", "APPROVED", "COMPLETED", "SUCCESS":
		return true
	}
	return false
}

func flagTruthy(flag string) bool {
	switch strings.ToLower(flag) {
	case "true", "1", "yes":
		return true
	}
	return false
}

func resultCodeOK(code string) bool {
	switch code {
	case "0", "00", "000", "OK":
		return true
	}
	return false
}

// Decide runs the reconciliation decision table. Rules are evaluated in
// order; the first match wins:
//  1. store already reports entitlement
//  2. payment reference plus any corroborating signal
//  3. payment reference alone
//  4. no redirect signals, cached initiation under InitiationWindow old
//  5. inconclusive
//
// Re-running on an already-entitled subject hits rule 1, which is what makes
// the procedure idempotent.
func Decide(s Signals, now time.Time) Outcome {
	if s.AlreadyEntitled {
		return OutcomeAlreadyEntitled
	}

	if s.PaymentRef != "" {
		if s.OrderRef != "" || statusConfirms(s.Status) || flagTruthy(s.SuccessFlag) || resultCodeOK(s.ResultCode) {
			return OutcomeConfirmed
		}
		return OutcomeReferenceOnly
	}

	noRedirectSignals := s.OrderRef == "" && s.Status == "" && s.SuccessFlag == "" && s.ResultCode == ""
	if noRedirectSignals && !s.InitiatedAt.IsZero() && now.Sub(s.InitiatedAt) < InitiationWindow {
		return OutcomeRecentInitiation
	}

	return OutcomeInconclusive
}
