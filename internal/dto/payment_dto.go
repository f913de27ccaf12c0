package dto

// CheckoutResponseDTO is everything the client needs to post the payment form
// to the gateway: the outgoing fields plus the signature over them.
type CheckoutResponseDTO struct {
	GatewayURL string            `json:"gateway_url"`
	Fields     map[string]string `json:"fields"`
	Signature  string            `json:"signature"`
	OrderRef   string            `json:"order_ref"`
}

// ReconcileResponseDTO is the terminal decision of one reconciliation run.
type ReconcileResponseDTO struct {
	Entitled bool   `json:"entitled"`
	Outcome  string `json:"outcome"`
}

// EntitlementDTO reports the store's current answer for the subject.
type EntitlementDTO struct {
	HasPaid bool `json:"has_paid"`
}
