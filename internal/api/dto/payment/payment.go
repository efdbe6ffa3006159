package payment

// WebhookRequest is the payment provider's top-up notification. Field names
// follow the provider's payload, not ours.
type WebhookRequest struct {
	UserID    int    `json:"user_id"`
	Amount    int64  `json:"amount"`
	Provider  string `json:"provider"`
	Reference string `json:"reference"`
}
