package domain

type Message struct {
	Key   []byte
	Value []byte
}

// BreakdownEvent is published after a breakdown has been persisted.
type BreakdownEvent struct {
	TransactionID    string `json:"transaction_id"`
	ClientID         string `json:"client_id"`
	ProviderID       string `json:"provider_id"`
	PlatformRevenue  int64  `json:"platform_revenue"`
	ProviderRevenue  int64  `json:"provider_revenue"`
	TotalCommissions int64  `json:"total_commissions"`
	NetRevenue       int64  `json:"net_revenue"`
	ChainPartial     bool   `json:"chain_partial"`
}

type BreakdownPublisherPort interface {
	PublishBreakdown(event BreakdownEvent) error
}

type SubscriberPort interface {
	Subscribe(topic, groupID string) (<-chan Message, error)
}
