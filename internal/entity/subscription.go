package entity

import "time"

type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriberId"`
	ChannelID    string    `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SubscriptionView pairs a subscription with the user on the other side of it:
// the subscriber when listing a channel's audience, the channel when listing
// what a user follows.
type SubscriptionView struct {
	SubscriptionID string        `json:"subscriptionId"`
	User           *OwnerSummary `json:"user"`
	SubscribedAt   time.Time     `json:"subscribedAt"`
}
