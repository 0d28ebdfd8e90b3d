package user

import "time"

// Subscription is the account's plan tier.
type Subscription string

const (
	SubscriptionStarter  Subscription = "starter"
	SubscriptionPro      Subscription = "pro"
	SubscriptionBusiness Subscription = "business"
)

func (s Subscription) Valid() bool {
	switch s {
	case SubscriptionStarter, SubscriptionPro, SubscriptionBusiness:
		return true
	}
	return false
}

// User is the persisted account record. SessionToken holds the single live
// bearer token; empty means no active session. VerificationToken is non-empty
// exactly while the account has never completed verification.
type User struct {
	ID                string
	Email             string
	PasswordHash      string
	Subscription      Subscription
	AvatarURL         string
	SessionToken      string
	Verified          bool
	VerificationToken string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
