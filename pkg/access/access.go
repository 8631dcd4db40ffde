package access

import (
	"time"

	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	"github.com/mateovidal/streamhaus-backend/pkg/enums"
)

// Pure derivations over an identity. Catalog and settings handlers gate on
// these instead of reading the user row fields directly, so the enforced
// semantics live in exactly one place.

// IsAdmin reports whether the identity holds the admin role.
func IsAdmin(u *models.User) bool {
	return u != nil && u.Role == enums.UserRoleAdmin
}

// HasSubscriptionRecord is the literal upstream behavior: any subscription
// object at all grants access, regardless of status or expiry. Kept for
// comparison; gating uses HasActiveSubscription.
func HasSubscriptionRecord(u *models.User) bool {
	return u != nil && u.Subscription != nil
}

// HasActiveSubscription is the enforced policy: the subscription must exist,
// carry an entitling status, and not be past its recorded expiry. A missing
// or unparseable expiry does not expire the subscription on its own.
func HasActiveSubscription(u *models.User, now time.Time) bool {
	if u == nil || u.Subscription == nil {
		return false
	}
	if !u.Subscription.Status.Entitles() {
		return false
	}
	if expiry, ok := u.Subscription.ExpiryTime(); ok && !expiry.After(now) {
		return false
	}
	return true
}

// CanViewEntry reports whether the viewer may see the catalog entry. A nil
// viewer is an anonymous caller and sees only entries visible to all.
func CanViewEntry(u *models.User, entry models.VodEntry, now time.Time) bool {
	if entry.Visibility == enums.VodVisibilityAll {
		return true
	}
	return IsAdmin(u) || HasActiveSubscription(u, now)
}
