package models

import "time"

// Session is the gateway-side stand-in for the SPA's browser session blob:
// populated when the storefront first connects, touched on every request,
// cleared on logout. Comparison criteria state lives next to it in Redis under
// its own key so the session record itself stays small.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
}
