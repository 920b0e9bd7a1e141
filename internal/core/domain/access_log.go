package domain

import "time"

// AccessLog is an audit record of a request to a privileged route.
// UserID is zero when the request carried no identity.
type AccessLog struct {
	UserID      int64
	Method      string
	URL         string
	RequestedAt time.Time
}
