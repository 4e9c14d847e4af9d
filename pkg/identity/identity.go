package identity

import (
	"context"
	"net"
	"net/http"
	"time"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity describes the caller of a request.
type Identity struct {
	RequestID  string
	RemoteIP   net.IP
	UserAgent  string
	ReceivedAt time.Time
}

// FromRequest builds an Identity from r. RemoteAddr is expected to already
// reflect any trusted proxy headers.
func FromRequest(r *http.Request, requestID string) *Identity {
	return &Identity{
		RequestID:  requestID,
		RemoteIP:   ParseRemoteAddr(r.RemoteAddr),
		UserAgent:  r.UserAgent(),
		ReceivedAt: time.Now(),
	}
}

// ParseRemoteAddr extracts the IP of a "host:port" or bare host address.
// It returns nil when addr holds no IP.
func ParseRemoteAddr(addr string) net.IP {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	return net.ParseIP(host)
}

// ClientIP returns the remote IP as a string, or "" when unknown.
func (i *Identity) ClientIP() string {
	if i == nil || i.RemoteIP == nil {
		return ""
	}
	return i.RemoteIP.String()
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
