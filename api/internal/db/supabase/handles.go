// Package supabase wraps the hosted data store behind two capability
// handles: a restricted one (row-level security enforced, safe anywhere)
// and a privileged one (service key, bypasses RLS, trusted contexts only).
package supabase

import (
	"errors"
	"sync"

	supa "github.com/supabase-community/supabase-go"

	"muebleria/api/internal/core/domain"
)

// ErrStoreUnconfigured is returned when the facade was built without a
// store URL or key; reads degrade instead of crashing the process.
var ErrStoreUnconfigured = errors.New("data store is not configured")

// Handles memoizes one client per capability level. Construction is
// lazy and idempotent: the first acquisition builds the client, every
// later one returns the cached instance. The underlying REST client is
// stateless and safe to share across requests.
type Handles struct {
	url        string
	anonKey    string
	serviceKey string

	// 🛡️ Fixed at construction. A Handles built for an untrusted
	// (browser-reachable) context can never mint the privileged client,
	// no matter who asks.
	trusted bool

	restrictedOnce sync.Once
	restricted     *supa.Client
	restrictedErr  error

	privilegedOnce sync.Once
	privileged     *supa.Client
	privilegedErr  error
}

// NewHandles builds the facade. trusted must be true only in execution
// contexts guaranteed never to ship code or credentials to the browser.
func NewHandles(url, anonKey, serviceKey string, trusted bool) *Handles {
	return &Handles{
		url:        url,
		anonKey:    anonKey,
		serviceKey: serviceKey,
		trusted:    trusted,
	}
}

// Get returns the handle for the requested capability level.
//
// The trust check runs on every logical acquisition, not only at
// construction, so tests can exercise both contexts against the same
// accessor path.
func (h *Handles) Get(privileged bool) (*supa.Client, error) {
	if !privileged {
		return h.getRestricted()
	}
	if !h.trusted {
		return nil, &domain.TrustBoundaryError{Operation: "get privileged handle"}
	}
	return h.getPrivileged()
}

func (h *Handles) getRestricted() (*supa.Client, error) {
	h.restrictedOnce.Do(func() {
		if h.url == "" || h.anonKey == "" {
			h.restrictedErr = ErrStoreUnconfigured
			return
		}
		h.restricted, h.restrictedErr = supa.NewClient(h.url, h.anonKey, &supa.ClientOptions{})
	})
	return h.restricted, h.restrictedErr
}

func (h *Handles) getPrivileged() (*supa.Client, error) {
	h.privilegedOnce.Do(func() {
		if h.url == "" || h.serviceKey == "" {
			h.privilegedErr = ErrStoreUnconfigured
			return
		}
		h.privileged, h.privilegedErr = supa.NewClient(h.url, h.serviceKey, &supa.ClientOptions{})
	})
	return h.privileged, h.privilegedErr
}
