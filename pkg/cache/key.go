package cache

import (
	"encoding/json"
	"net/url"
)

// CanonicalKey builds an order-independent key from a URL and options.
// Query parameters are re-encoded in sorted order and option maps are
// serialized with sorted keys, so logically equal requests collide.
func CanonicalKey(rawURL string, opts Options) string {
	key := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		u.RawQuery = u.Query().Encode()
		u.Fragment = ""
		key = u.String()
	}

	// encoding/json writes map keys in sorted order.
	b, err := json.Marshal(opts)
	if err != nil {
		return key
	}
	return key + "|" + string(b)
}
