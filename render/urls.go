package render

import (
	"net/url"
	"strings"
)

// Normalizer rewrites media URLs so they resolve from the public origin.
// One policy for every call site: editor preview and public view behave
// the same.
type Normalizer struct {
	// Origin is the public scheme+host, without a trailing slash.
	Origin string
}

func NewNormalizer(origin string) Normalizer {
	return Normalizer{Origin: strings.TrimRight(origin, "/")}
}

// Normalize returns an absolute URL for the given media reference.
// Empty input stays empty. Absolute URLs pass through unchanged, except
// loopback hosts, which are repaired to the public origin: older records
// were persisted with a hardcoded development host.
func (n Normalizer) Normalize(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		u, err := url.Parse(value)
		if err != nil {
			return value
		}
		host := u.Hostname()
		if host == "localhost" || host == "127.0.0.1" {
			rebuilt := n.Origin + u.Path
			if u.RawQuery != "" {
				rebuilt += "?" + u.RawQuery
			}
			return rebuilt
		}
		return value
	}

	if !strings.HasPrefix(value, "/") {
		value = "/" + value
	}
	return n.Origin + value
}
