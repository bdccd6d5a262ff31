package urlutil

import (
	"net/url"
	"strings"
)

// NormalizeHost lowercases a hostname and strips a leading "www." so that
// retailer tables can match on a canonical form.
func NormalizeHost(host string) string {
	host = strings.ToLower(host)
	host = strings.TrimPrefix(host, "www.")
	return host
}

// Host extracts the normalized hostname from a raw URL. Returns "" when the
// URL cannot be parsed.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return NormalizeHost(u.Hostname())
}

// AbsoluteURL resolves an image or asset reference against the page it was
// found on. Protocol-relative references get https, absolute references pass
// through, and relative paths resolve against the origin of baseURL.
// Malformed input comes back unchanged so callers never lose the raw value.
func AbsoluteURL(raw, baseURL string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	if strings.HasPrefix(raw, "http") {
		return raw
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	origin := &url.URL{Scheme: base.Scheme, Host: base.Host}
	if origin.Scheme == "" {
		origin.Scheme = "https"
	}
	return origin.ResolveReference(ref).String()
}
