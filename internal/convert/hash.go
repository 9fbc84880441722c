package convert

import (
	"github.com/restforge/restforge/internal/httpfile"
	"github.com/restforge/restforge/internal/model"
	"github.com/restforge/restforge/internal/sourcehash"
)

// RequestSourceHash fingerprints a structured request as it would appear
// on the wire: query params merged into the URL, headers coalesced with
// any auth-derived Authorization header, and the body rendered per its
// variant.
//
// The result matches [RegionSourceHash] for the region the request would
// serialise to, which is the property drift detection relies on. Names,
// meta directives, scripts and the request ID never affect the hash.
func RequestSourceHash(request model.Request) string {
	wire := wireRequest(request)

	return sourcehash.Sum(wire.Method, wire.URL, headerPairs(wire.Headers), wire.Body)
}

// RegionSourceHash fingerprints a parsed region using the request exactly
// as the engine delivered it.
//
// A region without a request has no meaningful hash and returns the empty
// string, distinct from a request with an empty body, which hashes with an
// empty body component.
func RegionSourceHash(region *httpfile.Region) string {
	if region == nil || region.Request == nil {
		return ""
	}

	request := region.Request

	return sourcehash.Sum(request.Method, request.URL, headerPairs(request.Headers), request.Body)
}

// headerPairs flattens an ordered header list into one entry per value.
func headerPairs(headers httpfile.Headers) []sourcehash.Header {
	var pairs []sourcehash.Header

	for _, header := range headers {
		for _, value := range header.Values {
			pairs = append(pairs, sourcehash.Header{Name: header.Key, Value: value})
		}
	}

	return pairs
}
