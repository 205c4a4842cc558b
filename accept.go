package rhttp

import (
	"mime"
	"sort"
	"strconv"
	"strings"
)

// AcceptType is one entry of a parsed Accept header: a mime type and the
// quality weight the client assigned to it.
type AcceptType struct {
	Type    string
	Quality float64
}

// ParseAccept parses an Accept header value into an ordered view, most
// preferred type first. Ordering follows descending quality with the header's
// own order as tie breaker. Entries that fail media type parsing are dropped,
// a missing q parameter defaults to 1.
func ParseAccept(header string) []AcceptType {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}

	var types []AcceptType
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		mediaType, params, err := mime.ParseMediaType(part)
		if err != nil {
			continue
		}

		quality := 1.0
		if qs, ok := params["q"]; ok {
			q, err := strconv.ParseFloat(qs, 64)
			if err != nil || q < 0 || q > 1 {
				continue
			}
			quality = q
		}

		types = append(types, AcceptType{Type: mediaType, Quality: quality})
	}

	sort.SliceStable(types, func(i, j int) bool {
		return types[i].Quality > types[j].Quality
	})

	return types
}

// MediaType returns the media type of a Content-Type header value without its
// parameters, e.g. "application/json" for "application/json; charset=utf-8".
func MediaType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		// keep malformed values as-is so registry lookup decides their fate.
		return strings.TrimSpace(strings.ToLower(contentType))
	}

	return mediaType
}
