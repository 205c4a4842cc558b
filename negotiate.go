package rhttp

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// MimeWildcard is the Accept header entry matching any representation.
const MimeWildcard = "*/*"

// Negotiate computes the ordered set of mime types the current request
// accepts and the server can render, most preferred first.
//
// An empty accept view, or one holding exactly the wildcard entry, negotiates
// to the single configured default type. Otherwise the accepted types are
// filtered in order against the renderer registry, dropping unsupported
// entries silently.
//
// A GET request left with an empty set fails with [ErrNotAcceptable] (406),
// the message enumerating the registry's supported types. Other methods
// tolerate an empty set: write-only operations need not return a body.
func Negotiate(method string, accepted []AcceptType, renderers *RendererRegistry, defaultType string) ([]string, error) {
	if len(accepted) == 0 || (len(accepted) == 1 && accepted[0].Type == MimeWildcard) {
		return []string{defaultType}, nil
	}

	var negotiated []string
	for _, at := range accepted {
		if _, ok := renderers.Lookup(at.Type); ok {
			negotiated = append(negotiated, at.Type)
		}
	}

	if len(negotiated) == 0 && EffectiveMethod(method, "") == "GET" {
		return nil, NewError(CodeNotAcceptable, errors.Wrapf(ErrNotAcceptable,
			"supported types: %s", strings.Join(renderers.Types(), ", ")))
	}

	return negotiated, nil
}
