package rhttp

import (
	"encoding/json"

	"github.com/advdv/rhttp/internal/jsonfmt"
	"github.com/cockroachdb/errors"
)

// RenderJSON encodes plain data as pretty-printed JSON text: compact encoding
// first, then the string-literal-aware formatter of the jsonfmt package with
// one tab per indent level. Failures of either phase are marked [ErrEncoding],
// unencodable data (cycles, channels) never produces partial output.
func RenderJSON(v any) ([]byte, error) {
	compact, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "encode compact json"), ErrEncoding)
	}

	out, err := jsonfmt.Format(compact)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "pretty-print json"), ErrEncoding)
	}

	return out, nil
}
