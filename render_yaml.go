package rhttp

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// RenderYAML encodes plain data as YAML. Failures are marked [ErrEncoding].
func RenderYAML(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "encode yaml"), ErrEncoding)
	}

	return out, nil
}
