package rhttp

import (
	"encoding/json"
	"net/url"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ParseJSON decodes a JSON request body into plain data.
func ParseJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "decode json body")
	}

	return v, nil
}

// ParseYAML decodes a YAML request body into plain data.
func ParseYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "decode yaml body")
	}

	return v, nil
}

// ParseForm decodes an url-encoded form body into plain data. Fields with a
// single value map to that value, repeated fields to a sequence of values.
func ParseForm(data []byte) (any, error) {
	vals, err := url.ParseQuery(string(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode form body")
	}

	return formToPlain(vals), nil
}

func formToPlain(vals url.Values) map[string]any {
	if len(vals) == 0 {
		return nil
	}

	plain := make(map[string]any, len(vals))
	for field, fvals := range vals {
		if len(fvals) == 1 {
			plain[field] = fvals[0]
			continue
		}

		seq := make([]any, 0, len(fvals))
		for _, fv := range fvals {
			seq = append(seq, fv)
		}
		plain[field] = seq
	}

	return plain
}
