package rhttp_test

import (
	"testing"

	"github.com/advdv/rhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRenderJSON(t *testing.T) {
	out, err := rhttp.RenderJSON(map[string]any{"a": 1, "b": []any{1, 2}})
	require.NoError(t, err)

	assert.Equal(t, "{\n\t\"a\": 1,\n\t\"b\": [\n\t\t1,\n\t\t2\n\t]\n}", string(out))
	assert.True(t, gjson.ValidBytes(out))
	assert.Equal(t, int64(2), gjson.GetBytes(out, "b.1").Int())
}

func TestRenderJSONStringSafety(t *testing.T) {
	out, err := rhttp.RenderJSON(map[string]any{"note": "a,b"})
	require.NoError(t, err)

	assert.Equal(t, "a,b", gjson.GetBytes(out, "note").String(),
		"no indentation may leak into string values")
	assert.Contains(t, string(out), `"a,b"`)
}

func TestRenderJSONUnencodable(t *testing.T) {
	_, err := rhttp.RenderJSON(map[string]any{"ch": make(chan int)})
	require.ErrorIs(t, err, rhttp.ErrEncoding)
}

func TestRenderYAML(t *testing.T) {
	out, err := rhttp.RenderYAML(map[string]any{"name": "widget", "count": 2})
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: widget")
	assert.Contains(t, string(out), "count: 2")

	_, err = rhttp.RenderYAML(map[string]any{"fn": func() {}})
	require.ErrorIs(t, err, rhttp.ErrEncoding)
}
