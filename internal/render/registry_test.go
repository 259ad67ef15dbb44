package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetint/codetint/internal/model"
)

func TestRegistryRegisterDispose(t *testing.T) {
	r := NewRegistry(false)
	h1 := r.Register(model.VisualRule{Foreground: "#FF8C00"})
	h2 := r.Register(model.VisualRule{Foreground: "#1E90FF"})
	require.NotEqual(t, h1, h2, "handles must be unique")
	assert.Equal(t, 2, r.Len())

	r.Dispose(h1)
	assert.Equal(t, 1, r.Len())
	r.Dispose(h1) // unknown handle is a no-op
	assert.Equal(t, 1, r.Len())

	r.DisposeAll()
	assert.Equal(t, 0, r.Len())
}

func TestApplyPlainWhenColorDisabled(t *testing.T) {
	r := NewRegistry(false)
	h := r.Register(model.VisualRule{Foreground: "#FF8C00"})
	text := "// TODO fix"
	out := r.Apply(h, text, []model.Span{{Start: 3, End: 7}})
	assert.Equal(t, text, out, "disabled registry must not alter text")
}

func TestApplyStylesWhenEnabled(t *testing.T) {
	// the emitted escape codes depend on the terminal profile, so only the
	// text content is asserted here
	r := NewRegistry(true)
	h := r.Register(model.VisualRule{Foreground: "#FF8C00", FontWeight: "bold"})
	text := "// TODO fix"
	out := r.Apply(h, text, []model.Span{{Start: 3, End: 7}})
	assert.Contains(t, out, "TODO")
	assert.Contains(t, out, "// ")
	assert.Contains(t, out, " fix")
}

func TestApplyIconPrefix(t *testing.T) {
	r := NewRegistry(false)
	h := r.Register(model.VisualRule{Foreground: "#FF8C00", Icon: "📝"})
	out := r.Apply(h, "// TODO", []model.Span{{Start: 3, End: 7}})
	assert.Equal(t, "// 📝 TODO", out)
}

func TestApplyOverlapFirstWins(t *testing.T) {
	r := NewRegistry(false)
	h := r.Register(model.VisualRule{Icon: "*"})
	// second span overlaps the first and must be dropped
	out := r.Apply(h, "abcdef", []model.Span{{Start: 0, End: 4}, {Start: 2, End: 6}})
	assert.Equal(t, "* abcdef", out)
}

func TestApplyDuplicateSpansIdempotent(t *testing.T) {
	r := NewRegistry(false)
	h := r.Register(model.VisualRule{Icon: "*"})
	once := r.Apply(h, "// TODO", []model.Span{{Start: 3, End: 7}})
	twice := r.Apply(h, "// TODO", []model.Span{{Start: 3, End: 7}, {Start: 3, End: 7}})
	assert.Equal(t, once, twice)
}

func TestApplyUnknownHandle(t *testing.T) {
	r := NewRegistry(true)
	out := r.Apply(Handle("missing"), "text", []model.Span{{Start: 0, End: 4}})
	assert.Equal(t, "text", out)
}

func TestApplyManyMixesHandles(t *testing.T) {
	r := NewRegistry(false)
	todo := r.Register(model.VisualRule{Icon: "T"})
	fixme := r.Register(model.VisualRule{Icon: "F"})
	text := "// TODO and FIXME"
	out := r.ApplyMany(text, []Placement{
		{Span: model.Span{Start: 12, End: 17}, Handle: fixme},
		{Span: model.Span{Start: 3, End: 7}, Handle: todo},
	})
	assert.Equal(t, "// T TODO and F FIXME", out)
}

func TestApplyManyOutOfRangeSpanSkipped(t *testing.T) {
	r := NewRegistry(false)
	h := r.Register(model.VisualRule{Icon: "*"})
	out := r.ApplyMany("short", []Placement{{Span: model.Span{Start: 2, End: 99}, Handle: h}})
	assert.Equal(t, "short", out)
}
