package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/drawshape/internal/anim"
	"github.com/Faultbox/drawshape/pkg/geometry"
	"github.com/Faultbox/drawshape/pkg/math"
)

func TestFieldsFor(t *testing.T) {
	assert.Equal(t, []Field{FieldRadius, FieldMinorRadius}, FieldsFor(geometry.KindTorus))
	assert.Equal(t, []Field{FieldLength, FieldWidth}, FieldsFor(geometry.KindRectangle))
	assert.Empty(t, FieldsFor(geometry.KindNone))
	for _, k := range geometry.Kinds() {
		assert.NotEmpty(t, FieldsFor(k), k.String())
	}
}

func TestFormSelectEnablesOnlyShapeFields(t *testing.T) {
	var f Form
	f.Select(geometry.KindCone)

	for _, field := range Fields() {
		want := field == FieldRadius || field == FieldHeight
		assert.Equal(t, want, f.Enabled(field), field.String())
	}

	assert.True(t, f.Set(FieldRadius, "10"))
	assert.False(t, f.Set(FieldLength, "99"))
	assert.Equal(t, "", f.Text(FieldLength))

	f.Select(geometry.KindCircle)
	assert.False(t, f.Enabled(FieldHeight))
	assert.Equal(t, "10", f.Text(FieldRadius))
}

func TestFormClear(t *testing.T) {
	var f Form
	f.Select(geometry.KindRectangle)
	f.Set(FieldLength, "3")
	f.Set(FieldWidth, "4")
	f.Clear()
	for _, field := range Fields() {
		assert.Empty(t, f.Text(field))
	}
	assert.Equal(t, geometry.KindRectangle, f.Kind())
}

func TestFormMalformedInputReadsZero(t *testing.T) {
	var f Form
	f.Select(geometry.KindCircle)
	f.Set(FieldRadius, "")
	assert.Equal(t, 0.0, f.Raw().Radius)

	f.Set(FieldRadius, "ten")
	assert.Equal(t, 0.0, f.Raw().Radius)
}

func TestChoose(t *testing.T) {
	a := New(Settings{Geometry: geometry.DefaultOptions()}, nil)
	assert.True(t, a.Choose("torus"))
	assert.Equal(t, geometry.KindTorus, a.Form().Kind())
	assert.True(t, a.Form().Enabled(FieldMinorRadius))

	assert.False(t, a.Choose("hexagon"))
	assert.Equal(t, geometry.KindTorus, a.Form().Kind())
}

func TestSubmit(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	opts := geometry.DefaultOptions()
	opts.RingSegments = 8
	opts.TubeSegments = 4
	a := New(Settings{Geometry: opts}, zap.New(core))

	require.True(t, a.Choose("torus"))
	a.Form().Set(FieldRadius, "30")
	a.Form().Set(FieldMinorRadius, "15")

	scene := a.Submit()
	require.NotNil(t, scene.Root)
	assert.Equal(t, geometry.KindTorus, scene.Kind)
	assert.InDelta(t, 52.5, scene.Params.MajorRadius, 1e-9)
	require.NotNil(t, scene.Root.Mesh)
	assert.Equal(t, 45, scene.Root.Mesh.VertexCount())
	assert.Equal(t, math.XAxis, scene.Rotation.Axis)

	// Submitting clears the form.
	assert.Empty(t, a.Form().Text(FieldRadius))

	entries := logs.FilterMessage("scene built").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "torus", entries[0].ContextMap()["shape"])
	assert.EqualValues(t, 64, entries[0].ContextMap()["triangles"])
}

func TestSubmitWithoutShape(t *testing.T) {
	a := New(Settings{}, nil)
	scene := a.Submit()
	assert.Equal(t, geometry.KindNone, scene.Kind)
	assert.Equal(t, geometry.NoShapeText, scene.Root.Placeholder)
}

func TestSubmitSpinOverride(t *testing.T) {
	a := New(Settings{
		Geometry: geometry.DefaultOptions(),
		Spin: func(r anim.Rotation) anim.Rotation {
			r.Duration = time.Second
			r.Interpolator = anim.Linear
			return r
		},
	}, nil)
	a.Choose("square")
	scene := a.Submit()
	assert.Equal(t, time.Second, scene.Rotation.Duration)
	assert.Equal(t, math.YAxis, scene.Rotation.Axis)
}
