package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/drawshape/internal/anim"
	"github.com/Faultbox/drawshape/pkg/geometry"
)

// Scene is everything a display needs for one shape.
type Scene struct {
	Kind     geometry.Kind
	Params   geometry.Params
	Root     *geometry.Node
	Rotation anim.Rotation
}

// Settings configures scene building.
type Settings struct {
	Geometry geometry.Options
	// Spin customizes the default rotation; nil keeps anim.Spin.
	Spin func(r anim.Rotation) anim.Rotation
}

// App owns the form state and builds scenes from it.
type App struct {
	form     Form
	settings Settings
	log      *zap.Logger
	handlers map[string]func()
}

// New creates an App. A nil logger discards output.
func New(settings Settings, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{settings: settings, log: log}
	a.handlers = make(map[string]func(), len(geometry.Kinds()))
	for _, kind := range geometry.Kinds() {
		a.handlers[kind.String()] = func() { a.form.Select(kind) }
	}
	return a
}

// Form returns the dimension form.
func (a *App) Form() *Form {
	return &a.form
}

// Choose runs the selection handler registered for a shape name.
// It reports false for names with no handler.
func (a *App) Choose(name string) bool {
	h, ok := a.handlers[name]
	if !ok {
		a.log.Debug("no handler for selection", zap.String("name", name))
		return false
	}
	h()
	a.log.Debug("shape selected",
		zap.Stringer("shape", a.form.Kind()),
		zap.Int("fields", len(FieldsFor(a.form.Kind()))))
	return true
}

// Submit builds the scene for the current form and then clears the form.
// Without a chosen shape the scene holds the placeholder node.
func (a *App) Submit() *Scene {
	kind := a.form.Kind()
	params := a.form.Params()
	a.form.Clear()

	rotation := anim.Spin(kind)
	if a.settings.Spin != nil {
		rotation = a.settings.Spin(rotation)
	}

	root := geometry.Build(kind, params, a.settings.Geometry)
	stats := root.Stats()
	a.log.Info("scene built",
		zap.Stringer("shape", kind),
		zap.Int("nodes", stats.Nodes),
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles),
		zap.Int("primitives", stats.Primitives))

	return &Scene{
		Kind:     kind,
		Params:   params,
		Root:     root,
		Rotation: rotation,
	}
}
