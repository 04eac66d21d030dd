package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/drawshape/internal/app"
	"github.com/Faultbox/drawshape/internal/config"
	"github.com/Faultbox/drawshape/internal/logger"
	"github.com/Faultbox/drawshape/pkg/formats"
	"github.com/Faultbox/drawshape/pkg/geometry"
	"github.com/Faultbox/drawshape/pkg/math"
)

// dimensionFlags registers one text flag per form field.
func dimensionFlags(fs *flag.FlagSet) map[app.Field]*string {
	texts := make(map[app.Field]*string)
	for _, field := range app.Fields() {
		texts[field] = fs.String(field.String(), "", "Text for the "+field.String()+" field")
	}
	return texts
}

// submit runs the form the way the shape window does: choose the shape,
// type into its fields, then press draw.
func submit(cfg *config.Config, shape string, texts map[app.Field]*string) (*app.Scene, error) {
	a := app.New(app.Settings{
		Geometry: cfg.GeometryOptions(),
		Spin:     cfg.ApplySpin,
	}, logger.Log)

	if !a.Choose(strings.ToLower(shape)) {
		return nil, fmt.Errorf("%w: unknown shape %q (see drawshape shapes)", errUsage, shape)
	}
	form := a.Form()
	for field, text := range texts {
		if *text == "" {
			continue
		}
		if !form.Set(field, *text) {
			logger.Warn("field not used by shape, ignoring",
				zap.Stringer("shape", form.Kind()),
				zap.Stringer("field", field),
				zap.String("text", *text))
		}
	}
	return a.Submit(), nil
}

func cmdShapes(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SHAPE\tDIM\tFIELDS\tAXIS")
	for _, kind := range geometry.Kinds() {
		dim := "2D"
		if kind.Is3D() {
			dim = "3D"
		}
		var names []string
		for _, f := range app.FieldsFor(kind) {
			names = append(names, f.String())
		}
		axis := geometry.RotationAxis(kind)
		fmt.Fprintf(tw, "%s\t%s\t%s\t(%g, %g, %g)\n", kind, dim, strings.Join(names, ", "), axis.X, axis.Y, axis.Z)
	}
	return tw.Flush()
}

func cmdDraw(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	texts := dimensionFlags(fs)
	if len(args) < 1 {
		return fmt.Errorf("%w: drawshape draw <shape> [dimensions]", errUsage)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	scene, err := submit(cfg, args[0], texts)
	if err != nil {
		return err
	}

	p := scene.Params
	fmt.Fprintf(out, "Shape:    %s\n", scene.Kind)
	fmt.Fprintf(out, "Params:   length=%g width=%g radius=%g height=%g minor=%g major=%g\n",
		p.Length, p.Width, p.Radius, p.Height, p.MinorRadius, p.MajorRadius)
	fmt.Fprintf(out, "Spin:     axis (%g, %g, %g), %s, %s\n",
		scene.Rotation.Axis.X, scene.Rotation.Axis.Y, scene.Rotation.Axis.Z,
		scene.Rotation.Duration, scene.Rotation.Interpolator)
	fmt.Fprintln(out)

	scene.Root.Walk(func(node *geometry.Node, _ math.Mat4) {
		switch {
		case node.Placeholder != "":
			fmt.Fprintf(out, "  %-14s text %q\n", node.Name, node.Placeholder)
		case node.Mesh != nil:
			m := node.Mesh
			fmt.Fprintf(out, "  %-14s mesh: %d points, %d uvs, %d triangles, %d face entries\n",
				node.Name, m.VertexCount(), len(m.TexCoords), m.TriangleCount(), len(m.Faces()))
		case node.Primitive != nil:
			fmt.Fprintf(out, "  %-14s %s\n", node.Name, describePrimitive(node.Primitive))
		default:
			fmt.Fprintf(out, "  %-14s group (%d children)\n", node.Name, len(node.Children))
		}
	})

	flat := scene.Root.Flatten(cfg.Mesh.PrimitiveSegments)
	b := flat.Bounds()
	c := b.Center()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Bounds:   (%.2f, %.2f, %.2f) - (%.2f, %.2f, %.2f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Fprintf(out, "Center:   (%.2f, %.2f, %.2f)\n", c.X, c.Y, c.Z)
	fmt.Fprintf(out, "Triangles (tessellated): %d\n", flat.TriangleCount())
	return nil
}

func describePrimitive(p *geometry.Primitive) string {
	switch p.Kind {
	case geometry.KindCircle, geometry.KindSphere:
		return fmt.Sprintf("%s radius=%g", p.Kind, p.Radius)
	case geometry.KindTriangle:
		return fmt.Sprintf("%s points=%v", p.Kind, p.Points)
	case geometry.KindCylinder:
		return fmt.Sprintf("%s radius=%g height=%g", p.Kind, p.Radius, p.Height)
	default:
		return fmt.Sprintf("%s %gx%gx%g", p.Kind, p.Width, p.Height, p.Depth)
	}
}

func cmdExport(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	texts := dimensionFlags(fs)
	output := fs.String("o", "", "Output file (.obj or .stl)")
	format := fs.String("format", "", "Format when the extension is ambiguous")
	if len(args) < 1 {
		return fmt.Errorf("%w: drawshape export <shape> -o <file> [dimensions]", errUsage)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *output == "" {
		return fmt.Errorf("%w: export needs -o <file>", errUsage)
	}

	f, err := exportFormat(cfg, *output, *format)
	if err != nil {
		return err
	}

	scene, err := submit(cfg, args[0], texts)
	if err != nil {
		return err
	}

	mesh := scene.Root.Flatten(cfg.Mesh.PrimitiveSegments)
	if err := mesh.Validate(); err != nil {
		return fmt.Errorf("flattened %s: %w", scene.Kind, err)
	}

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer file.Close()

	switch f {
	case formats.FormatSTL:
		err = formats.WriteSTL(file, mesh, "drawshape "+scene.Kind.String())
	default:
		err = formats.WriteOBJ(file, mesh, scene.Kind.String())
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", *output, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", *output, err)
	}

	logger.Info("mesh exported",
		zap.String("path", *output),
		zap.String("format", string(f)),
		zap.Stringer("shape", scene.Kind),
		zap.Int("triangles", mesh.TriangleCount()))
	fmt.Fprintf(out, "Exported: %s (%s, %d vertices, %d triangles)\n",
		*output, f, mesh.VertexCount(), mesh.TriangleCount())
	return nil
}

// exportFormat resolves the output format: explicit flag, then file
// extension, then the configured default.
func exportFormat(cfg *config.Config, path, explicit string) (formats.Format, error) {
	if explicit != "" {
		return formats.ParseFormat(explicit)
	}
	if f, err := formats.FormatFromPath(path); err == nil {
		return f, nil
	}
	return formats.ParseFormat(cfg.Export.Format)
}

func cmdSpin(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("spin", flag.ContinueOnError)
	frames := fs.Int("frames", 21, "Number of samples")
	step := fs.Duration("step", 250*time.Millisecond, "Time between samples")
	showMatrix := fs.Bool("matrix", false, "Show where the rotation matrix sends a reference direction")
	showQuat := fs.Bool("quat", false, "Show the orientation quaternion (x, y, z, w)")
	if len(args) < 1 {
		return fmt.Errorf("%w: drawshape spin <shape> [-frames N] [-step 250ms] [-matrix] [-quat]", errUsage)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *step <= 0 {
		return fmt.Errorf("%w: -step must be positive", errUsage)
	}

	scene, err := submit(cfg, args[0], nil)
	if err != nil {
		return err
	}

	r := scene.Rotation
	ref := referenceDirection(r.Axis)
	logger.Sugar.Debugf("sampling %s spin: %d frames every %s", scene.Kind, *frames, *step)

	fmt.Fprintf(out, "%s spins about (%g, %g, %g) over %s\n", scene.Kind, r.Axis.X, r.Axis.Y, r.Axis.Z, r.Duration)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := "TIME\tANGLE"
	if *showMatrix {
		header += fmt.Sprintf("\t(%g, %g, %g) ->", ref.X, ref.Y, ref.Z)
	}
	if *showQuat {
		header += "\tQUAT"
	}
	fmt.Fprintln(tw, header)

	for _, frame := range r.Sample(*step, *frames) {
		row := fmt.Sprintf("%s\t%.2f", frame.Elapsed, frame.Angle)
		if *showMatrix {
			d := r.Matrix(frame.Elapsed).TransformDirection(ref)
			row += fmt.Sprintf("\t(%.3f, %.3f, %.3f)", d.X, d.Y, d.Z)
		}
		if *showQuat {
			q := r.Orientation(frame.Elapsed)
			row += fmt.Sprintf("\t(%.3f, %.3f, %.3f, %.3f)", q.X, q.Y, q.Z, q.W)
		}
		fmt.Fprintln(tw, row)
	}
	return tw.Flush()
}

// referenceDirection picks a unit axis that is not parallel to the spin
// axis, so its image under the rotation moves.
func referenceDirection(axis math.Vec3) math.Vec3 {
	if d := axis.Normalize().Dot(math.XAxis); d > 0.9 || d < -0.9 {
		return math.YAxis
	}
	return math.XAxis
}

func cmdInspect(args []string, out io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: drawshape inspect <file.stl>", errUsage)
	}

	stl, err := formats.ParseSTLFile(args[0])
	if err != nil {
		return err
	}
	mesh := stl.Mesh()
	b := mesh.Bounds()
	size := b.Size()
	c := b.Center()
	logger.Debug("stl parsed",
		zap.String("path", args[0]),
		zap.Int("triangles", len(stl.Triangles)),
		zap.Int("vertices", mesh.VertexCount()))

	fmt.Fprintf(out, "File:      %s\n", args[0])
	fmt.Fprintf(out, "Header:    %s\n", stl.Header)
	fmt.Fprintf(out, "Triangles: %d\n", len(stl.Triangles))
	fmt.Fprintf(out, "Vertices:  %d (welded)\n", mesh.VertexCount())
	fmt.Fprintf(out, "Bounds:    (%.2f, %.2f, %.2f) - (%.2f, %.2f, %.2f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Fprintf(out, "Size:      %.2f x %.2f x %.2f\n", size.X, size.Y, size.Z)
	fmt.Fprintf(out, "Center:    (%.2f, %.2f, %.2f)\n", c.X, c.Y, c.Z)
	return nil
}

func cmdConfig(args []string, out io.Writer) error {
	if len(args) < 1 || args[0] != "init" {
		return fmt.Errorf("%w: drawshape config init [-o <file>] [-force]", errUsage)
	}

	fs := flag.NewFlagSet("config init", flag.ContinueOnError)
	output := fs.String("o", "", "Write here instead of the user config directory")
	force := fs.Bool("force", false, "Overwrite an existing file")
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	path := *output
	if path == "" {
		path = config.DefaultPath()
	}
	if !*force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use -force to overwrite)", path)
		}
	}

	cfg := config.Default()
	var err error
	if *output == "" {
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	logger.Info("config written", zap.String("path", path))
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
