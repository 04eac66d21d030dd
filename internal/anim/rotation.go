package anim

import (
	"time"

	"github.com/Faultbox/drawshape/pkg/geometry"
	"github.com/Faultbox/drawshape/pkg/math"
)

// Indefinite repeats a rotation until the display is closed.
const Indefinite = -1

// Defaults of the spin shown for every shape.
const (
	DefaultDuration = 5 * time.Second
	DefaultFrom     = 0
	DefaultTo       = 360
)

// Rotation is a rotate transition: the node turns about Axis from From to
// To degrees over Duration. With AutoReverse, every odd cycle plays
// backwards. Cycles is the number of plays, or Indefinite.
type Rotation struct {
	Axis         math.Vec3
	Duration     time.Duration
	From         float32
	To           float32
	Cycles       int
	AutoReverse  bool
	Interpolator Interpolator
}

// Spin returns the default rotation for a shape kind.
func Spin(kind geometry.Kind) Rotation {
	return Rotation{
		Axis:         geometry.RotationAxis(kind),
		Duration:     DefaultDuration,
		From:         DefaultFrom,
		To:           DefaultTo,
		Cycles:       Indefinite,
		AutoReverse:  true,
		Interpolator: EaseBoth,
	}
}

// Finished reports whether a finite rotation has completed by elapsed.
func (r Rotation) Finished(elapsed time.Duration) bool {
	if r.Cycles == Indefinite {
		return false
	}
	return elapsed >= time.Duration(r.Cycles)*r.Duration
}

// progress returns the cycle index and the linear position inside it.
func (r Rotation) progress(elapsed time.Duration) (cycle int64, t float64) {
	if elapsed < 0 {
		elapsed = 0
	}
	if r.Duration <= 0 {
		return 0, 1
	}
	if r.Finished(elapsed) {
		// Hold the final frame of the last cycle.
		return int64(max(r.Cycles-1, 0)), 1
	}
	cycle = int64(elapsed / r.Duration)
	t = float64(elapsed%r.Duration) / float64(r.Duration)
	return cycle, t
}

// AngleAt returns the rotation angle in degrees after elapsed time.
func (r Rotation) AngleAt(elapsed time.Duration) float32 {
	cycle, t := r.progress(elapsed)
	if r.AutoReverse && cycle%2 == 1 {
		t = 1 - t
	}
	eased := float32(r.Interpolator.Apply(t))
	return r.From + (r.To-r.From)*eased
}

// Matrix returns the rotation matrix after elapsed time.
func (r Rotation) Matrix(elapsed time.Duration) math.Mat4 {
	return math.RotateAxis(r.Axis, math.Radians(r.AngleAt(elapsed)))
}

// Orientation returns the rotation after elapsed time as a quaternion.
func (r Rotation) Orientation(elapsed time.Duration) math.Quat {
	return math.QuatFromAxisAngle(r.Axis, math.Radians(r.AngleAt(elapsed)))
}

// Frame is one sample of a rotation.
type Frame struct {
	Elapsed time.Duration
	Angle   float32
}

// Sample evaluates the rotation every step for n frames starting at zero.
func (r Rotation) Sample(step time.Duration, n int) []Frame {
	frames := make([]Frame, 0, max(n, 0))
	for i := 0; i < n; i++ {
		elapsed := time.Duration(i) * step
		frames = append(frames, Frame{Elapsed: elapsed, Angle: r.AngleAt(elapsed)})
	}
	return frames
}
