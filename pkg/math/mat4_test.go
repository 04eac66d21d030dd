package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
	if !m.IsIdentity() {
		t.Error("IsIdentity() = false for Identity()")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M, got %v", result)
	}
}

func TestTranslate(t *testing.T) {
	got := Translate(10, 20, 30).TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("Translate: got %v, want %v", got, want)
	}
}

func TestRotations(t *testing.T) {
	quarter := float32(math.Pi / 2)
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"X maps Y to Z", RotateX(quarter), YAxis, ZAxis},
		{"Y maps X to -Z", RotateY(quarter), XAxis, Vec3{0, 0, -1}},
		{"Y maps Z to X", RotateY(quarter), ZAxis, XAxis},
		{"Z maps X to Y", RotateZ(quarter), XAxis, YAxis},
		{"axis X matches RotateX", RotateAxis(XAxis, quarter), YAxis, ZAxis},
		{"axis normalized", RotateAxis(Vec3{0, 0, 5}, quarter), XAxis, YAxis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformVec3(tt.in)
			if !got.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(5, 5, 5).Mul(RotateZ(float32(math.Pi)))
	got := m.TransformDirection(XAxis)
	if !got.ApproxEqual(Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("TransformDirection: got %v, want (-1,0,0)", got)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate after rotate: rotate (1,0,0) to (0,1,0), then shift.
	m := Translate(10, 0, 0).Mul(RotateZ(float32(math.Pi / 2)))
	got := m.TransformVec3(XAxis)
	if !got.ApproxEqual(Vec3{10, 1, 0}, 1e-5) {
		t.Errorf("got %v, want (10,1,0)", got)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); math.Abs(float64(got)-math.Pi) > 1e-6 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
}
