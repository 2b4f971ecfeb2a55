package component

import (
	"math"
	"testing"
)

func newTestCamera() Camera {
	c := Camera{
		Position: Vec3{0, 0, 500},
		Up:       Vec3{0, 1, 0},
		FovY:     60,
		Aspect:   2,
		Near:     0.1,
		Far:      2500,
	}
	c.LookAt(Vec3{})
	return c
}

func TestCameraProject(t *testing.T) {
	c := newTestCamera()
	const w, h = 800, 400

	x, y, depth, ok := c.Project(Vec3{}, w, h)
	if !ok || x != 400 || y != 200 || depth != 500 {
		t.Fatalf("origin projected to (%v, %v, %v, %v)", x, y, depth, ok)
	}

	// на краю поля зрения по вертикали
	top := 500 * math.Tan(30*math.Pi/180)
	_, y, _, ok = c.Project(Vec3{0, top, 0}, w, h)
	if !ok || math.Abs(y) > 1e-9 {
		t.Fatalf("point at the top edge projected to y=%v", y)
	}

	x, _, _, _ = c.Project(Vec3{10, 0, 0}, w, h)
	if x <= 400 {
		t.Fatalf("+X should project right of centre, got %v", x)
	}

	if _, _, _, ok := c.Project(Vec3{0, 0, 600}, w, h); ok {
		t.Fatal("point behind the camera reported visible")
	}
	if _, _, _, ok := c.Project(Vec3{0, 0, -2500}, w, h); ok {
		t.Fatal("point beyond the far plane reported visible")
	}
}

func TestCameraProjectedRadius(t *testing.T) {
	c := newTestCamera()
	r := c.ProjectedRadius(50, 500, 400)
	want := 50 * 200 / math.Tan(math.Pi/6) / 500
	if math.Abs(r-want) > 1e-9 {
		t.Fatalf("ProjectedRadius = %v; want %v", r, want)
	}
	if c.ProjectedRadius(50, 0, 400) != 0 {
		t.Fatal("zero depth should give zero radius")
	}
}

func TestCameraProjectMatchesPinhole(t *testing.T) {
	c := newTestCamera()
	const w, h = 800, 400
	f := c.Focal(h)
	for _, p := range []Vec3{{30, -20, 0}, {-120, 45, -300}, {5, 5, 400}} {
		x, y, depth, ok := c.Project(p, w, h)
		if !ok {
			t.Fatalf("%v not visible", p)
		}
		rel := p.Sub(c.Position)
		wantX := w/2 + rel.X()/depth*f
		wantY := h/2 - rel.Y()/depth*f
		if math.Abs(x-wantX) > 1e-6 || math.Abs(y-wantY) > 1e-6 {
			t.Fatalf("Project(%v) = (%v, %v); want (%v, %v)", p, x, y, wantX, wantY)
		}
	}
}

func TestCameraBasis(t *testing.T) {
	c := newTestCamera()
	right, up := c.Basis()
	if right.Sub(Vec3{1, 0, 0}).Len() > 1e-12 || up.Sub(Vec3{0, 1, 0}).Len() > 1e-12 {
		t.Fatalf("Basis() = %v, %v; want +X, +Y", right, up)
	}
	if c.Forward != (Vec3{0, 0, -1}) {
		t.Fatalf("Forward = %v; want -Z", c.Forward)
	}

	c.LookAt(c.Position)
	if c.Forward != (Vec3{0, 0, -1}) {
		t.Fatalf("LookAt(own position) gave %v", c.Forward)
	}
}

func TestRotateY(t *testing.T) {
	v := RotateY(Vec3{1, 0, 0}, math.Pi/2)
	if math.Abs(v.X()) > 1e-12 || math.Abs(v.Z()+1) > 1e-12 {
		t.Fatalf("RotateY(+X, π/2) = %v; want (0, 0, -1)", v)
	}
	v = RotateY(Vec3{0, 0, 1}, math.Pi/2)
	if math.Abs(v.X()-1) > 1e-12 || math.Abs(v.Z()) > 1e-12 {
		t.Fatalf("RotateY(+Z, π/2) = %v; want (1, 0, 0)", v)
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := Transform{Position: Vec3{10, 2, 0}, RotationY: math.Pi / 2}
	p := tr.Matrix().Mul4x1(Vec3{1, 0, 0}.Vec4(1)).Vec3()
	want := Vec3{10, 2, -1}
	if p.Sub(want).Len() > 1e-12 {
		t.Fatalf("Matrix() maps +X to %v; want %v", p, want)
	}
}
