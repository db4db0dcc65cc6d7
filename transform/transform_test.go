package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lmath/linalg"
	"github.com/katalvlaran/lmath/transform"
)

const tol = 1e-9

// ndc applies m to p (w=1) and performs the perspective divide.
func ndc(m linalg.Mat4[float64], p linalg.Vec3[float64]) linalg.Vec3[float64] {
	c := m.MulVec(p.Extend(1))
	return c.DivScalar(c[3]).Vec3()
}

func requireVec3InDelta(t testing.TB, want, got linalg.Vec3[float64], delta float64) {
	t.Helper()
	for i := range want {
		require.InDeltaf(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}

func requireMat4InDelta(t testing.TB, want, got linalg.Mat4[float64], delta float64) {
	t.Helper()
	for c := range want {
		for r := range want[c] {
			require.InDeltaf(t, want[c][r], got[c][r], delta, "entry (%d,%d):\n%v\nvs\n%v", r, c, want, got)
		}
	}
}

// conventions enumerates every handedness / clip range pair.
var conventions = []struct {
	name string
	h    transform.Handedness
	c    transform.ClipRange
}{
	{"RH_NO", transform.RightHanded, transform.NegativeOneToOne},
	{"RH_ZO", transform.RightHanded, transform.ZeroToOne},
	{"LH_NO", transform.LeftHanded, transform.NegativeOneToOne},
	{"LH_ZO", transform.LeftHanded, transform.ZeroToOne},
}

// ProjectionSuite checks that every projection maps its defining planes
// onto the configured clip range.
type ProjectionSuite struct {
	suite.Suite
	fovy, aspect, near, far float64
}

func (s *ProjectionSuite) SetupTest() {
	s.fovy, s.aspect, s.near, s.far = math.Pi/2, 16.0/9.0, 0.1, 100
}

func TestProjectionSuite(t *testing.T) {
	suite.Run(t, new(ProjectionSuite))
}

// depthAt returns a view-space point at distance d in front of the camera.
func depthAt(h transform.Handedness, d float64) linalg.Vec3[float64] {
	if h == transform.LeftHanded {
		return linalg.NewVec3(0, 0, d)
	}
	return linalg.NewVec3(0, 0, -d)
}

func nearDepth(c transform.ClipRange) float64 {
	if c == transform.ZeroToOne {
		return 0
	}
	return -1
}

func (s *ProjectionSuite) TestPerspectiveDepthRange() {
	for _, cv := range conventions {
		opts := []transform.Option{transform.WithHandedness(cv.h), transform.WithClipRange(cv.c)}
		p := transform.Perspective(s.fovy, s.aspect, s.near, s.far, opts...)

		s.InDelta(nearDepth(cv.c), ndc(p, depthAt(cv.h, s.near))[2], tol, cv.name)
		s.InDelta(1, ndc(p, depthAt(cv.h, s.far))[2], 1e-7, cv.name)

		mid := ndc(p, depthAt(cv.h, 1))[2]
		s.Greater(mid, nearDepth(cv.c), cv.name)
		s.Less(mid, 1.0, cv.name)
	}
}

func (s *ProjectionSuite) TestPerspectiveEdges() {
	p := transform.Perspective(s.fovy, s.aspect, s.near, s.far)

	// tan(fovy/2) = 1, so the near plane spans ±aspect*near by ±near
	corner := linalg.NewVec3(s.aspect*s.near, s.near, -s.near)
	requireVec3InDelta(s.T(), linalg.NewVec3(1.0, 1, -1), ndc(p, corner), tol)
}

func (s *ProjectionSuite) TestFrustumMatchesPerspective() {
	ymax := s.near * math.Tan(s.fovy/2)
	xmax := ymax * s.aspect
	for _, cv := range conventions {
		opts := []transform.Option{transform.WithHandedness(cv.h), transform.WithClipRange(cv.c)}
		requireMat4InDelta(s.T(),
			transform.Perspective(s.fovy, s.aspect, s.near, s.far, opts...),
			transform.Frustum(-xmax, xmax, -ymax, ymax, s.near, s.far, opts...),
			tol)
	}
}

func (s *ProjectionSuite) TestFrustumOffCenter() {
	for _, cv := range conventions {
		opts := []transform.Option{transform.WithHandedness(cv.h), transform.WithClipRange(cv.c)}
		f := transform.Frustum(0.0, 2, 1, 3, 1, 10, opts...)

		lo := depthAt(cv.h, 1)
		lo[0], lo[1] = 0, 1
		hi := depthAt(cv.h, 1)
		hi[0], hi[1] = 2, 3

		requireVec3InDelta(s.T(), linalg.NewVec3(-1, -1, nearDepth(cv.c)), ndc(f, lo), tol)
		requireVec3InDelta(s.T(), linalg.NewVec3(1, 1, nearDepth(cv.c)), ndc(f, hi), tol)
	}
}

func (s *ProjectionSuite) TestPerspectiveFov() {
	for _, cv := range conventions {
		opts := []transform.Option{transform.WithHandedness(cv.h), transform.WithClipRange(cv.c)}
		requireMat4InDelta(s.T(),
			transform.Perspective(s.fovy, 1920.0/1080.0, s.near, s.far, opts...),
			transform.PerspectiveFov(s.fovy, 1920, 1080, s.near, s.far, opts...),
			tol)
	}
}

func (s *ProjectionSuite) TestInfinitePerspective() {
	for _, cv := range conventions {
		opts := []transform.Option{transform.WithHandedness(cv.h), transform.WithClipRange(cv.c)}
		p := transform.InfinitePerspective(s.fovy, s.aspect, s.near, opts...)

		s.InDelta(nearDepth(cv.c), ndc(p, depthAt(cv.h, s.near))[2], tol, cv.name)

		deep := ndc(p, depthAt(cv.h, 1e9))[2]
		s.Less(deep, 1.0, cv.name)
		s.InDelta(1, deep, 1e-6, cv.name)

		finite := transform.Perspective(s.fovy, s.aspect, s.near, 1e12, opts...)
		requireMat4InDelta(s.T(), finite, p, 1e-9)
	}
}

func (s *ProjectionSuite) TestOrtho() {
	for _, cv := range conventions {
		opts := []transform.Option{transform.WithHandedness(cv.h), transform.WithClipRange(cv.c)}
		o := transform.Ortho(-2.0, 2, -1, 1, 1, 11, opts...)

		lo := depthAt(cv.h, 1)
		lo[0], lo[1] = -2, -1
		hi := depthAt(cv.h, 11)
		hi[0], hi[1] = 2, 1

		requireVec3InDelta(s.T(), linalg.NewVec3(-1, -1, nearDepth(cv.c)), ndc(o, lo), tol)
		requireVec3InDelta(s.T(), linalg.NewVec3(1.0, 1, 1), ndc(o, hi), tol)
		last, err := o.Row(3)
		s.Require().NoError(err)
		s.Equal(linalg.Vec4[float64]{0, 0, 0, 1}, last, cv.name)
	}
}

func (s *ProjectionSuite) TestOrtho2D() {
	o := transform.Ortho2D(0.0, 800, 0, 600)

	requireVec3InDelta(s.T(), linalg.NewVec3(-1.0, -1, 0), ndc(o, linalg.NewVec3(0.0, 0, 0)), tol)
	requireVec3InDelta(s.T(), linalg.NewVec3(1.0, 1, -0.5), ndc(o, linalg.NewVec3(800, 600, 0.5)), tol)
	requireMat4InDelta(s.T(), transform.Ortho(0.0, 800, 0, 600, -1, 1), o, tol)
}

func (s *ProjectionSuite) TestFloat32() {
	p := transform.Perspective[float32](math.Pi/3, 1, 0.5, 50)
	c := p.MulVec(linalg.NewVec4[float32](0, 0, -0.5, 1))
	s.InDelta(-1, c[2]/c[3], 1e-5)
}

func TestLookAt(t *testing.T) {
	t.Parallel()

	eye := linalg.NewVec3(0.0, 0, 5)
	center := linalg.NewVec3(0.0, 0, 0)
	up := linalg.Up[float64]()

	rh := transform.LookAt(eye, center, up)
	require.Equal(t, linalg.NewMat4[float64](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, -5,
		0, 0, 0, 1,
	), rh)

	lh := transform.LookAt(eye, center, up, transform.WithHandedness(transform.LeftHanded))
	requireVec3InDelta(t, linalg.NewVec3(0.0, 0, 5), ndc(lh, center), tol)
	requireVec3InDelta(t, linalg.Vec3[float64]{}, ndc(lh, eye), tol)
}

func TestLookAtProperties(t *testing.T) {
	t.Parallel()

	eye := linalg.NewVec3(3.0, -2, 7)
	center := linalg.NewVec3(-1.0, 4, 0.5)
	up := linalg.NewVec3(0.0, 1, 0.2)
	dist := eye.Distance(center)

	for _, cv := range conventions {
		cv := cv
		t.Run(cv.name, func(t *testing.T) {
			t.Parallel()
			v := transform.LookAt(eye, center, up, transform.WithHandedness(cv.h))

			requireVec3InDelta(t, linalg.Vec3[float64]{}, ndc(v, eye), tol)
			requireVec3InDelta(t, depthAt(cv.h, dist), ndc(v, center), tol)

			// the rotation block is orthonormal with determinant +1
			r := v.Mat3()
			requireMat4InDelta(t, linalg.Identity4[float64](), r.Mul(r.Transpose()).Mat4(), tol)
			require.InDelta(t, 1, r.Determinant(), tol)
		})
	}
}

func TestRotate(t *testing.T) {
	t.Parallel()

	id := linalg.Identity4[float64]()
	r := transform.Rotate(id, math.Pi/2, linalg.Forward[float64]())
	requireVec3InDelta(t, linalg.NewVec3(0.0, 1, 0), ndc(r, linalg.Right[float64]()), tol)
	requireVec3InDelta(t, linalg.NewVec3(-1.0, 0, 0), ndc(r, linalg.Up[float64]()), tol)

	// the axis is normalized first
	requireMat4InDelta(t, r, transform.Rotate(id, math.Pi/2, linalg.NewVec3(0.0, 0, 7)), tol)

	// rotations preserve length and keep the translation column
	m := transform.Translate(id, linalg.NewVec3(1.0, 2, 3))
	rm := transform.Rotate(m, 1.234, linalg.NewVec3(1.0, -2, 0.5))
	require.Equal(t, m[3], rm[3])
	p := linalg.NewVec3(0.3, -0.7, 2)
	require.InDelta(t, p.Magnitude(), ndc(rm, p).Sub(linalg.NewVec3(1.0, 2, 3)).Magnitude(), tol)

	// a full turn is the identity
	requireMat4InDelta(t, id, transform.Rotate(id, 2*math.Pi, linalg.NewVec3(1.0, 1, 1)), tol)
}

func TestScaleTranslate(t *testing.T) {
	t.Parallel()

	id := linalg.Identity4[float64]()

	require.Equal(t, linalg.NewMat4[float64](
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 1,
	), transform.Scale(id, linalg.NewVec3(2.0, 3, 4)))

	tr := transform.Translate(id, linalg.NewVec3(1.0, 2, 3))
	require.Equal(t, linalg.Vec4[float64]{1, 2, 3, 1}, tr[3])
	require.Equal(t, linalg.Vec4[float64]{1, 2, 3, 1}, tr.MulVec(linalg.NewVec4(0.0, 0, 0, 1)))

	// post-multiplication: the translation is expressed in the scaled frame
	st := transform.Translate(transform.Scale(id, linalg.Splat3(2.0)), linalg.NewVec3(1.0, 0, 0))
	require.Equal(t, linalg.Vec4[float64]{2, 0, 0, 1}, st[3])

	ts := transform.Scale(tr, linalg.Splat3(2.0))
	require.Equal(t, linalg.Vec4[float64]{1, 2, 3, 1}, ts[3], "scale keeps the translation column")
}

func TestProject(t *testing.T) {
	t.Parallel()

	id := linalg.Identity4[float64]()
	vp := linalg.NewVec4(0, 0, 800, 600)

	require.Equal(t, linalg.Vec3[float64]{400, 300, 0.5}, transform.Project(linalg.NewVec3(0.0, 0, 0), id, id, vp))
	require.Equal(t, linalg.Vec3[float64]{800, 600, 0.75}, transform.Project(linalg.NewVec3(1.0, 1, 0.5), id, id, vp))

	zo := transform.WithClipRange(transform.ZeroToOne)
	require.Equal(t, linalg.Vec3[float64]{400, 300, 0}, transform.Project(linalg.NewVec3(0.0, 0, 0), id, id, vp, zo))
	require.Equal(t, linalg.Vec3[float64]{800, 600, 0.5}, transform.Project(linalg.NewVec3(1.0, 1, 0.5), id, id, vp, zo))

	offset := linalg.NewVec4(10.0, 20, 100, 50)
	require.Equal(t, linalg.Vec3[float64]{60, 45, 0.5}, transform.Project(linalg.NewVec3(0.0, 0, 0), id, id, offset))
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	t.Parallel()

	vp := linalg.NewVec4[int32](0, 0, 1280, 720)
	obj := linalg.NewVec3(0.25, -0.5, -1.5)

	for _, cv := range conventions {
		cv := cv
		t.Run(cv.name, func(t *testing.T) {
			t.Parallel()
			opts := []transform.Option{transform.WithHandedness(cv.h), transform.WithClipRange(cv.c)}

			view := transform.LookAt(linalg.NewVec3(1.0, 2, 6), linalg.NewVec3(0.0, 0, -1), linalg.Up[float64](), opts...)
			model := transform.Rotate(view, 0.4, linalg.NewVec3(0.0, 1, 0))
			proj := transform.Perspective(math.Pi/3, 1280.0/720.0, 0.1, 100, opts...)

			win := transform.Project(obj, model, proj, vp, opts...)
			require.GreaterOrEqual(t, win[2], 0.0)
			require.LessOrEqual(t, win[2], 1.0)

			requireVec3InDelta(t, obj, transform.Unproject(win, model, proj, vp, opts...), 1e-7)
		})
	}
}

func TestUnprojectSingular(t *testing.T) {
	t.Parallel()

	var zero linalg.Mat4[float64]
	got := transform.Unproject(linalg.NewVec3(1.0, 1, 0.5), zero, zero, linalg.NewVec4(0, 0, 10, 10))
	require.True(t, math.IsNaN(got[0]) || math.IsInf(got[0], 0))
}

func (s *ProjectionSuite) TestTweakedInfinitePerspective() {
	const ep = 1e-3
	for _, cv := range conventions {
		opts := []transform.Option{transform.WithHandedness(cv.h), transform.WithClipRange(cv.c)}
		p := transform.TweakedInfinitePerspective(s.fovy, s.aspect, s.near, ep, opts...)

		s.InDelta(nearDepth(cv.c), ndc(p, depthAt(cv.h, s.near))[2], tol, cv.name)
		s.InDelta(1-ep, ndc(p, depthAt(cv.h, 1e9))[2], 1e-6, cv.name)

		requireMat4InDelta(s.T(),
			transform.InfinitePerspective(s.fovy, s.aspect, s.near, opts...),
			transform.TweakedInfinitePerspective(s.fovy, s.aspect, s.near, 0, opts...),
			tol)
	}
}

func TestPickMatrix(t *testing.T) {
	t.Parallel()

	vp := linalg.NewVec4(0, 0, 800, 600)
	id := linalg.Identity4[float64]()

	// the whole viewport as the region changes nothing
	requireMat4InDelta(t, id, transform.PickMatrix(linalg.NewVec2(400.0, 300), linalg.NewVec2(800.0, 600), vp), tol)

	cases := []struct {
		name  string
		delta linalg.Vec2[float64]
	}{
		{"zero width", linalg.NewVec2(0.0, 10)},
		{"negative height", linalg.NewVec2(10.0, -1)},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, id, transform.PickMatrix(linalg.NewVec2(600.0, 150), tc.delta, vp))
		})
	}

	// window (600, 150) is NDC (0.5, -0.5); a 10x10 region around it fills [-1, 1]
	pick := transform.PickMatrix(linalg.NewVec2(600.0, 150), linalg.NewVec2(10.0, 10), vp)
	requireVec3InDelta(t, linalg.NewVec3(0.0, 0, 0.3), ndc(pick, linalg.NewVec3(0.5, -0.5, 0.3)), tol)
	requireVec3InDelta(t, linalg.NewVec3(1.0, 1, 0), ndc(pick, linalg.NewVec3(605.0/400-1, 155.0/300-1, 0)), tol)
	requireVec3InDelta(t, linalg.NewVec3(-1.0, -1, 0), ndc(pick, linalg.NewVec3(595.0/400-1, 145.0/300-1, 0)), tol)

	// a point under the cursor projects to the centre of the picking viewport
	proj := transform.Perspective(math.Pi/3, 800.0/600.0, 0.1, 100)
	obj := transform.Unproject(linalg.NewVec3(600.0, 150, 0.5), id, proj, vp)
	win := transform.Project(obj, id, pick.Mul(proj), vp)
	require.InDelta(t, 400, win[0], 1e-6)
	require.InDelta(t, 300, win[1], 1e-6)
}
