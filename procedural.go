package scrollframe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FieldParams configures the procedural point field.
type FieldParams struct {
	// Points is the number of points on the spiral.
	Points int
	// Radius is the sphere radius R.
	Radius float64
	// Distance is the camera distance D used in the perspective divide.
	Distance float64
	// Drift is K: how far the field moves toward the camera as time goes
	// from 0 to 1.
	Drift float64
	// PointSize is the on-screen radius of a point at perspective 1.
	PointSize float64

	Background Color
	PointColor Color
	HUDColor   Color
}

// DefaultFieldParams returns the stock look: 200 green points on a dark
// slate background.
func DefaultFieldParams() FieldParams {
	return FieldParams{
		Points:     200,
		Radius:     300,
		Distance:   1000,
		Drift:      500,
		PointSize:  3,
		Background: mustHex("#0f172a"),
		PointColor: mustHex("#4ade80"),
		HUDColor:   mustHex("#4ade80"),
	}
}

// withDefaults fills zero fields from DefaultFieldParams.
func (p FieldParams) withDefaults() FieldParams {
	d := DefaultFieldParams()
	if p.Points <= 0 {
		p.Points = d.Points
	}
	if p.Radius <= 0 {
		p.Radius = d.Radius
	}
	if p.Distance <= 0 {
		p.Distance = d.Distance
	}
	if p.Drift == 0 {
		p.Drift = d.Drift
	}
	if p.PointSize <= 0 {
		p.PointSize = d.PointSize
	}
	if p.Background == (Color{}) {
		p.Background = d.Background
	}
	if p.PointColor == (Color{}) {
		p.PointColor = d.PointColor
	}
	if p.HUDColor == (Color{}) {
		p.HUDColor = d.HUDColor
	}
	return p
}

// ProceduralPoint is one projected point of a single frame. Values are
// recomputed for every frame and never reused.
type ProceduralPoint struct {
	// World is the point on the sphere before projection.
	World mgl64.Vec3
	// X and Y are screen coordinates relative to the canvas center.
	X, Y float64
	// Perspective is the projection scale D/(D + z − time·K).
	Perspective float64
	// Size is the on-screen radius.
	Size float64
	// Alpha is the depth cue in [0, 1]: 1 at z = R, 0 at z = −R.
	Alpha float64
}

// FrameTime returns frameIndex/frameCount, in [0, 1) for valid input.
func FrameTime(frameIndex, frameCount int) float64 {
	if frameCount <= 0 {
		return 0
	}
	return float64(frameIndex) / float64(frameCount)
}

// DepthAlpha maps z on a sphere of radius r to (z+r)/(2r), clamped.
func DepthAlpha(z, r float64) float64 {
	if r <= 0 {
		return 1
	}
	return clamp01((z + r) / (2 * r))
}

// Perspective returns d/(d + z − time·k). ok is false when the point is at
// or behind the eye and must not be drawn.
func Perspective(z, time, d, k float64) (scale float64, ok bool) {
	denom := d + z - time*k
	if !(denom > 0) {
		return 0, false
	}
	return d / denom, true
}

// ProjectField computes the point field for one frame. Point i sits on a
// spiral over the sphere at theta = 2π·i/N and phi = 10π·i/N + 10·time, so
// the rotation follows scroll position rather than wall-clock time. The
// result depends only on its arguments.
func ProjectField(frameIndex, frameCount int, params FieldParams) []ProceduralPoint {
	p := params.withDefaults()
	t := FrameTime(frameIndex, frameCount)
	n := float64(p.Points)

	pts := make([]ProceduralPoint, 0, p.Points)
	for i := 0; i < p.Points; i++ {
		frac := float64(i) / n
		theta := frac * 2 * math.Pi
		phi := frac*10*math.Pi + t*10

		world := mgl64.SphericalToCartesian(p.Radius, theta, phi)
		scale, ok := Perspective(world.Z(), t, p.Distance, p.Drift)
		if !ok {
			continue
		}
		pts = append(pts, ProceduralPoint{
			World:       world,
			X:           world.X() * scale,
			Y:           world.Y() * scale,
			Perspective: scale,
			Size:        p.PointSize * scale,
			Alpha:       DepthAlpha(world.Z(), p.Radius),
		})
	}
	return pts
}

// HUD is the horizontal reference line drawn over the point field.
type HUD struct {
	// HalfLength is the distance from the canvas center to either end.
	HalfLength float64
	Alpha      float64
	Width      float64
}

// HUDLine returns the reference line for the given time. Both its length
// and its opacity grow with time.
func HUDLine(time float64) HUD {
	return HUD{
		HalfLength: 100 + time*100,
		Alpha:      clamp01(0.2 + time*0.5),
		Width:      1,
	}
}

// drawProcedural renders one procedural frame onto c and returns the number
// of draw calls issued.
func drawProcedural(c Canvas, frameIndex, frameCount int, params FieldParams) int {
	p := params.withDefaults()
	w, h := c.Size()
	cx, cy := float64(w)/2, float64(h)/2

	c.Clear(p.Background)
	calls := 1

	for _, pt := range ProjectField(frameIndex, frameCount, p) {
		c.FillCircle(cx+pt.X, cy+pt.Y, pt.Size, p.PointColor.WithAlpha(p.PointColor.A*pt.Alpha))
		calls++
	}

	hud := HUDLine(FrameTime(frameIndex, frameCount))
	c.StrokeLine(cx-hud.HalfLength, cy, cx+hud.HalfLength, cy, hud.Width, p.HUDColor.WithAlpha(p.HUDColor.A*hud.Alpha))
	return calls + 1
}
