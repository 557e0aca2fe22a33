package paddleball

import (
	"math"
	"testing"

	"github.com/vovakirdan/paddleball/internal/config"
	"github.com/vovakirdan/paddleball/internal/geom"
	"github.com/vovakirdan/paddleball/internal/physics"
)

const dt = 1.0 / 60

func variantConfig(v config.Variant) config.PaddleballConfig {
	cfg := config.DefaultPaddleballConfig()
	config.ApplyVariant(&cfg, v)
	return cfg
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewWorldInitialState(t *testing.T) {
	w := NewWorld(variantConfig(config.VariantCollider))

	if w.Bounds.HalfW != 450 || w.Bounds.HalfH != 300 {
		t.Errorf("bounds = %+v, expected 450x300", w.Bounds)
	}
	if w.Ball.Pos != geom.V(0, 200) {
		t.Errorf("ball start = %v, expected (0, 200)", w.Ball.Pos)
	}
	if !approx(w.Ball.Vel.Length(), 500) {
		t.Errorf("ball speed = %v, expected 500", w.Ball.Vel.Length())
	}
	if !approx(w.Ball.Vel.X, -w.Ball.Vel.Y) || w.Ball.Vel.X <= 0 {
		t.Errorf("ball direction should be (0.5, -0.5) normalized, got %v", w.Ball.Vel)
	}
	if w.Paddle.Pos != geom.V(0, 100) || w.Paddle.Half != geom.V(32, 32) {
		t.Errorf("paddle = %+v, expected center (0, 100) half (32, 32)", w.Paddle)
	}
	if w.ColliderCount() != 1 || w.Paddle.Collider == NoCollider {
		t.Errorf("collider variant should tag the paddle, got %d colliders", w.ColliderCount())
	}

	basic := NewWorld(variantConfig(config.VariantBasic))
	if basic.ColliderCount() != 0 || basic.Paddle.Collider != NoCollider {
		t.Error("basic variant should not register a paddle collider")
	}
	if !approx(basic.Ball.Vel.Length(), 100) {
		t.Errorf("basic ball speed = %v, expected 100", basic.Ball.Vel.Length())
	}
}

func TestWorldBottomReflection(t *testing.T) {
	w := NewWorld(variantConfig(config.VariantBasic))
	w.Ball.Pos = geom.V(0, -300)
	w.Ball.Vel = geom.V(0, -100)

	report := w.Step(1, physics.Keys{})

	if w.Ball.Pos != geom.V(0, -300) {
		t.Errorf("ball should clamp to (0, -300), got %v", w.Ball.Pos)
	}
	if w.Ball.Vel != geom.V(0, 100) {
		t.Errorf("ball velocity should flip to (0, 100), got %v", w.Ball.Vel)
	}
	if !report.Wall.Y || report.Wall.X {
		t.Errorf("report should show a Y reflection only, got %+v", report.Wall)
	}
	if w.Bounces() != 1 {
		t.Errorf("Bounces() = %d, expected 1", w.Bounces())
	}
}

func TestWorldPaddleHitReflectsBall(t *testing.T) {
	w := NewWorld(variantConfig(config.VariantCollider))
	w.Ball.Pos = geom.V(0, 150)
	w.Ball.Vel = geom.V(0, -500)

	report := w.Step(dt, physics.Keys{})

	if len(report.Hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(report.Hits))
	}
	hit := report.Hits[0]
	if hit.Side != physics.CollisionTop || hit.Collider != w.Paddle.Collider || hit.Tick != 1 {
		t.Errorf("unexpected hit %+v", hit)
	}
	if w.Ball.Vel != geom.V(0, 500) {
		t.Errorf("ball should bounce up, got velocity %v", w.Ball.Vel)
	}
	if w.Hits() != 1 {
		t.Errorf("Hits() = %d, expected 1", w.Hits())
	}
}

func TestWorldSideHitFlipsX(t *testing.T) {
	w := NewWorld(variantConfig(config.VariantCollider))
	w.Ball.Pos = geom.V(-55, 100)
	w.Ball.Vel = geom.V(500, 0)

	report := w.Step(dt, physics.Keys{})

	if len(report.Hits) != 1 || report.Hits[0].Side != physics.CollisionLeft {
		t.Fatalf("expected a left hit, got %+v", report.Hits)
	}
	if w.Ball.Vel != geom.V(-500, 0) {
		t.Errorf("ball should bounce left, got velocity %v", w.Ball.Vel)
	}
}

func TestWorldNoPaddleCollider(t *testing.T) {
	w := NewWorld(variantConfig(config.VariantBasic))
	w.Ball.Pos = geom.V(0, 150)
	w.Ball.Vel = geom.V(0, -500)

	report := w.Step(dt, physics.Keys{})

	if len(report.Hits) != 0 {
		t.Errorf("basic variant should not respond to the paddle, got %+v", report.Hits)
	}
	if w.Ball.Vel != geom.V(0, -500) {
		t.Errorf("ball velocity should be unchanged, got %v", w.Ball.Vel)
	}
}

func TestWorldUntaggedColliderIgnored(t *testing.T) {
	w := NewWorld(variantConfig(config.VariantBasic))
	id := w.AddCollider(Collider{Box: geom.NewAABB(geom.V(0, 0), geom.V(100, 100))})
	w.Ball.Pos = geom.V(0, 0)
	w.Ball.Vel = geom.V(50, 50)

	report := w.Step(dt, physics.Keys{})

	if len(report.Hits) != 0 {
		t.Errorf("untagged collider should not produce a response, got %+v", report.Hits)
	}
	if _, ok := w.Collider(id); !ok {
		t.Error("collider handle should resolve")
	}
	if _, ok := w.Collider(ColliderID(99)); ok {
		t.Error("unknown handle should not resolve")
	}
}

func TestWorldPaddleMovesWithoutClamp(t *testing.T) {
	w := NewWorld(variantConfig(config.VariantBasic))
	start := w.Paddle.Pos.X
	step := w.Paddle.Speed * dt

	for i := 1; i <= 3; i++ {
		w.Step(dt, physics.Keys{Left: true})
		if !approx(w.Paddle.Pos.X, start-float64(i)*step) {
			t.Fatalf("after %d left ticks x = %v, expected %v", i, w.Paddle.Pos.X, start-float64(i)*step)
		}
	}

	w.Step(dt, physics.Keys{Right: true})
	if !approx(w.Paddle.Pos.X, start-2*step) {
		t.Errorf("right tick should move back by %v, x = %v", step, w.Paddle.Pos.X)
	}

	before := w.Paddle.Pos
	w.Step(dt, physics.Keys{})
	if w.Paddle.Pos != before {
		t.Errorf("paddle should stop when no key is held, moved from %v to %v", before, w.Paddle.Pos)
	}

	w.Paddle.Pos = geom.V(445, 100)
	for range 10 {
		w.Step(dt, physics.Keys{Right: true})
	}
	if !approx(w.Paddle.Pos.X, 495) {
		t.Errorf("unclamped paddle should leave the bounds, x = %v", w.Paddle.Pos.X)
	}
}

func TestWorldBoundedVariantClampsPaddle(t *testing.T) {
	w := NewWorld(variantConfig(config.VariantBounded))
	w.Paddle.Pos = geom.V(445, 295)

	for range 10 {
		w.Step(dt, physics.Keys{Right: true, Up: true})
	}

	if w.Paddle.Pos != geom.V(450, 300) {
		t.Errorf("bounded paddle should stop at the bounds, got %v", w.Paddle.Pos)
	}
}

func TestWorldHorizontalModes(t *testing.T) {
	both := physics.Keys{Left: true, Right: true}

	legacy := NewWorld(variantConfig(config.VariantCollider))
	legacy.Step(dt, both)
	if !approx(legacy.Paddle.Pos.X, legacy.Paddle.Speed*dt) {
		t.Errorf("legacy mode: right should win, x = %v", legacy.Paddle.Pos.X)
	}

	additive := NewWorld(variantConfig(config.VariantBasic))
	additive.Step(dt, both)
	if additive.Paddle.Pos.X != 0 {
		t.Errorf("additive mode: left and right should cancel, x = %v", additive.Paddle.Pos.X)
	}
}

func TestWorldPaddleColliderFollowsPaddle(t *testing.T) {
	w := NewWorld(variantConfig(config.VariantCollider))

	w.Step(dt, physics.Keys{Down: true})

	c, ok := w.Collider(w.Paddle.Collider)
	if !ok {
		t.Fatal("paddle collider missing")
	}
	if c.Box != w.Paddle.Box() {
		t.Errorf("collider box %+v should match paddle box %+v", c.Box, w.Paddle.Box())
	}
}

func TestWorldBallStaysInBoundsAndKeepsSpeed(t *testing.T) {
	w := NewWorld(variantConfig(config.VariantCollider))
	speed := w.Ball.Vel.Length()
	box := w.Bounds.Box()

	script, err := ParseScript("left:40,up:25,right:80,down:60,none:30")
	if err != nil {
		t.Fatalf("ParseScript() error: %v", err)
	}

	for i := 0; i < 3000; i++ {
		w.Step(dt, script.At(i%script.Len()))
		if !box.Contains(w.Ball.Pos) {
			t.Fatalf("tick %d: ball %v left the bounds", i, w.Ball.Pos)
		}
		if !approx(w.Ball.Vel.Length(), speed) {
			t.Fatalf("tick %d: speed %v, expected %v", i, w.Ball.Vel.Length(), speed)
		}
	}
	if w.Tick() != 3000 {
		t.Errorf("Tick() = %d, expected 3000", w.Tick())
	}
}

func TestParseScript(t *testing.T) {
	script, err := ParseScript("left:2, right+up:1,none:3")
	if err != nil {
		t.Fatalf("ParseScript() error: %v", err)
	}
	if script.Len() != 6 {
		t.Errorf("Len() = %d, expected 6", script.Len())
	}

	tests := []struct {
		tick     int
		expected physics.Keys
	}{
		{0, physics.Keys{Left: true}},
		{1, physics.Keys{Left: true}},
		{2, physics.Keys{Right: true, Up: true}},
		{3, physics.Keys{}},
		{10, physics.Keys{}},
	}
	for _, tc := range tests {
		if got := script.At(tc.tick); got != tc.expected {
			t.Errorf("At(%d) = %+v, expected %+v", tc.tick, got, tc.expected)
		}
	}

	if s, err := ParseScript(""); err != nil || s != nil {
		t.Errorf("empty script should parse to nil, got %v, %v", s, err)
	}
	for _, bad := range []string{"left", "left:x", "left:-1", "jump:3"} {
		if _, err := ParseScript(bad); err == nil {
			t.Errorf("ParseScript(%q) should fail", bad)
		}
	}
}
