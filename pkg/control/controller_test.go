package control

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

type fakeHost struct {
	handler  InputHandler
	captured bool
	reject   bool
	exits    int
}

func (h *fakeHost) RequestCapture() error {
	if h.reject {
		return errors.New("user gesture required")
	}
	h.captured = true
	if h.handler != nil {
		h.handler.CaptureChanged(true)
	}
	return nil
}

func (h *fakeHost) ExitCapture() {
	if !h.captured {
		return
	}
	h.exits++
	h.captured = false
	if h.handler != nil {
		h.handler.CaptureChanged(false)
	}
}

func (h *fakeHost) Captured() bool {
	return h.captured
}

func (h *fakeHost) SetInputHandler(ih InputHandler) {
	h.handler = ih
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type recordingCamera struct {
	pos    mgl32.Vec3
	rot    mgl32.Quat
	writes int
}

func (r *recordingCamera) SetPosition(pos mgl32.Vec3) {
	r.pos = pos
	r.writes++
}

func (r *recordingCamera) SetOrientation(q mgl32.Quat) {
	r.rot = q
}

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

func newTestController(t *testing.T, opts ...Option) (*Controller, *fakeHost, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	opts = append([]Option{WithClock(clock.now), WithLogger(quietLogger())}, opts...)
	c := NewController(opts...)
	host := &fakeHost{}
	if !c.Attach(host) {
		t.Fatal("attach to a non-nil host should succeed")
	}
	return c, host, clock
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func approxVec(a, b mgl32.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

func TestInitialPoseIsOverview(t *testing.T) {
	cam := &recordingCamera{}
	c, _, _ := newTestController(t, WithCamera(cam))

	if !approxVec(c.Position(), mgl32.Vec3{0, 30, 40}) {
		t.Fatalf("expected overview position, got %v", c.Position())
	}
	yaw, pitch := c.Orientation()
	if !approx(yaw, math32.Pi) || !approx(pitch, -0.65) {
		t.Fatalf("expected overview angles, got yaw=%f pitch=%f", yaw, pitch)
	}
	if c.Phase() != PhaseOverview {
		t.Fatalf("expected overview phase, got %v", c.Phase())
	}
	if cam.writes == 0 || !approxVec(cam.pos, c.Position()) {
		t.Fatalf("camera not written on init: %v", cam.pos)
	}
}

func TestCaptureTeleportsToStreet(t *testing.T) {
	c, host, _ := newTestController(t)

	c.PointerDown(ButtonPrimary)

	if !host.Captured() {
		t.Fatal("primary press should request capture")
	}
	if !approxVec(c.Position(), mgl32.Vec3{0, 1.8, 10}) {
		t.Fatalf("expected street spawn, got %v", c.Position())
	}
	yaw, pitch := c.Orientation()
	if yaw != 0 || pitch != 0 {
		t.Fatalf("expected yaw=0 pitch=0, got yaw=%f pitch=%f", yaw, pitch)
	}
	if !c.Teleported() || c.Phase() != PhaseCaptured {
		t.Fatalf("expected captured phase after teleport, got %v", c.Phase())
	}
}

func TestTeleportFiresOnce(t *testing.T) {
	c, host, clock := newTestController(t)

	var teleports int
	spawn := mgl32.Vec3{0, 1.8, 10}

	for i := 0; i < 3; i++ {
		host.RequestCapture()
		if approxVec(c.Position(), spawn) {
			teleports++
		}

		// walk away from the spawn so a second teleport would be visible
		c.KeyDown(KeyArrowUp)
		clock.advance(100 * time.Millisecond)
		c.Update(1)
		c.KeyUp(KeyArrowUp)

		host.ExitCapture()
		if c.Phase() != PhaseReleased {
			t.Fatalf("cycle %d: expected released phase, got %v", i, c.Phase())
		}
	}

	if teleports != 1 {
		t.Fatalf("expected exactly one teleport, got %d", teleports)
	}
}

func TestTeleportDisabled(t *testing.T) {
	c, host, _ := newTestController(t, WithTeleportOnFirstLock(false))

	host.RequestCapture()

	if c.Teleported() {
		t.Fatal("teleport should not fire when disabled")
	}
	if !approxVec(c.Position(), mgl32.Vec3{0, 30, 40}) {
		t.Fatalf("position should stay at overview, got %v", c.Position())
	}
	if c.Phase() != PhaseCaptured {
		t.Fatalf("expected captured phase, got %v", c.Phase())
	}
}

func TestLookDelta(t *testing.T) {
	c, host, _ := newTestController(t)
	host.RequestCapture()

	c.PointerMove(PointerEvent{MovementX: 100})
	c.Update(0.016)

	yaw, pitch := c.Orientation()
	if !approx(yaw, -0.22) {
		t.Fatalf("expected yaw -0.22, got %f", yaw)
	}
	if pitch != 0 {
		t.Fatalf("expected pitch unchanged, got %f", pitch)
	}

	// drained: a second frame without input changes nothing
	c.Update(0.016)
	if y, _ := c.Orientation(); y != yaw {
		t.Fatalf("accumulator not drained, yaw moved to %f", y)
	}
}

func TestPitchStaysClamped(t *testing.T) {
	testCases := map[string]struct {
		dy      float32
		invertY bool
		want    float32
	}{
		"LookDown": {dy: 50, want: DefaultMinPitch},
		"LookUp":   {dy: -50, want: DefaultMaxPitch},
		"Inverted": {dy: 50, invertY: true, want: DefaultMaxPitch},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			c, host, _ := newTestController(t, WithInvertY(tt.invertY))
			host.RequestCapture()

			for i := 0; i < 200; i++ {
				c.PointerMove(PointerEvent{MovementY: tt.dy})
				c.Update(0.016)
				_, pitch := c.Orientation()
				if pitch < DefaultMinPitch || pitch > DefaultMaxPitch {
					t.Fatalf("step %d: pitch %f out of range", i, pitch)
				}
			}
			if _, pitch := c.Orientation(); !approx(pitch, tt.want) {
				t.Errorf("expected pitch to settle at %f, got %f", tt.want, pitch)
			}
		})
	}
}

func TestCaptureChangeDropsPendingDeltas(t *testing.T) {
	c, host, _ := newTestController(t, WithTeleportOnFirstLock(false))

	c.PointerEnter()
	c.PointerMove(PointerEvent{X: 10, Y: 10})
	c.PointerMove(PointerEvent{X: 60, Y: 40})
	yaw0, pitch0 := c.Orientation()

	host.RequestCapture()
	c.Update(0.016)
	if yaw, pitch := c.Orientation(); yaw != yaw0 || pitch != pitch0 {
		t.Fatalf("stale deltas applied after capture: yaw %f->%f pitch %f->%f", yaw0, yaw, pitch0, pitch)
	}

	c.PointerMove(PointerEvent{MovementX: 30, MovementY: 30})
	host.ExitCapture()
	yaw1, pitch1 := c.Orientation()
	c.Update(0.016)
	if yaw, pitch := c.Orientation(); yaw != yaw1 || pitch != pitch1 {
		t.Fatalf("stale deltas applied after release: yaw %f->%f", yaw1, yaw)
	}
}

func TestHoverBaseline(t *testing.T) {
	c, _, _ := newTestController(t)
	yaw0, _ := c.Orientation()

	// not hovering: ignored
	c.PointerMove(PointerEvent{X: 0, Y: 0})
	c.PointerMove(PointerEvent{X: 500, Y: 0})
	c.Update(0.016)
	if yaw, _ := c.Orientation(); yaw != yaw0 {
		t.Fatalf("pointer moves outside the viewport changed yaw to %f", yaw)
	}

	c.PointerEnter()
	c.PointerMove(PointerEvent{X: 400, Y: 300})
	c.Update(0.016)
	if yaw, _ := c.Orientation(); yaw != yaw0 {
		t.Fatalf("first hover sample should only seed the baseline, yaw=%f", yaw)
	}

	c.PointerMove(PointerEvent{X: 410, Y: 300})
	c.Update(0.016)
	if yaw, _ := c.Orientation(); !approx(yaw, yaw0-10*DefaultLookSensitivity) {
		t.Fatalf("expected 10px of yaw, got %f", yaw-yaw0)
	}

	c.PointerLeave()
	c.PointerEnter()
	yaw1, _ := c.Orientation()
	c.PointerMove(PointerEvent{X: 900, Y: 300})
	c.Update(0.016)
	if yaw, _ := c.Orientation(); yaw != yaw1 {
		t.Fatalf("re-entering should discard the first sample, yaw moved by %f", yaw-yaw1)
	}
}

func TestMoveVectorNeverExceedsOne(t *testing.T) {
	keys := []Key{KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight}
	c, _, _ := newTestController(t)

	for mask := 0; mask < 1<<len(keys); mask++ {
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				c.KeyDown(k)
			} else {
				c.KeyUp(k)
			}
		}
		if l := c.MoveVector().Len(); l > 1+1e-6 {
			t.Fatalf("mask %04b: movement length %f exceeds 1", mask, l)
		}
	}

	c.KeyUp(KeyArrowDown)
	c.KeyUp(KeyArrowLeft)
	c.KeyDown(KeyArrowUp)
	c.KeyDown(KeyArrowRight)
	if l := c.MoveVector().Len(); !approx(l, 1) {
		t.Fatalf("diagonal should be normalized to 1, got %f", l)
	}
}

func TestDiagonalIsNotFaster(t *testing.T) {
	c, _, _ := newTestController(t)
	start := c.Position()

	c.KeyDown(KeyArrowUp)
	c.KeyDown(KeyArrowLeft)
	c.Update(1)

	if d := c.Position().Sub(start).Len(); !approx(d, DefaultSpeed) {
		t.Fatalf("expected diagonal displacement %f, got %f", DefaultSpeed, d)
	}
}

func TestSprintAfterHold(t *testing.T) {
	c, _, clock := newTestController(t)
	start := c.Position()

	c.KeyDown(KeyArrowUp)
	clock.advance(5000 * time.Millisecond)
	if !c.Sprinting() {
		t.Fatal("expected sprint after 5s hold")
	}
	c.Update(1)

	moved := c.Position().Sub(start)
	if want := float32(DefaultSpeed * DefaultSprintMultiplier); !approx(moved.Len(), want) {
		t.Fatalf("expected displacement %f, got %f", want, moved.Len())
	}
	if moved[1] != 0 {
		t.Fatalf("movement must stay planar, got dy=%f", moved[1])
	}
}

func TestSprintTimerResetsOnRelease(t *testing.T) {
	c, _, clock := newTestController(t)

	c.KeyDown(KeyArrowUp)
	clock.advance(3 * time.Second)
	c.KeyUp(KeyArrowUp)
	c.KeyDown(KeyArrowUp)
	clock.advance(3 * time.Second)
	if c.Sprinting() {
		t.Fatal("hold time must not carry over a full release")
	}

	// switching keys without releasing all of them keeps the timer
	c.KeyDown(KeyArrowLeft)
	c.KeyUp(KeyArrowUp)
	clock.advance(2 * time.Second)
	if !c.Sprinting() {
		t.Fatal("timer should keep running while any arrow is held")
	}

	start := c.Position()
	c.KeyUp(KeyArrowLeft)
	c.KeyDown(KeyArrowLeft)
	c.Update(1)
	if d := c.Position().Sub(start).Len(); !approx(d, DefaultSpeed) {
		t.Fatalf("expected base speed after re-press, moved %f", d)
	}
}

func TestHeightPinnedAfterTeleport(t *testing.T) {
	c, host, _ := newTestController(t, WithPlayerHeight(2.5))
	host.RequestCapture()

	c.KeyDown(KeyArrowUp)
	c.Update(0.5)

	if y := c.Position().Y(); y != 2.5 {
		t.Fatalf("expected pinned eye height 2.5, got %f", y)
	}
}

func TestEscapeReleasesCapture(t *testing.T) {
	c, host, _ := newTestController(t)

	c.KeyDown(KeyEscape)
	if host.exits != 0 {
		t.Fatal("escape while uncaptured should do nothing")
	}

	host.RequestCapture()
	c.KeyDown(KeyEscape)
	if host.Captured() {
		t.Fatal("escape should release capture")
	}
	if c.Keys().Any() {
		t.Fatal("escape must not touch arrow state")
	}
}

func TestPrimaryButtonToggles(t *testing.T) {
	c, host, _ := newTestController(t)

	c.PointerDown(ButtonSecondary)
	if host.Captured() {
		t.Fatal("secondary button must not capture")
	}
	c.PointerDown(ButtonPrimary)
	if !host.Captured() {
		t.Fatal("expected capture")
	}
	c.PointerDown(ButtonPrimary)
	if host.Captured() {
		t.Fatal("expected release")
	}
}

func TestRejectedCaptureIsIgnored(t *testing.T) {
	var notified []bool
	c, host, _ := newTestController(t, WithCaptureListener(func(captured bool) {
		notified = append(notified, captured)
	}))
	host.reject = true

	c.PointerDown(ButtonPrimary)

	if host.Captured() || c.Teleported() || c.Phase() != PhaseOverview {
		t.Fatalf("rejected capture changed state: phase=%v teleported=%v", c.Phase(), c.Teleported())
	}
	if len(notified) != 0 {
		t.Fatalf("expected no notification, got %v", notified)
	}
}

func TestCaptureListener(t *testing.T) {
	var notified []bool
	c, host, _ := newTestController(t, WithCaptureListener(func(captured bool) {
		notified = append(notified, captured)
	}))

	host.RequestCapture()
	host.ExitCapture()
	host.RequestCapture()

	want := []bool{true, false, true}
	if len(notified) != len(want) {
		t.Fatalf("expected %v, got %v", want, notified)
	}
	for i := range want {
		if notified[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, notified)
		}
	}
	if c.Phase() != PhaseCaptured {
		t.Fatalf("expected captured phase, got %v", c.Phase())
	}
}

func TestResetIsReplayable(t *testing.T) {
	c, host, _ := newTestController(t)

	host.RequestCapture()
	c.KeyDown(KeyArrowUp)
	c.PointerMove(PointerEvent{MovementX: 40})
	host.ExitCapture()
	c.PointerMove(PointerEvent{MovementX: 40})

	for i := 0; i < 2; i++ {
		c.Configure(WithSpeed(7))
		if c.Teleported() || c.Phase() != PhaseOverview || c.Keys().Any() || c.Sprinting() {
			t.Fatalf("reset %d left state behind", i)
		}
		c.Update(1)
		if !approxVec(c.Position(), mgl32.Vec3{0, 30, 40}) {
			t.Fatalf("reset %d: expected overview position, got %v", i, c.Position())
		}
		if yaw, _ := c.Orientation(); !approx(yaw, math32.Pi) {
			t.Fatalf("reset %d: leaked deltas, yaw=%f", i, yaw)
		}
	}

	host.RequestCapture()
	if !c.Teleported() {
		t.Fatal("teleport should fire again after a reset")
	}
}

func TestAttachDetach(t *testing.T) {
	c := NewController(WithLogger(quietLogger()))
	if c.Attach(nil) {
		t.Fatal("attach to nil should report false")
	}

	var notified []bool
	c.Configure(WithCaptureListener(func(captured bool) {
		notified = append(notified, captured)
	}))

	host := &fakeHost{}
	c.Attach(host)
	host.RequestCapture()
	c.Detach()

	if host.handler != nil {
		t.Fatal("detach should remove the input handler")
	}
	if host.Captured() {
		t.Fatal("detach should release capture")
	}
	if len(notified) != 2 || !notified[0] || notified[1] {
		t.Fatalf("expected [true false], got %v", notified)
	}
	if c.Phase() != PhaseReleased {
		t.Fatalf("expected released phase after detach, got %v", c.Phase())
	}

	// reattaching keeps the released phase and does not teleport again
	c.Attach(host)
	host.RequestCapture()
	if c.Phase() != PhaseCaptured || host.exits != 1 {
		t.Fatalf("unexpected state after reattach: phase=%v exits=%d", c.Phase(), host.exits)
	}

	// a second detach is a no-op
	c.Detach()
}

func TestAnalogMoveUsesDeadzone(t *testing.T) {
	c, _, _ := newTestController(t)

	c.AnalogMove(0.1, 0.1)
	if v := c.MoveVector(); v.Len() != 0 {
		t.Fatalf("stick inside the dead band should not move, got %v", v)
	}

	c.AnalogMove(0, 1)
	c.KeyDown(KeyArrowUp)
	if l := c.MoveVector().Len(); !approx(l, 1) {
		t.Fatalf("combined input should clamp to 1, got %f", l)
	}
}

func TestOrientationHasNoRoll(t *testing.T) {
	q := orientation(0.7, -0.4)
	right := q.Rotate(mgl32.Vec3{1, 0, 0})
	if !approx(right.Y(), 0) {
		t.Fatalf("local right axis should stay horizontal, got %v", right)
	}
	forward := q.Rotate(mgl32.Vec3{0, 0, -1})
	f, _ := planarAxes(0.7)
	flat := mgl32.Vec3{forward.X(), 0, forward.Z()}.Normalize()
	if !approxVec(flat, f) {
		t.Fatalf("look direction %v does not match planar forward %v", flat, f)
	}
}

func TestResetWhileCapturedTeleports(t *testing.T) {
	testCases := map[string]struct {
		teleport bool
		expected mgl32.Vec3
	}{
		"Enabled":  {teleport: true, expected: mgl32.Vec3{0, 1.8, 10}},
		"Disabled": {teleport: false, expected: mgl32.Vec3{0, 30, 40}},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			c, host, _ := newTestController(t, WithTeleportOnFirstLock(tt.teleport))
			host.RequestCapture()
			c.KeyDown(KeyArrowUp)
			c.Update(1)

			c.Reset()
			if c.Phase() != PhaseCaptured {
				t.Fatalf("expected captured phase, got %v", c.Phase())
			}
			if c.Teleported() != tt.teleport {
				t.Fatalf("Expected teleported: %v, got: %v", tt.teleport, c.Teleported())
			}
			if !approxVec(c.Position(), tt.expected) {
				t.Fatalf("Expected: %v, got: %v", tt.expected, c.Position())
			}

			// no second teleport on later capture cycles
			c.KeyDown(KeyArrowUp)
			c.Update(1)
			moved := c.Position()
			host.ExitCapture()
			host.RequestCapture()
			if !approxVec(c.Position(), moved) {
				t.Fatalf("teleport fired again: %v -> %v", moved, c.Position())
			}
		})
	}
}
