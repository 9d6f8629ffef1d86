package eyes

import (
	"image/color"
	"testing"
)

// recordSurface counts and records draw calls so tests can inspect frames.
type recordSurface struct {
	clears   int
	presents int
	rects    []rectCall
	tris     []triCall
}

type rectCall struct {
	x, y, w, h, r int
	c             color.RGBA
}

type triCall struct {
	x0, y0, x1, y1, x2, y2 int
	c                      color.RGBA
}

func (s *recordSurface) Clear() {
	s.clears++
	s.rects = s.rects[:0]
	s.tris = s.tris[:0]
}

func (s *recordSurface) FillRoundRect(x, y, w, h, r int, c color.RGBA) {
	s.rects = append(s.rects, rectCall{x, y, w, h, r, c})
}

func (s *recordSurface) FillTriangle(x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	s.tris = append(s.tris, triCall{x0, y0, x1, y1, x2, y2, c})
}

func (s *recordSurface) Present() error {
	s.presents++
	return nil
}

// newTestEyes returns an engine on a recording surface with a 1 ms frame
// interval so tests can drive the clock one millisecond at a time.
func newTestEyes() (*Eyes, *recordSurface) {
	s := &recordSurface{}
	e := New(s)
	e.Configure(Config{Width: 128, Height: 64, FrameRate: 1000})
	return e, s
}

// step renders n frames one millisecond apart and returns the clock.
func step(t *testing.T, e *Eyes, now int64, n int) int64 {
	t.Helper()
	for i := 0; i < n; i++ {
		now++
		if err := e.Update(now); err != nil {
			t.Fatalf("Update(%d): %v", now, err)
		}
	}
	return now
}

func TestOpeningConverges(t *testing.T) {
	e, _ := newTestEyes()

	// Closed height 1 chasing the default 36 through halving averages:
	// six frames must bring it within one pixel, monotonically.
	prev := e.left.height
	now := int64(0)
	for frame := 1; frame <= 6; frame++ {
		now = step(t, e, now, 1)
		if e.left.height < prev {
			t.Fatalf("frame %d: height %d fell below previous %d", frame, e.left.height, prev)
		}
		prev = e.left.height
	}
	if prev < defaultEyeHeight-1 {
		t.Fatalf("height %d after 6 frames, want >= %d", prev, defaultEyeHeight-1)
	}

	// Holding the target keeps it there, allowing the one-pixel residue.
	now = step(t, e, now, 20)
	if e.left.height < defaultEyeHeight-1 || e.left.height > defaultEyeHeight {
		t.Fatalf("resting height %d, want %d±1 below", e.left.height, defaultEyeHeight)
	}
}

func TestRateLimiting(t *testing.T) {
	s := &recordSurface{}
	e := New(s)
	e.Configure(Config{Width: 128, Height: 64, FrameRate: 50}) // 20 ms interval

	// Calling faster than the interval renders once per interval.
	for i := 0; i <= 40; i++ {
		if err := e.Update(1000 + int64(i)*5); err != nil {
			t.Fatal(err)
		}
	}
	if s.presents != 11 {
		t.Fatalf("presents = %d for 41 calls 5 ms apart, want 11", s.presents)
	}

	// Exactly one render per interval over 100 intervals.
	s.presents = 0
	base := int64(10000)
	for i := 0; i < 100; i++ {
		if err := e.Update(base + int64(i)*20); err != nil {
			t.Fatal(err)
		}
	}
	if s.presents != 100 {
		t.Fatalf("presents = %d for 100 on-interval calls, want 100", s.presents)
	}
}

func TestLateCallsDoNotBatch(t *testing.T) {
	s := &recordSurface{}
	e := New(s)
	e.Configure(Config{Width: 128, Height: 64, FrameRate: 50})

	if err := e.Update(1000); err != nil {
		t.Fatal(err)
	}
	// A whole second late: exactly one frame, and the timer rebases.
	if err := e.Update(2000); err != nil {
		t.Fatal(err)
	}
	if err := e.Update(2001); err != nil {
		t.Fatal(err)
	}
	if s.presents != 2 {
		t.Fatalf("presents = %d, want 2 (no catch-up burst)", s.presents)
	}
}

func TestMoodExclusivity(t *testing.T) {
	e, _ := newTestEyes()
	moods := []Mood{
		MoodTired, MoodHappy, MoodAngry, MoodHappy, MoodNeutral,
		MoodAngry, MoodTired, Mood(99), MoodHappy,
	}
	for _, m := range moods {
		e.SetMood(m)
		set := 0
		for _, f := range []bool{e.tired, e.angry, e.happy} {
			if f {
				set++
			}
		}
		if set > 1 {
			t.Fatalf("after SetMood(%v): %d mood flags set", m, set)
		}
	}
	e.SetMood(Mood(99))
	if e.tired || e.angry || e.happy {
		t.Fatal("unknown mood did not reset to neutral")
	}
}

func TestBlinkKeepsClosedFrame(t *testing.T) {
	e, _ := newTestEyes()
	now := step(t, e, 0, 12) // settle fully open

	e.Close()
	e.Open() // same tick

	minH := e.left.height
	for i := 0; i < 12; i++ {
		now = step(t, e, now, 1)
		if e.left.height < minH {
			minH = e.left.height
		}
	}
	if minH > 2 {
		t.Fatalf("closest rendered height %d, want <= 2", minH)
	}
	if e.left.height < defaultEyeHeight-2 {
		t.Fatalf("height %d after blink, expected reopened", e.left.height)
	}
}

func TestCyclopsInvariant(t *testing.T) {
	e, s := newTestEyes()
	now := step(t, e, 0, 10)

	e.SetCyclops(true)
	e.SetPosition(PositionNE)
	for i := 0; i < 10; i++ {
		now = step(t, e, now, 1)
		if e.right.width != 0 || e.right.height != 0 || e.space != 0 {
			t.Fatalf("cyclops frame: right %dx%d space %d, want all zero",
				e.right.width, e.right.height, e.space)
		}
		bodies := 0
		for _, r := range s.rects {
			if r.c == e.on {
				bodies++
			}
		}
		if bodies != 1 {
			t.Fatalf("cyclops frame drew %d eye bodies, want 1", bodies)
		}
	}
}

func TestConfigureClamping(t *testing.T) {
	tests := []struct {
		name          string
		cfg           Config
		width, height int
		interval      int64
	}{
		{"zero values pick defaults", Config{}, 128, 64, 20},
		{"explicit", Config{Width: 64, Height: 32, FrameRate: 100}, 64, 32, 10},
		{"negative clamps to one pixel", Config{Width: -3, Height: -1, FrameRate: -2}, 1, 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(&recordSurface{})
			e.Configure(tt.cfg)
			if e.screenWidth != tt.width || e.screenHeight != tt.height {
				t.Errorf("screen = %dx%d, want %dx%d",
					e.screenWidth, e.screenHeight, tt.width, tt.height)
			}
			if e.frameInterval != tt.interval {
				t.Errorf("frameInterval = %d, want %d", e.frameInterval, tt.interval)
			}
			if e.left.height != 1 || e.right.height != 1 {
				t.Error("Configure did not start with closed eyes")
			}
		})
	}
}

func TestPositionFallback(t *testing.T) {
	e, _ := newTestEyes()
	e.SetPosition(Position(42))
	if e.left.xNext != e.maxX()/4 || e.left.yNext != e.maxY()/4 {
		t.Fatalf("unknown position aimed at (%d,%d), want center (%d,%d)",
			e.left.xNext, e.left.yNext, e.maxX()/4, e.maxY()/4)
	}
}

func TestRightEyeTrailsLeft(t *testing.T) {
	e, _ := newTestEyes()
	step(t, e, 0, 30)
	want := e.left.xNext + e.left.width + e.space
	if e.right.xNext != want {
		t.Fatalf("right xNext = %d, want %d", e.right.xNext, want)
	}
	if e.right.yNext != e.left.yNext {
		t.Fatalf("right yNext = %d, want left's %d", e.right.yNext, e.left.yNext)
	}
}

func TestSettersTakeEffectGradually(t *testing.T) {
	e, _ := newTestEyes()
	step(t, e, 0, 12)

	before := e.left.width
	e.SetWidth(20, 20)
	if e.left.width != before {
		t.Fatal("SetWidth changed the current width instantly")
	}
	step(t, e, 100, 10)
	if e.left.width > 21 {
		t.Fatalf("width %d did not approach 20", e.left.width)
	}
}
