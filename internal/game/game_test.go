package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/effects"
)

// seqSource replays a fixed sequence of values, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func newTestSim(t *testing.T, rng core.Source) *Sim {
	t.Helper()
	if rng == nil {
		rng = &seqSource{vals: []float64{0.5}}
	}
	s, err := New(config.DefaultConfig(), rng, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func startPlaying(t *testing.T, s *Sim) {
	t.Helper()
	s.Tick(input(core.ActionConfirm), 0)
	if s.Mode() != ModePlaying {
		t.Fatalf("expected Playing after confirm, got %v", s.Mode())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Difficulty.Gap.StartMin = -10

	if _, err := New(cfg, nil, nil); err == nil {
		t.Fatal("expected error for negative gap bound")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustNew should panic on invalid config")
		}
	}()
	MustNew(cfg, nil, nil)
}

func TestMenuWaitsForConfirm(t *testing.T) {
	s := newTestSim(t, nil)
	start := s.actor.Pos

	for i := 0; i < 120; i++ {
		s.Tick(input(core.ActionFlap), 1.0/60)
	}
	if s.Mode() != ModeMenu {
		t.Fatalf("flap alone must not leave the menu, got %v", s.Mode())
	}
	if s.actor.Pos != start {
		t.Errorf("actor should not move in the menu, moved to %v", s.actor.Pos)
	}
	if s.spawnTimer.Elapsed() != 0 {
		t.Errorf("spawn timer should be paused in the menu, elapsed %v", s.spawnTimer.Elapsed())
	}

	s.Tick(input(core.ActionConfirm, core.ActionFlap), 1.0/60)
	if s.Mode() != ModePlaying {
		t.Fatalf("expected Playing, got %v", s.Mode())
	}
	if s.actor.Pos != start || s.actor.Velocity != 0 {
		t.Error("the start tick should not simulate")
	}
}

func TestFallingScenario(t *testing.T) {
	s := newTestSim(t, nil)
	startPlaying(t, s)

	s.actor.Pos = core.V(-50, 0)
	s.actor.Velocity = -900
	s.Tick(input(), 0.02)

	if !approx(s.actor.Velocity, -916, 1e-9) {
		t.Errorf("expected velocity -916, got %v", s.actor.Velocity)
	}
	if !approx(s.actor.Pos.Y, -18.32, 1e-9) {
		t.Errorf("expected y -18.32, got %v", s.actor.Pos.Y)
	}
}

func TestFallIsMonotonic(t *testing.T) {
	s := newTestSim(t, nil)
	startPlaying(t, s)

	prev := s.actor.Pos.Y
	for i := 0; i < 600 && s.Mode() == ModePlaying; i++ {
		s.Tick(input(), 1.0/60)
		if s.actor.Pos.Y >= prev {
			t.Fatalf("tick %d: y did not decrease (%v -> %v)", i, prev, s.actor.Pos.Y)
		}
		prev = s.actor.Pos.Y
	}
	if s.Mode() != ModeGameOver {
		t.Error("falling without flaps should end on the ground")
	}
}

func TestFlapOverwritesVelocity(t *testing.T) {
	s := newTestSim(t, nil)
	startPlaying(t, s)

	s.actor.Velocity = -500
	dt := 1.0 / 60
	s.Tick(input(core.ActionFlap), dt)

	want := 350 - 800*dt
	if !approx(s.actor.Velocity, want, 1e-9) {
		t.Errorf("expected velocity %v after flap, got %v", want, s.actor.Velocity)
	}

	flaps := 0
	for _, e := range s.Events() {
		if e.Kind == EventFlap {
			flaps++
		}
	}
	if flaps != 1 {
		t.Errorf("expected one Flap event, got %d", flaps)
	}
}

func TestTiltTarget(t *testing.T) {
	p := config.DefaultConfig().Physics

	tests := []struct {
		velocity float64
		want     float64
	}{
		{350, 0.5},
		{175, 0.25},
		{0, 0},
		{-250, -0.5},
		{-600, -1.2},
		{-5000, -1.2},
	}

	for _, tt := range tests {
		if got := TiltTarget(tt.velocity, p); !approx(got, tt.want, 1e-9) {
			t.Errorf("TiltTarget(%v) = %v, want %v", tt.velocity, got, tt.want)
		}
	}
}

func TestTiltSmoothing(t *testing.T) {
	a := &Actor{Velocity: 350}
	p := config.DefaultConfig().Physics

	a.UpdateTilt(p, 0.1)
	// 0 + (0.5 - 0) * 5 * 0.1
	if !approx(a.Tilt, 0.25, 1e-9) {
		t.Errorf("expected tilt 0.25, got %v", a.Tilt)
	}
}

func TestSpawnGapAtScoreZero(t *testing.T) {
	for _, r := range []float64{0, 0.25, 0.5, 0.9999} {
		s := newTestSim(t, &seqSource{vals: []float64{r}})
		gap := s.spawn()

		if gap.Size < 130 || gap.Size > 180 {
			t.Errorf("rand %v: gap %v outside [130, 180]", r, gap.Size)
		}
		if len(s.obstacles) != 2 {
			t.Fatalf("expected a pair, got %d obstacles", len(s.obstacles))
		}

		top, bottom := s.obstacles[0], s.obstacles[1]
		if top.Role != RoleTop || bottom.Role != RoleBottom {
			t.Fatal("expected top then bottom")
		}
		if top.Height < 0 || bottom.Height < 0 {
			t.Errorf("rand %v: negative stub height (top %v, bottom %v)", r, top.Height, bottom.Height)
		}
		if got := top.Box().Bottom() - bottom.Box().Top(); !approx(got, gap.Size, 1e-9) {
			t.Errorf("rand %v: opening %v does not match gap %v", r, got, gap.Size)
		}
		if !approx(top.Box().Top(), 300, 1e-9) {
			t.Errorf("top stub should reach the ceiling, top edge %v", top.Box().Top())
		}
		if !approx(bottom.Box().Bottom(), -250, 1e-9) {
			t.Errorf("bottom stub should stand on the floor, bottom edge %v", bottom.Box().Bottom())
		}
		if top.Pos.X != 260 || bottom.Pos.X != 260 {
			t.Errorf("pair should spawn at x=260, got %v/%v", top.Pos.X, bottom.Pos.X)
		}
	}
}

func TestSpawnGapAtCap(t *testing.T) {
	for _, r := range []float64{0, 0.3, 0.9999} {
		s := newTestSim(t, &seqSource{vals: []float64{r}})
		s.score = 20
		if gap := s.spawn(); gap.Size != 110 {
			t.Errorf("rand %v: expected gap 110 at the cap, got %v", r, gap.Size)
		}
	}
}

func TestSpawnTimer(t *testing.T) {
	s := newTestSim(t, nil)

	for i := 0; i < 3; i++ {
		s.updateSpawner(0.5)
	}
	if len(s.obstacles) != 0 {
		t.Fatalf("no pair expected before the interval, got %d obstacles", len(s.obstacles))
	}
	s.updateSpawner(0.5)
	if len(s.obstacles) != 2 {
		t.Fatalf("expected one pair at 2s, got %d obstacles", len(s.obstacles))
	}
	s.updateSpawner(1.9)
	if len(s.obstacles) != 2 {
		t.Errorf("timer should restart after firing, got %d obstacles", len(s.obstacles))
	}
}

func TestMoveAndDespawn(t *testing.T) {
	s := newTestSim(t, nil)
	s.obstacles = append(s.obstacles,
		Obstacle{Pos: core.V(-259, 0), Width: 60, Height: 10, Role: RoleBottom},
		Obstacle{Pos: core.V(0, 0), Width: 60, Height: 10, Role: RoleBottom},
	)

	s.moveObstacles(0.01)
	if len(s.obstacles) != 1 {
		t.Fatalf("expected the off-screen obstacle removed, %d left", len(s.obstacles))
	}
	if !approx(s.obstacles[0].Pos.X, -1.5, 1e-9) {
		t.Errorf("expected x -1.5, got %v", s.obstacles[0].Pos.X)
	}
}

func TestCollisionPriority(t *testing.T) {
	s := newTestSim(t, nil)
	startPlaying(t, s)

	s.actor.Pos = core.V(-50, -240)
	s.obstacles = append(s.obstacles, Obstacle{Pos: s.actor.Pos, Width: 60, Height: 100, Role: RoleBottom})

	if got := s.detectCollision(); got != CollisionGround {
		t.Errorf("ground should win over obstacles, got %v", got)
	}

	s.Tick(input(), 0)
	if s.Mode() != ModeGameOver {
		t.Fatalf("expected GameOver, got %v", s.Mode())
	}
	died := 0
	for _, e := range s.Events() {
		if e.Kind == EventDied {
			died++
			if e.Pos != s.actor.Pos {
				t.Errorf("Died should carry the actor position, got %v", e.Pos)
			}
		}
	}
	if died != 1 {
		t.Errorf("expected exactly one Died event, got %d", died)
	}
}

func TestCollisionKinds(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		obstacle *Obstacle
		want     Collision
	}{
		{"clear", 0, nil, CollisionNone},
		{"ground", -235, nil, CollisionGround},
		{"ceiling", 285, nil, CollisionCeiling},
		{"obstacle", 0, &Obstacle{Pos: core.V(-20, 0), Width: 60, Height: 40}, CollisionObstacle},
		{"touching", 0, &Obstacle{Pos: core.V(0, 0), Width: 70, Height: 40}, CollisionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, nil)
			s.actor.Pos = core.V(-50, tt.y)
			if tt.obstacle != nil {
				s.obstacles = append(s.obstacles, *tt.obstacle)
			}
			if got := s.detectCollision(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestScoreOncePerPair(t *testing.T) {
	s := newTestSim(t, nil)
	startPlaying(t, s)

	s.obstacles = append(s.obstacles,
		Obstacle{Pos: core.V(-49, 290), Width: 60, Height: 20, Role: RoleTop},
		Obstacle{Pos: core.V(-49, -240), Width: 60, Height: 20, Role: RoleBottom},
	)

	s.Tick(input(), 0.02)
	if s.Score() != 1 {
		t.Fatalf("expected score 1 after passing, got %d", s.Score())
	}
	scored := 0
	for _, e := range s.Events() {
		if e.Kind == EventScored {
			scored++
		}
	}
	if scored != 1 {
		t.Errorf("expected one Scored event, got %d", scored)
	}

	for i := 0; i < 4; i++ {
		s.Tick(input(), 0.02)
		if len(s.Events()) != 0 {
			t.Errorf("tick %d: unexpected events %v", i, s.Events())
		}
	}
	if s.Score() != 1 {
		t.Errorf("score must not increase again, got %d", s.Score())
	}
	if s.obstacles[0].Scored || !s.obstacles[1].Scored {
		t.Error("only the bottom obstacle carries the scored flag")
	}
}

func TestScoreNeverDecreasesWhilePlaying(t *testing.T) {
	s := newTestSim(t, core.NewXorShift(7))
	startPlaying(t, s)

	prev := 0
	for i := 0; i < 3000 && s.Mode() == ModePlaying; i++ {
		// Hold altitude near center so pairs keep arriving
		var in core.InputFrame
		if s.actor.Pos.Y < -20 && s.actor.Velocity < 0 {
			in = input(core.ActionFlap)
		}
		s.Tick(in, 1.0/60)
		if s.Score() < prev || s.Score() > prev+1 {
			t.Fatalf("tick %d: score jumped from %d to %d", i, prev, s.Score())
		}
		prev = s.Score()
	}
}

func TestRestartProtocol(t *testing.T) {
	s := newTestSim(t, nil)
	startPlaying(t, s)

	s.actor.Pos = core.V(-50, -240)
	s.Tick(input(), 0)
	if s.Mode() != ModeGameOver {
		t.Fatalf("expected GameOver, got %v", s.Mode())
	}

	s.score = 7
	s.actor.Velocity = -300
	s.actor.Tilt = -1
	s.spawnTimer.Tick(1.5)
	s.obstacles = append(s.obstacles, Obstacle{Pos: core.V(100, 0), Width: 60, Height: 50, Role: RoleBottom})

	for i := 0; i < 30; i++ {
		s.Tick(input(core.ActionFlap), 1.0/60)
	}
	if s.Mode() != ModeGameOver {
		t.Fatal("GameOver must not auto-advance")
	}
	if s.obstacles[0].Pos.X != 100 {
		t.Error("obstacles must stay frozen in GameOver")
	}

	s.Tick(input(core.ActionConfirm), 1.0/60)
	if s.Mode() != ModePlaying {
		t.Fatalf("expected Playing after restart, got %v", s.Mode())
	}
	if len(s.obstacles) != 0 {
		t.Errorf("expected no obstacles, got %d", len(s.obstacles))
	}
	if s.Score() != 0 {
		t.Errorf("expected score 0, got %d", s.Score())
	}
	if s.actor.Pos != core.V(-50, 0) || s.actor.Velocity != 0 || s.actor.Tilt != 0 {
		t.Errorf("actor not at start state: %+v", *s.actor)
	}
	if s.spawnTimer.Elapsed() != 0 {
		t.Errorf("spawn timer should restart from a full interval, elapsed %v", s.spawnTimer.Elapsed())
	}
}

func TestNilActorIsNoOp(t *testing.T) {
	s := newTestSim(t, nil)
	startPlaying(t, s)
	s.actor = nil
	s.obstacles = append(s.obstacles, Obstacle{Pos: core.V(-100, -240), Width: 60, Height: 20, Role: RoleBottom})

	for i := 0; i < 10; i++ {
		s.Tick(input(core.ActionFlap), 1.0/60)
	}
	if s.Mode() != ModePlaying {
		t.Errorf("missing actor must not end the game, got %v", s.Mode())
	}
	if s.Score() != 0 {
		t.Errorf("missing actor must not score, got %d", s.Score())
	}
	if s.Snapshot().HasActor {
		t.Error("snapshot should report no actor")
	}
}

func TestNegativeDeltaIsClamped(t *testing.T) {
	s := newTestSim(t, nil)
	startPlaying(t, s)
	s.actor.Velocity = -100
	before := *s.actor

	s.Tick(input(), -0.5)
	if s.actor.Pos != before.Pos || s.actor.Velocity != before.Velocity {
		t.Errorf("negative dt should not move the actor: %+v -> %+v", before, *s.actor)
	}
}

func TestFlapFeedback(t *testing.T) {
	s := newTestSim(t, core.NewXorShift(99))
	startPlaying(t, s)

	s.Tick(input(core.ActionFlap), 1.0/60)
	snap := s.Snapshot()

	n := len(snap.Particles)
	fc := s.cfg.Effects.FlapParticles
	if n < fc.CountMin || n > fc.CountMax {
		t.Errorf("expected %d-%d flap particles, got %d", fc.CountMin, fc.CountMax, n)
	}
	if snap.Actor.Scale.X >= 1 || snap.Actor.Scale.Y <= 1 {
		t.Errorf("expected squash/stretch after flap, got %v", snap.Actor.Scale)
	}

	for i := 0; i < 60; i++ {
		s.Tick(input(), 1.0/60)
	}
	snap = s.Snapshot()
	if snap.Actor.Scale != (core.Vec2{X: 1, Y: 1}) {
		t.Errorf("squash should settle to neutral, got %v", snap.Actor.Scale)
	}
	if len(snap.Particles) != 0 {
		t.Errorf("flap particles should expire, %d left", len(snap.Particles))
	}
}

func TestDeathFeedback(t *testing.T) {
	s := newTestSim(t, nil)
	startPlaying(t, s)

	s.actor.Pos = core.V(-50, -240)
	s.Tick(input(), 0)
	snap := s.Snapshot()

	if !approx(snap.Flash.Alpha, 0.6, 1e-9) {
		t.Errorf("expected death flash at peak alpha, got %v", snap.Flash.Alpha)
	}
	if snap.ShakeOffset == (core.Vec2{}) {
		t.Error("expected camera shake after death")
	}
	death := 0
	for _, p := range snap.Particles {
		if p.Kind == effects.ParticleDeath {
			death++
		}
	}
	if death != s.cfg.Effects.DeathParticles.Count {
		t.Errorf("expected %d death particles, got %d", s.cfg.Effects.DeathParticles.Count, death)
	}
	if snap.Instruction != "Game Over!\nClick or press SPACE to restart" {
		t.Errorf("unexpected instruction %q", snap.Instruction)
	}

	// Effects keep decaying while in GameOver
	for i := 0; i < 15; i++ {
		s.Tick(input(), 0.1)
	}
	snap = s.Snapshot()
	if snap.Flash.Alpha != 0 {
		t.Errorf("flash should be gone, alpha %v", snap.Flash.Alpha)
	}
	if snap.ShakeOffset != (core.Vec2{}) {
		t.Errorf("shake offset should reset to zero, got %v", snap.ShakeOffset)
	}
	if len(snap.Particles) != 0 {
		t.Errorf("death particles should expire, %d left", len(snap.Particles))
	}
}

func TestScoreFeedback(t *testing.T) {
	s := newTestSim(t, nil)
	startPlaying(t, s)
	s.obstacles = append(s.obstacles, Obstacle{Pos: core.V(-49, -240), Width: 60, Height: 20, Role: RoleBottom})

	s.Tick(input(), 0.02)
	snap := s.Snapshot()
	if snap.ScoreText != "1" {
		t.Errorf("expected score text \"1\", got %q", snap.ScoreText)
	}
	if snap.ScoreScale <= 1 {
		t.Errorf("expected score pop, got scale %v", snap.ScoreScale)
	}
	if len(snap.EdgeStrips) != 4*s.cfg.Effects.ScoreFlash.Strips {
		t.Fatalf("expected edge strips while flashing, got %d", len(snap.EdgeStrips))
	}
	for _, st := range snap.EdgeStrips {
		if st.Alpha <= 0 || st.Alpha > s.cfg.Effects.ScoreFlash.Alpha {
			t.Errorf("strip alpha %v out of range", st.Alpha)
		}
	}

	for i := 0; i < 30; i++ {
		s.Tick(input(), 0.02)
	}
	snap = s.Snapshot()
	if len(snap.EdgeStrips) != 0 || snap.ScoreScale != 1 {
		t.Errorf("score feedback should settle (strips %d, scale %v)", len(snap.EdgeStrips), snap.ScoreScale)
	}
}

func TestResize(t *testing.T) {
	s := newTestSim(t, nil)

	s.Resize(800, 600)
	if vp := s.Viewport(); vp.Width != 800 || vp.Height != 600 {
		t.Errorf("expected 800x600, got %+v", vp)
	}
	if w := s.fx.edge.Strips()[0].Rect.W; w != 1600 {
		t.Errorf("edge strips should follow the viewport, width %v", w)
	}

	s.Resize(0, 100)
	s.Resize(100, -1)
	if s.Viewport().Width != 800 {
		t.Error("degenerate display sizes must be ignored")
	}

	s.Resize(160, 48)
	if vp := s.Viewport(); vp.Width != 2000 || vp.Height != 600 {
		t.Errorf("height must stay fixed, got %+v", vp)
	}

	s.spawn()
	if s.obstacles[0].Pos.X != 1060 {
		t.Errorf("spawn x should follow the viewport, got %v", s.obstacles[0].Pos.X)
	}
}

func TestInstruction(t *testing.T) {
	tests := []struct {
		mode   Mode
		method InputMethod
		want   string
	}{
		{ModeMenu, InputKeyboard, "Click or press SPACE to start"},
		{ModeMenu, InputTouch, "Tap to start"},
		{ModePlaying, InputKeyboard, ""},
		{ModeGameOver, InputKeyboard, "Game Over!\nClick or press SPACE to restart"},
		{ModeGameOver, InputTouch, "Game Over!\nTap to restart"},
	}

	for _, tt := range tests {
		if got := Instruction(tt.mode, tt.method); got != tt.want {
			t.Errorf("Instruction(%v, %v) = %q, want %q", tt.mode, tt.method, got, tt.want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newTestSim(t, core.NewXorShift(12345))
		startPlaying(t, s)
		for i := 0; i < 400 && s.Mode() == ModePlaying; i++ {
			var in core.InputFrame
			if i%20 == 0 {
				in = input(core.ActionFlap)
			}
			s.Tick(in, 1.0/60)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Mode != b.Mode {
		t.Errorf("runs diverged: score %d/%d, mode %v/%v", a.Score, b.Score, a.Mode, b.Mode)
	}
	if a.Actor.Pos != b.Actor.Pos {
		t.Errorf("actor positions diverged: %v vs %v", a.Actor.Pos, b.Actor.Pos)
	}
	if len(a.Obstacles) != len(b.Obstacles) {
		t.Errorf("obstacle counts diverged: %d vs %d", len(a.Obstacles), len(b.Obstacles))
	}
}
