package sushi

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

// BossKind identifies the boss of a level.
type BossKind int

const (
	BossOctopus BossKind = iota
	BossCrabKing
	BossFisherman
)

func (k BossKind) String() string {
	switch k {
	case BossOctopus:
		return "octopus"
	case BossCrabKing:
		return "crab_king"
	case BossFisherman:
		return "fisherman"
	default:
		return "unknown"
	}
}

// Pattern is a boss attack.
type Pattern int

const (
	PatternRadial        Pattern = iota // Fan of shots in every direction
	PatternSweep                        // Screen-wide tentacle band with a gap
	PatternCharge                       // Dash toward the player
	PatternMinions                      // Spawn crabs and raise a shield
	PatternZones                        // Area-denial nets
	PatternNet                          // Single net thrown at the player
	PatternAimed                        // Volley aimed at the player
	PatternReinforcements               // Seagulls from the top edge
)

func (p Pattern) String() string {
	switch p {
	case PatternRadial:
		return "radial"
	case PatternSweep:
		return "sweep"
	case PatternCharge:
		return "charge"
	case PatternMinions:
		return "minions"
	case PatternZones:
		return "zones"
	case PatternNet:
		return "net"
	case PatternAimed:
		return "aimed"
	case PatternReinforcements:
		return "reinforcements"
	default:
		return fmt.Sprintf("pattern(%d)", int(p))
	}
}

// PhaseSpec is the attack list and interval of one boss phase.
type PhaseSpec struct {
	Patterns []Pattern
	Interval int
}

// BossSpec is the immutable description of a boss kind.
type BossSpec struct {
	Name   string
	Kind   BossKind
	HP     int
	Radius float64
	Phases [2]PhaseSpec
}

// BossSpecs is indexed by BossKind.
var BossSpecs = [...]BossSpec{
	BossOctopus: {
		Name:   "Octo Sensei",
		Kind:   BossOctopus,
		HP:     40,
		Radius: 48,
		Phases: [2]PhaseSpec{
			{Patterns: []Pattern{PatternRadial, PatternAimed}, Interval: 90},
			{Patterns: []Pattern{PatternRadial, PatternSweep, PatternAimed, PatternNet}, Interval: 60},
		},
	},
	BossCrabKing: {
		Name:   "King Clawdius",
		Kind:   BossCrabKing,
		HP:     60,
		Radius: 44,
		Phases: [2]PhaseSpec{
			{Patterns: []Pattern{PatternCharge, PatternMinions}, Interval: 100},
			{Patterns: []Pattern{PatternCharge, PatternMinions, PatternRadial, PatternCharge}, Interval: 70},
		},
	},
	BossFisherman: {
		Name:   "Old Man Hook",
		Kind:   BossFisherman,
		HP:     80,
		Radius: 40,
		Phases: [2]PhaseSpec{
			{Patterns: []Pattern{PatternAimed, PatternNet}, Interval: 80},
			{Patterns: []Pattern{PatternNet, PatternAimed, PatternReinforcements, PatternZones}, Interval: 55},
		},
	},
}

// BossBody is the kind-specific payload of a boss. Only the variant that
// matches the boss kind is ever attached.
type BossBody interface {
	kind() BossKind
	clone() BossBody
}

// OctopusBody sways sinusoidally across the top of the screen.
type OctopusBody struct {
	SwayPhase float64
}

// CrabKingBody charges and bounces, and shields itself while minions are out.
type CrabKingBody struct {
	ChargeVel core.Vec2
	Charging  int // Frames of dash left
	WalkDir   float64
	Shield    int // Frames of damage immunity left
}

// FishermanBody drifts slowly around its anchor.
type FishermanBody struct {
	DriftPhase float64
	Casts      int
}

func (b *OctopusBody) kind() BossKind   { return BossOctopus }
func (b *CrabKingBody) kind() BossKind  { return BossCrabKing }
func (b *FishermanBody) kind() BossKind { return BossFisherman }

func (b *OctopusBody) clone() BossBody   { c := *b; return &c }
func (b *CrabKingBody) clone() BossBody  { c := *b; return &c }
func (b *FishermanBody) clone() BossBody { c := *b; return &c }

// Boss is the active boss of an encounter. Position is in screen space.
type Boss struct {
	Name        string
	Kind        BossKind
	HP          int
	MaxHP       int
	Radius      float64
	Pos         core.Vec2
	Phase       int
	AttackTimer int
	PatternIdx  int
	Age         int
	Body        BossBody
}

// Shielded reports whether the boss currently ignores damage.
func (b *Boss) Shielded() bool {
	switch body := b.Body.(type) {
	case *CrabKingBody:
		return body.Shield > 0
	case *OctopusBody, *FishermanBody:
		return false
	default:
		panic(fmt.Sprintf("sushi: unknown boss body %T", b.Body))
	}
}

// newBoss constructs the boss of the given kind at the top of the screen.
func newBoss(kind BossKind, width float64) *Boss {
	def := BossSpecs[kind]
	b := &Boss{
		Name:        def.Name,
		Kind:        kind,
		HP:          def.HP,
		MaxHP:       def.HP,
		Radius:      def.Radius,
		Pos:         core.Vec2{X: width / 2, Y: 150},
		AttackTimer: def.Phases[0].Interval,
	}
	switch kind {
	case BossOctopus:
		b.Body = &OctopusBody{}
	case BossCrabKing:
		b.Body = &CrabKingBody{WalkDir: 1}
	case BossFisherman:
		b.Body = &FishermanBody{}
	default:
		panic(fmt.Sprintf("sushi: unknown boss kind %d", kind))
	}
	return b
}

// Stage is the boss encounter stage.
type Stage int

const (
	StageNone Stage = iota
	StageWarning
	StageClearing
	StageFighting
	StageDefeated
)

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageWarning:
		return "warning"
	case StageClearing:
		return "clearing"
	case StageFighting:
		return "fighting"
	case StageDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// Encounter tracks the boss state machine.
//
//	none     -> warning   distance reaches the level target; camera locks
//	warning  -> clearing  Timer (warning frames) expires
//	clearing -> fighting  Timer (clearing frames) expires or no enemies remain
//	fighting -> defeated  boss HP reaches zero; Timer = defeat frames
//	defeated -> none      Timer expires; level bonus awarded; camera unlocks
type Encounter struct {
	Stage Stage
	Timer int
	Ticks int // Frames spent in the current stage
}

func (e *Encounter) enter(s Stage, timer int) {
	e.Stage = s
	e.Timer = timer
	e.Ticks = 0
}

// Sweep is a tentacle band crossing the screen with a safe gap.
type Sweep struct {
	Y         float64
	Thickness float64
	GapX      float64
	GapW      float64
	Speed     float64
}

// hits reports whether a circle is caught by the band outside the gap.
func (s *Sweep) hits(p core.Vec2, r float64) bool {
	if math.Abs(p.Y-s.Y) > s.Thickness/2+r {
		return false
	}
	return p.X-r < s.GapX || p.X+r > s.GapX+s.GapW
}

// updateEncounter advances the boss state machine by one frame.
func (w *World) updateEncounter() {
	bc := w.cfg.Boss
	enc := &w.Encounter
	enc.Ticks++

	switch enc.Stage {
	case StageNone:
		if w.Camera.Distance() >= w.lvl.TargetDistance {
			w.Camera.Lock()
			enc.enter(StageWarning, bc.WarningFrames)
			w.emit(core.CueBossWarning)
		}

	case StageWarning:
		enc.Timer--
		if enc.Timer <= 0 {
			enc.enter(StageClearing, bc.ClearingFrames)
		}

	case StageClearing:
		enc.Timer--
		if bc.ClearEvery > 0 && enc.Ticks%bc.ClearEvery == 0 {
			w.clearOneEnemy()
		}
		if enc.Timer <= 0 || w.aliveEnemies() == 0 {
			for w.aliveEnemies() > 0 {
				w.clearOneEnemy()
			}
			w.Boss = newBoss(w.lvl.Boss, w.cfg.Viewport.Width)
			enc.enter(StageFighting, 0)
		}

	case StageFighting:
		if w.Boss != nil {
			w.updateBoss(w.Boss)
		}

	case StageDefeated:
		enc.Timer--
		if enc.Timer <= 0 {
			w.addScore((w.level + 1) * bc.BonusPerLevel * w.Multiplier())
			w.Boss = nil
			w.Sweep = nil
			w.Camera.Unlock()
			enc.enter(StageNone, 0)
			w.resolved = true
		}
	}
}

// aliveEnemies counts enemies not yet removed.
func (w *World) aliveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if !e.Dead {
			n++
		}
	}
	return n
}

// clearOneEnemy removes the first live enemy with a small burst.
func (w *World) clearOneEnemy() {
	for _, e := range w.Enemies {
		if e.Dead {
			continue
		}
		e.Dead = true
		pos := w.screenPos(e.X, e.WorldY)
		w.burst(pos.X, pos.Y, 6, core.ColorWhite)
		return
	}
}

// damageBoss applies damage, handles the one-way phase change and defeat.
func (w *World) damageBoss(dmg int) {
	b := w.Boss
	if b == nil || b.HP <= 0 || w.Encounter.Stage != StageFighting {
		return
	}
	if b.Shielded() {
		w.burst(b.Pos.X, b.Pos.Y+b.Radius, 3, core.ColorGray)
		return
	}

	b.HP -= dmg
	w.run.Streak++
	w.emit(core.CueHit)
	w.burst(b.Pos.X, b.Pos.Y, 5, core.ColorBrightMagenta)

	if b.Phase == 0 && b.HP*2 <= b.MaxHP {
		b.Phase = 1
		b.PatternIdx = 0
		b.AttackTimer = BossSpecs[b.Kind].Phases[1].Interval
	}

	if b.HP <= 0 {
		b.HP = 0
		w.Encounter.enter(StageDefeated, w.cfg.Boss.DefeatFrames)
		w.BossShots = w.BossShots[:0]
		w.Sweep = nil
		w.emit(core.CueBossDefeat)
		w.burst(b.Pos.X, b.Pos.Y, 60, core.ColorBrightYellow)
	}
}

// updateBoss runs the boss movement and attack countdown.
func (w *World) updateBoss(b *Boss) {
	b.Age++
	w.moveBoss(b)

	b.AttackTimer--
	if b.AttackTimer > 0 {
		return
	}
	phase := BossSpecs[b.Kind].Phases[b.Phase]
	p := phase.Patterns[b.PatternIdx%len(phase.Patterns)]
	b.PatternIdx++
	b.AttackTimer = phase.Interval
	w.executePattern(b, p)
}

// moveBoss applies the kind-specific movement.
func (w *World) moveBoss(b *Boss) {
	width := w.cfg.Viewport.Width
	height := w.cfg.Viewport.Height
	t := float64(b.Age)

	switch body := b.Body.(type) {
	case *OctopusBody:
		body.SwayPhase += 0.02
		b.Pos.X = width/2 + math.Sin(body.SwayPhase)*width*0.3
		b.Pos.Y = 150 + math.Sin(t*0.035)*20

	case *CrabKingBody:
		if body.Shield > 0 {
			body.Shield--
		}
		if body.Charging > 0 {
			body.Charging--
			b.Pos = b.Pos.Add(body.ChargeVel)
			if b.Pos.X < b.Radius || b.Pos.X > width-b.Radius {
				body.ChargeVel.X = -body.ChargeVel.X
				b.Pos.X = core.ClampF(b.Pos.X, b.Radius, width-b.Radius)
			}
			if b.Pos.Y < b.Radius || b.Pos.Y > height*0.75 {
				body.ChargeVel.Y = -body.ChargeVel.Y
				b.Pos.Y = core.ClampF(b.Pos.Y, b.Radius, height*0.75)
			}
			return
		}
		b.Pos.X += body.WalkDir * 1.2
		if b.Pos.X < b.Radius || b.Pos.X > width-b.Radius {
			body.WalkDir = -body.WalkDir
			b.Pos.X = core.ClampF(b.Pos.X, b.Radius, width-b.Radius)
		}
		b.Pos.Y += (150 - b.Pos.Y) * 0.05

	case *FishermanBody:
		body.DriftPhase += 0.01
		b.Pos.X = width/2 + math.Sin(body.DriftPhase)*40
		b.Pos.Y = 140 + math.Sin(t*0.017)*10

	default:
		panic(fmt.Sprintf("sushi: unknown boss body %T", b.Body))
	}
}

// executePattern performs one attack. Every pattern must be handled here;
// an unknown value is a programming error.
func (w *World) executePattern(b *Boss, p Pattern) {
	switch p {
	case PatternRadial:
		n := 10
		if b.Phase == 1 {
			n = 14
		}
		offset := float64(b.Age) * 0.1
		for i := 0; i < n; i++ {
			a := offset + 2*math.Pi*float64(i)/float64(n)
			w.bossShot(b.Pos, a, 2.5, 6)
		}

	case PatternSweep:
		width := w.cfg.Viewport.Width
		gapW := 90.0
		w.Sweep = &Sweep{
			Y:         b.Pos.Y + b.Radius,
			Thickness: 16,
			GapX:      w.randRange(20, width-20-gapW),
			GapW:      gapW,
			Speed:     3,
		}

	case PatternCharge:
		if body, ok := b.Body.(*CrabKingBody); ok {
			body.ChargeVel = core.FromAngle(angleTo(b.Pos, w.Player.Pos), 6)
			body.Charging = 40
		}

	case PatternMinions:
		for i := -1; i <= 1; i++ {
			x := core.ClampF(b.Pos.X+float64(i)*60, 20, w.cfg.Viewport.Width-20)
			w.addEnemy(EnemyCrab, x, w.Camera.ScreenToWorld(b.Pos.Y+b.Radius+20))
		}
		if body, ok := b.Body.(*CrabKingBody); ok {
			body.Shield = w.cfg.Boss.ShieldFrames
		}

	case PatternZones:
		vp := w.cfg.Viewport
		for i := 0; i < 3; i++ {
			pos := core.Vec2{X: w.randRange(40, vp.Width-40), Y: w.randRange(vp.Height*0.45, vp.Height-60)}
			w.net(pos, core.Vec2{}, 36, 300)
		}

	case PatternNet:
		v := core.FromAngle(angleTo(b.Pos, w.Player.Pos), 3.5)
		w.net(b.Pos, v, 28, 360)
		if body, ok := b.Body.(*FishermanBody); ok {
			body.Casts++
		}

	case PatternAimed:
		n := 3
		if b.Phase == 1 {
			n = 5
		}
		base := angleTo(b.Pos, w.Player.Pos)
		for i := 0; i < n; i++ {
			a := base + (float64(i)-float64(n-1)/2)*0.18
			w.bossShot(b.Pos, a, 4, 5)
		}

	case PatternReinforcements:
		top := w.Camera.ScreenToWorld(-20)
		for i := 0; i < 3; i++ {
			w.addEnemy(EnemySeagull, w.randRange(30, w.cfg.Viewport.Width-30), top+float64(i)*25)
		}

	default:
		panic(fmt.Sprintf("sushi: unknown boss pattern %d", int(p)))
	}
}

// bossShot fires a plain boss projectile from a screen position.
func (w *World) bossShot(from core.Vec2, angle, speed, radius float64) {
	v := core.FromAngle(angle, speed)
	w.BossShots = append(w.BossShots, &Projectile{
		Kind:   ProjBoss,
		X:      from.X,
		WorldY: w.Camera.ScreenToWorld(from.Y),
		VX:     v.X,
		VY:     v.Y,
		Life:   300,
		Radius: radius,
	})
}

// net places a dwell-damage net at a screen position.
func (w *World) net(at, vel core.Vec2, radius float64, life int) {
	w.BossShots = append(w.BossShots, &Projectile{
		Kind:   ProjNet,
		X:      at.X,
		WorldY: w.Camera.ScreenToWorld(at.Y),
		VX:     vel.X,
		VY:     vel.Y,
		Life:   life,
		Radius: radius,
	})
}
