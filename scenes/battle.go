package scenes

import (
	"sync"
	"time"

	"github.com/automoto/kokaton/assets"
	cfg "github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/systems"
	"github.com/automoto/kokaton/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BattleScene runs one session in the village until it reaches an outcome
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	seed         int64
	once         sync.Once
}

// NewBattleScene creates a battle scene whose randomness is driven by seed
func NewBattleScene(sc SceneChanger, seed int64) *BattleScene {
	return &BattleScene{sceneChanger: sc, seed: seed}
}

func (bs *BattleScene) Phase() cfg.Phase { return cfg.PhasePlaying }

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()

	if outcome := systems.SessionOutcome(bs.ecs); outcome != cfg.OutcomeNone {
		bs.sceneChanger.ChangeScene(NewResultScene(bs.sceneChanger, outcome, bs.ecs))
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BattleScene) configure() {
	bs.ecs = newBattleECS(bs.seed, systems.UpdateInput)

	log.Info().Int64("seed", bs.seed).Msg("session started")
}

// newBattleECS builds the battle world and registers its systems in tick
// order. poll is the input system; tests pass one that injects actions.
func newBattleECS(seed int64, poll ecs.System) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Input always runs; everything after it stops once there is an outcome.
	e.AddSystem(poll)

	gameplay := []ecs.System{
		systems.UpdateDebugTriggers,
		systems.UpdateFire,
		systems.UpdateFlyingEnemySpawns,
		systems.UpdatePlayer,
		systems.UpdateTerrain,
		systems.UpdateBoss,
		systems.UpdateCombat,
		systems.UpdateBombs,
		systems.UpdateBeams,
		systems.UpdateExplosions,
		systems.UpdatePatrolEnemies,
		systems.UpdateFlyingEnemies,
		systems.UpdateExpression,
		systems.UpdateTick,
	}
	for _, s := range gameplay {
		e.AddSystem(systems.WithGameplayChecks(s))
	}

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawBoss)
	e.AddRenderer(cfg.Default, systems.DrawBossBombs)
	e.AddRenderer(cfg.Default, systems.DrawLife)
	e.AddRenderer(cfg.Default, systems.DrawBeams)
	e.AddRenderer(cfg.Default, systems.DrawExplosions)
	e.AddRenderer(cfg.Default, systems.DrawTerrain)
	e.AddRenderer(cfg.Default, systems.DrawPatrolEnemies)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawBombs)
	e.AddRenderer(cfg.Default, systems.DrawFlyingEnemies)
	e.AddRenderer(cfg.Default, systems.DrawBossHealth)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, factory.SpaceCellSize, factory.SpaceCellSize)
	factory.CreateSession(e, seed)
	factory.CreateLevel(e, assets.Village())

	return e
}

// NewSeed returns the configured seed, or one taken from the clock.
func NewSeed() int64 {
	if cfg.Debug.Seed != 0 {
		return cfg.Debug.Seed
	}
	return time.Now().UnixNano()
}
