package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel_Village(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel(VillageLevel)
	require.NoError(t, err)

	assert.Equal(t, "Kokaton Village", level.Title)
	assert.Equal(t, 1100, level.Width)
	assert.Equal(t, 650, level.Height)

	require.Len(t, level.Terrain, 6)
	floor := level.Terrain[0]
	assert.True(t, floor.Floor)
	assert.Equal(t, TerrainSpawn{Name: "floor", X: 0, Y: 570, Width: 1100, Height: 80, Floor: true}, floor)
	assert.Equal(t, "center", level.Terrain[5].Name)
	for _, tr := range level.Terrain[1:] {
		assert.False(t, tr.Floor, tr.Name)
	}

	require.Len(t, level.PatrolEnemies, 3)
	assert.Equal(t, PatrolSpawn{Name: "left-guard", X: 0, Y: 330, MinX: 0, MaxX: 300}, level.PatrolEnemies[0])

	assert.Equal(t, 550.0, level.PlayerSpawn.X)
	assert.Equal(t, 300.0, level.PlayerSpawn.Y)
	assert.Equal(t, -100.0, level.BossSpawn.Y)
}

func TestLoadLevel_Missing(t *testing.T) {
	_, err := NewLevelLoader().LoadLevel("levels/nope.tmx")
	assert.Error(t, err)
}

func TestParseStrings_Embedded(t *testing.T) {
	s, err := ParseStrings(stringsYAML)
	require.NoError(t, err)
	assert.Equal(t, "Game Over", s.Result.GameOver)
	assert.Equal(t, "Game Clear", s.Result.GameClear)
	assert.Equal(t, "Life %d", s.HUD.Life)
	assert.Len(t, s.Title.Lines, 3)
}

func TestParseStrings_MissingKey(t *testing.T) {
	_, err := ParseStrings([]byte("title:\n  heading: x\n"))
	assert.Error(t, err)
}

func TestParseStrings_Malformed(t *testing.T) {
	_, err := ParseStrings([]byte("title: [unterminated"))
	assert.Error(t, err)
}
