package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/kokaton/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	items map[string][]byte
	err   error
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.items[key] = data
	return nil
}

func withStore(t *testing.T, s settingsStore) {
	t.Helper()
	prev := store
	store = s
	t.Cleanup(func() { store = prev })
}

func TestSettings_RoundTrip(t *testing.T) {
	mem := &memoryStore{items: map[string][]byte{}}
	withStore(t, mem)

	require.NoError(t, SaveSettings(&SavedSettings{Fullscreen: true}))
	assert.Contains(t, string(mem.items[cfg.Settings.SettingsKey]), "fullscreen: true")

	loaded, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Fullscreen)
}

func TestLoadSettings_NothingSaved(t *testing.T) {
	withStore(t, &memoryStore{items: map[string][]byte{}})

	loaded, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadSettings_Corrupt(t *testing.T) {
	withStore(t, &memoryStore{items: map[string][]byte{
		cfg.Settings.SettingsKey: []byte("fullscreen: [oops"),
	}})

	loaded, err := LoadSettings()
	assert.Error(t, err)
	assert.Nil(t, loaded)
}

func TestSettings_StoreFailuresDegrade(t *testing.T) {
	withStore(t, &memoryStore{items: map[string][]byte{}, err: errors.New("disk full")})

	loaded, err := LoadSettings()
	assert.NoError(t, err, "load failures fall back to defaults")
	assert.Nil(t, loaded)

	assert.Error(t, SaveSettings(&SavedSettings{}))
}

func TestSettings_NoStore(t *testing.T) {
	withStore(t, nil)

	loaded, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
	assert.NoError(t, SaveSettings(&SavedSettings{Fullscreen: true}))
}
