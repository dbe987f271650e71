package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldkit/internal/eventbus"
	"fieldkit/internal/logger"
	"fieldkit/internal/ui/logic"
)

func TestRoundTripThroughTOML(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Autocomplete.Filter = string(logic.PolicyFuzzy)
	cfg.Autocomplete.DebounceMs = 0
	cfg.Demo.Sort = "label"
	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMissingKeysKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[autocomplete]\nmax_suggestions = 4\n"), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Autocomplete.MaxSuggestions)
	assert.Equal(t, 300, cfg.Autocomplete.DebounceMs)
	assert.True(t, cfg.Autocomplete.Combobox)
	assert.Equal(t, "fieldkit.log", cfg.Log.File)
}

func TestInvalidFilterIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[autocomplete]\nfilter = \"regex\"\n"), 0644))

	_, err := NewConfigService().LoadFromPath(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, logic.ErrUnknownPolicy)
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = = 1"), 0644))

	_, err := NewConfigService().LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadDefaultsAndPublishes(t *testing.T) {
	bus := eventbus.New(logger.Discard())
	defer bus.Close()

	loaded := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { loaded <- e })

	cs := &configService{bus: bus, filePath: filepath.Join(t.TempDir(), "config.toml")}
	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	select {
	case e := <-loaded:
		assert.Equal(t, cs.filePath, e.(eventbus.ConfigLoadedEvent).Path)
	case <-time.After(time.Second):
		t.Fatal("ConfigLoadedEvent not delivered")
	}
}

func TestAutocompleteProps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Autocomplete.MaxSuggestions = 7
	cfg.Autocomplete.MinCharsToShow = 2
	cfg.Autocomplete.Filter = "startsWith"
	cfg.Autocomplete.Combobox = false

	p := cfg.AutocompleteProps()
	assert.Equal(t, 7, p.MaxSuggestions)
	assert.Equal(t, 2, p.MinCharsToShow)
	assert.Equal(t, logic.PolicyStartsWith, p.Filter)
	assert.False(t, p.Combobox)
	assert.Equal(t, 150, p.BlurGraceMs)
	assert.Equal(t, logic.SortNone, cfg.SortMode())
}
