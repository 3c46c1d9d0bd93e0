package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinFallbackProfile(t *testing.T) {
	p := Builtin().FallbackProfile()

	assert.Equal(t, "Jane Writer", p.Name)
	assert.Equal(t, 24, p.Stats.Writings)
	assert.Equal(t, 52, p.Stats.Photos)
	assert.Equal(t, 250, p.Stats.Followers)
	assert.Len(t, p.Achievements.Awards, 2)
	assert.Len(t, p.Achievements.Publications, 2)
	assert.Len(t, p.Achievements.Recognition, 2)
}

func TestFallbackProfileIsACopy(t *testing.T) {
	d := Builtin()
	p := d.FallbackProfile()
	p.Achievements.Awards[0] = "changed"

	assert.Equal(t, "National Book Award Finalist 2023", d.FallbackProfile().Achievements.Awards[0])
}

func TestLoadEmptyPathUsesBuiltin(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Jane Writer", d.Profile.Name)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Sam Author\n  stats:\n    followers: 7\n"), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Sam Author", d.Profile.Name)
	assert.Equal(t, "Writer & Photographer", d.Profile.Title)
	assert.Equal(t, 7, d.Profile.Stats.Followers)
	assert.Equal(t, 24, d.Profile.Stats.Writings)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
