package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnv_Path(t *testing.T) {
	env := NewTestEnv(t)

	assert.Equal(t, filepath.Join(env.RootDir(), "a", "b.txt"), env.Path("a", "b.txt"))
	assert.Equal(t, env.RootDir(), env.Path("."))
}

func TestTestEnv_WriteReadFile(t *testing.T) {
	env := NewTestEnv(t)

	require.False(t, env.FileExists("nested/file.txt"))
	env.WriteFileString("nested/file.txt", "hello")

	assert.True(t, env.FileExists("nested/file.txt"))
	assert.Equal(t, "hello", env.ReadFileString("nested/file.txt"))
}

func TestResetViper(t *testing.T) {
	viper.Set("tmdb.timeout", "1s")

	t.Run("inner", func(t *testing.T) {
		ResetViper(t)
		assert.Empty(t, viper.GetString("tmdb.timeout"))
		viper.Set("tmdb.timeout", "2s")
	})

	assert.Empty(t, viper.GetString("tmdb.timeout"))
}
