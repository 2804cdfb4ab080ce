package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/levelshuffle/internal/options"
	"github.com/retroenv/levelshuffle/internal/table"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoadLayout(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    table.Layout
		wantErr bool
	}{
		{
			name:    "all keys",
			content: "offset = 0x1000\nrows = 2\ncolumns = 3\n",
			want:    table.Layout{Offset: 0x1000, Rows: 2, Columns: 3},
		},
		{
			name:    "missing keys keep defaults",
			content: "offset = 4096\n",
			want:    table.Layout{Offset: 4096, Rows: table.DefaultRows, Columns: table.DefaultColumns},
		},
		{
			name:    "invalid number",
			content: "rows = many\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileName := filepath.Join(t.TempDir(), "layout.ini")
			assert.NoError(t, os.WriteFile(fileName, []byte(tt.content), 0o600))

			layout, err := LoadLayout(fileName)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, layout)
		})
	}
}

func TestLoadLayoutDefault(t *testing.T) {
	layout, err := LoadLayout("")
	assert.NoError(t, err)
	assert.Equal(t, table.DefaultLayout(), layout)

	_, err = LoadLayout(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	lookup := func(vars map[string]string) func(string) (string, bool) {
		return func(name string) (string, bool) {
			value, ok := vars[name]
			return value, ok
		}
	}

	t.Run("built in defaults", func(t *testing.T) {
		var opts options.Program
		assert.NoError(t, applyDefaults(&opts, lookup(nil)))
		assert.Equal(t, options.DefaultInput, opts.Input)
		assert.Equal(t, options.DefaultOutput, opts.Output)
		assert.True(t, opts.Seed == nil)
	})

	t.Run("environment", func(t *testing.T) {
		vars := map[string]string{EnvInput: "rom.gba", EnvSeed: "0x10"}

		var opts options.Program
		assert.NoError(t, applyDefaults(&opts, lookup(vars)))
		assert.Equal(t, "rom.gba", opts.Input)
		assert.True(t, opts.Seed != nil)
		assert.Equal(t, int64(16), *opts.Seed)
	})

	t.Run("command line wins", func(t *testing.T) {
		vars := map[string]string{EnvInput: "rom.gba", EnvSeed: "5"}

		seed := int64(7)
		opts := options.Program{
			Parameters: options.Parameters{Input: "other.gba", Output: "out.gba"},
			Flags:      options.Flags{Seed: &seed},
		}
		assert.NoError(t, applyDefaults(&opts, lookup(vars)))
		assert.Equal(t, "other.gba", opts.Input)
		assert.Equal(t, "out.gba", opts.Output)
		assert.Equal(t, int64(7), *opts.Seed)
	})

	t.Run("invalid seed", func(t *testing.T) {
		vars := map[string]string{EnvSeed: "abc"}

		var opts options.Program
		assert.Error(t, applyDefaults(&opts, lookup(vars)))
	})
}

func TestApplyDefaultsEnvironment(t *testing.T) {
	opts := options.Program{
		Parameters: options.Parameters{Input: "rom.gba", Output: "out.gba"},
	}
	seed := int64(3)
	opts.Seed = &seed

	assert.NoError(t, ApplyDefaults(&opts))
	assert.Equal(t, "rom.gba", opts.Input)
	assert.Equal(t, int64(3), *opts.Seed)
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}
