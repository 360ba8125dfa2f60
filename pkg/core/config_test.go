package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/cudatool/pkg/build"
	"github.com/arc-language/cudatool/pkg/cuda"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("CUDATOOL_TOOLKIT_PATH", "")

	testCases := []struct {
		description string
		name        string
		contents    string
		expected    *Config
		err         bool
	}{
		{
			description: "yaml",
			name:        "config.yaml",
			contents: `toolkit_path: /opt/cuda-12
nvcc: nvcc
nvcc_flags: -arch=sm_80
debug: true
`,
			expected: &Config{ToolkitPath: "/opt/cuda-12", NVCC: "nvcc", NVCCFlags: "-arch=sm_80", Debug: true},
		},
		{
			description: "toml",
			name:        "config.toml",
			contents: `toolkit_path = "/opt/cuda-12"
static_flags = "-O3"
shared_flags = "-Xcompiler -fPIC"
`,
			expected: &Config{ToolkitPath: "/opt/cuda-12", StaticFlags: "-O3", SharedFlags: "-Xcompiler -fPIC"},
		},
		{
			description: "invalid yaml",
			name:        "bad.yaml",
			contents:    "toolkit_path: [",
			err:         true,
		},
		{
			description: "invalid toml",
			name:        "bad.toml",
			contents:    "toolkit_path = ",
			err:         true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.name)
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0644))

			cfg, err := LoadConfig(path)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("CUDATOOL_TOOLKIT_PATH", "/env/cuda")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, &Config{ToolkitPath: "/env/cuda"}, cfg)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Setenv("CUDATOOL_TOOLKIT_PATH", "")
	cfg := &Config{ToolkitPath: "/opt/cuda", NVCCFlags: "-G"}

	for _, name := range []string{"config.yaml", "config.toml"} {
		path := filepath.Join(t.TempDir(), "nested", name)
		require.NoError(t, SaveConfig(cfg, path))

		loaded, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, cfg, loaded)
	}
}

func TestApply(t *testing.T) {
	fs := afero.NewMemMapFs()
	env := build.NewEnvironment(&build.Config{Fs: fs, ENV: map[string]string{"PATH": ""}})

	cfg := &Config{
		ToolkitPath: "/opt/cuda",
		NVCC:        "nvcc-12",
		NVCCFlags:   "-arch=sm_90",
		StaticFlags: "-O3",
	}
	cfg.Apply(env)
	require.NoError(t, cuda.Generate(env, &cuda.Options{Locations: &cuda.Locations{Home: "/home/dev"}}))
	cfg.ApplyFlags(env)

	require.Equal(t, "/opt/cuda", env.Get(cuda.ToolkitPathKey))
	require.Equal(t, "nvcc-12", env.Get(cuda.CompilerKey))
	require.Equal(t, "-arch=sm_90", env.Get(cuda.FlagsKey))
	require.Equal(t, "-O3", env.Get(cuda.StaticFlagsKey))
	require.Equal(t, "", env.Get(cuda.SharedFlagsKey))
}

func TestApplyWithoutOverride(t *testing.T) {
	env := build.NewEnvironment(&build.Config{Fs: afero.NewMemMapFs()})

	(&Config{}).Apply(env)
	require.False(t, env.Has(cuda.ToolkitPathKey))
	require.False(t, env.Has(cuda.CompilerKey))
}
