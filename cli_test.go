package ku

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func envFunc(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

func TestParseCLIArgsEnvDefaults(t *testing.T) {
	repoDir := t.TempDir()
	getenv := envFunc(map[string]string{
		"ANDROID_HOME":     "/env/sdk",
		"ANDROID_NDK_HOME": "/env/ndk",
	})

	args, err := ParseCLIArgs([]string{"-repo_dir", repoDir, "config.json"}, getenv, io.Discard)
	require.NoError(t, err)

	require.Equal(t, "config.json", args.ConfigFile)
	require.Equal(t, "/env/sdk", args.AndroidSDKPath)
	require.Equal(t, "/env/ndk", args.AndroidNDKPath)
	require.Equal(t, repoDir, args.RepoDir)
	require.Equal(t, filepath.Join(repoDir, "build_android_aar"), args.BuildDir)
	require.Equal(t, "", args.IncludeOpsByConfig)
	require.Equal(t, "python3", args.Python)
	require.Equal(t, "gradle", args.Gradle)
}

func TestParseCLIArgsFlagsOverrideEnv(t *testing.T) {
	getenv := envFunc(map[string]string{
		"ANDROID_HOME":     "/env/sdk",
		"ANDROID_NDK_HOME": "/env/ndk",
	})

	args, err := ParseCLIArgs([]string{
		"--android_sdk_path=/flag/sdk",
		"--android_ndk_path=/flag/ndk",
		"--include_ops_by_config=/ops.config",
		"--build_dir=out",
		"config.json",
	}, getenv, io.Discard)
	require.NoError(t, err)

	require.Equal(t, "/flag/sdk", args.AndroidSDKPath)
	require.Equal(t, "/flag/ndk", args.AndroidNDKPath)
	require.Equal(t, "/ops.config", args.IncludeOpsByConfig)
	require.True(t, filepath.IsAbs(args.BuildDir))
	require.Equal(t, "out", filepath.Base(args.BuildDir))
}

func TestParseCLIArgsRequiresSDKAndNDK(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"both missing", []string{"config.json"}, nil},
		{"ndk missing", []string{"config.json"}, map[string]string{"ANDROID_HOME": "/sdk"}},
		{"sdk missing", []string{"--android_ndk_path=/ndk", "config.json"}, nil},
		{"empty flag", []string{"--android_sdk_path=", "config.json"}, map[string]string{"ANDROID_HOME": "/sdk", "ANDROID_NDK_HOME": "/ndk"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := ParseCLIArgs(tt.args, envFunc(tt.env), io.Discard)
			require.ErrorIs(t, err, ErrInvalidArgs)
			require.Nil(t, args)
		})
	}
}

func TestParseCLIArgsPositional(t *testing.T) {
	getenv := envFunc(map[string]string{
		"ANDROID_HOME":     "/sdk",
		"ANDROID_NDK_HOME": "/ndk",
	})

	_, err := ParseCLIArgs(nil, getenv, io.Discard)
	require.ErrorIs(t, err, ErrInvalidArgs)

	_, err = ParseCLIArgs([]string{"a.json", "b.json"}, getenv, io.Discard)
	require.ErrorIs(t, err, ErrInvalidArgs)

	_, err = ParseCLIArgs([]string{"--no_such_flag", "a.json"}, getenv, io.Discard)
	require.ErrorIs(t, err, ErrInvalidArgs)
}

func TestParseCLIArgsRepoDirMustExist(t *testing.T) {
	getenv := envFunc(map[string]string{
		"ANDROID_HOME":     "/sdk",
		"ANDROID_NDK_HOME": "/ndk",
	})

	args, err := ParseCLIArgs([]string{"-repo_dir", filepath.Join(t.TempDir(), "missing"), "config.json"}, getenv, io.Discard)
	require.ErrorIs(t, err, ErrInvalidArgs)
	require.Nil(t, args)
}
