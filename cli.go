package ku

import (
	"flag"
	"fmt"
	"io"

	"github.com/mgenware/j9/v3"
	"github.com/mgenware/ku-aar/io2"
)

type CLIArgs struct {
	ConfigFile string

	AndroidSDKPath string
	AndroidNDKPath string
	// Absolute.
	BuildDir string
	// Optional. Passed to the build driver as --include_ops_by_config.
	IncludeOpsByConfig string

	// Absolute.
	RepoDir string
	Python  string
	Gradle  string
}

// ParseCLIArgs parses `args` (without the program name). `getenv` supplies
// defaults for the SDK and NDK paths.
func ParseCLIArgs(args []string, getenv func(string) string, output io.Writer) (*CLIArgs, error) {
	fs := flag.NewFlagSet("ku-aar", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: ku-aar [options] <build_config_file>")
		fmt.Fprintln(output, "Create an Android Archive (AAR) for one or more Android ABIs.")
		fs.PrintDefaults()
	}

	sdkPtr := fs.String("android_sdk_path", getenv(EnvAndroidHome), "Path to the Android SDK.")
	ndkPtr := fs.String("android_ndk_path", getenv(EnvAndroidNDKHome), "Path to the Android NDK.")
	buildDirPtr := fs.String("build_dir", "", "Root directory for build output. Defaults to <repo_dir>/build_android_aar.")
	includeOpsPtr := fs.String("include_ops_by_config", "", "Include ops from config file.")
	repoDirPtr := fs.String("repo_dir", ".", "Root of the source repo.")
	pythonPtr := fs.String("python", DefaultPython, "Python interpreter used to run the build driver.")
	gradlePtr := fs.String("gradle", DefaultGradle, "Gradle executable.")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("%w: expected exactly one build config file, got %d arguments", ErrInvalidArgs, fs.NArg())
	}

	// Android SDK and NDK paths are required.
	if *sdkPtr == "" {
		return nil, fmt.Errorf("%w: android_sdk_path is required", ErrInvalidArgs)
	}
	if *ndkPtr == "" {
		return nil, fmt.Errorf("%w: android_ndk_path is required", ErrInvalidArgs)
	}

	repoDir, err := io2.ResolvePath(*repoDirPtr)
	if err != nil {
		return nil, fmt.Errorf("%w: repo_dir: %v", ErrInvalidArgs, err)
	}
	if !io2.DirectoryExists(repoDir) {
		return nil, fmt.Errorf("%w: repo_dir %s is not a directory", ErrInvalidArgs, repoDir)
	}
	buildDir := *buildDirPtr
	if buildDir == "" {
		buildDir = DefaultBuildDir(repoDir)
	}
	// Subprocesses run from other directories, so nothing relative is
	// handed to them.
	buildDir, err = io2.ResolvePath(buildDir)
	if err != nil {
		return nil, fmt.Errorf("%w: build_dir: %v", ErrInvalidArgs, err)
	}

	return &CLIArgs{
		ConfigFile:         fs.Arg(0),
		AndroidSDKPath:     *sdkPtr,
		AndroidNDKPath:     *ndkPtr,
		BuildDir:           buildDir,
		IncludeOpsByConfig: *includeOpsPtr,
		RepoDir:            repoDir,
		Python:             *pythonPtr,
		Gradle:             *gradlePtr,
	}, nil
}

func CreateDefaultTunnel() *j9.Tunnel {
	return j9.NewTunnel(j9.NewLocalNode(), j9.NewConsoleLogger())
}
