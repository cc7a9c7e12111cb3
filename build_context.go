package ku

import (
	"fmt"
	"path/filepath"

	"github.com/mgenware/j9/v3"
	"github.com/mgenware/ku-aar/io2"
)

// BuildContext holds everything needed to build and stage a single ABI.
type BuildContext struct {
	Tunnel  *j9.Tunnel
	Runner  Runner
	CLIArgs *CLIArgs
	Config  *BuildConfig
	// Process env with the SDK/NDK overrides applied.
	Env []string

	ABI ABIEnum

	// ABIBuildDir = ${BuildDir}/intermediates/${ABI}
	ABIBuildDir string
	// FlavorOutDir = ${ABIBuildDir}/${BuildFlavor}
	// Where the build driver leaves the shared libs.
	FlavorOutDir string
	// JNILibsABIDir = ${BuildDir}/intermediates/aar/jnilibs/${ABI}
	JNILibsABIDir string
}

type BuildContextInitOptions struct {
	Tunnel  *j9.Tunnel
	Runner  Runner
	CLIArgs *CLIArgs
	Config  *BuildConfig
	Env     []string
	ABI     ABIEnum
}

func NewBuildContext(opt *BuildContextInitOptions) *BuildContext {
	if opt == nil {
		panic("opt is nil")
	}
	buildDir := opt.CLIArgs.BuildDir
	abiBuildDir := ABIBuildDir(buildDir, opt.ABI)
	return &BuildContext{
		Tunnel:  opt.Tunnel,
		Runner:  opt.Runner,
		CLIArgs: opt.CLIArgs,
		Config:  opt.Config,
		Env:     opt.Env,
		ABI:     opt.ABI,

		ABIBuildDir:   abiBuildDir,
		FlavorOutDir:  filepath.Join(abiBuildDir, opt.Config.BuildFlavor),
		JNILibsABIDir: JNILibsABIDir(buildDir, opt.ABI),
	}
}

// BuildDriverArgs returns the args passed to the python interpreter.
func (ctx *BuildContext) BuildDriverArgs() []string {
	args := []string{BuildDriverScript(ctx.CLIArgs.RepoDir)}
	args = append(args, ctx.Config.BuildParams...)
	args = append(args,
		"--android_abi="+string(ctx.ABI),
		"--config="+ctx.Config.BuildFlavor,
		"--build_dir="+ctx.ABIBuildDir,
	)
	if ctx.CLIArgs.IncludeOpsByConfig != "" {
		args = append(args, "--include_ops_by_config="+ctx.CLIArgs.IncludeOpsByConfig)
	}
	return args
}

func (ctx *BuildContext) RunBuildDriver() error {
	cmd := &Command{
		SpawnOpt: &j9.SpawnOpt{
			Name:       ctx.CLIArgs.Python,
			Args:       ctx.BuildDriverArgs(),
			Env:        ctx.Env,
			WorkingDir: ctx.CLIArgs.RepoDir,
		},
	}
	logVerbose(ctx.Tunnel, "[Build] "+cmd.String())
	if err := ctx.Runner.Run(cmd); err != nil {
		return fmt.Errorf("building ABI %s: %w", ctx.ABI, err)
	}
	return nil
}

// LinkJNILibs links each expected shared lib into JNILibsABIDir.
// Link targets are not checked; a missing lib leaves a dangling link
// for Gradle to report.
func (ctx *BuildContext) LinkJNILibs() error {
	if err := io2.Mkdirp(ctx.JNILibsABIDir); err != nil {
		return err
	}
	for _, libFileName := range JNILibFileNames {
		src := filepath.Join(ctx.FlavorOutDir, libFileName)
		dst := filepath.Join(ctx.JNILibsABIDir, libFileName)
		logVerbose(ctx.Tunnel, "[Link] "+dst+" -> "+src)
		if err := io2.ReplaceSymlink(src, dst); err != nil {
			return fmt.Errorf("linking %s: %w", libFileName, err)
		}
	}
	return nil
}

// Build runs the build driver for this ABI and stages its output.
func (ctx *BuildContext) Build() error {
	if err := ctx.RunBuildDriver(); err != nil {
		return err
	}
	return ctx.LinkJNILibs()
}
