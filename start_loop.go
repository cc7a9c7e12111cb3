package ku

import (
	"os"

	"github.com/mgenware/j9/v3"
)

// Phase is a step of the run state machine:
// start -> config_loaded -> building* -> staged -> cleaned -> built -> published -> done.
// Any error moves to failed.
type Phase string

const (
	PhaseStart        Phase = "start"
	PhaseConfigLoaded Phase = "config_loaded"
	PhaseBuilding     Phase = "building"
	PhaseStaged       Phase = "staged"
	PhaseCleaned      Phase = "cleaned"
	PhaseBuilt        Phase = "built"
	PhasePublished    Phase = "published"
	PhaseDone         Phase = "done"
	PhaseFailed       Phase = "failed"
)

var gradleTaskPhases = map[GradleTask]Phase{
	GradleTaskClean:   PhaseCleaned,
	GradleTaskBuild:   PhaseBuilt,
	GradleTaskPublish: PhasePublished,
}

type StartLoopOptions struct {
	Tunnel *j9.Tunnel
	// Defaults to a TunnelRunner over Tunnel.
	Runner Runner
	// Base environment for subprocesses. Defaults to os.Environ().
	Environ []string

	// Called after each ABI is built and staged.
	ContextFn func(*BuildContext)
	// Called on every phase change.
	PhaseFn func(Phase)
}

// StartLoop loads the build config, builds every ABI in order and
// assembles the AAR. It stops at the first error.
func StartLoop(cliArgs *CLIArgs, opt *StartLoopOptions) error {
	if cliArgs == nil {
		panic("StartLoop: cliArgs is nil")
	}
	if opt == nil {
		opt = &StartLoopOptions{}
	}
	runner := opt.Runner
	if runner == nil {
		if opt.Tunnel == nil {
			panic("StartLoop: either Runner or Tunnel is required")
		}
		runner = NewTunnelRunner(opt.Tunnel)
	}
	environ := opt.Environ
	if environ == nil {
		environ = os.Environ()
	}
	setPhase := func(p Phase) {
		logVerbose(opt.Tunnel, "[Phase] "+string(p))
		if opt.PhaseFn != nil {
			opt.PhaseFn(p)
		}
	}
	fail := func(err error) error {
		setPhase(PhaseFailed)
		return err
	}

	setPhase(PhaseStart)
	config, err := LoadBuildConfig(cliArgs.ConfigFile, cliArgs.AndroidSDKPath, cliArgs.AndroidNDKPath)
	if err != nil {
		return fail(err)
	}
	setPhase(PhaseConfigLoaded)

	env := OverlayEnv(environ, config.AndroidSDKPath, config.AndroidNDKPath)

	for _, abi := range config.BuildABIs {
		logWarning(opt.Tunnel, "Building ABI: "+string(abi)+" with flavor: "+config.BuildFlavor)
		setPhase(PhaseBuilding)

		ctx := NewBuildContext(&BuildContextInitOptions{
			Tunnel:  opt.Tunnel,
			Runner:  runner,
			CLIArgs: cliArgs,
			Config:  config,
			Env:     env,
			ABI:     abi,
		})
		if err := ctx.Build(); err != nil {
			return fail(err)
		}
		if opt.ContextFn != nil {
			opt.ContextFn(ctx)
		}
	}
	setPhase(PhaseStaged)

	gradle := NewGradleContext(opt.Tunnel, runner, cliArgs, env)
	err = gradle.Assemble(func(task GradleTask) {
		setPhase(gradleTaskPhases[task])
	})
	if err != nil {
		return fail(err)
	}

	logWarning(opt.Tunnel, "AAR published to "+gradle.PublishDir)
	setPhase(PhaseDone)
	return nil
}
