package ku

import (
	"fmt"

	"github.com/mgenware/j9/v3"
	"github.com/mgenware/ku-aar/io2"
)

type GradleTask string

const (
	GradleTaskClean   GradleTask = "clean"
	GradleTaskBuild   GradleTask = "build"
	GradleTaskPublish GradleTask = "publish"
)

// Run order. Each task depends on the one before it.
var GradleTasks = []GradleTask{
	GradleTaskClean,
	GradleTaskBuild,
	GradleTaskPublish,
}

// GradleContext assembles the AAR from the staged jnilibs tree.
type GradleContext struct {
	Tunnel  *j9.Tunnel
	Runner  Runner
	CLIArgs *CLIArgs
	Env     []string

	// ${BuildDir}/intermediates/aar/jnilibs
	JNILibsDir string
	// ${BuildDir}/intermediates/aar
	AARDir string
	// ${BuildDir}/aar_out
	PublishDir string
}

func NewGradleContext(tunnel *j9.Tunnel, runner Runner, cliArgs *CLIArgs, env []string) *GradleContext {
	return &GradleContext{
		Tunnel:     tunnel,
		Runner:     runner,
		CLIArgs:    cliArgs,
		Env:        env,
		JNILibsDir: JNILibsDir(cliArgs.BuildDir),
		AARDir:     AARDir(cliArgs.BuildDir),
		PublishDir: AARPublishDir(cliArgs.BuildDir),
	}
}

// CommonArgs is the arg prefix shared by all tasks.
func (g *GradleContext) CommonArgs() []string {
	return []string{
		"--no-daemon",
		"-b=" + gradleBuildFile,
		"-c=" + gradleSettingsFile,
		"-DjniLibsDir=" + g.JNILibsDir,
		"-DbuildDir=" + g.AARDir,
		"-DpublishDir=" + g.PublishDir,
	}
}

func (g *GradleContext) RunTask(task GradleTask) error {
	args := append(g.CommonArgs(), string(task))
	cmd := &Command{
		SpawnOpt: &j9.SpawnOpt{
			Name:       g.CLIArgs.Gradle,
			Args:       args,
			Env:        g.Env,
			WorkingDir: JavaRootDir(g.CLIArgs.RepoDir),
		},
	}
	logWarning(g.Tunnel, "[Gradle] "+string(task))
	logVerbose(g.Tunnel, "[Gradle] "+cmd.String())
	if err := g.Runner.Run(cmd); err != nil {
		return fmt.Errorf("gradle %s: %w", task, err)
	}
	return nil
}

// Assemble runs clean, build and publish, stopping at the first failure.
// `onTask` is called after each task succeeds.
func (g *GradleContext) Assemble(onTask func(GradleTask)) error {
	if err := io2.Mkdirp(g.PublishDir); err != nil {
		return err
	}
	for _, task := range GradleTasks {
		if err := g.RunTask(task); err != nil {
			return err
		}
		if onTask != nil {
			onTask(task)
		}
	}
	return nil
}
