package ku

import (
	"fmt"
	"strings"

	"github.com/mgenware/j9/v3"
)

// Command is one external process invocation. SpawnOpt.WorkingDir sets
// where it runs.
type Command struct {
	*j9.SpawnOpt
}

func (c *Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner runs a command to completion. A non-nil error means the command
// could not be started or exited non-zero.
type Runner interface {
	Run(cmd *Command) error
}

// TunnelRunner runs commands through a j9 tunnel.
type TunnelRunner struct {
	Tunnel *j9.Tunnel
}

func NewTunnelRunner(tunnel *j9.Tunnel) *TunnelRunner {
	return &TunnelRunner{Tunnel: tunnel}
}

// Run uses SpawnRaw, since Spawn exits the process on failure.
func (r *TunnelRunner) Run(cmd *Command) error {
	if err := r.Tunnel.SpawnRaw(cmd.SpawnOpt); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCommandFailed, cmd.Name, err)
	}
	return nil
}

func logVerbose(t *j9.Tunnel, msg string) {
	if t != nil {
		t.Logger().Log(j9.LogLevelVerbose, msg)
	}
}

func logWarning(t *j9.Tunnel, msg string) {
	if t != nil {
		t.Logger().Log(j9.LogLevelWarning, msg)
	}
}
