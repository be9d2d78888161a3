package workflow

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer is the approval gate between planning and execution.
// Implementations may be automated policies or a real human in the loop;
// the orchestrator's sequencing does not depend on which.
type Confirmer interface {
	Confirm(plan string) (bool, error)
}

// AutoApprove approves every plan. Used in non-interactive runs.
type AutoApprove struct{}

func (AutoApprove) Confirm(string) (bool, error) { return true, nil }

// PromptConfirmer asks for approval on Out and reads a yes/no answer
// from In. Anything other than "y"/"yes" declines.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c PromptConfirmer) Confirm(string) (bool, error) {
	fmt.Fprint(c.Out, "Proceed with this plan? [y/N] ")

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
