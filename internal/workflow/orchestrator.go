// Package workflow sequences the plan → confirm → execute → record flow
// for a free-text programming request.
package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bonarz/qoderbridge/internal/debug"
	"github.com/bonarz/qoderbridge/internal/qoder"
	"github.com/bonarz/qoderbridge/internal/taskstore"
)

// planningPromptTemplate is the meta-prompt sent to the tool to turn a raw
// request into a structured plan.
const planningPromptTemplate = `Create a detailed implementation plan for the following programming request:

Request: %s

Provide:
1. Task breakdown - the concrete steps the work decomposes into
2. Expected outputs - the files or features that should exist afterwards
3. Potential challenges - technical difficulties that may come up
4. Execution order - a sensible order for the steps

Present the plan in a structured way.`

// Config holds the orchestrator's explicit configuration.
type Config struct {
	// ProjectDir is the directory the execute phase runs against.
	ProjectDir string
}

// Invoker is the facade seam the orchestrator calls through.
// *qoder.Facade satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, mode qoder.Mode, args []string, extraArgs ...string) qoder.Result
}

// Outcome is the final state of one orchestrated run.
type Outcome struct {
	// Cancelled is true when confirmation was declined; nothing is
	// persisted in that case and Task is nil.
	Cancelled bool
	Plan      string
	Result    qoder.Result
	Task      *taskstore.TaskContext
}

// Orchestrator drives one request through planning, confirmation,
// execution and recording. The sequence never returns to an earlier
// phase; a recorded run is terminal whether execution succeeded or not.
type Orchestrator struct {
	facade    Invoker
	confirmer Confirmer
	store     *taskstore.Store
	cfg       Config

	now func() time.Time // for testing, nil uses time.Now
}

// New returns an Orchestrator wired to the given facade, confirmer and store.
func New(facade Invoker, confirmer Confirmer, store *taskstore.Store, cfg Config) *Orchestrator {
	return &Orchestrator{facade: facade, confirmer: confirmer, store: store, cfg: cfg}
}

// Plan asks the tool for a structured plan for the request.
// A facade failure is a real error here, not a plan: a workflow whose
// planning phase failed must not continue to execution.
func (o *Orchestrator) Plan(ctx context.Context, request string) (string, error) {
	prompt := fmt.Sprintf(planningPromptTemplate, request)
	res := o.facade.Invoke(ctx, qoder.ModePrompt, []string{prompt})
	if !res.Success {
		return "", fmt.Errorf("create plan (%s): %s", res.Kind, strings.TrimSpace(res.Error))
	}
	return res.Output, nil
}

// Execute runs the original request against the configured project directory.
func (o *Orchestrator) Execute(ctx context.Context, request string) qoder.Result {
	return o.facade.Invoke(ctx, qoder.ModeProject, []string{o.cfg.ProjectDir, request})
}

// Run drives the full sequence for one request.
// Declined confirmation short-circuits to a cancelled Outcome with no
// persistence. Otherwise a TaskContext is recorded regardless of whether
// execution succeeded; its status comes from the execution result's success
// flag, never from matching substrings in the output text.
func (o *Orchestrator) Run(ctx context.Context, request string) (*Outcome, error) {
	plan, err := o.Plan(ctx, request)
	if err != nil {
		return nil, err
	}

	approved, err := o.confirmer.Confirm(plan)
	if err != nil {
		return nil, fmt.Errorf("confirm plan: %w", err)
	}
	if !approved {
		return &Outcome{Cancelled: true, Plan: plan}, nil
	}

	headBefore := headRef(o.cfg.ProjectDir)
	res := o.Execute(ctx, request)
	headAfter := headRef(o.cfg.ProjectDir)

	status := taskstore.StatusCompleted
	if !res.Success {
		status = taskstore.StatusFailed
	}

	now := o.now
	if now == nil {
		now = time.Now
	}

	tc := taskstore.TaskContext{
		TaskID:          taskstore.NewTaskID(),
		Prompt:          request,
		Plan:            plan,
		ExecutionResult: resultText(res),
		Status:          status,
		CreatedAt:       now().UTC(),
		RepoHeadBefore:  headBefore,
		RepoHeadAfter:   headAfter,
	}
	if err := o.store.Save(tc); err != nil {
		return nil, fmt.Errorf("record run: %w", err)
	}
	debug.Logf("recorded run %s with status %s", tc.TaskID, tc.Status)

	return &Outcome{Plan: plan, Result: res, Task: &tc}, nil
}

// resultText renders the execution result as the text persisted and shown
// to the user: the output on success, the error followed by any partial
// output on failure.
func resultText(res qoder.Result) string {
	if res.Success {
		return res.Output
	}
	text := "error while executing task: " + strings.TrimSpace(res.Error)
	if res.Output != "" {
		text += "\n" + res.Output
	}
	return text
}
