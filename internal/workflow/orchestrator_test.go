package workflow

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonarz/qoderbridge/internal/qoder"
	"github.com/bonarz/qoderbridge/internal/taskstore"
)

// stubInvoker returns canned results per mode and records invocations.
type stubInvoker struct {
	planRes qoder.Result
	execRes qoder.Result

	calls []qoder.Mode
	args  [][]string
}

func (s *stubInvoker) Invoke(_ context.Context, mode qoder.Mode, args []string, _ ...string) qoder.Result {
	s.calls = append(s.calls, mode)
	s.args = append(s.args, args)
	if mode == qoder.ModePrompt {
		return s.planRes
	}
	return s.execRes
}

func okResult(output string) qoder.Result {
	return qoder.Result{Success: true, Output: output, ExitCode: 0}
}

func newTestOrchestrator(t *testing.T, inv Invoker, c Confirmer) (*Orchestrator, *taskstore.Store) {
	t.Helper()
	store := taskstore.NewStore(t.TempDir())
	o := New(inv, c, store, Config{ProjectDir: t.TempDir()})
	return o, store
}

func TestRun_Completed(t *testing.T) {
	inv := &stubInvoker{
		planRes: okResult("1. do the thing\n2. test it\n"),
		execRes: okResult("done\n"),
	}
	o, store := newTestOrchestrator(t, inv, AutoApprove{})

	out, err := o.Run(context.Background(), "create a calculator")
	require.NoError(t, err)

	require.NotNil(t, out.Task)
	assert.False(t, out.Cancelled)
	assert.Equal(t, taskstore.StatusCompleted, out.Task.Status)
	assert.Equal(t, "create a calculator", out.Task.Prompt)
	assert.Equal(t, "1. do the thing\n2. test it\n", out.Task.Plan)
	assert.Equal(t, "done\n", out.Task.ExecutionResult)

	// persisted and readable
	got, err := store.Load(out.Task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, *out.Task, *got)

	// plan then execute, nothing else
	require.Equal(t, []qoder.Mode{qoder.ModePrompt, qoder.ModeProject}, inv.calls)
	assert.Equal(t, o.cfg.ProjectDir, inv.args[1][0])
	assert.Equal(t, "create a calculator", inv.args[1][1])
}

func TestRun_ExecutionFailureRecordedAsFailed(t *testing.T) {
	inv := &stubInvoker{
		planRes: okResult("plan\n"),
		execRes: qoder.Result{Success: false, Output: "", Error: "boom\n", ExitCode: 1},
	}
	o, store := newTestOrchestrator(t, inv, AutoApprove{})

	out, err := o.Run(context.Background(), "break something")
	require.NoError(t, err)

	require.NotNil(t, out.Task)
	assert.Equal(t, taskstore.StatusFailed, out.Task.Status)
	assert.Contains(t, out.Task.ExecutionResult, "error while executing task")
	assert.Contains(t, out.Task.ExecutionResult, "boom")

	got, err := store.Load(out.Task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, taskstore.StatusFailed, got.Status)
}

func TestRun_PlanFailureAbortsWorkflow(t *testing.T) {
	inv := &stubInvoker{
		planRes: qoder.Result{Success: false, Error: "not logged in", ExitCode: 1, Kind: qoder.KindNotAuthenticated},
	}
	o, store := newTestOrchestrator(t, inv, AutoApprove{})

	_, err := o.Run(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")

	// execution never ran, nothing persisted
	assert.Equal(t, []qoder.Mode{qoder.ModePrompt}, inv.calls)
	sums, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, sums)
}

type declineAll struct{}

func (declineAll) Confirm(string) (bool, error) { return false, nil }

func TestRun_DeclinedConfirmationPersistsNothing(t *testing.T) {
	inv := &stubInvoker{planRes: okResult("plan\n")}
	o, store := newTestOrchestrator(t, inv, declineAll{})

	out, err := o.Run(context.Background(), "anything")
	require.NoError(t, err)

	assert.True(t, out.Cancelled)
	assert.Nil(t, out.Task)
	assert.Equal(t, "plan\n", out.Plan)

	assert.Equal(t, []qoder.Mode{qoder.ModePrompt}, inv.calls)
	sums, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, sums)
}

func TestPlan_UsesMetaPrompt(t *testing.T) {
	inv := &stubInvoker{planRes: okResult("plan\n")}
	o, _ := newTestOrchestrator(t, inv, AutoApprove{})

	_, err := o.Plan(context.Background(), "add a parser")
	require.NoError(t, err)

	require.Len(t, inv.args, 1)
	require.Len(t, inv.args[0], 1)
	prompt := inv.args[0][0]
	assert.Contains(t, prompt, "Request: add a parser")
	assert.Contains(t, prompt, "Task breakdown")
	assert.Contains(t, prompt, "Execution order")
}

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "yes word", input: "YES\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty line", input: "\n", want: false},
		{name: "garbage", input: "maybe\n", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			c := PromptConfirmer{In: strings.NewReader(tc.input), Out: &out}

			got, err := c.Confirm("plan")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "Proceed with this plan?")
		})
	}
}

func TestPromptConfirmer_EOF(t *testing.T) {
	c := PromptConfirmer{In: strings.NewReader(""), Out: &strings.Builder{}}
	_, err := c.Confirm("plan")
	assert.Error(t, err)
}

func TestHeadRef_NotARepo(t *testing.T) {
	assert.Empty(t, headRef(t.TempDir()))
}
