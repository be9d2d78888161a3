package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bonarz/qoderbridge/internal/config"
	"github.com/bonarz/qoderbridge/internal/taskstore"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List recorded workflow runs",
	RunE:  runTasks,
}

var tasksShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show one recorded workflow run in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksShow,
}

func init() {
	tasksCmd.AddCommand(tasksShowCmd)
}

func openStore() (*taskstore.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return taskstore.NewStore(cfg.TasksDir), nil
}

func runTasks(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	sums, err := store.List()
	if err != nil {
		return err
	}
	if len(sums) == 0 {
		fmt.Println("No recorded tasks")
		return nil
	}

	for _, s := range sums {
		fmt.Printf("%-16s  %-9s  %s  %s\n",
			s.TaskID, s.Status,
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(s.Prompt, 50))
	}
	return nil
}

func runTasksShow(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	tc, err := store.Load(args[0])
	if err != nil {
		return err
	}

	labelStyle.Print("Task:    ")
	fmt.Println(tc.TaskID)
	labelStyle.Print("Status:  ")
	fmt.Println(tc.Status)
	labelStyle.Print("Created: ")
	fmt.Println(tc.CreatedAt.Local().Format(time.RFC1123))
	if tc.RepoHeadBefore != "" {
		labelStyle.Print("HEAD:    ")
		fmt.Printf("%s -> %s\n", tc.RepoHeadBefore, tc.RepoHeadAfter)
	}
	labelStyle.Print("Prompt:  ")
	fmt.Println(tc.Prompt)

	section := func(title string) {
		fmt.Println()
		labelStyle.Println("--- " + title + " ---")
	}
	section("Plan")
	fmt.Println(tc.Plan)
	section("Execution result")
	fmt.Println(tc.ExecutionResult)
	return nil
}
