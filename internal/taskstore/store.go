// Package taskstore persists one TaskContext record per orchestrated
// workflow run as a JSON file under a store directory.
package taskstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Status is the terminal outcome of a recorded run.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// TaskContext is the persisted record of one workflow run.
// It is written once and never mutated afterwards.
type TaskContext struct {
	TaskID          string    `json:"taskId"`
	Prompt          string    `json:"prompt"`
	Plan            string    `json:"plan"`
	ExecutionResult string    `json:"executionResult"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`

	// Git HEAD of the project directory before and after execution.
	// Empty when the project directory is not a git repository.
	RepoHeadBefore string `json:"repoHeadBefore,omitempty"`
	RepoHeadAfter  string `json:"repoHeadAfter,omitempty"`
}

// Summary is a lightweight view of a stored record, used for listings.
type Summary struct {
	TaskID    string
	Status    Status
	Prompt    string
	CreatedAt time.Time
}

// NewTaskID returns a fresh task identifier.
func NewTaskID() string {
	return "task_" + strings.Split(uuid.NewString(), "-")[0]
}

// Store reads and writes TaskContext files in a single directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is created lazily
// on first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(taskID string) string {
	return filepath.Join(s.dir, taskID+".json")
}

// Save writes one TaskContext to <dir>/<taskId>.json.
func (s *Store) Save(tc TaskContext) error {
	if tc.TaskID == "" {
		return fmt.Errorf("save task context: empty task id")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create task store dir: %w", err)
	}

	data, err := json.MarshalIndent(tc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task context: %w", err)
	}

	if err := os.WriteFile(s.path(tc.TaskID), data, 0o600); err != nil {
		return fmt.Errorf("write task context: %w", err)
	}
	return nil
}

// Load reads the TaskContext with the given id.
func (s *Store) Load(taskID string) (*TaskContext, error) {
	data, err := os.ReadFile(s.path(taskID))
	if err != nil {
		return nil, fmt.Errorf("read task context %s: %w", taskID, err)
	}

	var tc TaskContext
	if err := json.Unmarshal(data, &tc); err != nil {
		return nil, fmt.Errorf("parse task context %s: %w", taskID, err)
	}
	return &tc, nil
}

// List returns summaries of all stored records, newest first.
// Only the listed fields are extracted; full records stay on disk.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read task store dir: %w", err)
	}

	var out []Summary
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		fields := gjson.GetManyBytes(data, "taskId", "status", "prompt", "createdAt")
		if fields[0].Str == "" {
			continue
		}
		sum := Summary{
			TaskID: fields[0].Str,
			Status: Status(fields[1].Str),
			Prompt: fields[2].Str,
		}
		if ts, err := time.Parse(time.RFC3339Nano, fields[3].Str); err == nil {
			sum.CreatedAt = ts
		}
		out = append(out, sum)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
