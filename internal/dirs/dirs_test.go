package dirs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		envVars  map[string]string
		expected string
	}{
		{
			name:     "default uses ~/.config/qoderbridge",
			envVars:  map[string]string{"XDG_CONFIG_HOME": ""},
			expected: filepath.Join(home, ".config", "qoderbridge"),
		},
		{
			name:     "respects XDG_CONFIG_HOME",
			envVars:  map[string]string{"XDG_CONFIG_HOME": "/custom/config"},
			expected: filepath.Join("/custom/config", "qoderbridge"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.expected, ConfigDir())
		})
	}
}

func TestStateDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		envVars  map[string]string
		expected string
	}{
		{
			name:     "default uses ~/.local/state/qoderbridge",
			envVars:  map[string]string{"QODERBRIDGE_STATE_DIR": "", "XDG_STATE_HOME": ""},
			expected: filepath.Join(home, ".local", "state", "qoderbridge"),
		},
		{
			name:     "respects XDG_STATE_HOME",
			envVars:  map[string]string{"QODERBRIDGE_STATE_DIR": "", "XDG_STATE_HOME": "/custom/state"},
			expected: filepath.Join("/custom/state", "qoderbridge"),
		},
		{
			name:     "QODERBRIDGE_STATE_DIR wins",
			envVars:  map[string]string{"QODERBRIDGE_STATE_DIR": "/override", "XDG_STATE_HOME": "/custom/state"},
			expected: "/override",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.expected, StateDir())
		})
	}
}

func TestTasksDir(t *testing.T) {
	t.Setenv("QODERBRIDGE_STATE_DIR", "/state")
	assert.Equal(t, filepath.Join("/state", "tasks"), TasksDir())
}

func TestWorkspaceDir(t *testing.T) {
	t.Setenv("QODERBRIDGE_STATE_DIR", "/state")
	assert.Equal(t, filepath.Join("/state", "workspace"), WorkspaceDir())
}
