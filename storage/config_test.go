package storage_test

import (
	"testing"

	"github.com/nicolagi/guestbook/storage"
	"github.com/stretchr/testify/assert"
)

func TestConfigResolve(t *testing.T) {
	testCases := []struct {
		name       string
		config     storage.Config
		wantTarget storage.Target
		wantOK     bool
	}{
		{
			name:       "explicit host, port and password",
			config:     storage.Config{Host: "10.0.0.7", Port: "6380", Password: "hunter2"},
			wantTarget: storage.Target{Host: "10.0.0.7", Port: "6380", Password: "hunter2"},
			wantOK:     true,
		},
		{
			name:       "explicit triple wins over the service-link variable",
			config:     storage.Config{Host: "10.0.0.7", Port: "6380", Password: "hunter2", MasterServicePort: "6379"},
			wantTarget: storage.Target{Host: "10.0.0.7", Port: "6380", Password: "hunter2"},
			wantOK:     true,
		},
		{
			name:       "service-link variable alone selects the default target",
			config:     storage.Config{MasterServicePort: "6379"},
			wantTarget: storage.Target{Host: "redis-master", Port: "6379"},
			wantOK:     true,
		},
		{
			name:   "partial triple is not a target",
			config: storage.Config{Host: "10.0.0.7", Port: "6380"},
			wantOK: false,
		},
		{
			name:   "password alone is not a target",
			config: storage.Config{Password: "hunter2"},
			wantOK: false,
		},
		{
			name:   "empty configuration selects fallback mode",
			config: storage.Config{},
			wantOK: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target, ok := tc.config.Resolve()
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantTarget, target)
			}
		})
	}
}

func TestTargetAddr(t *testing.T) {
	assert.Equal(t, "redis-master:6379", storage.Target{Host: "redis-master", Port: "6379"}.Addr())
	assert.Equal(t, "[::1]:6379", storage.Target{Host: "::1", Port: "6379"}.Addr())
}
