package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur sql.DBStats
		wantLog   bool
		wantLevel string
	}{
		{
			name:    "no new waits",
			prev:    sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:     sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			wantLog: false,
		},
		{
			name:      "short waits are debug",
			prev:      sql.DBStats{WaitCount: 1},
			cur:       sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			wantLog:   true,
			wantLevel: "DEBUG",
		},
		{
			name:      "long waits are warnings",
			prev:      sql.DBStats{WaitCount: 1},
			cur:       sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond},
			wantLog:   true,
			wantLevel: "WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			monitor := &poolMonitor{logger: logger, threshold: dbPoolWarnDurationThreshold}

			logged := monitor.observe(context.Background(), tt.prev, tt.cur)
			assert.Equal(t, tt.wantLog, logged)
			if tt.wantLog {
				assert.Contains(t, buf.String(), "level="+tt.wantLevel)
				assert.Contains(t, buf.String(), "wait_count_delta=")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
