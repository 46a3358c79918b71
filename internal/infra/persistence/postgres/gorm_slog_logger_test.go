package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"mutuals/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newCapturingGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(logger, cfg), buf
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	quiet, _ := newCapturingGormLogger(false)
	sql, params := quiet.ParamsFilter(context.Background(), "SELECT 1 WHERE phone = $1", "+15550000001")
	assert.Equal(t, "SELECT 1 WHERE phone = $1", sql)
	assert.Nil(t, params)

	verbose, _ := newCapturingGormLogger(true)
	_, params = verbose.ParamsFilter(context.Background(), "SELECT 1 WHERE phone = $1", "+15550000001")
	assert.Equal(t, []any{"+15550000001"}, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT * FROM likes", 1 }

	tests := map[string]struct {
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		"not found is silent": {
			err: gorm.ErrRecordNotFound,
		},
		"duplicate at debug": {
			err:  &pgconn.PgError{Code: pgUniqueViolation},
			want: "level=DEBUG msg=\"GORM query failed\"",
		},
		"other failure at error": {
			err:  errors.New("connection reset"),
			want: "level=ERROR msg=\"GORM query failed\"",
		},
		"slow query": {
			elapsed: time.Second,
			want:    "level=WARN msg=\"GORM slow query\"",
		},
		"fast query hidden without debug": {},
		"fast query in debug": {
			debug: true,
			want:  "level=DEBUG msg=\"GORM query\"",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l, buf := newCapturingGormLogger(tt.debug)
			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "sql=\"SELECT * FROM likes\"")
		})
	}
}
