package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanatos/backend/core"
)

func newTestLogger(buf *bytes.Buffer) *RollbarLogger {
	l := NewRollbarLogger(log.New(buf, "", 0), &core.Config{Env: "TEST", Build: "test"})
	l.Enable(false)
	return l
}

func TestRollbarLogger_prepare(t *testing.T) {
	l := newTestLogger(new(bytes.Buffer))
	err := errors.New("boom")

	tests := []struct {
		name string
		args []interface{}
		want []interface{}
	}{
		{
			name: "message only",
			want: []interface{}{"msg"},
		},
		{
			name: "error",
			args: []interface{}{err},
			want: []interface{}{"msg", err},
		},
		{
			name: "request meta becomes extras",
			args: []interface{}{err, core.RequestMeta{ID: "abc", Method: "POST", Path: "/v1/bmi/adult"}},
			want: []interface{}{"msg", err, map[string]interface{}{
				"request_id": "abc",
				"method":     "POST",
				"path":       "/v1/bmi/adult",
			}},
		},
		{
			name: "request meta merged with extras",
			args: []interface{}{map[string]interface{}{"build": "test"}, core.RequestMeta{ID: "abc"}},
			want: []interface{}{"msg", map[string]interface{}{"build": "test", "request_id": "abc"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.prepare("msg", tt.args))
		})
	}
}

func TestRollbarLogger_report(t *testing.T) {
	buf := new(bytes.Buffer)
	l := newTestLogger(buf)
	err := errors.New("boom")

	var sent []interface{}
	send := func(args ...interface{}) { sent = args }
	l.report(send, "calculation failed", []interface{}{err, core.RequestMeta{ID: "abc"}})

	assert.Equal(t, []interface{}{"calculation failed", err, map[string]interface{}{"request_id": "abc"}}, sent)
	assert.Equal(t, "calculation failed\nboom\n{ID:abc Method: Path:}\n", buf.String())
}

func TestRollbarLogger_levels(t *testing.T) {
	buf := new(bytes.Buffer)
	l := newTestLogger(buf)

	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("calculation failed", errors.New("boom"))
	assert.Equal(t, "debug\ninfo\nwarn\ncalculation failed\nboom\n", buf.String())
}
