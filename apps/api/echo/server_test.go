package echoapi

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanatos/backend/core"
)

func TestServer_home(t *testing.T) {
	app, _ := setup(t)

	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Sanatos API!", rec.Body.String())
}

func TestServer_middleware(t *testing.T) {
	app, _ := setup(t)

	req, rec := newRequest(http.MethodPost, "/v1/bmi/adult/", []byte(`{"weight_kg": 70, "height_cm": 175}`))
	req.Header.Set(echo.HeaderOrigin, "https://sanatos.test")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
	assert.Equal(t, "https://sanatos.test", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestServer_errors(t *testing.T) {
	app, logger := setup(t)
	app.app.GET("/fail", func(echo.Context) error {
		return errors.Wrap(errors.New("boom"), "failing")
	})
	app.app.GET("/invalid", func(echo.Context) error {
		return errors.Wrap(core.NewValidationError(errors.New("invalid input")), "validating")
	})

	tests := []httpTest{
		{
			name:     "unknown route",
			method:   http.MethodGet,
			path:     "/v1/bmi/unknown",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "Not Found"}),
		},
		{
			name:     "server error",
			method:   http.MethodGet,
			path:     "/fail",
			wantCode: http.StatusInternalServerError,
			wantData: marchallObj(t, httpErr{Error: http.StatusText(http.StatusInternalServerError)}),
		},
		{
			name:     "validation error without fields",
			method:   http.MethodGet,
			path:     "/invalid",
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "invalid input"}),
		},
	}
	runHttpTests(t, app, tests)

	assert.Equal(t, []string{http.StatusText(http.StatusInternalServerError)}, logger.errors)
}

func TestServer_shutdownError(t *testing.T) {
	app, _ := setup(t)
	app.app.GET("/shutdown", func(echo.Context) error {
		return errors.Wrap(core.NewShutdownError("integrity issue"), "checking")
	})

	req, rec := newRequest(http.MethodGet, "/shutdown")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	select {
	case <-app.ShutdownSignal():
	default:
		t.Error("shutdown was not signaled")
	}
}

func TestServer_signals(t *testing.T) {
	notify, stop := signalNotify, signalStop
	defer func() { signalNotify, signalStop = notify, stop }()

	var notified, stopped []chan<- os.Signal
	signalNotify = func(c chan<- os.Signal, _ ...os.Signal) { notified = append(notified, c) }
	signalStop = func(c chan<- os.Signal) { stopped = append(stopped, c) }

	app, _ := setup(t)
	assert.Empty(t, notified, "NewServer must not subscribe to OS signals")

	require.NoError(t, app.Shutdown(context.Background()))
	require.NoError(t, app.Close())
	assert.Len(t, stopped, 2)
	for _, c := range stopped {
		assert.Equal(t, (chan<- os.Signal)(app.shutdown), c)
	}

	app.SignalShutdown()
	app.SignalShutdown() // must not block once the buffer is full
	assert.Len(t, app.shutdown, 1)
}
