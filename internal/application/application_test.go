package application_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lwmacct/251218-go-app-boot/internal/application"
	"github.com/lwmacct/251218-go-app-boot/pkg/cfgm"
	"github.com/lwmacct/251218-go-app-boot/pkg/logging"
)

// zapLogger 将 *zap.Logger 适配为 application.Logger。
type zapLogger struct {
	*zap.Logger
}

func (l zapLogger) Warning(msg string, fields ...zap.Field)  { l.Warn(msg, fields...) }
func (l zapLogger) Critical(msg string, fields ...zap.Field) { l.DPanic(msg, fields...) }

func newObservedApp(t *testing.T, opts ...application.Option) (*application.Application, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)

	return application.New(cfgm.New(), zapLogger{zap.New(core)}, opts...), logs
}

func TestNew(t *testing.T) {
	app, logs := newObservedApp(t)

	assert.Equal(t, application.StateInitialized, app.State())
	assert.NotEmpty(t, app.ID().String())
	assert.NotNil(t, app.Config())
	assert.Equal(t, 1, logs.FilterMessage("application initialized").Len())
}

func TestRun_DefaultProcessor(t *testing.T) {
	app, logs := newObservedApp(t)

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, application.StateRunning, app.State())
	messages := make([]string, 0, logs.Len())
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{
		"application initialized",
		"application running",
		"processing",
		"application run completed",
	}, messages)
}

func TestRun_CustomProcessorSeesConfig(t *testing.T) {
	var got cfgm.Value
	app, _ := newObservedApp(t, application.WithProcessor(application.ProcessorFunc(
		func(_ context.Context, app *application.Application) error {
			got = app.Config().Get("run.option", cfgm.String("unset"))

			return nil
		},
	)))
	app.Config().Set("run.option", "custom")

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, cfgm.String("custom"), got)
}

func TestRun_FailureIsLoggedAndReturnedUnchanged(t *testing.T) {
	boom := errors.New("boom")
	app, logs := newObservedApp(t, application.WithProcessor(application.ProcessorFunc(
		func(context.Context, *application.Application) error { return boom },
	)))

	err := app.Run(context.Background())

	assert.Same(t, boom, err)
	assert.Equal(t, application.StateRunning, app.State())

	failed := logs.FilterMessage("application run failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Equal(t, "boom", failed[0].ContextMap()["error"])
	assert.Zero(t, logs.FilterMessage("application run completed").Len())
}

func TestRun_Twice(t *testing.T) {
	app, _ := newObservedApp(t)

	require.NoError(t, app.Run(context.Background()))
	require.ErrorIs(t, app.Run(context.Background()), application.ErrAlreadyRunning)
}

func TestRun_WithLoggingLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Name: "app", Format: "{{.Name}} {{.Level}} {{.Message}}", Console: &buf})
	require.NoError(t, err)

	app := application.New(cfgm.New(), logger)
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, buf.String(), "app INFO application run completed")
}
