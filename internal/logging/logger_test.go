package logging

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/gymtracker/pkg"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("ERROR"))
	assert.Equal(t, logrus.FatalLevel, GetLevel("fatal"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("Info"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("whatever"))
}

func TestOutput(t *testing.T) {
	_, isFile := output(LoggerSetupParams{}).(*lumberjack.Logger)
	assert.False(t, isFile)

	logFile := filepath.Join(t.TempDir(), "service")
	w := output(LoggerSetupParams{LogFileName: logFile})
	lj, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, logFile+".log", lj.Filename)

	w = output(LoggerSetupParams{LogFileName: logFile, LogToStdout: true})
	cw, ok := w.(*pkg.CombinedWriter)
	require.True(t, ok)
	assert.Len(t, cw.Writers, 2)
}

func TestSentryHook_Fire(t *testing.T) {
	transport := &recordingTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{Transport: transport})
	require.NoError(t, err)

	hook := &SentryHook{
		levels: []logrus.Level{logrus.ErrorLevel},
		hub:    sentry.NewHub(client, sentry.NewScope()),
	}
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	entry := logrus.NewEntry(logrus.New()).
		WithField("workout_id", "w-1").
		WithError(assert.AnError)
	entry.Level = logrus.ErrorLevel
	entry.Message = "failed to add workout"
	entry.Time = time.Now()

	require.NoError(t, hook.Fire(entry))
	require.Len(t, transport.events, 1)

	event := transport.events[0]
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "failed to add workout", event.Message)
	assert.Equal(t, "w-1", event.Extra["workout_id"])
	require.Len(t, event.Exception, 1)
	assert.Equal(t, assert.AnError.Error(), event.Exception[0].Value)
}

func TestSentryHook_NoClient(t *testing.T) {
	hook := &SentryHook{hub: sentry.NewHub(nil, sentry.NewScope())}
	assert.Error(t, hook.Fire(logrus.NewEntry(logrus.New())))
}

type recordingTransport struct {
	events []*sentry.Event
}

func (t *recordingTransport) Flush(time.Duration) bool              { return true }
func (t *recordingTransport) FlushWithContext(context.Context) bool { return true }
func (t *recordingTransport) Configure(sentry.ClientOptions)        {}
func (t *recordingTransport) Close()                                {}
func (t *recordingTransport) SendEvent(event *sentry.Event) {
	t.events = append(t.events, event)
}
