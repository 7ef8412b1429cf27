package utils_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/forex_widget/internal/utils"
	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPosthog struct {
	posthog.Client
	messages []posthog.Message
	closed   bool
}

func (r *recordingPosthog) Enqueue(msg posthog.Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

func (r *recordingPosthog) Close() error {
	r.closed = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPosthogClientWrapper_Disabled(t *testing.T) {
	w := utils.InitializePosthogClient("", "https://eu.i.posthog.com", discardLogger())
	assert.False(t, w.IsInitialized())

	w.Enqueue("session-1", "lead_created", nil)
	w.Close()

	var nilWrapper *utils.PosthogClientWrapper
	assert.False(t, nilWrapper.IsInitialized())
	nilWrapper.Enqueue("session-1", "lead_created", nil)
}

func TestPosthogClientWrapper_Enqueue(t *testing.T) {
	rec := &recordingPosthog{}
	w := utils.NewPosthogClientWrapper(rec, discardLogger())
	require.True(t, w.IsInitialized())

	w.Enqueue("session-1", "lead_created", map[string]any{"city": "DEL"})
	w.Close()

	require.Len(t, rec.messages, 1)
	capture, ok := rec.messages[0].(posthog.Capture)
	require.True(t, ok)
	assert.Equal(t, "session-1", capture.DistinctId)
	assert.Equal(t, "lead_created", capture.Event)
	assert.Equal(t, "DEL", capture.Properties["city"])
	assert.True(t, rec.closed)
}
