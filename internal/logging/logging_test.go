package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photoshare.log")

	log, closeFn, err := New(path, false)
	require.NoError(t, err)
	log.WithField("photo_id", "p1").Info("photo added")
	log.Debug("hidden at info level")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, `"photo_id":"p1"`)
	assert.Contains(t, out, `"msg":"photo added"`)
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	log, closeFn, err := New(path, true)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	log, closeFn, err := New("", false)
	require.NoError(t, err)
	assert.NoError(t, closeFn())
	log.Info("goes nowhere")
}

func TestNew_BadPath(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), false)
	assert.Error(t, err)
}
