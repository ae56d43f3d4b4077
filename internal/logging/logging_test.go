package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinear/internal/config"
	"github.com/katalvlaran/lvlinear/internal/logging"
	"github.com/katalvlaran/lvlinear/vector"
)

func TestNew_LevelAndFormat(t *testing.T) {
	v, err := config.Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	v.Set(config.KeyLogLevel, "debug")
	v.Set(config.KeyLogJSON, true)

	var buf bytes.Buffer
	log := logging.New(v, &buf)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("k", 1).Debug("hello")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "debug", rec["level"])
}

func TestNew_BadLevelFallsBack(t *testing.T) {
	v, err := config.Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	v.Set(config.KeyLogLevel, "loud")

	var buf bytes.Buffer
	log := logging.New(v, &buf)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "unknown log level")
}

func TestResizeHook(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)
	entry := logging.WithRun(log)

	id, ok := entry.Data["run"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	v := vector.New[int](vector.WithOnResize(logging.ResizeHook(entry)))
	for i := 0; i < 3; i++ {
		v.PushBack(i)
	}
	// geometric(2): 0→1, 1→2, 2→4
	assert.Equal(t, 3, strings.Count(buf.String(), "msg=resize"))
	assert.Contains(t, buf.String(), "action=grow")
	assert.Contains(t, buf.String(), "run="+id)
}
