package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json format writes structured lines", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New("debug", "json", &buf)

		logger.Debug().Int("nodes", 7).Msg("solved")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.Equal(t, "solved", line["message"])
		require.Equal(t, float64(7), line["nodes"])
		require.Contains(t, line, "time")
		require.Contains(t, line, "caller")
	})

	t.Run("time and caller fields use the fixed formats", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New("info", "json", &buf)

		logger.Info().Msg("solved")

		var line map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		_, err := time.Parse(milliTimeFormat, line["time"])
		require.NoError(t, err)
		require.Len(t, line["caller"], callerWidth)
		require.True(t, strings.HasPrefix(line["caller"], "logging_test.go:"), "Caller should be the logging call site, got %q", line["caller"])
	})

	t.Run("zerolog globals are left alone", func(t *testing.T) {
		New("info", "json", &bytes.Buffer{})

		require.Equal(t, time.RFC3339, zerolog.TimeFieldFormat)
	})

	t.Run("level filters lower events", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New("warn", "json", &buf)

		logger.Info().Msg("hidden")

		require.Empty(t, buf.String())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logger := New("loud", "json", &bytes.Buffer{})

		require.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("console format is human readable", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New("info", "console", &buf)

		logger.Info().Str("driver", "mtd").Msg("done")

		require.True(t, strings.Contains(buf.String(), "driver=mtd"))
		require.False(t, json.Valid(buf.Bytes()))
	})
}

func TestCaller(t *testing.T) {
	t.Run("short paths are padded", func(t *testing.T) {
		require.Equal(t, "mtd.go:31"+strings.Repeat(" ", callerWidth-len("mtd.go:31")), caller("/src/searcher/mtd.go", 31))
	})

	t.Run("long paths keep their tail", func(t *testing.T) {
		got := caller("/src/a_rather_long_file_name_test.go", 1234)
		require.Len(t, got, callerWidth)
		require.True(t, strings.HasSuffix(got, "_test.go:1234"))
	})
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "json", &buf)

	Timer(logger, "finished")()

	require.Contains(t, buf.String(), `"elapsed"`)
	require.Contains(t, buf.String(), `"finished"`)
}
