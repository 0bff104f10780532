package middleware

import (
	"bytes"
	"testing"

	applog "github.com/darkkaiser/ramprice-server/pkg/log"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter 독립적인 logrus 인스턴스를 감싼 어댑터를 생성합니다.
func newTestAdapter() (Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)

	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)

	return Logger{Logger: logger}, buf
}

func TestLoggerAdapter_LevelMapping(t *testing.T) {
	tests := []struct {
		name        string
		logrusLevel applog.Level
		echoLevel   gommonlog.Lvl
	}{
		{"Debug", applog.DebugLevel, gommonlog.DEBUG},
		{"Info", applog.InfoLevel, gommonlog.INFO},
		{"Warn", applog.WarnLevel, gommonlog.WARN},
		{"Error", applog.ErrorLevel, gommonlog.ERROR},
		{"Trace는 대응 레벨 없음", applog.TraceLevel, gommonlog.OFF},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			adapter, _ := newTestAdapter()
			adapter.Logger.SetLevel(tt.logrusLevel)

			assert.Equal(t, tt.echoLevel, adapter.Level())
		})
	}
}

func TestLoggerAdapter_SetLevel(t *testing.T) {
	tests := []struct {
		name        string
		echoLevel   gommonlog.Lvl
		logrusLevel applog.Level
	}{
		{"DEBUG", gommonlog.DEBUG, applog.DebugLevel},
		{"INFO", gommonlog.INFO, applog.InfoLevel},
		{"WARN", gommonlog.WARN, applog.WarnLevel},
		{"ERROR", gommonlog.ERROR, applog.ErrorLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			adapter, _ := newTestAdapter()

			adapter.SetLevel(tt.echoLevel)

			assert.Equal(t, tt.logrusLevel, adapter.Logger.Level)
		})
	}
}

func TestLoggerAdapter_Logging(t *testing.T) {
	adapter, buf := newTestAdapter()

	adapter.Info("정보 메시지")
	assert.Contains(t, buf.String(), "정보 메시지")

	buf.Reset()
	adapter.Errorf("에러 발생: %s", "timeout")
	assert.Contains(t, buf.String(), "에러 발생: timeout")

	buf.Reset()
	adapter.Infoj(gommonlog.JSON{"port": 8080})
	assert.Contains(t, buf.String(), "\"port\":8080")
}

func TestLoggerAdapter_OutputRoundTrip(t *testing.T) {
	adapter, buf := newTestAdapter()

	require.Equal(t, buf, adapter.Output())

	newBuf := new(bytes.Buffer)
	adapter.SetOutput(newBuf)
	assert.Equal(t, newBuf, adapter.Output())
}

func TestLoggerAdapter_PrefixNoop(t *testing.T) {
	adapter, _ := newTestAdapter()

	adapter.SetPrefix("ignored")
	assert.Equal(t, "", adapter.Prefix())
}
