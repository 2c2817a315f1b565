package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func format(t *testing.T, entry *logrus.Entry) string {
	t.Helper()
	f := &BulletFormatter{}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	return string(out)
}

func TestFormatLevels(t *testing.T) {
	tests := []struct {
		name  string
		level logrus.Level
		msg   string
		want  string
	}{
		{"info bullet", logrus.InfoLevel, "Running: Ping npm registry", "  * Running: Ping npm registry\n"},
		{"warn bullet", logrus.WarnLevel, "slow registry", "    ! slow registry\n"},
		{"error bullet", logrus.ErrorLevel, "Check git remote: Git fatal error: no remote", "  x Check git remote: Git fatal error: no remote\n"},
		{"debug indent", logrus.DebugLevel, "detail", "      detail\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &logrus.Entry{Level: tt.level, Message: tt.msg, Data: logrus.Fields{}}
			if got := format(t, entry); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFieldsSorted(t *testing.T) {
	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "resolved",
		Data:    logrus.Fields{"tag": "v1.2.4", "prefix": "v"},
	}

	want := "  * resolved  prefix=v tag=v1.2.4\n"
	if got := format(t, entry); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
