// Package logging renders pipeline progress as indented bullets.
package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// BulletFormatter formats log entries as a running task list:
//
//	  * Running: Ping npm registry
//	  * Completed: Ping npm registry (312ms)
//	    ! some warning
//	  x Check git remote: Git fatal error: ...
//
// Key-value fields are appended as key=value pairs.
type BulletFormatter struct{}

func (f *BulletFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var buf bytes.Buffer

	switch entry.Level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		fmt.Fprintf(&buf, "  x %s", entry.Message)
	case logrus.WarnLevel:
		fmt.Fprintf(&buf, "    ! %s", entry.Message)
	case logrus.InfoLevel:
		fmt.Fprintf(&buf, "  * %s", entry.Message)
	default:
		// Debug runs through the text formatter instead, but handle it.
		fmt.Fprintf(&buf, "      %s", entry.Message)
	}

	if kvs := formatFields(entry.Data); kvs != "" {
		buf.WriteString(kvs)
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// formatFields returns a formatted string of key=value pairs.
// Returns empty string if there are no fields.
func formatFields(fields logrus.Fields) string {
	if len(fields) == 0 {
		return ""
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}

	return "  " + strings.Join(parts, " ")
}
