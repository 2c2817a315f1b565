package version

import (
	"strings"
	"testing"
)

func TestVersionInfo(t *testing.T) {
	info := VersionInfo()
	if !strings.HasPrefix(info, Name+" version "+Version) {
		t.Errorf("VersionInfo() = %q, want name and version first", info)
	}
	if !strings.Contains(info, "Go version:") {
		t.Errorf("VersionInfo() = %q, want Go runtime info", info)
	}
}
