package env

import (
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"
)

func substitute(t *testing.T, doc string) map[string]string {
	t.Helper()

	file, err := parser.ParseBytes([]byte(doc), 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := SubstituteEnvVarsNode(file.Docs[0].Body); err != nil {
		t.Fatal(err)
	}

	var out map[string]string
	if err := yaml.NodeToValue(file.Docs[0].Body, &out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestSubstituteEnvVarsNode(t *testing.T) {
	t.Setenv("PUBCHECK_ENV_TOKEN", "secret")

	out := substitute(t, "token: env(PUBCHECK_ENV_TOKEN)\nplain: value\n")
	if out["token"] != "secret" {
		t.Errorf("token = %q, want substituted value", out["token"])
	}
	if out["plain"] != "value" {
		t.Errorf("plain = %q, want untouched value", out["plain"])
	}
}

func TestSubstituteLeavesUnsetUnresolved(t *testing.T) {
	out := substitute(t, "token: env(PUBCHECK_ENV_UNSET)\n")
	if out["token"] != "env(PUBCHECK_ENV_UNSET)" {
		t.Errorf("token = %q, want unresolved reference", out["token"])
	}
}

func TestSubstituteRejectsControlChars(t *testing.T) {
	t.Setenv("PUBCHECK_ENV_BAD", "a\x01b")

	file, err := parser.ParseBytes([]byte("token: env(PUBCHECK_ENV_BAD)\n"), 0)
	if err != nil {
		t.Fatal(err)
	}
	err = SubstituteEnvVarsNode(file.Docs[0].Body)
	if err == nil || !strings.Contains(err.Error(), "disallowed control characters") {
		t.Errorf("error = %v, want control character rejection", err)
	}
}

func TestCheckResolved(t *testing.T) {
	if err := CheckResolved("plain value", "github.token"); err != nil {
		t.Errorf("CheckResolved() error = %v for resolved value", err)
	}

	err := CheckResolved("env(MISSING_VAR)", "github.token")
	if err == nil || !strings.Contains(err.Error(), "github.token: environment variable MISSING_VAR is not set") {
		t.Errorf("CheckResolved() error = %v", err)
	}
}
