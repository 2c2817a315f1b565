// Package semver answers every version question the pipeline asks: is an
// operator input valid, what does an increment keyword expand to, is one
// version higher than another, is a version a pre-release, does a version
// fall inside a range.
package semver

import (
	"fmt"
	"strconv"
	"strings"

	sv "github.com/Masterminds/semver/v3"
)

// Increments are the recognized shorthand keywords that expand into a
// concrete version given the current one. Order matters only for the
// user-facing validation message.
var Increments = []string{
	"patch",
	"minor",
	"major",
	"prepatch",
	"preminor",
	"premajor",
	"prerelease",
}

// IsIncrement reports whether input is a recognized increment keyword.
func IsIncrement(input string) bool {
	for _, inc := range Increments {
		if input == inc {
			return true
		}
	}
	return false
}

// IsValid reports whether v is an exact, fully-specified semantic version.
func IsValid(v string) bool {
	_, err := sv.StrictNewVersion(v)
	return err == nil
}

// IsValidInput reports whether input is acceptable as an operator-supplied
// version specifier: an increment keyword or an exact semver version.
func IsValidInput(input string) bool {
	return IsIncrement(input) || IsValid(input)
}

// New computes the next version from the current one and the operator input.
// An exact version input is returned normalized; an increment keyword is
// applied to current using npm's increment semantics.
func New(current, input string) (string, error) {
	if !IsIncrement(input) {
		v, err := sv.StrictNewVersion(input)
		if err != nil {
			return "", fmt.Errorf("invalid version %q: %w", input, err)
		}
		return v.String(), nil
	}

	cur, err := sv.StrictNewVersion(current)
	if err != nil {
		return "", fmt.Errorf("invalid current version %q: %w", current, err)
	}

	switch input {
	case "patch":
		return inc(cur.IncPatch()), nil
	case "minor":
		return inc(cur.IncMinor()), nil
	case "major":
		return inc(cur.IncMajor()), nil
	case "prepatch":
		return pre(cur.IncPatch())
	case "preminor":
		return pre(cur.IncMinor())
	case "premajor":
		return pre(cur.IncMajor())
	case "prerelease":
		if cur.Prerelease() == "" {
			return pre(cur.IncPatch())
		}
		return bumpPrerelease(cur)
	}
	return "", fmt.Errorf("unknown increment %q", input)
}

func inc(v sv.Version) string {
	return v.String()
}

func pre(v sv.Version) (string, error) {
	next, err := v.SetPrerelease("0")
	if err != nil {
		return "", err
	}
	return next.String(), nil
}

// bumpPrerelease advances the trailing numeric identifier of an existing
// pre-release: 1.2.3-beta.1 becomes 1.2.3-beta.2, 1.2.3-beta becomes
// 1.2.3-beta.0.
func bumpPrerelease(v *sv.Version) (string, error) {
	parts := strings.Split(v.Prerelease(), ".")
	last := parts[len(parts)-1]
	if n, err := strconv.Atoi(last); err == nil {
		parts[len(parts)-1] = strconv.Itoa(n + 1)
	} else {
		parts = append(parts, "0")
	}

	next, err := v.SetPrerelease(strings.Join(parts, "."))
	if err != nil {
		return "", err
	}
	return next.String(), nil
}

// Greater reports whether a is strictly higher than b.
// Unparseable versions compare as not greater.
func Greater(a, b string) bool {
	va, err := sv.StrictNewVersion(a)
	if err != nil {
		return false
	}
	vb, err := sv.StrictNewVersion(b)
	if err != nil {
		return false
	}
	return va.GreaterThan(vb)
}

// Lower reports whether a is strictly lower than b.
func Lower(a, b string) bool {
	va, err := sv.StrictNewVersion(a)
	if err != nil {
		return false
	}
	vb, err := sv.StrictNewVersion(b)
	if err != nil {
		return false
	}
	return va.LessThan(vb)
}

// Prerelease reports whether v carries a pre-release identifier.
func Prerelease(v string) bool {
	parsed, err := sv.NewVersion(v)
	if err != nil {
		return false
	}
	return parsed.Prerelease() != ""
}

// Satisfies reports whether v falls inside the constraint expression.
// Accepts loose version forms such as "v18.2.0" from tool output.
func Satisfies(v, rangeExpr string) bool {
	c, err := sv.NewConstraint(rangeExpr)
	if err != nil {
		return false
	}
	parsed, err := sv.NewVersion(v)
	if err != nil {
		return false
	}
	return c.Check(parsed)
}

// AtLeast reports whether v is min or higher. Accepts loose version forms.
func AtLeast(v, min string) bool {
	parsed, err := sv.NewVersion(v)
	if err != nil {
		return false
	}
	floor, err := sv.NewVersion(min)
	if err != nil {
		return false
	}
	return !parsed.LessThan(floor)
}
