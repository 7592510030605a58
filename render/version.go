package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/kitgen/shared/logging"
	"golang.org/x/mod/semver"
)

type (
	bound struct {
		version   string //canonical, v prefixed
		inclusive bool
		unbounded bool
	}

	interval struct {
		lower bound
		upper bound
	}

	//versionRange is a union of version intervals, as expressed by npm ranges ("^1.2.3 || >=2.0.0 <3")
	versionRange []interval

	partial struct {
		major, minor, patch int
		parts               int //number of explicit components
		pre                 string
	}
)

var unboundedBound = bound{unbounded: true}

func (p partial) version() string {
	ret := fmt.Sprintf("v%d.%d.%d", p.major, p.minor, p.patch)
	if p.pre != "" {
		ret += "-" + p.pre
	}
	return ret
}

func exclusiveBound(major, minor, patch int) bound {
	return bound{version: fmt.Sprintf("v%d.%d.%d-0", major, minor, patch)}
}

//parseRange parses npm style ranges supporting ^ ~ = > >= < <= x-ranges and || alternatives
func parseRange(text string) (versionRange, error) {
	var result versionRange
	for _, alternative := range strings.Split(text, "||") {
		current := interval{lower: unboundedBound, upper: unboundedBound}
		pending := ""
		for _, comparator := range strings.Fields(alternative) {
			if strings.Trim(comparator, "<>=^~") == "" {
				pending = comparator
				continue
			}
			comparator, pending = pending+comparator, ""
			next, err := parseComparator(comparator)
			if err != nil {
				return nil, err
			}
			current = current.intersect(next)
		}
		result = append(result, current)
	}
	return result, nil
}

func parseComparator(text string) (interval, error) {
	operator := ""
	for _, candidate := range []string{">=", "<=", ">", "<", "=", "^", "~"} {
		if strings.HasPrefix(text, candidate) {
			operator = candidate
			text = strings.TrimSpace(text[len(candidate):])
			break
		}
	}
	version, err := parsePartial(strings.TrimPrefix(text, "v"))
	if err != nil {
		return interval{}, err
	}
	if version.parts == 0 {
		return interval{lower: unboundedBound, upper: unboundedBound}, nil
	}
	lower := bound{version: version.version(), inclusive: true}
	switch operator {
	case ">=":
		return interval{lower: lower, upper: unboundedBound}, nil
	case ">":
		if version.parts < 3 {
			return interval{lower: bound{version: nextVersion(version).version(), inclusive: true}, upper: unboundedBound}, nil
		}
		return interval{lower: bound{version: version.version()}, upper: unboundedBound}, nil
	case "<":
		return interval{lower: unboundedBound, upper: bound{version: version.version()}}, nil
	case "<=":
		if version.parts < 3 {
			return interval{lower: unboundedBound, upper: bound{version: nextVersion(version).version()}}, nil
		}
		return interval{lower: unboundedBound, upper: bound{version: version.version(), inclusive: true}}, nil
	case "^":
		return interval{lower: lower, upper: caretUpper(version)}, nil
	case "~":
		if version.parts == 1 {
			return interval{lower: lower, upper: exclusiveBound(version.major+1, 0, 0)}, nil
		}
		return interval{lower: lower, upper: exclusiveBound(version.major, version.minor+1, 0)}, nil
	}
	if version.parts == 3 {
		return interval{lower: lower, upper: bound{version: version.version(), inclusive: true}}, nil
	}
	return interval{lower: lower, upper: bound{version: nextVersion(version).version()}}, nil
}

func caretUpper(version partial) bound {
	switch {
	case version.major > 0 || version.parts == 1:
		return exclusiveBound(version.major+1, 0, 0)
	case version.minor > 0 || version.parts == 2:
		return exclusiveBound(0, version.minor+1, 0)
	}
	return exclusiveBound(0, 0, version.patch+1)
}

//nextVersion increments the last explicit component of a partial version
func nextVersion(version partial) partial {
	switch version.parts {
	case 1:
		return partial{major: version.major + 1, parts: 3}
	case 2:
		return partial{major: version.major, minor: version.minor + 1, parts: 3}
	}
	return partial{major: version.major, minor: version.minor, patch: version.patch + 1, parts: 3}
}

func parsePartial(text string) (partial, error) {
	result := partial{}
	if text == "" || text == "*" || text == "x" || text == "X" {
		return result, nil
	}
	if index := strings.IndexAny(text, "-+"); index != -1 {
		if text[index] == '-' {
			result.pre = strings.SplitN(text[index+1:], "+", 2)[0]
		}
		text = text[:index]
	}
	components := strings.Split(text, ".")
	if len(components) > 3 {
		return result, fmt.Errorf("invalid version: %v", text)
	}
	targets := []*int{&result.major, &result.minor, &result.patch}
	for i, component := range components {
		if component == "x" || component == "X" || component == "*" {
			break
		}
		value, err := strconv.Atoi(component)
		if err != nil {
			return result, fmt.Errorf("invalid version component %q: %w", component, err)
		}
		*targets[i] = value
		result.parts++
	}
	if !semver.IsValid(result.version()) {
		return result, fmt.Errorf("invalid version: %v", text)
	}
	return result, nil
}

func (i interval) intersect(other interval) interval {
	result := i
	if compareLower(other.lower, i.lower) > 0 {
		result.lower = other.lower
	}
	if compareUpper(other.upper, i.upper) < 0 {
		result.upper = other.upper
	}
	return result
}

//contains returns true when other is a subset of i
func (i interval) contains(other interval) bool {
	return compareLower(other.lower, i.lower) >= 0 && compareUpper(other.upper, i.upper) <= 0
}

//compareLower orders lower bounds, unbounded first, inclusive before exclusive at the same version
func compareLower(a, b bound) int {
	switch {
	case a.unbounded && b.unbounded:
		return 0
	case a.unbounded:
		return -1
	case b.unbounded:
		return 1
	}
	if c := semver.Compare(a.version, b.version); c != 0 {
		return c
	}
	if a.inclusive == b.inclusive {
		return 0
	}
	if a.inclusive {
		return -1
	}
	return 1
}

//compareUpper orders upper bounds, unbounded last, exclusive before inclusive at the same version
func compareUpper(a, b bound) int {
	switch {
	case a.unbounded && b.unbounded:
		return 0
	case a.unbounded:
		return 1
	case b.unbounded:
		return -1
	}
	if c := semver.Compare(a.version, b.version); c != 0 {
		return c
	}
	if a.inclusive == b.inclusive {
		return 0
	}
	if a.inclusive {
		return 1
	}
	return -1
}

//subset returns true if every version of r satisfies other
func (r versionRange) subset(other versionRange) bool {
	for _, candidate := range r {
		matched := false
		for _, container := range other {
			if container.contains(candidate) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

//minVersion returns the lowest version matched by the range
func (r versionRange) minVersion() (string, error) {
	if len(r) == 0 {
		return "", fmt.Errorf("empty range")
	}
	result := ""
	for _, candidate := range r {
		version := "v0.0.0"
		if !candidate.lower.unbounded {
			version = candidate.lower.version
			if !candidate.lower.inclusive {
				version = semver.Canonical(version)
				parsed, err := parsePartial(strings.TrimPrefix(version, "v"))
				if err != nil {
					return "", err
				}
				version = nextVersion(parsed).version()
			}
		}
		if result == "" || semver.Compare(version, result) < 0 {
			result = version
		}
	}
	return result, nil
}

//shouldUpdateRange returns true when the required range expects a newer minimum version than the current one
func shouldUpdateRange(logger logging.Logger, dependency, currentRange, requiredRange string) bool {
	update, err := compareRanges(currentRange, requiredRange)
	if err != nil {
		logger.Warn("could not parse dependency ranges", "dependency", dependency, "current", currentRange, "required", requiredRange, "error", err.Error())
		return false
	}
	return update
}

func compareRanges(currentRange, requiredRange string) (bool, error) {
	current, err := parseRange(currentRange)
	if err != nil {
		return false, err
	}
	required, err := parseRange(requiredRange)
	if err != nil {
		return false, err
	}
	if current.subset(required) {
		return false, nil
	}
	minRequired, err := required.minVersion()
	if err != nil {
		return false, err
	}
	minCurrent, err := current.minVersion()
	if err != nil {
		return false, err
	}
	return semver.Compare(minCurrent, minRequired) < 0, nil
}
