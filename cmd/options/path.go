package options

import (
	"os"
	"strings"

	"github.com/viant/afs/url"
)

func ensureAbsPath(location string) string {
	location = expandHomeDir(location)
	if location == "" {
		return location
	}
	if !url.IsRelative(location) {
		return location
	}
	if wd, _ := os.Getwd(); wd != "" {
		return url.Join(wd, location)
	}
	return location
}

func expandHomeDir(location string) string {
	if strings.HasPrefix(location, "~") {
		location = strings.Replace(location, "~", os.Getenv("HOME"), 1)
	}
	return location
}
