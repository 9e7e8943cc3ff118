package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// environment isolates the ambient timezone and locale lookups so the
// currency heuristic only ever sees plain values.
type environment interface {
	Timezone() string
	Locales() []string
}

type osEnvironment struct{}

// Timezone returns an IANA name from $TZ or the /etc/localtime link.
func (osEnvironment) Timezone() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		return tz
	}
	target, err := os.Readlink("/etc/localtime")
	if err != nil {
		return ""
	}
	return zoneFromPath(target)
}

// Locales returns BCP 47 tags derived from the POSIX locale variables in
// priority order.
func (osEnvironment) Locales() []string {
	var out []string
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag := posixToBCP47(os.Getenv(name)); tag != "" {
			out = append(out, tag)
		}
	}
	for _, l := range strings.Split(os.Getenv("LANGUAGE"), ":") {
		if tag := posixToBCP47(l); tag != "" {
			out = append(out, tag)
		}
	}
	return dedupe(out)
}

func zoneFromPath(p string) string {
	p = filepath.ToSlash(p)
	if i := strings.Index(p, "zoneinfo/"); i >= 0 {
		return p[i+len("zoneinfo/"):]
	}
	return ""
}

// posixToBCP47 turns "en_US.UTF-8@euro" into "en-US". "C" and "POSIX" carry
// no locale information.
func posixToBCP47(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(v, "_", "-")
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
