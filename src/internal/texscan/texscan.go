// Package texscan extracts citation keys from LaTeX source text.
package texscan

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// DefaultCommands is the cite-command family recognized out of the box:
// the classic natbib and biblatex variants. Matching treats the first
// letter of each command as case-insensitive (\cite and \Cite both count).
var DefaultCommands = []string{
	"cite", "parencite", "textcite", "autocite", "smartcite", "footcite",
	"nocite", "citeauthor", "citealp", "citealt", "citeyear", "citeyearpar",
	"citet", "citep",
}

// Scanner finds citation keys in LaTeX text. The zero value is not usable;
// construct with New.
type Scanner struct {
	pattern *regexp.Regexp
}

// New returns a Scanner recognizing the default cite commands plus any
// extra command names (without backslash), e.g. "fullcite".
func New(extra ...string) (*Scanner, error) {
	cmds := append(append([]string(nil), DefaultCommands...), extra...)
	alts := make([]string, 0, len(cmds))
	for _, c := range cmds {
		c = strings.TrimPrefix(strings.TrimSpace(c), `\`)
		if c == "" {
			continue
		}
		head := c[:1]
		alts = append(alts, "["+strings.ToUpper(head)+strings.ToLower(head)+"]"+regexp.QuoteMeta(c[1:]))
	}
	// \cmd, zero or more optional [..] arguments, then the mandatory
	// {key1,key2,...} group.
	expr := `\\(?:` + strings.Join(alts, "|") + `)(?:\s*\[[^\]]*\])*\s*\{([^}]*)\}`
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("texscan: bad cite command list: %w", err)
	}
	return &Scanner{pattern: pattern}, nil
}

// Keys returns the unique citation keys found in text, sorted. Keys inside
// one cite group are comma-separated; empty fragments are dropped.
func (s *Scanner) Keys(text string) []string {
	set := make(map[string]struct{})
	s.addKeys(text, set)
	return sorted(set)
}

// KeysFromFiles scans every file and returns the union of their keys,
// sorted. Unreadable files are skipped with a warning on warnw, matching
// the tool's tolerance for partially broken source trees; per-file counts
// are reported on the same stream.
func (s *Scanner) KeysFromFiles(files []string, warnw func(format string, a ...any)) []string {
	if warnw == nil {
		warnw = func(string, ...any) {}
	}
	set := make(map[string]struct{})
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			warnw("[WARN] could not read %s: %v", f, err)
			continue
		}
		found := make(map[string]struct{})
		s.addKeys(string(data), found)
		if len(found) > 0 {
			warnw("[INFO] %s: found %d unique keys", f, len(found))
		}
		for k := range found {
			set[k] = struct{}{}
		}
	}
	return sorted(set)
}

func (s *Scanner) addKeys(text string, set map[string]struct{}) {
	for _, m := range s.pattern.FindAllStringSubmatch(text, -1) {
		for _, k := range strings.Split(m[1], ",") {
			if k = strings.TrimSpace(k); k != "" {
				set[k] = struct{}{}
			}
		}
	}
}

func sorted(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
