// Package bibtex splits BibTeX files into whole entries keyed by citation
// key. It deliberately does not parse fields: entries are carried verbatim
// so the assembled subset is byte-faithful to its sources. Brace depth is
// tracked, so braces inside field values are safe.
package bibtex

import (
	"os"
	"sort"
	"strings"
)

// Entry is one BibTeX record carried verbatim, with the file it came from.
type Entry struct {
	Key    string
	Source string
	Text   string
}

// Parse splits text into entries. An entry starts at '@', its key sits
// between the first '{' and the following ',', and it ends at the '}' that
// returns the brace depth to zero. Malformed fragments are skipped; when a
// key occurs twice in one file the first occurrence wins.
func Parse(text string) map[string]string {
	entries := make(map[string]string)
	for i := 0; i < len(text); {
		at := strings.IndexByte(text[i:], '@')
		if at < 0 {
			break
		}
		at += i
		lb := strings.IndexByte(text[at:], '{')
		if lb < 0 {
			break
		}
		lb += at
		comma := strings.IndexByte(text[lb:], ',')
		if comma < 0 {
			i = lb + 1
			continue
		}
		key := strings.TrimSpace(text[lb+1 : lb+comma])

		end := entryEnd(text, lb)
		if end < 0 {
			break
		}
		if key != "" {
			if _, dup := entries[key]; !dup {
				entries[key] = strings.TrimSpace(text[at : end+1])
			}
		}
		i = end + 1
	}
	return entries
}

// entryEnd returns the index of the brace closing the entry opened at lb,
// or -1 when the text ends first.
func entryEnd(text string, lb int) int {
	depth := 0
	for j := lb; j < len(text); j++ {
		switch text[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// Load reads and merges entries from several .bib files. Across files the
// first hit wins per key, so earlier files shadow later ones. Unreadable
// files are skipped with a warning on warnw; per-file load counts are
// reported on the same stream.
func Load(files []string, warnw func(format string, a ...any)) map[string]Entry {
	if warnw == nil {
		warnw = func(string, ...any) {}
	}
	all := make(map[string]Entry)
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			warnw("[WARN] could not parse %s: %v", f, err)
			continue
		}
		parsed := Parse(string(data))
		added := 0
		for k, text := range parsed {
			if _, ok := all[k]; !ok {
				all[k] = Entry{Key: k, Source: f, Text: text}
				added++
			}
		}
		warnw("[INFO] %s: loaded %d entries (%d new)", f, len(parsed), added)
	}
	return all
}

// Subset renders the entries for the requested keys, sorted by key, each
// followed by a blank line, under a generator header. It returns the
// rendered bytes plus the keys that were found and the keys with no entry.
func Subset(keys []string, entries map[string]Entry) (out []byte, found, missing []string) {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString("% Generated by citex\n\n")
	for _, k := range sorted {
		e, ok := entries[k]
		if !ok {
			missing = append(missing, k)
			continue
		}
		b.WriteString(e.Text)
		b.WriteString("\n\n")
		found = append(found, k)
	}
	return []byte(b.String()), found, missing
}
