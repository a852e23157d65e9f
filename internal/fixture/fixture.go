// Package fixture builds multi-file syntax.FileSource inputs for
// tests: it is test-only scaffolding, not part of the core (spec.md
// §1 excludes any driver/test wiring from the core's contract).
package fixture

import (
	"fmt"

	"github.com/gobstones/gbsc/internal/syntax"
)

// Files builds an ordered []syntax.FileSource from alternating
// id, text pairs, e.g. Files("a.gbs", "program {}", "b.gbs", "...").
func Files(idsAndTexts ...string) []syntax.FileSource {
	if len(idsAndTexts)%2 != 0 {
		panic("fixture.Files: odd number of arguments")
	}
	files := make([]syntax.FileSource, 0, len(idsAndTexts)/2)
	for i := 0; i < len(idsAndTexts); i += 2 {
		files = append(files, syntax.FileSource{ID: idsAndTexts[i], Text: idsAndTexts[i+1]})
	}
	return files
}

// RecordingTranslator returns a syntax.Translator that renders a key
// and its arguments back verbatim as "key(arg1, arg2)" instead of
// localized prose, so tests can assert on the exact key and arguments
// a diagnostic carries without depending on English wording.
func RecordingTranslator() syntax.Translator {
	return func(key string, args ...interface{}) string {
		if len(args) == 0 {
			return key
		}
		out := key + "("
		for i, a := range args {
			if i > 0 {
				out += ", "
			}
			out += toString(a)
		}
		return out + ")"
	}
}

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
