// Package messages provides a default English message catalog. It is
// an external collaborator by spec.md §1 ("the localized message
// catalog (i18n)... only their interfaces to the core are specified")
// — the core never imports this package; cmd/gbsc and the tests wire
// it in as their syntax.Translator.
package messages

import "fmt"

var templates = map[string]string{
	"errmsg:empty-source":                                      "the source is empty",
	"errmsg:expected-but-found":                                "expected %s, found %s",
	"errmsg:numeric-constant-should-not-have-leading-zeroes":    "numeric constant should not have leading zeroes",
	"errmsg:identifier-must-start-with-alphabetic-character":    "identifiers must start with an alphabetic character",
	"errmsg:unclosed-string-constant":                          "unclosed string constant",
	"errmsg:unclosed-multiline-comment":                        "unclosed multiline comment",
	"errmsg:unknown-token":                                     "unknown token %q",
	"errmsg:obsolete-tuple-assignment":                         "obsolete tuple assignment, write 'let (...) := ...' instead",
	"errmsg:pattern-tuple-cannot-be-singleton":                 "a tuple pattern cannot have exactly one component",
	"errmsg:assignment-tuple-cannot-be-singleton":               "a tuple assignment cannot have exactly one component",
	"errmsg:definition-not-yet-supported":                      "%s definitions are not yet supported",
	"warning:empty-pragma":                                     "empty pragma",
	"warning:unknown-pragma":                                   "unknown pragma %q",
}

// Translate renders key with args substituted into its English
// template. Unknown keys render as the bare key, so a missing
// translation is visible rather than silently dropped.
func Translate(key string, args ...interface{}) string {
	tmpl, ok := templates[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
