// Package extract implements entity extraction: it finds a department
// keyword and a date/time expression in plain text and scores the result.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"appointment-intake-service/internal/models"
)

// Confidence contributions. Base 0 when nothing is found; the flat bonus is
// added once if anything contributed, so the maximum attainable is 0.95.
const (
	instantWeight    = 0.5
	departmentWeight = 0.4
	foundBonus       = 0.05
)

// timeRe matches an explicit clock time inside a matched date phrase:
// H:MM with optional am/pm, or a bare hour that must carry am/pm. The bare
// form additionally requires no trailing digit (checked in findTimePhrase)
// so day-of-month numerals like "20" in "January 20th" are never taken as
// a time.
var (
	timeRe       = regexp.MustCompile(`(?i)\d{1,2}:\d{2}(?:\s*(?:am|pm))?|\d{1,2}\s*(?:am|pm)`)
	atWordRe     = regexp.MustCompile(`(?i)\bat\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Result is the extractor's output.
type Result struct {
	Entities   models.Entities
	Confidence float64
}

// Extractor recognizes departments and date/time phrases in text.
// Deterministic and stateless apart from its read-only lexicon; safe for
// concurrent use.
type Extractor struct {
	lex    *lexicon
	parser *when.Parser
}

// New creates an Extractor with the default department lexicon and the
// English natural-language date grammar.
func New() *Extractor {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(common.All...)
	return &Extractor{lex: defaultLexicon, parser: p}
}

// Extract finds a department and a date/time expression in text. Relative
// phrases ("tomorrow", "next friday") resolve against ref. Extract never
// fails: absence of matches yields empty entities at confidence 0.
func (e *Extractor) Extract(text string, ref time.Time) Result {
	var entities models.Entities

	// Date/time: single best match, first by position.
	if r, err := e.parser.Parse(text, ref); err == nil && r != nil {
		instant := r.Time
		entities.ParsedDate = &instant
		entities.DateTimePhrase = r.Text
		entities.DatePhrase, entities.TimePhrase = splitPhrase(r.Text)
	}

	// Department: first lexicon entry whose keyword occurs in the text.
	if kw := e.lex.find(strings.ToLower(text)); kw != "" {
		entities.DepartmentRaw = kw
		entities.Department = canonicalName(kw)
	}

	return Result{Entities: entities, Confidence: score(entities)}
}

func score(entities models.Entities) float64 {
	s := 0.0
	if entities.ParsedDate != nil {
		s += instantWeight
	}
	if entities.Department != "" {
		s += departmentWeight
	}
	if s > 0 {
		s += foundBonus
	}
	return s
}

// splitPhrase separates an explicit clock-time sub-phrase from the matched
// date/time phrase. When a time is found, the remainder (minus the literal
// word "at") becomes the date phrase; otherwise the whole phrase does.
func splitPhrase(phrase string) (datePhrase, timePhrase string) {
	m, start, end, ok := findTimePhrase(phrase)
	if !ok {
		return strings.TrimSpace(phrase), ""
	}

	rest := phrase[:start] + phrase[end:]
	if loc := atWordRe.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]] + rest[loc[1]:]
	}
	rest = strings.TrimSpace(whitespaceRe.ReplaceAllString(rest, " "))

	return rest, strings.TrimSpace(m)
}

// findTimePhrase returns the first acceptable time match in phrase. A bare
// hour match ("11am") is rejected when directly followed by a digit, which
// is how the day-of-month guard behaves in the absence of lookahead.
func findTimePhrase(phrase string) (match string, start, end int, ok bool) {
	for _, loc := range timeRe.FindAllStringIndex(phrase, -1) {
		m := phrase[loc[0]:loc[1]]
		if !strings.Contains(m, ":") && loc[1] < len(phrase) && isDigit(phrase[loc[1]]) {
			continue
		}
		return m, loc[0], loc[1], true
	}
	return "", 0, 0, false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
