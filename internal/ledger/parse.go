package ledger

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// scoreRe accepts only a completed scoreline: digits, a dash, digits,
// nothing else. "-" placeholders, "vs", "中止" and spaced forms like
// "2 - 1" all fail the gate.
var scoreRe = regexp.MustCompile(`^(\d+)-(\d+)$`)

// scoreDashes folds the dash variants the site has used in score cells.
var scoreDashes = strings.NewReplacer(
	"－", "-", // fullwidth hyphen-minus
	"−", "-", // minus sign
)

// IsFinishedScore reports whether a raw score cell passes the
// finished-match gate. Exposed so display layers filter with the same
// rule the builder applies.
func IsFinishedScore(raw string) bool {
	_, _, ok := parseScore(raw)
	return ok
}

// parseScore splits a raw score cell into home and away goals. ok is
// false for anything that is not a finished-match scoreline.
func parseScore(raw string) (home, away int, ok bool) {
	s := scoreDashes.Replace(strings.TrimSpace(raw))
	m := scoreRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	home, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	away, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return home, away, true
}

var (
	// Parenthesized weekday/holiday annotations, both bracket styles:
	// "03/02(日)", "04/29（月・祝）".
	annotationRe = regexp.MustCompile(`[（(][^）)]*[）)]`)

	// The date core. The site has shipped bare "MM/DD", "YY/MM/DD" and
	// "YYYY/MM/DD" at various points; the leading year fragment, when
	// present, is captured only so it can be skipped.
	dateCoreRe = regexp.MustCompile(`(?:(\d{2,4})/)?(\d{1,2})/(\d{1,2})`)
)

// parseMatchDate extracts a calendar date from a raw schedule cell and
// anchors it in seasonYear. Any embedded year fragment is ignored: the
// site's own year digits have been unreliable across layout changes,
// and a row that cannot land inside seasonYear is dropped rather than
// silently attributed to the wrong season.
func parseMatchDate(raw string, seasonYear int) (time.Time, bool) {
	s := annotationRe.ReplaceAllString(raw, "")
	s = strings.TrimSpace(s)

	m := dateCoreRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, false
	}

	d := time.Date(seasonYear, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (02/30 becomes March
	// 2nd); reject anything that moved.
	if d.Year() != seasonYear || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
