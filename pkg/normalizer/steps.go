package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// step is one stage of the line-cleaning chain. apply returns the
// transformed line and the number of links it removed (zero for all
// steps except link removal).
type step struct {
	name  string
	apply func(n *Normalizer, line string) (string, int)
}

// pipeline is the fixed step chain, in execution order.
var pipeline = []step{
	{"strip brackets", func(_ *Normalizer, line string) (string, int) {
		return bracketPattern.ReplaceAllString(line, ""), 0
	}},
	{"unify dates", func(_ *Normalizer, line string) (string, int) {
		return unifyDates(line), 0
	}},
	{"unify times", func(n *Normalizer, line string) (string, int) {
		return n.unifyTimes(line), 0
	}},
	{"remove youtube links", func(_ *Normalizer, line string) (string, int) {
		return removeYouTubeLinks(line)
	}},
	{"remove name emojis", func(_ *Normalizer, line string) (string, int) {
		return removeNameEmojis(line), 0
	}},
	{"clean whitespace and phrases", func(_ *Normalizer, line string) (string, int) {
		return cleanPhrases(line), 0
	}},
}

var (
	bracketPattern = regexp.MustCompile(`[\[\]()]`)

	// dateSlashPattern recognises an already-normalised date, used to decide
	// whether a line still needs today's date injected.
	dateSlashPattern = regexp.MustCompile(`\d{4}/\d{2}/\d{2}`)

	weekdayTimePattern = regexp.MustCompile(`([월화수목금토일])요일\s*(\d{1,2}:\d{2}\s*[AP]M)`)

	youtubePattern = regexp.MustCompile(`https?://(?:www\.)?(?:youtube\.com|youtu\.be)/\S+`)

	multiSpacePattern = regexp.MustCompile(` {2,}`)

	// timePatterns are tried in order: AM/PM-qualified first, bare second.
	// Matches are additionally digit-boundary checked (RE2 has no lookaround).
	timePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}:\d{2}\s*[AP]M`),
		regexp.MustCompile(`\d{1,2}:\d{2}(?: ?[AP]M)?`),
	}
)

// weekdayNames maps a Korean weekday character to its English abbreviation.
var weekdayNames = map[string]string{
	"월": "Mon",
	"화": "Tue",
	"수": "Wed",
	"목": "Thu",
	"금": "Fri",
	"토": "Sat",
	"일": "Sun",
}

// datePattern pairs a date grammar with its replacement. Patterns run in
// priority order, most specific first, so a 4-digit dotted year is consumed
// before the 2-digit fallback can see its trailing digits.
type datePattern struct {
	re   *regexp.Regexp
	repl func(groups []string) string
}

var datePatterns = []datePattern{
	// 2025년 6월 2일 → 2025/06/02
	{regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`), ymdSlash("")},
	// 2025. 6. 2. → 2025/06/02
	{regexp.MustCompile(`(\d{4})\.\s*(\d{1,2})\.\s*(\d{1,2})\.?`), ymdSlash("")},
	// 2025.6.2 → 2025/06/02
	{regexp.MustCompile(`(\d{4})\.(\d{1,2})\.(\d{1,2})`), ymdSlash("")},
	// 25. 6. 2. → 2025/06/02
	{regexp.MustCompile(`(\d{2})\.\s*(\d{1,2})\.\s*(\d{1,2})\.?`), ymdSlash("20")},
	// 25.6.2 → 2025/06/02
	{regexp.MustCompile(`(\d{2})\.(\d{1,2})\.(\d{1,2})`), ymdSlash("20")},
}

// ymdSlash builds a replacement that renders year/month/day as YYYY/MM/DD,
// zero-padding month and day. centuryPrefix is prepended to 2-digit years.
func ymdSlash(centuryPrefix string) func([]string) string {
	return func(groups []string) string {
		month, _ := strconv.Atoi(groups[2])
		day, _ := strconv.Atoi(groups[3])
		return fmt.Sprintf("%s%s/%02d/%02d", centuryPrefix, groups[1], month, day)
	}
}

// unifyDates rewrites every recognised date form to YYYY/MM/DD. Patterns are
// applied sequentially to the running string; earlier patterns consume the
// dots a later 2-digit-year pattern would otherwise misfire on.
func unifyDates(line string) string {
	for _, p := range datePatterns {
		line = p.re.ReplaceAllStringFunc(line, func(m string) string {
			return p.repl(p.re.FindStringSubmatch(m))
		})
	}
	return line
}

// unifyTimes converts 오전/오후 to AM/PM, reorders weekday-time expressions,
// and prefixes the first time expression with today's date when the line
// carries no date of its own.
func (n *Normalizer) unifyTimes(line string) string {
	line = strings.ReplaceAll(line, "오전", "AM")
	line = strings.ReplaceAll(line, "오후", "PM")

	line = weekdayTimePattern.ReplaceAllStringFunc(line, func(m string) string {
		g := weekdayTimePattern.FindStringSubmatch(m)
		return g[2] + " " + weekdayNames[g[1]]
	})

	if dateSlashPattern.MatchString(line) {
		return line
	}
	today := n.now().Format("2006/01/02")
	for _, re := range timePatterns {
		if loc := findTimeMatch(re, line); loc != nil {
			return line[:loc[0]] + today + " " + line[loc[0]:]
		}
	}
	return line
}

// findTimeMatch returns the span of the first match of re that is not glued
// to a digit on either side, or nil when there is none.
func findTimeMatch(re *regexp.Regexp, line string) []int {
	for _, loc := range re.FindAllStringIndex(line, -1) {
		if loc[0] > 0 && isASCIIDigit(line[loc[0]-1]) {
			continue
		}
		if loc[1] < len(line) && isASCIIDigit(line[loc[1]]) {
			continue
		}
		return loc
	}
	return nil
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// removeYouTubeLinks deletes every YouTube URL from the line and reports
// how many were removed.
func removeYouTubeLinks(line string) (string, int) {
	matches := youtubePattern.FindAllString(line, -1)
	if len(matches) == 0 {
		return line, 0
	}
	return youtubePattern.ReplaceAllString(line, ""), len(matches)
}

// removeNameEmojis is a deliberate no-op: emoji following a sender name are
// preserved. The step stays in the chain so the behaviour has a named home
// if it ever changes.
func removeNameEmojis(line string) string {
	return line
}

// cleanPhrases collapses runs of ASCII spaces and rewrites the messenger
// boilerplate phrases. Lines that are already blank are left alone.
func cleanPhrases(line string) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	line = multiSpacePattern.ReplaceAllString(line, " ")
	line = strings.ReplaceAll(line, "보낸 메시지", "나")
	line = strings.ReplaceAll(line, "이 회원님에게 보낸 답장", "의")
	return line
}
