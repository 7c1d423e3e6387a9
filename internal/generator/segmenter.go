package generator

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Chunk is a contiguous span of cleaned text used as a local search window.
type Chunk struct {
	Index   int
	Heading string
	Text    string
}

const (
	maxChunkChars     = 1000
	splitChunkMinimum = 200
	splitChunkMaximum = 800
	sentenceGroupCap  = 500
)

type segmentStrategy struct {
	name      string
	minSpans  int
	segmentFn func(text string) []Chunk
}

var segmentStrategies = []segmentStrategy{
	{name: "headers", minSpans: 3, segmentFn: segmentByHeaders},
	{name: "paragraphs", minSpans: 5, segmentFn: segmentByParagraphs},
	{name: "capital_lines", minSpans: 5, segmentFn: segmentByCapitalLines},
}

// Segment splits cleaned document text into chunks. Strategies are tried in
// priority order and the first one yielding enough usable spans wins; the
// sentence-accumulation fallback always runs last.
func Segment(text string, tuning Tuning) ([]Chunk, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var spans []Chunk
	for _, s := range segmentStrategies {
		if got := s.segmentFn(text); len(got) >= max(s.minSpans, tuning.MinChunks) {
			spans = got
			break
		}
	}
	if spans == nil {
		spans = segmentBySentences(text)
	}

	chunks := make([]Chunk, 0, len(spans))
	for _, span := range spans {
		for _, piece := range splitLongSpan(span.Text) {
			chunks = append(chunks, Chunk{Index: len(chunks), Heading: span.Heading, Text: piece})
		}
	}

	if len(chunks) < tuning.MinChunks {
		return nil, newGenerationError(CodeInsufficientStructure, len(chunks))
	}
	return chunks, nil
}

// isHeaderLine matches short all-caps lines such as "INTRODUCTION" or
// "2. CELL STRUCTURE".
func isHeaderLine(line string) bool {
	line = strings.TrimSpace(line)
	if len(line) < 3 || len(line) > 60 || wordCount(line) > 8 {
		return false
	}
	if strings.HasSuffix(line, ".") && !strings.ContainsAny(line[:len(line)-1], ".") && wordCount(line) > 1 {
		return false
	}
	letters := 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return letters >= 3
}

func segmentByHeaders(text string) []Chunk {
	var (
		spans   []Chunk
		heading string
		body    strings.Builder
		headers int
	)
	flush := func() {
		if t := strings.TrimSpace(body.String()); len(t) > 100 {
			spans = append(spans, Chunk{Heading: heading, Text: t})
		}
		body.Reset()
	}
	for _, line := range strings.Split(text, "\n") {
		if isHeaderLine(line) {
			headers++
			flush()
			heading = strings.TrimSpace(line)
			continue
		}
		body.WriteString(line)
		body.WriteString("\n")
	}
	flush()
	if headers < 3 {
		return nil
	}
	return spans
}

func segmentByParagraphs(text string) []Chunk {
	var spans []Chunk
	for _, p := range paragraphBreak.Split(text, -1) {
		if t := strings.TrimSpace(p); len(t) > 30 {
			spans = append(spans, Chunk{Text: t})
		}
	}
	return spans
}

func segmentByCapitalLines(text string) []Chunk {
	var (
		spans []Chunk
		cur   strings.Builder
	)
	flush := func() {
		if t := strings.TrimSpace(cur.String()); len(t) > 30 {
			spans = append(spans, Chunk{Text: t})
		}
		cur.Reset()
	}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if r := []rune(trimmed)[0]; unicode.IsUpper(r) && cur.Len() > 0 {
			flush()
		}
		cur.WriteString(trimmed)
		cur.WriteString(" ")
	}
	flush()
	return spans
}

func segmentBySentences(text string) []Chunk {
	var (
		spans []Chunk
		cur   strings.Builder
	)
	for _, s := range splitSentences(text) {
		if cur.Len() > 0 && cur.Len()+len(s)+1 > sentenceGroupCap {
			spans = append(spans, Chunk{Text: strings.TrimSpace(cur.String())})
			cur.Reset()
		}
		cur.WriteString(s)
		cur.WriteString(" ")
	}
	if t := strings.TrimSpace(cur.String()); t != "" {
		spans = append(spans, Chunk{Text: t})
	}
	return spans
}

var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// splitLongSpan bounds downstream work: spans over 1000 characters are cut at
// the first sentence boundary after offset 200, or near 800 characters when
// no boundary falls in between.
func splitLongSpan(text string) []string {
	var out []string
	for len(text) > maxChunkChars {
		cut := -1
		for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
			if loc[0] >= splitChunkMinimum {
				if loc[0] < splitChunkMaximum {
					cut = loc[0] + 1
				}
				break
			}
		}
		if cut < 0 {
			cut = strings.LastIndex(text[:splitChunkMaximum], " ")
			if cut <= 0 {
				cut = splitChunkMaximum
				for cut > 0 && !utf8.RuneStart(text[cut]) {
					cut--
				}
			}
		}
		out = append(out, strings.TrimSpace(text[:cut]))
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" {
		out = append(out, text)
	}
	return out
}
