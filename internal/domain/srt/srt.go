package srt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cue is one timed subtitle block. Timestamps have millisecond resolution.
// Speaker and ColorOverride start empty; text processing fills them in later.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Lines []string

	Speaker       string
	ColorOverride string
}

func (c Cue) Duration() time.Duration { return c.End - c.Start }

// Text joins the cue's lines with newlines.
func (c Cue) Text() string { return strings.Join(c.Lines, "\n") }

// SkipReport records one malformed block that the parser dropped.
type SkipReport struct {
	Block  int
	Reason string
}

// Parse reads SRT content block by block. A malformed block is recorded and
// skipped; the rest of the input is still parsed. Empty input yields an empty
// cue list.
func Parse(data []byte) ([]Cue, []SkipReport) {
	blocks := splitBlocks(data)
	cues := make([]Cue, 0, len(blocks))
	var skipped []SkipReport
	for i, blk := range blocks {
		cue, err := parseBlock(blk)
		if err != nil {
			skipped = append(skipped, SkipReport{Block: i + 1, Reason: err.Error()})
			continue
		}
		if cue.Index == 0 {
			cue.Index = len(cues) + 1
		}
		cues = append(cues, cue)
	}
	return cues, skipped
}

func splitBlocks(data []byte) [][]string {
	s := strings.ReplaceAll(string(data), "\r\n", "\n")
	parts := strings.Split(s, "\n\n")
	out := make([][]string, 0, len(parts))
	for _, p := range parts {
		lines := strings.Split(p, "\n")
		trimmed := make([]string, 0, len(lines))
		for _, l := range lines {
			trimmed = append(trimmed, strings.TrimRight(l, " \t"))
		}
		for len(trimmed) > 0 && strings.TrimSpace(trimmed[0]) == "" {
			trimmed = trimmed[1:]
		}
		for len(trimmed) > 0 && strings.TrimSpace(trimmed[len(trimmed)-1]) == "" {
			trimmed = trimmed[:len(trimmed)-1]
		}
		if len(trimmed) > 0 {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseBlock(lines []string) (Cue, error) {
	if len(lines) < 2 {
		return Cue{}, fmt.Errorf("block too short (%d lines)", len(lines))
	}
	// Index line is advisory; files in the wild omit or duplicate it.
	idx, _ := strconv.Atoi(strings.TrimSpace(lines[0]))

	// Timing sanity (end after start) is left to the styling stage, which
	// skips such cues with a per-cue report.
	start, end, err := parseTimingLine(lines[1])
	if err != nil {
		return Cue{}, err
	}
	if len(lines) < 3 {
		return Cue{}, fmt.Errorf("no text lines")
	}
	return Cue{
		Index: idx,
		Start: start,
		End:   end,
		Lines: append([]string{}, lines[2:]...),
	}, nil
}

func parseTimingLine(line string) (time.Duration, time.Duration, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("missing --> separator in %q", line)
	}
	start, err := parseTime(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("start time: %w", err)
	}
	end, err := parseTime(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("end time: %w", err)
	}
	return start, end, nil
}

// parseTime reads HH:MM:SS,mmm.
func parseTime(s string) (time.Duration, error) {
	hmsMillis := strings.Split(s, ",")
	if len(hmsMillis) != 2 {
		return 0, fmt.Errorf("%q: missing millis", s)
	}
	hms := strings.Split(hmsMillis[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("%q: want HH:MM:SS,mmm", s)
	}
	h, err := strconv.Atoi(hms[0])
	if err != nil {
		return 0, fmt.Errorf("%q: hours: %w", s, err)
	}
	m, err := strconv.Atoi(hms[1])
	if err != nil {
		return 0, fmt.Errorf("%q: minutes: %w", s, err)
	}
	sec, err := strconv.Atoi(hms[2])
	if err != nil {
		return 0, fmt.Errorf("%q: seconds: %w", s, err)
	}
	ms, err := strconv.Atoi(hmsMillis[1])
	if err != nil {
		return 0, fmt.Errorf("%q: millis: %w", s, err)
	}
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

func formatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	d -= time.Duration(h) * time.Hour
	m := int(d / time.Minute)
	d -= time.Duration(m) * time.Minute
	s := int(d / time.Second)
	d -= time.Duration(s) * time.Second
	ms := int(d / time.Millisecond)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// Format renders cues back to SRT, renumbering from 1. Cues with no
// non-blank text are dropped.
func Format(cues []Cue) []byte {
	var b strings.Builder
	index := 1
	for _, cue := range cues {
		hasText := false
		for _, line := range cue.Lines {
			if strings.TrimSpace(line) != "" {
				hasText = true
				break
			}
		}
		if !hasText {
			continue
		}
		if index > 1 {
			b.WriteString("\n")
		}
		b.WriteString(strconv.Itoa(index))
		b.WriteString("\n")
		b.WriteString(formatTime(cue.Start))
		b.WriteString(" --> ")
		b.WriteString(formatTime(cue.End))
		for _, line := range cue.Lines {
			b.WriteString("\n")
			b.WriteString(line)
		}
		b.WriteString("\n")
		index++
	}
	return []byte(b.String())
}
