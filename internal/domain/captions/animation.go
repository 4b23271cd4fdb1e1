package captions

import (
	"fmt"
	"strings"
	"time"
)

// Keyframe is one control point of an animated transform. Offset is relative
// to the cue's own start.
type Keyframe struct {
	Offset time.Duration
	ScaleX float64
	ScaleY float64
}

// Curve maps an offset within a cue of duration d to a scale percentage.
// It is a replaceable strategy: two divergent "bounce" formulas exist
// upstream, and only one can be the default.
type Curve func(t, d time.Duration) float64

// BounceCurve is the authoritative styling curve: monotonic shrink from 100%
// toward a floor of 80% over the cue's duration.
func BounceCurve(t, d time.Duration) float64 {
	scale := 100 - 90*(float64(t)/float64(d))
	if scale < 80 {
		return 80
	}
	return scale
}

// SymmetricBounceCurve is the alternative V profile: down to 80% at the
// midpoint, back to 100% at the end. Offered for callers that want the
// down-then-up motion; not wired as the default.
func SymmetricBounceCurve(t, d time.Duration) float64 {
	half := float64(d) / 2
	ft := float64(t)
	if ft < half {
		return 100 - 20*(ft/half)
	}
	return 80 + 20*((ft-half)/half)
}

// Keyframes samples the curve at k evenly spaced offsets across d, with the
// first keyframe at 0 and the last exactly at d.
func Keyframes(d time.Duration, k int, curve Curve) ([]Keyframe, error) {
	if d <= 0 {
		return nil, &ValidationError{Field: "animation", Reason: "non-positive cue duration"}
	}
	if k < 2 {
		return nil, &ValidationError{Field: "animation.keyframes", Reason: "need at least 2 keyframes"}
	}
	if curve == nil {
		curve = BounceCurve
	}
	out := make([]Keyframe, 0, k)
	for j := 0; j < k; j++ {
		t := time.Duration(int64(d) * int64(j) / int64(k-1))
		s := curve(t, d)
		out = append(out, Keyframe{Offset: t, ScaleX: s, ScaleY: s})
	}
	return out, nil
}

// RenderOverrides renders keyframes as ASS \t transform tags, times in
// milliseconds from the cue start. A baseline scale below 100 (from auto
// font scaling) multiplies every keyframe scale.
func RenderOverrides(kfs []Keyframe, baseline float64) string {
	factor := 1.0
	if baseline > 0 && baseline < 100 {
		factor = baseline / 100
	}
	var b strings.Builder
	for _, kf := range kfs {
		ms := kf.Offset.Milliseconds()
		b.WriteString(fmt.Sprintf("{\\t(%d,%d,\\fscx%.0f\\fscy%.0f)}",
			ms, ms, kf.ScaleX*factor, kf.ScaleY*factor))
	}
	return b.String()
}
