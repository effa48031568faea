package extract

import (
	"fmt"

	"github.com/daykit/go-session-extract/internal/core/model"
)

// Sample selects labeled excerpt slices from a session's meaningful
// entries. Bigger sessions get more sample points and bigger slices, but
// the total shown is always bounded: at most five sections of at most
// SliceCap entries each, regardless of session length.
//
//   - n <= FullMax: the whole session as one section
//   - n <= TwoPartMax: start + end
//   - n <= ThreePartMax: start + middle + end
//   - otherwise: start + three evenly spaced interior points + end
//
// Adjacent sections may overlap when the slice size is large relative to
// the spacing; that is intended and not deduplicated.
func Sample(meaningful []model.MeaningfulEntry, cfg Config) []model.SampleSection {
	n := len(meaningful)

	if n <= cfg.FullMax {
		return []model.SampleSection{{Label: "FULL SESSION", Entries: meaningful}}
	}

	// Adaptive slice size: bigger sessions get bigger slices.
	ss := n / cfg.FullMax
	if ss < cfg.SampleSize {
		ss = cfg.SampleSize
	}
	if ss > cfg.SliceCap {
		ss = cfg.SliceCap
	}

	if n <= cfg.TwoPartMax {
		return []model.SampleSection{
			{Label: "START of session", Entries: meaningful[:ss]},
			{Label: "END of session", Entries: meaningful[n-ss:]},
		}
	}

	if n <= cfg.ThreePartMax {
		mid := n / 2
		midStart := mid - ss/2
		if midStart < ss {
			midStart = ss
		}
		return []model.SampleSection{
			{Label: "START of session", Entries: meaningful[:ss]},
			{
				Label:   fmt.Sprintf("MIDDLE of session - around message %d", mid),
				Entries: slice(meaningful, midStart, ss),
			},
			{Label: "END of session", Entries: meaningful[n-ss:]},
		}
	}

	// Very large session: start, three interior points, end.
	sections := []model.SampleSection{
		{Label: "START of session", Entries: meaningful[:ss]},
	}
	labels := []string{"EARLY in session", "MIDDLE of session", "LATE in session"}
	fracs := []float64{0.25, 0.5, 0.75}
	for i, frac := range fracs {
		idx := int(float64(n) * frac)
		sections = append(sections, model.SampleSection{
			Label:   fmt.Sprintf("%s - around message %d", labels[i], idx),
			Entries: slice(meaningful, idx, ss),
		})
	}
	sections = append(sections, model.SampleSection{
		Label:   "END of session",
		Entries: meaningful[n-ss:],
	})
	return sections
}

// slice takes up to count entries starting at start, clamped to the
// sequence bounds.
func slice(entries []model.MeaningfulEntry, start, count int) []model.MeaningfulEntry {
	if start >= len(entries) {
		return nil
	}
	end := start + count
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end]
}
