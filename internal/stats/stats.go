// Package stats computes the dashboard aggregates over a submission collection.
// Every function is pure and safe to call on every render.
package stats

import (
	"math"
	"strconv"

	"github.com/julianstephens/culturepulse/internal/models"
)

// Bucket is one bar of the mood histogram.
type Bucket struct {
	Mood  int
	Label string
	Count int
}

// AverageMood returns the mean mood rounded to one decimal place, or 0 for an
// empty collection. Every submission contributes, including out-of-range moods.
func AverageMood(subs []models.Submission) float64 {
	if len(subs) == 0 {
		return 0
	}
	sum := 0
	for _, s := range subs {
		sum += s.Mood
	}
	mean := float64(sum) / float64(len(subs))
	return math.Round(mean*10) / 10
}

// FormatAverage renders the average for display: "0" when there is no data,
// otherwise one decimal place ("4.0", "3.5").
func FormatAverage(subs []models.Submission) string {
	if len(subs) == 0 {
		return "0"
	}
	return strconv.FormatFloat(AverageMood(subs), 'f', 1, 64)
}

// MoodHistogram counts submissions per mood level. The result always has five
// buckets in ascending mood order; moods outside 1..5 are skipped.
func MoodHistogram(subs []models.Submission) []Bucket {
	buckets := make([]Bucket, 0, models.MaxMood)
	for m := models.MinMood; m <= models.MaxMood; m++ {
		buckets = append(buckets, Bucket{Mood: m, Label: models.MoodLabel(m)})
	}
	for _, s := range subs {
		if !models.ValidMood(s.Mood) {
			continue
		}
		buckets[s.Mood-models.MinMood].Count++
	}
	return buckets
}

// Share is the bucket's fraction of total, in [0,1].
func (b Bucket) Share(total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(b.Count) / float64(total)
}

// MaxCount returns the largest bucket count, used to scale chart bars.
func MaxCount(buckets []Bucket) int {
	max := 0
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
	}
	return max
}

// Total sums the bucket counts.
func Total(buckets []Bucket) int {
	n := 0
	for _, b := range buckets {
		n += b.Count
	}
	return n
}
