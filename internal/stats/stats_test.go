package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/culturepulse/internal/models"
)

func subsWithMoods(moods ...int) []models.Submission {
	subs := make([]models.Submission, len(moods))
	for i, m := range moods {
		subs[i] = models.Submission{ID: string(rune('a' + i)), Mood: m, Feedback: "x", Timestamp: int64(i)}
	}
	return subs
}

func TestAverageMood(t *testing.T) {
	tests := []struct {
		name  string
		moods []int
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 4},
		{"all fives", []int{5, 5, 5}, 5},
		{"rounds up", []int{4, 5, 5}, 4.7},
		{"rounds down", []int{1, 2, 2}, 1.7},
		{"half", []int{3, 4}, 3.5},
		{"out of range still counted", []int{5, 9}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageMood(subsWithMoods(tt.moods...)); got != tt.want {
				t.Errorf("AverageMood() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatAverage(t *testing.T) {
	tests := []struct {
		moods []int
		want  string
	}{
		{nil, "0"},
		{[]int{5, 5, 5}, "5.0"},
		{[]int{4, 5, 5}, "4.7"},
		{[]int{2}, "2.0"},
	}
	for _, tt := range tests {
		if got := FormatAverage(subsWithMoods(tt.moods...)); got != tt.want {
			t.Errorf("FormatAverage(%v) = %q, want %q", tt.moods, got, tt.want)
		}
	}
}

func TestMoodHistogram(t *testing.T) {
	got := MoodHistogram(subsWithMoods(5, 5, 4, 1, 0, 6))
	want := []Bucket{
		{Mood: 1, Label: "Terrible", Count: 1},
		{Mood: 2, Label: "Bad", Count: 0},
		{Mood: 3, Label: "Okay", Count: 0},
		{Mood: 4, Label: "Good", Count: 1},
		{Mood: 5, Label: "Great", Count: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MoodHistogram() mismatch (-want +got):\n%s", diff)
	}
}

func TestMoodHistogramEmpty(t *testing.T) {
	got := MoodHistogram(nil)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	for i, b := range got {
		if b.Mood != i+1 || b.Count != 0 {
			t.Errorf("bucket %d = %+v", i, b)
		}
	}
}

func TestHistogramReconstructsSum(t *testing.T) {
	subs := subsWithMoods(1, 2, 2, 3, 3, 3, 4, 5, 5, 5, 5)
	buckets := MoodHistogram(subs)

	if Total(buckets) != len(subs) {
		t.Fatalf("Total = %d, want %d", Total(buckets), len(subs))
	}

	sum, want := 0, 0
	for _, b := range buckets {
		sum += b.Mood * b.Count
	}
	for _, s := range subs {
		want += s.Mood
	}
	if sum != want {
		t.Errorf("weighted bucket sum = %d, want %d", sum, want)
	}
}

func TestAggregatesAreIdempotent(t *testing.T) {
	subs := subsWithMoods(3, 4, 1)
	before := append([]models.Submission(nil), subs...)

	if AverageMood(subs) != AverageMood(subs) {
		t.Error("AverageMood is not stable")
	}
	if diff := cmp.Diff(MoodHistogram(subs), MoodHistogram(subs)); diff != "" {
		t.Errorf("MoodHistogram is not stable:\n%s", diff)
	}
	if diff := cmp.Diff(before, subs); diff != "" {
		t.Errorf("input was mutated:\n%s", diff)
	}
}

func TestShareAndMaxCount(t *testing.T) {
	buckets := MoodHistogram(subsWithMoods(5, 5, 5, 2))

	if got := MaxCount(buckets); got != 3 {
		t.Errorf("MaxCount() = %d, want 3", got)
	}
	if got := buckets[4].Share(4); got != 0.75 {
		t.Errorf("Share() = %v, want 0.75", got)
	}
	if got := buckets[0].Share(0); got != 0 {
		t.Errorf("Share(0) = %v, want 0", got)
	}
}
