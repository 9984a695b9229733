package models

import (
	"errors"
	"strings"
	"time"
)

const (
	MinMood = 1
	MaxMood = 5
)

var (
	ErrEmptyFeedback  = errors.New("feedback cannot be empty")
	ErrMoodOutOfRange = errors.New("mood must be between 1 and 5")
)

// Submission is a single anonymous feedback record. It is never modified after creation.
type Submission struct {
	ID        string `json:"id"`
	Mood      int    `json:"mood"`
	Feedback  string `json:"feedback"`
	Timestamp int64  `json:"timestamp"` // milliseconds since epoch
}

// Draft holds raw survey input before it becomes a Submission
type Draft struct {
	Mood     int
	Feedback string
}

// NewSubmission validates a draft and stamps it with the given id and creation time.
func NewSubmission(d Draft, id string, now time.Time) (Submission, error) {
	feedback := strings.TrimSpace(d.Feedback)
	if feedback == "" {
		return Submission{}, ErrEmptyFeedback
	}
	if !ValidMood(d.Mood) {
		return Submission{}, ErrMoodOutOfRange
	}
	return Submission{
		ID:        id,
		Mood:      d.Mood,
		Feedback:  feedback,
		Timestamp: now.UnixMilli(),
	}, nil
}

// Time returns the creation time of the submission
func (s Submission) Time() time.Time {
	return time.UnixMilli(s.Timestamp)
}

func ValidMood(mood int) bool {
	return mood >= MinMood && mood <= MaxMood
}

var moodLabels = [...]string{"Terrible", "Bad", "Okay", "Good", "Great"}

var moodEmojis = [...]string{"😠", "🙁", "😐", "🙂", "😄"}

// MoodLabel returns the qualitative label for a mood level, or "" when out of range.
func MoodLabel(mood int) string {
	if !ValidMood(mood) {
		return ""
	}
	return moodLabels[mood-1]
}

func MoodEmoji(mood int) string {
	if !ValidMood(mood) {
		return "?"
	}
	return moodEmojis[mood-1]
}
