package sample

import (
	"math"
	"time"
)

// ReferenceEpoch is the zero point of Bento timestamps (Core Data reference date).
var ReferenceEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// FromTime converts t to seconds since ReferenceEpoch.
func FromTime(t time.Time) float64 {
	return t.Sub(ReferenceEpoch).Seconds()
}

// ToTime converts seconds since ReferenceEpoch to a UTC time.
func ToTime(v float64) time.Time {
	sec, frac := math.Modf(v)
	return ReferenceEpoch.Add(time.Duration(sec)*time.Second + time.Duration(frac*float64(time.Second)))
}
