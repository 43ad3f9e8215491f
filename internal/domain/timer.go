package domain

import (
	"fmt"
	"time"
)

// MaxClockMinutes is the largest minute count a countdown may be set to
const MaxClockMinutes = 9999

// MaxRemaining is the longest countdown, 9999:59
const MaxRemaining = MaxClockMinutes*time.Minute + 59*time.Second

// TimerState is a snapshot of the countdown
type TimerState struct {
	Mode      TimerMode
	Remaining time.Duration
	Total     time.Duration // default duration of Mode
	Running   bool
}

// Minutes returns the whole minutes remaining
func (s TimerState) Minutes() int {
	return int(s.Remaining / time.Minute)
}

// Seconds returns the seconds part of the remaining time
func (s TimerState) Seconds() int {
	return int(s.Remaining/time.Second) % 60
}

// Progress returns the elapsed fraction of the mode's default duration
func (s TimerState) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	p := float64(s.Total-s.Remaining) / float64(s.Total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// String formats the remaining time as MM:SS
func (s TimerState) String() string {
	return FormatClock(s.Remaining)
}

// FormatClock formats d as MM:SS, minutes may exceed 59
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
