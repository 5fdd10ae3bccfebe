package services

import "time"

// Clock memisahkan waktu dinding dari logika, supaya perilaku pergantian
// tahun pada penomoran bisa diuji secara deterministik.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var SystemClock Clock = systemClock{}
