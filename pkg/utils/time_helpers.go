package utils

import "time"

const DateLayout = "2006-01-02"

// Today returns the current UTC date as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// CurrentMonth returns the current UTC month as YYYY-MM.
func CurrentMonth() string {
	return time.Now().UTC().Format("2006-01")
}
