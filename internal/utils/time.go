package util

import "time"

var doualaLocation *time.Location

func init() {
	var err error
	doualaLocation, err = time.LoadLocation("Africa/Douala")
	if err != nil {
		doualaLocation = time.FixedZone("WAT", 60*60)
	}
}

// IssueDate formats a timestamp the way certificate documents print it,
// in the office's local time.
func IssueDate(t time.Time) string {
	return t.In(doualaLocation).Format("January 2, 2006")
}
