// Package controller implements HTTP handlers for the API endpoints.
package controller

import "time"

// parseDate accepts both plain calendar dates and full RFC 3339 timestamps,
// since registration screens send the former and backdated entries the latter.
func parseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
