package utils

import "time"

// CalculateAge returns the age in whole years on now's calendar day, or nil
// when dob is absent.
func CalculateAge(dob *time.Time, now time.Time) *int {
	if dob == nil || dob.IsZero() {
		return nil
	}

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return &age
}
