package dto

import (
	"fmt"
	"strings"
)

// ProfileDraft is the editable set of personal attributes. The zero value is
// an empty draft.
type ProfileDraft struct {
	Name           string `json:"name"`
	Age            string `json:"age"`
	Gender         string `json:"gender"`
	Mobile         string `json:"mobile"`
	IdentityNumber string `json:"identity_number"`
	Address        string `json:"address"`
	Income         string `json:"income"`
	IsFarmer       bool   `json:"is_farmer"`
	IsStudent      bool   `json:"is_student"`
	IsSenior       bool   `json:"is_senior"`
	IsDisability   bool   `json:"is_disability"`
}

// Profile is a committed snapshot of a ProfileDraft.
type Profile struct {
	ProfileDraft
}

// ProfileError names the draft fields that blocked a commit.
type ProfileError struct {
	Missing []string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("%v: missing %s", ErrIncompleteProfile, strings.Join(e.Missing, ", "))
}

func (e *ProfileError) Unwrap() error { return ErrIncompleteProfile }

// MissingFields returns the json names of blank string fields. Flags are
// never missing.
func (d ProfileDraft) MissingFields() []string {
	var missing []string
	fields := []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"age", d.Age},
		{"gender", d.Gender},
		{"mobile", d.Mobile},
		{"identity_number", d.IdentityNumber},
		{"address", d.Address},
		{"income", d.Income},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Commit promotes the draft to a Profile once every field is filled in.
func (d ProfileDraft) Commit() (Profile, error) {
	if missing := d.MissingFields(); len(missing) > 0 {
		return Profile{}, &ProfileError{Missing: missing}
	}
	return Profile{ProfileDraft: d}, nil
}

// Draft returns an editable copy of the profile.
func (p Profile) Draft() ProfileDraft {
	return p.ProfileDraft
}
