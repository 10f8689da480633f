package catalog

import (
	"encoding/json"
	"strconv"

	"github.com/findmytutor/tutormatch/internal/domain/tutor"
)

// Hash field names for the tutor:{id} hash.
const (
	fieldFirstName       = "first_name"
	fieldLastName        = "last_name"
	fieldQualifications  = "qualifications"
	fieldBio             = "bio"
	fieldTeachingStyle   = "teaching_style"
	fieldHourlyRate      = "hourly_rate"
	fieldAverageRating   = "average_rating"
	fieldExperienceYears = "experience_years"
	fieldIsOnline        = "is_online"
)

// buildHashFields converts a domain Tutor into a flat map[string]string for
// HSET. Every field is always written so a plain HSET overwrite (Save) fully
// replaces the stored state; optional fields encode absence as "".
func buildHashFields(t *tutor.Tutor) map[string]string {
	a := t.Attributes()

	quals := ""
	if len(a.Qualifications) > 0 {
		if data, err := json.Marshal(a.Qualifications); err == nil {
			quals = string(data)
		}
	}

	rate := ""
	if a.HourlyRate != nil {
		rate = strconv.FormatFloat(*a.HourlyRate, 'f', -1, 64)
	}
	rating := ""
	if a.AverageRating != nil {
		rating = strconv.FormatFloat(*a.AverageRating, 'f', -1, 64)
	}

	return map[string]string{
		fieldFirstName:       a.FirstName,
		fieldLastName:        a.LastName,
		fieldQualifications:  quals,
		fieldBio:             a.BioText,
		fieldTeachingStyle:   a.TeachingStyle,
		fieldHourlyRate:      rate,
		fieldAverageRating:   rating,
		fieldExperienceYears: strconv.Itoa(a.ExperienceYears),
		fieldIsOnline:        strconv.FormatBool(a.IsOnline),
	}
}

// parseHashFields converts a flat hash map back into a domain Tutor.
func parseHashFields(id string, m map[string]string) tutor.Tutor {
	a := tutor.Attributes{
		ID:            id,
		FirstName:     m[fieldFirstName],
		LastName:      m[fieldLastName],
		BioText:       m[fieldBio],
		TeachingStyle: m[fieldTeachingStyle],
	}

	if s := m[fieldQualifications]; s != "" {
		var quals []string
		if err := json.Unmarshal([]byte(s), &quals); err == nil && len(quals) > 0 {
			a.Qualifications = quals
		}
	}
	if s := m[fieldHourlyRate]; s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			a.HourlyRate = &f
		}
	}
	if s := m[fieldAverageRating]; s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			a.AverageRating = &f
		}
	}
	if n, err := strconv.Atoi(m[fieldExperienceYears]); err == nil {
		a.ExperienceYears = n
	}
	a.IsOnline = m[fieldIsOnline] == "true"

	return tutor.Reconstruct(a)
}
