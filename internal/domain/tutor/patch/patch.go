// Package patch models partial tutor updates for the catalog API.
package patch

import (
	"fmt"

	"github.com/findmytutor/tutormatch/internal/domain/tutor"
)

// Patch is a partial tutor update. Nil fields are unchanged.
// An empty non-nil qualifications slice clears the subject tags;
// empty strings clear bio and teaching style.
type Patch struct {
	firstName       *string
	lastName        *string
	qualifications  []string
	hasQuals        bool
	bioText         *string
	teachingStyle   *string
	hourlyRate      *float64
	experienceYears *int
	isOnline        *bool
}

// Fields carries the optional update values into New.
type Fields struct {
	FirstName       *string
	LastName        *string
	Qualifications  []string
	HasQuals        bool
	BioText         *string
	TeachingStyle   *string
	HourlyRate      *float64
	ExperienceYears *int
	IsOnline        *bool
}

// New validates and creates a Patch. At least one field must be provided.
// The average rating is never patched directly; it is derived from reviews.
func New(f Fields) (Patch, error) {
	if f.FirstName == nil && f.LastName == nil && !f.HasQuals &&
		f.BioText == nil && f.TeachingStyle == nil && f.HourlyRate == nil &&
		f.ExperienceYears == nil && f.IsOnline == nil {
		return Patch{}, fmt.Errorf("at least one field must be provided")
	}
	return Patch{
		firstName:       f.FirstName,
		lastName:        f.LastName,
		qualifications:  f.Qualifications,
		hasQuals:        f.HasQuals,
		bioText:         f.BioText,
		teachingStyle:   f.TeachingStyle,
		hourlyRate:      f.HourlyRate,
		experienceYears: f.ExperienceYears,
		isOnline:        f.IsOnline,
	}, nil
}

// Apply merges the patch into the tutor's attributes and revalidates.
func (p Patch) Apply(t tutor.Tutor) (tutor.Tutor, error) {
	attr := t.Attributes()
	if p.firstName != nil {
		attr.FirstName = *p.firstName
	}
	if p.lastName != nil {
		attr.LastName = *p.lastName
	}
	if p.hasQuals {
		attr.Qualifications = p.qualifications
	}
	if p.bioText != nil {
		attr.BioText = *p.bioText
	}
	if p.teachingStyle != nil {
		attr.TeachingStyle = *p.teachingStyle
	}
	if p.hourlyRate != nil {
		rate := *p.hourlyRate
		attr.HourlyRate = &rate
	}
	if p.experienceYears != nil {
		attr.ExperienceYears = *p.experienceYears
	}
	if p.isOnline != nil {
		attr.IsOnline = *p.isOnline
	}
	return tutor.New(attr)
}
