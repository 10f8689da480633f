package tutor

import (
	"fmt"
	"regexp"
	"strings"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Field limits enforced by New.
const (
	MaxIDLength            = 64
	MaxNameLength          = 128
	MaxQualifications      = 50
	MaxQualificationLength = 128
	MaxBioLength           = 8192
	MaxRating              = 5.0
	MaxExperienceYears     = 80
)

// FallbackDocument replaces an all-empty profile so vectorization
// always receives a non-empty document.
const FallbackDocument = "tutor educator teacher"

// Tutor is the catalog aggregate (immutable value object).
// hourlyRate and averageRating are optional; absence is explicit,
// never encoded as a zero value.
type Tutor struct {
	id              string
	firstName       string
	lastName        string
	qualifications  []string
	bioText         string
	teachingStyle   string
	hourlyRate      *float64
	averageRating   *float64
	experienceYears int
	isOnline        bool
}

// Attributes carries raw tutor fields into New and Reconstruct.
type Attributes struct {
	ID              string
	FirstName       string
	LastName        string
	Qualifications  []string
	BioText         string
	TeachingStyle   string
	HourlyRate      *float64
	AverageRating   *float64
	ExperienceYears int
	IsOnline        bool
}

// New validates and creates a Tutor.
// ID: ^[a-zA-Z0-9_-]+$, 1-64 chars. FirstName: required.
// Qualification entries are trimmed; empty entries are dropped.
func New(a Attributes) (Tutor, error) {
	if a.ID == "" {
		return Tutor{}, fmt.Errorf("tutor ID is required")
	}
	if len(a.ID) > MaxIDLength {
		return Tutor{}, fmt.Errorf("tutor ID too long (max %d)", MaxIDLength)
	}
	if !idRegex.MatchString(a.ID) {
		return Tutor{}, fmt.Errorf("tutor ID must be alphanumeric with underscores and hyphens")
	}
	if strings.TrimSpace(a.FirstName) == "" {
		return Tutor{}, fmt.Errorf("first name is required")
	}
	if len(a.FirstName) > MaxNameLength || len(a.LastName) > MaxNameLength {
		return Tutor{}, fmt.Errorf("name too long (max %d)", MaxNameLength)
	}
	if len(a.Qualifications) > MaxQualifications {
		return Tutor{}, fmt.Errorf("too many qualifications (max %d)", MaxQualifications)
	}
	quals := make([]string, 0, len(a.Qualifications))
	for _, q := range a.Qualifications {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		if len(q) > MaxQualificationLength {
			return Tutor{}, fmt.Errorf("qualification too long (max %d)", MaxQualificationLength)
		}
		quals = append(quals, q)
	}
	if len(quals) == 0 {
		quals = nil
	}
	if len(a.BioText) > MaxBioLength {
		return Tutor{}, fmt.Errorf("bio too long (max %d bytes)", MaxBioLength)
	}
	if a.HourlyRate != nil && *a.HourlyRate < 0 {
		return Tutor{}, fmt.Errorf("hourly rate must be non-negative")
	}
	if a.AverageRating != nil && (*a.AverageRating < 0 || *a.AverageRating > MaxRating) {
		return Tutor{}, fmt.Errorf("average rating must be between 0 and %g", MaxRating)
	}
	if a.ExperienceYears < 0 || a.ExperienceYears > MaxExperienceYears {
		return Tutor{}, fmt.Errorf("experience years must be between 0 and %d", MaxExperienceYears)
	}

	return Tutor{
		id:              a.ID,
		firstName:       strings.TrimSpace(a.FirstName),
		lastName:        strings.TrimSpace(a.LastName),
		qualifications:  quals,
		bioText:         a.BioText,
		teachingStyle:   a.TeachingStyle,
		hourlyRate:      cloneFloat(a.HourlyRate),
		averageRating:   cloneFloat(a.AverageRating),
		experienceYears: a.ExperienceYears,
		isOnline:        a.IsOnline,
	}, nil
}

// Reconstruct creates a Tutor without validation (storage hydration).
func Reconstruct(a Attributes) Tutor {
	return Tutor{
		id:              a.ID,
		firstName:       a.FirstName,
		lastName:        a.LastName,
		qualifications:  a.Qualifications,
		bioText:         a.BioText,
		teachingStyle:   a.TeachingStyle,
		hourlyRate:      a.HourlyRate,
		averageRating:   a.AverageRating,
		experienceYears: a.ExperienceYears,
		isOnline:        a.IsOnline,
	}
}

// ID returns the tutor identifier.
func (t *Tutor) ID() string { return t.id }

// FirstName returns the tutor's first name.
func (t *Tutor) FirstName() string { return t.firstName }

// LastName returns the tutor's last name.
func (t *Tutor) LastName() string { return t.lastName }

// FullName joins first and last name with a single space.
func (t *Tutor) FullName() string {
	return strings.TrimSpace(t.firstName + " " + t.lastName)
}

// Qualifications returns the ordered subject tags.
func (t *Tutor) Qualifications() []string { return t.qualifications }

// BioText returns the biography and whether one is present.
func (t *Tutor) BioText() (string, bool) {
	return t.bioText, strings.TrimSpace(t.bioText) != ""
}

// TeachingStyle returns the style descriptor and whether one is present.
func (t *Tutor) TeachingStyle() (string, bool) {
	return t.teachingStyle, strings.TrimSpace(t.teachingStyle) != ""
}

// HourlyRate returns the hourly rate and whether one is declared.
func (t *Tutor) HourlyRate() (float64, bool) {
	if t.hourlyRate == nil {
		return 0, false
	}
	return *t.hourlyRate, true
}

// AverageRating returns the rating and whether one is declared.
func (t *Tutor) AverageRating() (float64, bool) {
	if t.averageRating == nil {
		return 0, false
	}
	return *t.averageRating, true
}

// ExperienceYears returns the years of teaching experience.
func (t *Tutor) ExperienceYears() int { return t.experienceYears }

// IsOnline reports whether the tutor is currently online.
func (t *Tutor) IsOnline() bool { return t.isOnline }

// Attributes returns a copy of the raw fields (for patching and DTO mapping).
func (t *Tutor) Attributes() Attributes {
	return Attributes{
		ID:              t.id,
		FirstName:       t.firstName,
		LastName:        t.lastName,
		Qualifications:  cloneStrings(t.qualifications),
		BioText:         t.bioText,
		TeachingStyle:   t.teachingStyle,
		HourlyRate:      cloneFloat(t.hourlyRate),
		AverageRating:   cloneFloat(t.averageRating),
		ExperienceYears: t.experienceYears,
		IsOnline:        t.isOnline,
	}
}

// WithAverageRating returns a copy with the rating replaced.
func (t *Tutor) WithAverageRating(rating float64) Tutor {
	c := *t
	c.averageRating = &rating
	return c
}

// Document assembles the normalized text used for vectorization.
// Subject tags are included twice so they outweigh free text.
// An all-empty profile falls back to FallbackDocument.
func (t *Tutor) Document() string {
	var parts []string
	if len(t.qualifications) > 0 {
		joined := strings.Join(t.qualifications, " ")
		parts = append(parts, joined, joined)
	}
	if bio, ok := t.BioText(); ok {
		parts = append(parts, bio)
	}
	if style, ok := t.TeachingStyle(); ok {
		parts = append(parts, style)
	}
	doc := strings.TrimSpace(strings.ToLower(strings.Join(parts, " ")))
	if doc == "" {
		return FallbackDocument
	}
	return doc
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
