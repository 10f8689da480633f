package tutormatch

import "github.com/findmytutor/tutormatch/internal/domain/tutor"

// Tutor is a plain tutor profile for the embedded engine. Zero-value
// optional fields (nil HourlyRate, nil AverageRating) mean "absent".
type Tutor struct {
	ID              string
	FirstName       string
	LastName        string
	Qualifications  []string
	Bio             string
	TeachingStyle   string
	HourlyRate      *float64
	AverageRating   *float64
	ExperienceYears int
	Online          bool
}

// FullName joins first and last names.
func (t Tutor) FullName() string {
	if t.LastName == "" {
		return t.FirstName
	}
	return t.FirstName + " " + t.LastName
}

func (t Tutor) attributes() tutor.Attributes {
	return tutor.Attributes{
		ID:              t.ID,
		FirstName:       t.FirstName,
		LastName:        t.LastName,
		Qualifications:  t.Qualifications,
		BioText:         t.Bio,
		TeachingStyle:   t.TeachingStyle,
		HourlyRate:      t.HourlyRate,
		AverageRating:   t.AverageRating,
		ExperienceYears: t.ExperienceYears,
		IsOnline:        t.Online,
	}
}

func fromDomain(dom *tutor.Tutor) Tutor {
	t := Tutor{
		ID:              dom.ID(),
		FirstName:       dom.FirstName(),
		LastName:        dom.LastName(),
		Qualifications:  dom.Qualifications(),
		ExperienceYears: dom.ExperienceYears(),
		Online:          dom.IsOnline(),
	}
	if bio, ok := dom.BioText(); ok {
		t.Bio = bio
	}
	if style, ok := dom.TeachingStyle(); ok {
		t.TeachingStyle = style
	}
	if rate, ok := dom.HourlyRate(); ok {
		t.HourlyRate = &rate
	}
	if rating, ok := dom.AverageRating(); ok {
		t.AverageRating = &rating
	}
	return t
}

// TutorBuilder assembles a Tutor profile fluently.
type TutorBuilder struct {
	t Tutor
}

// NewTutor starts a tutor profile with the required identity fields.
func NewTutor(id, firstName, lastName string) *TutorBuilder {
	return &TutorBuilder{t: Tutor{ID: id, FirstName: firstName, LastName: lastName}}
}

// Qualifications replaces the qualification list.
func (b *TutorBuilder) Qualifications(quals ...string) *TutorBuilder {
	b.t.Qualifications = quals
	return b
}

// Bio sets the free-text biography.
func (b *TutorBuilder) Bio(text string) *TutorBuilder {
	b.t.Bio = text
	return b
}

// TeachingStyle sets the teaching style description.
func (b *TutorBuilder) TeachingStyle(style string) *TutorBuilder {
	b.t.TeachingStyle = style
	return b
}

// HourlyRate sets the advertised hourly rate.
func (b *TutorBuilder) HourlyRate(rate float64) *TutorBuilder {
	b.t.HourlyRate = &rate
	return b
}

// Rating sets the average review rating.
func (b *TutorBuilder) Rating(rating float64) *TutorBuilder {
	b.t.AverageRating = &rating
	return b
}

// Experience sets the years of teaching experience.
func (b *TutorBuilder) Experience(years int) *TutorBuilder {
	b.t.ExperienceYears = years
	return b
}

// Online marks the tutor as available for online lessons.
func (b *TutorBuilder) Online() *TutorBuilder {
	b.t.Online = true
	return b
}

// Build returns the assembled profile. Validation happens in Engine.Add.
func (b *TutorBuilder) Build() Tutor {
	return b.t
}
