package review

import (
	"regexp"
	"strings"
	"time"

	"github.com/findmytutor/tutormatch/internal/domain"
)

// Field limits.
const (
	MaxIDLength      = 64
	MaxStudentLength = 128
	MaxCommentLength = 8192
	MinRating        = 0.0
	MaxRating        = 5.0
)

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Review is a student's rating of a tutor, optionally with a written
// comment and per-aspect scores.
type Review struct {
	id                  string
	tutorID             string
	studentName         string
	rating              float64
	comment             string
	knowledgeRating     *int
	teachingStyleRating *int
	communicationRating *int
	createdAt           time.Time
}

// Attributes carries the raw fields for constructing a Review.
type Attributes struct {
	ID                  string
	TutorID             string
	StudentName         string
	Rating              float64
	Comment             string
	KnowledgeRating     *int
	TeachingStyleRating *int
	CommunicationRating *int
	CreatedAt           time.Time
}

// New validates attributes and creates a Review.
func New(a Attributes) (Review, error) {
	if a.ID == "" {
		return Review{}, domain.NewValidation("id", "must not be empty")
	}
	if len(a.ID) > MaxIDLength {
		return Review{}, domain.NewValidation("id", "too long")
	}
	if !idPattern.MatchString(a.ID) {
		return Review{}, domain.NewValidation("id", "may contain only letters, digits, '_' and '-'")
	}
	if a.TutorID == "" {
		return Review{}, domain.NewValidation("tutor_id", "must not be empty")
	}
	if !idPattern.MatchString(a.TutorID) {
		return Review{}, domain.NewValidation("tutor_id", "may contain only letters, digits, '_' and '-'")
	}
	if len(a.StudentName) > MaxStudentLength {
		return Review{}, domain.NewValidation("student_name", "too long")
	}
	if a.Rating < MinRating || a.Rating > MaxRating {
		return Review{}, domain.NewValidation("rating", "must be between 0 and 5")
	}
	if len(a.Comment) > MaxCommentLength {
		return Review{}, domain.NewValidation("comment", "too long")
	}
	for _, aspect := range []struct {
		name  string
		score *int
	}{
		{"knowledge_rating", a.KnowledgeRating},
		{"teaching_style_rating", a.TeachingStyleRating},
		{"communication_rating", a.CommunicationRating},
	} {
		if aspect.score != nil && (*aspect.score < 1 || *aspect.score > 5) {
			return Review{}, domain.NewValidation(aspect.name, "must be between 1 and 5")
		}
	}

	created := a.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	return Review{
		id:                  a.ID,
		tutorID:             a.TutorID,
		studentName:         strings.TrimSpace(a.StudentName),
		rating:              a.Rating,
		comment:             a.Comment,
		knowledgeRating:     cloneInt(a.KnowledgeRating),
		teachingStyleRating: cloneInt(a.TeachingStyleRating),
		communicationRating: cloneInt(a.CommunicationRating),
		createdAt:           created,
	}, nil
}

// Reconstruct rebuilds a Review from trusted storage without validation.
func Reconstruct(a Attributes) Review {
	return Review{
		id:                  a.ID,
		tutorID:             a.TutorID,
		studentName:         a.StudentName,
		rating:              a.Rating,
		comment:             a.Comment,
		knowledgeRating:     cloneInt(a.KnowledgeRating),
		teachingStyleRating: cloneInt(a.TeachingStyleRating),
		communicationRating: cloneInt(a.CommunicationRating),
		createdAt:           a.CreatedAt,
	}
}

// ID returns the review identifier.
func (r *Review) ID() string { return r.id }

// TutorID returns the reviewed tutor's identifier.
func (r *Review) TutorID() string { return r.tutorID }

// StudentName returns the reviewer's display name, if given.
func (r *Review) StudentName() string { return r.studentName }

// Rating returns the overall rating on the 0-5 scale.
func (r *Review) Rating() float64 { return r.rating }

// Comment returns the written review text. ok is false for blank comments.
func (r *Review) Comment() (string, bool) {
	return r.comment, strings.TrimSpace(r.comment) != ""
}

// KnowledgeRating returns the subject-knowledge aspect score.
func (r *Review) KnowledgeRating() (int, bool) {
	if r.knowledgeRating == nil {
		return 0, false
	}
	return *r.knowledgeRating, true
}

// TeachingStyleRating returns the teaching-style aspect score.
func (r *Review) TeachingStyleRating() (int, bool) {
	if r.teachingStyleRating == nil {
		return 0, false
	}
	return *r.teachingStyleRating, true
}

// CommunicationRating returns the communication aspect score.
func (r *Review) CommunicationRating() (int, bool) {
	if r.communicationRating == nil {
		return 0, false
	}
	return *r.communicationRating, true
}

// CreatedAt returns the creation timestamp.
func (r *Review) CreatedAt() time.Time { return r.createdAt }

// Attributes returns a copy of the review's raw fields.
func (r *Review) Attributes() Attributes {
	return Attributes{
		ID:                  r.id,
		TutorID:             r.tutorID,
		StudentName:         r.studentName,
		Rating:              r.rating,
		Comment:             r.comment,
		KnowledgeRating:     cloneInt(r.knowledgeRating),
		TeachingStyleRating: cloneInt(r.teachingStyleRating),
		CommunicationRating: cloneInt(r.communicationRating),
		CreatedAt:           r.createdAt,
	}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
