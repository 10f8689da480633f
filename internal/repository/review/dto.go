package review

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/findmytutor/tutormatch/internal/domain/review"
)

// reviewDoc is the JSON-serializable representation stored at
// review:{tutorID}:{reviewID}.
type reviewDoc struct {
	ID                  string  `json:"id"`
	TutorID             string  `json:"tutor_id"`
	StudentName         string  `json:"student_name,omitempty"`
	Rating              float64 `json:"rating"`
	Comment             string  `json:"comment,omitempty"`
	KnowledgeRating     *int    `json:"knowledge_rating,omitempty"`
	TeachingStyleRating *int    `json:"teaching_style_rating,omitempty"`
	CommunicationRating *int    `json:"communication_rating,omitempty"`
	CreatedAt           int64   `json:"created_at"` // unix millis UTC
}

func marshalReview(r *review.Review) ([]byte, error) {
	a := r.Attributes()
	doc := reviewDoc{
		ID:                  a.ID,
		TutorID:             a.TutorID,
		StudentName:         a.StudentName,
		Rating:              a.Rating,
		Comment:             a.Comment,
		KnowledgeRating:     a.KnowledgeRating,
		TeachingStyleRating: a.TeachingStyleRating,
		CommunicationRating: a.CommunicationRating,
		CreatedAt:           a.CreatedAt.UnixMilli(),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal review: %w", err)
	}
	return data, nil
}

func unmarshalReview(data []byte) (review.Review, error) {
	var doc reviewDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return review.Review{}, fmt.Errorf("unmarshal review: %w", err)
	}
	return review.Reconstruct(review.Attributes{
		ID:                  doc.ID,
		TutorID:             doc.TutorID,
		StudentName:         doc.StudentName,
		Rating:              doc.Rating,
		Comment:             doc.Comment,
		KnowledgeRating:     doc.KnowledgeRating,
		TeachingStyleRating: doc.TeachingStyleRating,
		CommunicationRating: doc.CommunicationRating,
		CreatedAt:           time.UnixMilli(doc.CreatedAt).UTC(),
	}), nil
}
