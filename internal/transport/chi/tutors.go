package chi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/findmytutor/tutormatch/internal/domain/batch"
	"github.com/findmytutor/tutormatch/internal/domain/review"
	"github.com/findmytutor/tutormatch/internal/domain/tutor"
	"github.com/findmytutor/tutormatch/internal/domain/tutor/patch"
	domusage "github.com/findmytutor/tutormatch/internal/domain/usage"
	"github.com/findmytutor/tutormatch/internal/metrics"
)

type tutorJSON struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name,omitempty"`
	FullName        string   `json:"full_name"`
	Qualifications  []string `json:"qualifications"`
	Bio             string   `json:"bio,omitempty"`
	TeachingStyle   string   `json:"teaching_style,omitempty"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty"`
	AverageRating   *float64 `json:"average_rating,omitempty"`
	ExperienceYears int      `json:"experience_years"`
	IsOnline        bool     `json:"is_online"`
}

type tutorRequest struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Qualifications  []string `json:"qualifications"`
	Bio             string   `json:"bio"`
	TeachingStyle   string   `json:"teaching_style"`
	HourlyRate      *float64 `json:"hourly_rate"`
	ExperienceYears int      `json:"experience_years"`
	IsOnline        bool     `json:"is_online"`
}

func (req tutorRequest) attributes() tutor.Attributes {
	return tutor.Attributes{
		ID:              req.ID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Qualifications:  req.Qualifications,
		BioText:         req.Bio,
		TeachingStyle:   req.TeachingStyle,
		HourlyRate:      req.HourlyRate,
		ExperienceYears: req.ExperienceYears,
		IsOnline:        req.IsOnline,
	}
}

// handleCreateTutor handles POST /api/v1/tutors.
func (s *Server) handleCreateTutor(w http.ResponseWriter, r *http.Request) {
	var req tutorRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	created, err := s.catalog.Create(r.Context(), req.attributes())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/tutors/"+created.ID())
	writeJSON(w, http.StatusCreated, tutorToJSON(&created))
}

// handleListTutors handles GET /api/v1/tutors.
func (s *Server) handleListTutors(w http.ResponseWriter, r *http.Request) {
	tutors, err := s.catalog.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]tutorJSON, len(tutors))
	for i := range tutors {
		items[i] = tutorToJSON(&tutors[i])
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(items),
		"tutors": items,
	})
}

// handleGetTutor handles GET /api/v1/tutors/{id}.
func (s *Server) handleGetTutor(w http.ResponseWriter, r *http.Request) {
	t, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tutorToJSON(&t))
}

type tutorPatchRequest struct {
	FirstName       *string   `json:"first_name"`
	LastName        *string   `json:"last_name"`
	Qualifications  *[]string `json:"qualifications"`
	Bio             *string   `json:"bio"`
	TeachingStyle   *string   `json:"teaching_style"`
	HourlyRate      *float64  `json:"hourly_rate"`
	ExperienceYears *int      `json:"experience_years"`
	IsOnline        *bool     `json:"is_online"`
}

// handlePatchTutor handles PATCH /api/v1/tutors/{id}.
func (s *Server) handlePatchTutor(w http.ResponseWriter, r *http.Request) {
	var req tutorPatchRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	fields := patch.Fields{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		BioText:         req.Bio,
		TeachingStyle:   req.TeachingStyle,
		HourlyRate:      req.HourlyRate,
		ExperienceYears: req.ExperienceYears,
		IsOnline:        req.IsOnline,
	}
	if req.Qualifications != nil {
		fields.Qualifications = *req.Qualifications
		fields.HasQuals = true
	}

	p, err := patch.New(fields)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	updated, err := s.catalog.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tutorToJSON(&updated))
}

// handleDeleteTutor handles DELETE /api/v1/tutors/{id}.
func (s *Server) handleDeleteTutor(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type bulkRequest struct {
	Tutors []tutorRequest `json:"tutors"`
}

type bulkItemJSON struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// handleBulkUpsert handles POST /api/v1/tutors/bulk.
func (s *Server) handleBulkUpsert(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	items := make([]tutor.Attributes, len(req.Tutors))
	for i, t := range req.Tutors {
		items[i] = t.attributes()
	}

	results, err := s.catalog.BulkUpsert(r.Context(), items)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	succeeded, failed := 0, 0
	out := make([]bulkItemJSON, len(results))
	for i, res := range results {
		out[i] = bulkItemJSON{ID: res.ID(), Status: string(res.Status())}
		if res.Status() == batch.StatusOK {
			succeeded++
		} else {
			failed++
			if res.Err() != nil {
				out[i].Error = res.Err().Error()
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items":     out,
		"succeeded": succeeded,
		"failed":    failed,
	})
}

type reviewRequest struct {
	StudentName         string  `json:"student_name"`
	Rating              float64 `json:"rating"`
	Comment             string  `json:"comment"`
	KnowledgeRating     *int    `json:"knowledge_rating"`
	TeachingStyleRating *int    `json:"teaching_style_rating"`
	CommunicationRating *int    `json:"communication_rating"`
}

type reviewJSON struct {
	ID                  string  `json:"id"`
	TutorID             string  `json:"tutor_id"`
	StudentName         string  `json:"student_name,omitempty"`
	Rating              float64 `json:"rating"`
	Comment             string  `json:"comment,omitempty"`
	KnowledgeRating     *int    `json:"knowledge_rating,omitempty"`
	TeachingStyleRating *int    `json:"teaching_style_rating,omitempty"`
	CommunicationRating *int    `json:"communication_rating,omitempty"`
	CreatedAt           string  `json:"created_at"`
}

// handleAddReview handles POST /api/v1/tutors/{id}/reviews. The stored
// review is sentiment-tagged in the response; the tutor's average
// rating is recomputed from all reviews.
func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	attrs := review.Attributes{
		StudentName:         req.StudentName,
		Rating:              req.Rating,
		Comment:             req.Comment,
		KnowledgeRating:     req.KnowledgeRating,
		TeachingStyleRating: req.TeachingStyleRating,
		CommunicationRating: req.CommunicationRating,
	}

	rev, updated, err := s.catalog.AddReview(r.Context(), chi.URLParam(r, "id"), attrs)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := map[string]any{
		"status": "success",
		"review": reviewToJSON(&rev),
	}
	if rating, ok := updated.AverageRating(); ok {
		resp["average_rating"] = rating
	}
	if comment, ok := rev.Comment(); ok {
		analysis := s.scorer.Analyze(comment)
		metrics.SentimentAnalysesTotal.WithLabelValues(string(analysis.Label)).Inc()
		resp["sentiment"] = analysisToJSON(analysis)
	}

	writeJSON(w, http.StatusCreated, resp)
}

// handleListReviews handles GET /api/v1/tutors/{id}/reviews.
func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	reviews, err := s.catalog.Reviews(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]reviewJSON, len(reviews))
	for i := range reviews {
		items[i] = reviewToJSON(&reviews[i])
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tutor_id": id,
		"count":    len(items),
		"reviews":  items,
	})
}

// handleTutorSentiment handles GET /api/v1/tutors/{id}/sentiment.
func (s *Server) handleTutorSentiment(w http.ResponseWriter, r *http.Request) {
	if !s.allowQuota(w, r, domusage.ScopeSentiment) {
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := s.catalog.Get(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	summary, err := s.scorer.ForTutor(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tutor_id": summary.TutorID,
		"summary":  summaryToJSON(summary.Summary),
	})
}

func tutorToJSON(t *tutor.Tutor) tutorJSON {
	quals := t.Qualifications()
	if quals == nil {
		quals = []string{}
	}

	out := tutorJSON{
		ID:              t.ID(),
		FirstName:       t.FirstName(),
		LastName:        t.LastName(),
		FullName:        t.FullName(),
		Qualifications:  quals,
		ExperienceYears: t.ExperienceYears(),
		IsOnline:        t.IsOnline(),
	}
	if bio, ok := t.BioText(); ok {
		out.Bio = bio
	}
	if style, ok := t.TeachingStyle(); ok {
		out.TeachingStyle = style
	}
	if rate, ok := t.HourlyRate(); ok {
		out.HourlyRate = &rate
	}
	if rating, ok := t.AverageRating(); ok {
		out.AverageRating = &rating
	}
	return out
}

func reviewToJSON(rev *review.Review) reviewJSON {
	out := reviewJSON{
		ID:          rev.ID(),
		TutorID:     rev.TutorID(),
		StudentName: rev.StudentName(),
		Rating:      rev.Rating(),
		CreatedAt:   rev.CreatedAt().UTC().Format(time.RFC3339),
	}
	if comment, ok := rev.Comment(); ok {
		out.Comment = comment
	}
	if v, ok := rev.KnowledgeRating(); ok {
		out.KnowledgeRating = &v
	}
	if v, ok := rev.TeachingStyleRating(); ok {
		out.TeachingStyleRating = &v
	}
	if v, ok := rev.CommunicationRating(); ok {
		out.CommunicationRating = &v
	}
	return out
}
