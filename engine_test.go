package tutormatch

import (
	"context"
	"strings"
	"testing"
)

func demoTutors() []Tutor {
	return []Tutor{
		NewTutor("tut-1", "Sarah", "Chen").
			Qualifications("Mathematics", "Calculus").
			Bio("PhD in applied mathematics, ten years teaching calculus and linear algebra").
			TeachingStyle("structured and patient").
			HourlyRate(55).
			Rating(4.9).
			Experience(10).
			Online().
			Build(),
		NewTutor("tut-2", "James", "Okafor").
			Qualifications("Physics").
			Bio("Physics teacher focused on mechanics and exam preparation").
			HourlyRate(40).
			Rating(4.5).
			Experience(6).
			Build(),
		NewTutor("tut-3", "Maya", "Lindqvist").
			Qualifications("English Literature").
			Bio("Essay writing and literature analysis for secondary students").
			HourlyRate(30).
			Experience(3).
			Online().
			Build(),
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(WithTutors(demoTutors()...))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestNew_SeedsCatalog(t *testing.T) {
	e := newTestEngine(t)
	if got := e.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}

	all := e.Tutors()
	if len(all) != 3 || all[0].ID != "tut-1" || all[2].ID != "tut-3" {
		t.Fatalf("Tutors() order wrong: %+v", all)
	}
}

func TestNew_RejectsInvalidSeed(t *testing.T) {
	_, err := New(WithTutors(Tutor{ID: "bad"}))
	if err == nil {
		t.Fatal("expected error for tutor without a first name")
	}
	if !strings.Contains(err.Error(), `add tutor "bad"`) {
		t.Fatalf("error %q does not name the tutor", err)
	}
}

func TestAdd_ReplacesExisting(t *testing.T) {
	e := newTestEngine(t)

	updated := demoTutors()[0]
	updated.FirstName = "Sara"
	if err := e.Add(updated); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if e.Len() != 3 {
		t.Fatalf("Len = %d after replace, want 3", e.Len())
	}
	got, ok := e.Get("tut-1")
	if !ok || got.FirstName != "Sara" {
		t.Fatalf("Get after replace = %+v, %v", got, ok)
	}
}

func TestRemove(t *testing.T) {
	e := newTestEngine(t)

	if !e.Remove("tut-2") {
		t.Fatal("Remove(tut-2) = false, want true")
	}
	if e.Remove("tut-2") {
		t.Fatal("second Remove(tut-2) = true, want false")
	}
	if _, ok := e.Get("tut-2"); ok {
		t.Fatal("tut-2 still present after Remove")
	}
}

func TestRecommend(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Recommend("calculus tutor with teaching experience").Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("no recommendations")
	}
	top := recs[0]
	if top.Tutor.ID != "tut-1" {
		t.Fatalf("top result = %s, want tut-1", top.Tutor.ID)
	}
	if top.Rank != 1 {
		t.Fatalf("top rank = %d, want 1", top.Rank)
	}
	if top.Similarity <= 0 {
		t.Fatalf("similarity = %v, want > 0", top.Similarity)
	}
	if top.Explanation.Summary == "" || top.Explanation.Strength == "" {
		t.Fatalf("explanation incomplete: %+v", top.Explanation)
	}
	if len(top.Explanation.MatchingKeywords) == 0 {
		t.Fatal("no matching keywords on top result")
	}
}

func TestRecommend_Filters(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	t.Run("max price", func(t *testing.T) {
		recs, err := e.Recommend("teacher").MaxPrice(35).Do(ctx)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		for _, r := range recs {
			if r.Tutor.HourlyRate != nil && *r.Tutor.HourlyRate > 35 {
				t.Fatalf("tutor %s over price cap: %v", r.Tutor.ID, *r.Tutor.HourlyRate)
			}
		}
	})

	t.Run("online only", func(t *testing.T) {
		recs, err := e.Recommend("teacher").OnlineOnly().Do(ctx)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		for _, r := range recs {
			if !r.Tutor.Online {
				t.Fatalf("tutor %s is not online", r.Tutor.ID)
			}
		}
	})

	t.Run("limit", func(t *testing.T) {
		recs, err := e.Recommend("teacher").Limit(1).Do(ctx)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		if len(recs) > 1 {
			t.Fatalf("got %d results, want at most 1", len(recs))
		}
	})
}

func TestRecommend_BlankQuery(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Recommend("").Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("blank query returned %d results, want 0", len(recs))
	}
}

func TestExplain(t *testing.T) {
	e := newTestEngine(t)

	insight, err := e.Explain(context.Background(), "calculus", "tut-1")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if insight.TutorID != "tut-1" || insight.TutorName != "Sarah Chen" {
		t.Fatalf("insight identity = %q %q", insight.TutorID, insight.TutorName)
	}
	if insight.Similarity <= 0 {
		t.Fatalf("similarity = %v, want > 0", insight.Similarity)
	}
	if insight.VocabularySize == 0 {
		t.Fatal("vocabulary size is zero")
	}
	if len(insight.QueryTerms) == 0 {
		t.Fatal("no query terms")
	}
}

func TestExplain_UnknownTutor(t *testing.T) {
	e := newTestEngine(t)

	if _, err := e.Explain(context.Background(), "calculus", "missing"); err == nil {
		t.Fatal("expected error for unknown tutor")
	}
}

func TestSimilar(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Similar(context.Background(), "tut-1", 0)
	if err != nil {
		t.Fatalf("Similar: %v", err)
	}
	for _, r := range recs {
		if r.Tutor.ID == "tut-1" {
			t.Fatal("similar results include the tutor itself")
		}
	}
}

func TestSuggestRate_Fallback(t *testing.T) {
	// Three tutors is below the regression training threshold.
	e := newTestEngine(t)

	est, err := e.SuggestRate(context.Background(), 5, "Mathematics")
	if err != nil {
		t.Fatalf("SuggestRate: %v", err)
	}
	if est.Method != "fallback_rule_based" {
		t.Fatalf("method = %q, want fallback_rule_based", est.Method)
	}
	if est.SuggestedRate <= 0 {
		t.Fatalf("suggested rate = %v, want > 0", est.SuggestedRate)
	}
	if est.ExperienceYears != 5 || est.Subject != "Mathematics" {
		t.Fatalf("echoed inputs wrong: %+v", est)
	}
}

func TestSentiment(t *testing.T) {
	e := newTestEngine(t)

	score := e.Sentiment("Sarah is an excellent and patient tutor, we love her lessons")
	if score.Label != "Positive" {
		t.Fatalf("label = %q, want Positive", score.Label)
	}
	if score.Polarity <= 0 {
		t.Fatalf("polarity = %v, want > 0", score.Polarity)
	}
	if score.WordCount == 0 {
		t.Fatal("word count is zero")
	}
}

func TestFullName(t *testing.T) {
	if got := (Tutor{FirstName: "Maya", LastName: "Lindqvist"}).FullName(); got != "Maya Lindqvist" {
		t.Fatalf("FullName = %q", got)
	}
	if got := (Tutor{FirstName: "Maya"}).FullName(); got != "Maya" {
		t.Fatalf("FullName without last name = %q", got)
	}
}
