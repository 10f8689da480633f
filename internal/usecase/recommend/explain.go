package recommend

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/findmytutor/tutormatch/internal/domain/match"
	"github.com/findmytutor/tutormatch/internal/domain/tutor"
	"github.com/findmytutor/tutormatch/internal/vectorspace"
)

// Explanation caps and thresholds.
const (
	maxSummaryTerms    = 3
	maxKeywords        = 5
	maxDetailedMatches = 10
	maxFactorSubjects  = 5
)

// buildExplanation recovers the terms shared by the query and tutor
// vectors, scores each term's contribution to the similarity, and
// synthesizes the summary and factor breakdown. Pure function of its
// inputs: identical inputs produce a byte-identical explanation.
func buildExplanation(
	voc *vectorspace.Vocabulary,
	queryVec, tutorVec vectorspace.Vector,
	t *tutor.Tutor,
	matchPercentage float64,
) match.Explanation {
	matches := make([]match.TermMatch, 0, len(tutorVec))
	for _, term := range tutorVec {
		queryWeight := queryVec.Weight(term.Index)
		if queryWeight <= 0 {
			continue
		}
		matches = append(matches, match.NewTermMatch(
			voc.Term(term.Index),
			round4(queryWeight),
			round4(term.Weight),
			round4(queryWeight*term.Weight),
		))
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Contribution() > matches[j].Contribution()
	})

	keywords := make([]string, 0, maxKeywords)
	for _, m := range matches {
		if len(keywords) == maxKeywords {
			break
		}
		keywords = append(keywords, m.Term())
	}
	detailed := matches
	if len(detailed) > maxDetailedMatches {
		detailed = detailed[:maxDetailedMatches]
	}

	return match.NewExplanation(
		buildSummary(t, matches),
		match.StrengthFor(matchPercentage),
		keywords,
		detailed,
		buildFactors(t, matches),
	)
}

// buildSummary assembles the deterministic natural-language rationale.
// The keyword clause comes from the top three terms; rating and
// experience clauses are appended when their thresholds are met.
func buildSummary(t *tutor.Tutor, matches []match.TermMatch) string {
	name := t.FullName()

	keywords := make([]string, 0, maxSummaryTerms)
	for _, m := range matches {
		if len(keywords) == maxSummaryTerms {
			break
		}
		keywords = append(keywords, titleCase(m.Term()))
	}

	var parts []string
	switch len(keywords) {
	case 0:
		parts = append(parts, fmt.Sprintf("%s has relevant teaching experience", name))
	case 1:
		parts = append(parts, fmt.Sprintf("%s specializes in %s, which matches your search", name, keywords[0]))
	case 2:
		parts = append(parts, fmt.Sprintf("%s has expertise in %s and %s, matching your requirements", name, keywords[0], keywords[1]))
	default:
		joined := strings.Join(keywords[:len(keywords)-1], ", ")
		parts = append(parts, fmt.Sprintf("%s covers %s, and %s, which align with your search", name, joined, keywords[len(keywords)-1]))
	}

	if rating, ok := t.AverageRating(); ok {
		if rating >= 4.0 {
			parts = append(parts, fmt.Sprintf("with an excellent rating of %.1f/5", rating))
		} else if rating >= 3.5 {
			parts = append(parts, fmt.Sprintf("with a good rating of %.1f/5", rating))
		}
	}

	if years := t.ExperienceYears(); years >= 10 {
		parts = append(parts, fmt.Sprintf("and %d years of teaching experience", years))
	} else if years >= 5 {
		parts = append(parts, fmt.Sprintf("and %d years of experience", years))
	}

	return strings.Join(parts, ". ") + "."
}

// Factor names shown to end users.
const (
	FactorKeywords   = "Keyword Relevance"
	FactorSubjects   = "Subject Expertise"
	FactorRating     = "Student Rating"
	FactorExperience = "Teaching Experience"
	FactorPrice      = "Price"
)

// buildFactors emits the ordered factor breakdown. Each factor appears
// only when its precondition holds (terms matched, field present).
func buildFactors(t *tutor.Tutor, matches []match.TermMatch) []match.Factor {
	factors := make([]match.Factor, 0, 5)

	if len(matches) > 0 {
		keywords := make([]string, 0, maxKeywords)
		for _, m := range matches {
			if len(keywords) == maxKeywords {
				break
			}
			keywords = append(keywords, m.Term())
		}
		impact := match.ImpactMedium
		if len(matches) >= 3 {
			impact = match.ImpactHigh
		}
		factors = append(factors, match.NewFactor(
			FactorKeywords,
			fmt.Sprintf("Matched %d keyword(s) from your search", len(matches)),
			impact, keywords, nil,
		))
	}

	if subjects := t.Qualifications(); len(subjects) > 0 {
		capped := subjects
		if len(capped) > maxFactorSubjects {
			capped = capped[:maxFactorSubjects]
		}
		impact := match.ImpactMedium
		if len(subjects) >= 3 {
			impact = match.ImpactHigh
		}
		factors = append(factors, match.NewFactor(
			FactorSubjects,
			fmt.Sprintf("Teaches %d subject(s)", len(subjects)),
			impact, capped, nil,
		))
	}

	if rating, ok := t.AverageRating(); ok {
		impact := match.ImpactLow
		switch {
		case rating >= 4.5:
			impact = match.ImpactHigh
		case rating >= 3.5:
			impact = match.ImpactMedium
		}
		factors = append(factors, match.NewFactor(
			FactorRating,
			fmt.Sprintf("Rated %.1f out of 5 by students", rating),
			impact, nil, &rating,
		))
	}

	if years := t.ExperienceYears(); years > 0 {
		impact := match.ImpactLow
		switch {
		case years >= 10:
			impact = match.ImpactHigh
		case years >= 5:
			impact = match.ImpactMedium
		}
		value := float64(years)
		factors = append(factors, match.NewFactor(
			FactorExperience,
			fmt.Sprintf("%d years of tutoring experience", years),
			impact, nil, &value,
		))
	}

	if rate, ok := t.HourlyRate(); ok {
		var impact match.Impact
		var tier string
		switch {
		case rate <= 30:
			impact, tier = match.ImpactHigh, "Budget-friendly option"
		case rate <= 60:
			impact, tier = match.ImpactMedium, "Moderately priced"
		default:
			impact, tier = match.ImpactLow, "Premium tutor"
		}
		factors = append(factors, match.NewFactor(
			FactorPrice,
			fmt.Sprintf("$%.0f/hour - %s", rate, tier),
			impact, nil, &rate,
		))
	}

	return factors
}

// titleCase upper-cases the first rune of every space-separated word.
// Vocabulary terms are already lower-case, so no folding is needed.
func titleCase(term string) string {
	words := strings.Fields(term)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
