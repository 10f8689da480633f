// Package sdk provides a Go client for the tutormatch HTTP API.
//
//	client, _ := sdk.New("http://localhost:8080")
//
//	recs, _ := client.Recommendations().Recommend(ctx, sdk.RecommendRequest{
//	    Query:    "patient calculus tutor for exam prep",
//	    MaxPrice: sdk.Float(60),
//	    Limit:    5,
//	})
//
//	tutor, _ := client.Tutors().Create(ctx, sdk.TutorAttributes{
//	    ID:        "tut-42",
//	    FirstName: "Sarah",
//	    LastName:  "Chen",
//	})
//
//	_, _ = client.Reviews().Add(ctx, tutor.ID, sdk.ReviewInput{
//	    StudentName: "Alex",
//	    Rating:      5,
//	    Comment:     "Excellent and patient",
//	})
//
// Service-side failures surface as *APIError values that also match the
// package sentinels via errors.Is:
//
//	if errors.Is(err, sdk.ErrTutorNotFound) { ... }
package sdk
