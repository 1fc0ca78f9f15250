package job

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter holds the optional list predicates. The zero value matches every
// document; an absent parameter is a deliberate "no filter", not an error.
type Filter struct {
	Category      string
	Title         string
	Status        string
	EmployerEmail string
}

// Predicate translates the filter into a bson query. Category and title are
// full-string case-insensitive matches: the pattern is anchored on both
// ends, so despite the route being called "search" it is equality, not a
// substring scan. Metacharacters in user input are quoted.
func (f Filter) Predicate() bson.M {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = anchored(f.Category)
	}
	if f.Title != "" {
		query["job_title"] = anchored(f.Title)
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.EmployerEmail != "" {
		query["employer_email"] = f.EmployerEmail
	}
	return query
}

func anchored(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

// Page describes a zero-based page request.
type Page struct {
	Index int64
	Size  int64
}

// Skip is the number of documents to pass over before the page starts.
func (p Page) Skip() int64 { return p.Index * p.Size }

// Limit caps the page to its size; a result never exceeds it. The store
// reads a limit of 0 as unlimited, so callers must validate Size first.
func (p Page) Limit() int64 { return p.Size }

// ListProjection bounds paginated payloads to the card fields. Detail reads
// return the full document instead.
func ListProjection() bson.M {
	return bson.M{"company_name": 1, "job_title": 1, "deadline": 1, "status": 1}
}
