package mongodb

import (
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// filmFilter builds the search filter for a free-text query: a
// case-insensitive title substring, an exact case-insensitive genre, and,
// when the query is all digits, an exact year. Returns nil for an empty
// query.
func filmFilter(query string) bson.M {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}

	quoted := regexp.QuoteMeta(q)
	clauses := bson.A{
		bson.M{"title": bson.M{"$regex": quoted, "$options": "i"}},
		bson.M{"genre": bson.M{"$regex": "^" + quoted + "$", "$options": "i"}},
	}
	if year, err := strconv.Atoi(q); err == nil && isDigits(q) {
		clauses = append(clauses, bson.M{"year": year})
	}
	return bson.M{"$or": clauses}
}

func isDigits(q string) bool {
	for _, r := range q {
		if r < '0' || r > '9' {
			return false
		}
	}
	return q != ""
}
