package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/example/taskboard/storage"
)

// setFields translates a TaskPatch into the $set document for a
// single-document update. Nil patch fields are omitted so the stored
// values stay untouched.
func setFields(p storage.TaskPatch) bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.AIResponse != nil {
		set["ai_response"] = *p.AIResponse
	}
	if p.Details != nil {
		set["details"] = p.Details
	}
	if p.UpdatedAt != nil {
		set["updated_at"] = *p.UpdatedAt
	}
	return set
}
