package user

// User is the core domain entity for an account that tasks can be
// assigned to. Email is unique across all users, case-sensitive as stored.
type User struct {
	ID       string `json:"id" bson:"id"`
	Username string `json:"username" bson:"username"`
	Email    string `json:"email" bson:"email"`
}
