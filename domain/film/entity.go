package film

// Film is a read-only catalog record, populated out of band.
// Films carry no identifier; popularity is used only for ranking
// and tie-breaking.
type Film struct {
	Title      string  `json:"title" bson:"title"`
	Year       int     `json:"year" bson:"year"`
	Genre      string  `json:"genre" bson:"genre"`
	Popularity float64 `json:"popularity" bson:"popularity"`
}
