package external

// Question is an upstream question reduced to the fields the importer stores.
type Question struct {
	Category   string
	Difficulty string
	Text       string
	Answer     string
}
