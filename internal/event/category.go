package event

// Category is the fixed set of event categories. Free-form text that matches
// no category's keywords normalizes to CategoryEntertainment.
type Category string

const (
	CategoryConcert       Category = "Concert"
	CategoryConference    Category = "Conference"
	CategoryParty         Category = "Party"
	CategoryFestival      Category = "Festival"
	CategorySports        Category = "Sports"
	CategoryComedy        Category = "Comedy"
	CategoryTheater       Category = "Theater"
	CategoryEntertainment Category = "Entertainment"
)

// Categories lists every valid category in declaration order.
var Categories = []Category{
	CategoryConcert,
	CategoryConference,
	CategoryParty,
	CategoryFestival,
	CategorySports,
	CategoryComedy,
	CategoryTheater,
	CategoryEntertainment,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
