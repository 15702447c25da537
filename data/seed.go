package data

// Seed returns the sample books the store is populated with at startup.
func Seed() []Book {
	return []Book{
		{
			ID:          1,
			Author:      "Gabriel García Márquez",
			Title:       "One Hundred Years of Solitude",
			Description: "The multi-generational story of the Buendía family in the town of Macondo.",
			Genre:       "Magical Realism",
		},
		{
			ID:          2,
			Author:      "George Orwell",
			Title:       "Nineteen Eighty-Four",
			Description: "A man rebels against a totalitarian state that watches his every move.",
			Genre:       "Dystopian Fiction",
		},
		{
			ID:          3,
			Author:      "Ursula K. Le Guin",
			Title:       "A Wizard of Earthsea",
			Description: "A young mage unleashes a shadow upon the world and must hunt it down.",
			Genre:       "Fantasy",
		},
	}
}
