package dataset

var (
	WhiteKinds = []string{
		"Albarino", "Aligote", "Arneis", "Asti Spumante",
		"Auslese", "Blanc de Blancs", "Blanc de Noirs", "Boal",
		"Cava", "Champagne", "Chardonnay", "Chenin Blanc",
		"Colombard", "Constantia", "Cortese", "Eiswein",
		"Frascati", "Gewurztraminer", "Grappa", "Johannisberg Riesling",
		"Kir", "Lambrusco", "Liebfraumilch", "Madeira",
		"Marc", "Marsala", "Marsanne", "Moscato",
		"Muller-Thurgau", "Muscat", "Pinot Blanc", "Pinot Gris",
		"Pinot Meunier", "Retsina", "Roussanne", "Sauterns",
		"Sauvignon Blanc", "Semillon", "Soave", "Tokay",
		"Traminer", "Trebbiano", "Ugni Blanc", "Verdicchio",
		"Viognier",
	}

	RedKinds = []string{
		"Amarone", "Banylus", "Barbaresco", "Bardolino",
		"Barolo", "Beaujolais", "Blanc de Noirs", "Brunello",
		"Cabernet Franc", "Cabernet Sauvignon", "Cahors", "Carmenere",
		"Chateauneuf-du-Pape", "Chianti", "Claret", "Dolcetto",
		"Gamay", "Gamay Beaujolais", "Gattinara", "Gewurztraminer",
		"Kir", "Lambrusco", "Malbec", "Marc", "Marsala",
		"Merlot", "Montepulciano", "Nebbiolo", "Petit Verdot",
		"Petite Sirah", "Pinot Meunier", "Pinot Noir", "Pinotage",
		"Port", "Sangiovese", "Sherry", "Valpolicella", "Zinfandel",
	}

	RoseKinds = []string{
		"Blush", "Cava", "Champagne", "Grenache",
		"Kir", "Lambrusco", "Marc",
	}

	Colors = []string{"red", "white", "rose"}

	// KindsByColor maps each color to the kinds a wine of that color may be.
	// Some kinds appear under more than one color.
	KindsByColor = map[string][]string{
		"red":   RedKinds,
		"white": WhiteKinds,
		"rose":  RoseKinds,
	}

	Sugars = []string{"dry", "semi-dry", "semi-sweet", "sweet"}

	Volumes = []float64{0.1875, 0.75, 1.5, 3, 4.5, 6, 9, 12, 15, 18, 20, 25, 27, 30}

	Countries = []string{
		"France", "Italy", "Spain", "USA", "Argentina",
		"Australia", "China", "South Africa", "Germany",
		"Chile", "Russia", "Portugal", "Romania", "Greece",
		"Hungary", "Brazil", "Austria", "Moldova", "Bulgaria",
		"New Zealand", "Croatia",
	}
)

// KindAllowed reports whether kind belongs to the vocabulary of color.
func KindAllowed(color, kind string) bool {
	return contains(KindsByColor[color], kind)
}

func contains[T comparable](items []T, v T) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
