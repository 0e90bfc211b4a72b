package faker

// Person name vocabulary.

var firstNames = []string{
	// Western European
	"Alice", "Arthur", "Beatrice", "Charles", "Clara", "Daniel",
	"Edith", "Felix", "Greta", "Henry", "Ingrid", "Jonas",
	"Lena", "Martin", "Nora", "Oscar", "Petra", "Quentin",
	// Iberian and Latin American
	"Alejandro", "Camila", "Diego", "Elena", "Joaquin", "Lucia",
	"Mateo", "Sofia", "Tomas", "Valentina",
	// East Asian
	"Akira", "Haruto", "Jin", "Mei", "Sakura", "Takeshi",
	// South Asian and Middle Eastern
	"Amir", "Dara", "Farah", "Kiran", "Leila", "Omar", "Priya", "Zara",
}

var lastNames = []string{
	"Abbott", "Barnes", "Calloway", "Dupont", "Eriksen", "Fontaine",
	"Grimaldi", "Holloway", "Ibarra", "Jansen", "Kowalski", "Lindqvist",
	"Moreau", "Nakamura", "Okafor", "Petrov", "Quintana", "Rahman",
	"Sandoval", "Takahashi", "Umarov", "Vasquez", "Whitfield", "Yamamoto",
	"Zielinski", "Haddad", "Costa", "Novak", "Silva", "Weber",
}

var honorifics = []string{
	"Dr.", "Prof.", "Capt.", "Rev.",
}

// Address vocabulary.

var cityPrefixes = []string{
	"North", "South", "East", "West", "New", "Old", "Lake", "Port",
	"Fort", "Mount",
}

var cityStems = []string{
	"ashton", "brook", "clear", "fair", "glen", "haven", "iron",
	"maple", "oak", "river", "stone", "willow", "winter", "harbor",
}

var citySuffixes = []string{
	"burg", "field", "ford", "gate", "mouth", "side", "ton", "view",
	"ville", "wood",
}

var streetNames = []string{
	"Alder", "Birch", "Cedar", "Dogwood", "Elm", "Foxglove",
	"Hawthorn", "Juniper", "Larch", "Magnolia", "Poplar", "Rowan",
	"Sycamore", "Tamarack", "Walnut",
}

var streetSuffixes = []string{
	"Avenue", "Boulevard", "Court", "Crescent", "Drive", "Lane",
	"Road", "Street", "Terrace", "Way",
}

var countries = []string{
	"Argentina", "Australia", "Brazil", "Canada", "Denmark", "Egypt",
	"Finland", "France", "Germany", "Ghana", "India", "Indonesia",
	"Italy", "Japan", "Kenya", "Mexico", "Morocco", "Netherlands",
	"New Zealand", "Norway", "Peru", "Poland", "Portugal", "Spain",
	"Sweden", "Thailand", "Turkey", "Uruguay", "Vietnam",
}

// Internet vocabulary. Some domain words carry non-ASCII letters on
// purpose so domain generation exercises the punycode path.

var domainWords = []string{
	"acme", "apex", "atlas", "aurora", "beacon", "bücher",
	"café", "cobalt", "crème", "delta", "ember", "façade",
	"fjord", "granite", "jalapeño", "lumen", "meridian", "nimbus",
	"orbit", "piñata", "quartz", "señal", "summit", "zenith",
}

var topLevelDomains = []string{
	"com", "dev", "example", "io", "net", "org",
}

var usernameSeparators = []string{
	".", "_", "",
}
