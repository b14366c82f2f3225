package exhibition

// Manual lists exhibitions entered by hand for shows the fetcher could
// not scrape (JavaScript-heavy gallery sites, listings without machine
// readable dates). Entries are merged into the cache with the usual
// first-seen-wins upsert, so re-running the merge is harmless.
var Manual = []*Exhibition{
	{
		Title:         "Late at night, early in the morning, at noon",
		Artist:        "Glenn Ligon",
		Gallery:       "Hauser & Wirth",
		Location:      "Hauser & Wirth, 443 West 18th Street, New York, NY",
		StartDate:     "2026-01-15",
		EndDate:       "2026-04-04",
		Description:   "A two-part exhibition of new and historic works on paper. This presentation extends the artist's longstanding engagement with language and abstraction through richly layered compositions that meditate on the color blue and its emotional, historical and cultural inflections.",
		ArtistBio:     "Glenn Ligon has pursued an incisive exploration of American history, literature and society. In 2011, the Whitney Museum held a mid-career retrospective, 'Glenn Ligon: AMERICA.'",
		ExhibitionURL: "https://www.hauserwirth.com/hauser-wirth-exhibitions/glenn-ligon-late-at-night-early-in-the-morning-at-noon/",
		ArtistURL:     "https://www.hauserwirth.com/artists/24240-glenn-ligon/",
		SourceURL:     "https://www.galleriesnow.net/gallery/hauser-wirth/",
	},
	{
		Title:         "Feedback Loop",
		Artist:        "Alexis Rockman",
		Gallery:       "Jack Shainman Gallery",
		Location:      "Jack Shainman Gallery, 513 West 20th Street, New York, NY",
		StartDate:     "2026-01-15",
		EndDate:       "2026-02-28",
		Description:   "Rockman's first solo presentation with Jack Shainman Gallery. The exhibition highlights humanity's fragile relationship to the natural world through Forest Fire paintings and watercolors.",
		ArtistBio:     "Alexis Rockman is known for large-scale paintings depicting ecological and environmental themes.",
		ExhibitionURL: "https://jackshainman.com/exhibitions/alexis_rockman_feedback_loop",
		ArtistURL:     "https://www.alexisrockman.net/",
		SourceURL:     "https://www.galleriesnow.net/gallery/jack-shainman-gallery/",
	},
	{
		Title:         "Grids",
		Artist:        "Dan Flavin",
		Gallery:       "David Zwirner",
		Location:      "David Zwirner, 525 West 19th Street, New York, NY",
		StartDate:     "2026-01-15",
		EndDate:       "2026-02-21",
		Description:   "Works by the pioneering Minimalist artist Dan Flavin, focusing on his grid-based light installations.",
		ArtistBio:     "Dan Flavin (1933-1996) was an American minimalist artist famous for creating sculptural objects from commercially available fluorescent light fixtures.",
		ExhibitionURL: "https://www.davidzwirner.com/exhibitions/dan-flavin-grids",
		ArtistURL:     "https://www.davidzwirner.com/artists/dan-flavin",
		SourceURL:     "https://www.galleriesnow.net/gallery/david-zwirner/",
	},
	{
		Title:         "Solo Exhibition (Swimmers and Surfers)",
		Artist:        "Gideon Appah",
		Gallery:       "Pace Gallery",
		Location:      "Pace Gallery, 540 West 25th Street, New York, NY",
		StartDate:     "2026-01-16",
		EndDate:       "2026-02-28",
		Description:   "Gideon Appah's first solo show with Pace in New York, focusing on his 'Swimmers and Surfers' series.",
		ArtistBio:     "Gideon Appah is a Ghanaian contemporary artist known for vibrant, large-scale paintings exploring themes of leisure, identity, and the human figure.",
		ExhibitionURL: "https://www.pacegallery.com/exhibitions/gideon-appah-new-york/",
		ArtistURL:     "https://www.pacegallery.com/artists/gideon-appah/",
		SourceURL:     "https://www.galleriesnow.net/gallery/pace-gallery/",
	},
	{
		Title:         "Delayed Gravity",
		Artist:        "Wang Guangle",
		Gallery:       "Pace Gallery",
		Location:      "Pace Gallery, 540 West 25th Street, New York, NY",
		StartDate:     "2026-01-16",
		EndDate:       "2026-02-28",
		Description:   "New works by Chinese contemporary artist Wang Guangle, known for his meditative approach to painting.",
		ArtistBio:     "Wang Guangle (b. 1976) is a Beijing-based artist known for methodical, labor-intensive paintings that explore concepts of time and accumulation.",
		ExhibitionURL: "https://www.pacegallery.com/exhibitions/wang-guangle-delayed-gravity/",
		ArtistURL:     "https://www.pacegallery.com/artists/wang-guangle/",
		SourceURL:     "https://www.galleriesnow.net/gallery/pace-gallery/",
	},
	{
		Title:         "A Moment in Time: Plaster Surrogates, 1991-1993",
		Artist:        "Allan McCollum",
		Gallery:       "Petzel Gallery",
		Location:      "Petzel Gallery, 456 West 18th Street, New York, NY",
		StartDate:     "2026-01-15",
		EndDate:       "2026-02-28",
		Description:   "Allan McCollum's iconic Plaster Surrogates, exploring mass production, uniqueness, and the nature of art objects.",
		ArtistBio:     "Allan McCollum (b. 1944) is a conceptual artist examining systems of production and value placed on uniqueness in art.",
		ExhibitionURL: "https://www.petzel.com/exhibitions/allan-mccollum",
		ArtistURL:     "https://allanmccollum.net/",
		SourceURL:     "https://www.galleriesnow.net/gallery/petzel/",
	},
	{
		Title:         "Thought In Material, Selected Works 1984-2025",
		Artist:        "Andrew Lord",
		Gallery:       "Gladstone Gallery",
		Location:      "Gladstone Gallery, 515 West 24th Street, New York, NY",
		StartDate:     "2026-01-15",
		EndDate:       "2026-02-21",
		Description:   "A survey spanning four decades of Andrew Lord's sculptural practice.",
		ArtistBio:     "Andrew Lord (b. 1950) is a British sculptor known for ceramic works that challenge boundaries between craft and fine art.",
		ExhibitionURL: "https://www.gladstonegallery.com/exhibition/andrew-lord-thought-in-material",
		ArtistURL:     "https://www.gladstonegallery.com/artist/andrew-lord",
		SourceURL:     "https://www.galleriesnow.net/gallery/gladstone-gallery/",
	},
	{
		Title:         "Works from the 1960s",
		Artist:        "Sol LeWitt",
		Gallery:       "Paula Cooper Gallery",
		Location:      "Paula Cooper Gallery, 524 West 26th Street, New York, NY",
		StartDate:     "2026-01-15",
		EndDate:       "2026-02-28",
		Description:   "Foundational works from the 1960s, when Sol LeWitt developed the conceptual art principles that defined his career.",
		ArtistBio:     "Sol LeWitt (1928-2007) was linked to Conceptual art and Minimalism, famous for wall drawings and 'structures.'",
		ExhibitionURL: "https://www.paulacoopergallery.com/exhibitions/sol-lewitt-works-from-the-1960s",
		ArtistURL:     "https://www.paulacoopergallery.com/artists/sol-lewitt",
		SourceURL:     "https://www.galleriesnow.net/gallery/paula-cooper-gallery/",
	},
	{
		Title:         "Between the Clock and the Bed",
		Artist:        "Jasper Johns",
		Gallery:       "Gagosian",
		Location:      "Gagosian, 980 Madison Avenue, New York, NY",
		StartDate:     "2026-01-22",
		EndDate:       "2026-03-14",
		Description:   "Works exploring Jasper Johns' iconic crosshatch motif.",
		ArtistBio:     "Jasper Johns (b. 1930) is one of the most influential American artists of the 20th century, known for flags, targets, and crosshatch paintings.",
		ExhibitionURL: "https://gagosian.com/exhibitions/jasper-johns-between-the-clock-and-the-bed/",
		ArtistURL:     "https://gagosian.com/artists/jasper-johns/",
		SourceURL:     "https://www.galleriesnow.net/shows/jasper-johns-between-the-clock-and-the-bed/",
	},
	{
		Title:         "Gathering Wool",
		Artist:        "Louise Bourgeois",
		Gallery:       "Hauser & Wirth",
		Location:      "Hauser & Wirth, 542 West 22nd Street, New York, NY",
		StartDate:     "2026-01-15",
		EndDate:       "2026-04-18",
		Description:   "Sculptures, reliefs, and works on paper exploring themes of memory, the body, and psychological states.",
		ArtistBio:     "Louise Bourgeois (1911-2010) was a French-American artist best known for large-scale sculpture. She is most famous for her spider sculptures.",
		ExhibitionURL: "https://www.hauserwirth.com/hauser-wirth-exhibitions/louise-bourgeois-gathering-wool/",
		ArtistURL:     "https://www.hauserwirth.com/artists/louise-bourgeois/",
		SourceURL:     "https://www.galleriesnow.net/gallery/hauser-wirth/",
	},
}
