package datagen

import "time"

// Row counts. Tests assert exact cardinality against these, so they are the
// single source of truth for table sizes. Profiles carry no constant of
// their own: they mirror Accounts row for row.
const (
	NumAccounts         = 10000
	NumStats            = 1000
	NumTeams            = 200
	NumCricketScores    = 300
	NumMultiSportScores = 300
	NumMatches          = 100
	NumTournaments      = 50
	NumUserMatches      = 1000
	NumHighlights       = 200
	NumShopItems        = 100
	NumFeedEvents       = 500
	NumLanguages        = 3
	NumShareEvents      = 200
	NumSupportTickets   = 200
	NumContactMessages  = 200
)

// Match ID numbering keeps three disjoint blocks, one per match table.
const (
	cricketMatchIDBase   = 1
	multiSportMatchIDBase = 501
	scheduledMatchIDBase  = 801
)

// Generation window for dates and timestamps.
var (
	WindowStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	WindowEnd   = time.Date(2025, time.June, 24, 0, 0, 0, 0, time.UTC)

	birthdateStart = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	birthdateEnd   = time.Date(2005, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Fixed vocabularies shared across builders.
var (
	sportNames = []string{"Cricket", "Football", "Basketball", "Badminton"}

	teamNamePool = []string{
		"Mumbai Mavericks", "Delhi Dynamos", "Chennai Chargers", "Bangalore Blasters",
		"Kolkata Knights", "Hyderabad Hawks", "Pune Panthers", "Ahmedabad Avengers",
	}

	venues = []string{
		"Wankhede Stadium", "Eden Gardens", "Chinnaswamy Stadium",
		"Lords Arena", "MCG", "Oval",
	}

	matchFormats      = []string{"T20", "ODI", "Test"}
	tournamentFormats = []string{"Knockout", "Round-robin"}
	userRoles         = []string{"Player", "Scorer", "Organizer", "Spectator"}
	issueTypes        = []string{"Bug", "Feature Request", "Payment Issue", "Other"}
	sharePlatforms    = []string{"WhatsApp", "Twitter", "Facebook", "Email"}
	matchStatuses     = []string{"Live", "Completed", "Upcoming"}
	genders           = []string{"Male", "Female", "Other"}
	achievementPool   = []string{"MVP", "Top Scorer", "Best Bowler"}
	productKinds      = []string{"Bat", "Ball", "Jersey", "Shoes"}
	productCategories = []string{"Equipment", "Apparel", "Accessories"}
)
