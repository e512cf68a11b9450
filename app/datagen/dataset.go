package datagen

import (
	"fmt"
	"sync"
	"time"
)

// Table names, as exposed to the display layer and used as export file slugs.
const (
	TableAccounts         = "accounts"
	TableProfiles         = "profiles"
	TableStats            = "stats"
	TableTeams            = "teams"
	TableCricketScores    = "cricket_scores"
	TableMultiSportScores = "multi_sport_scores"
	TableMatches          = "matches"
	TableTournaments      = "tournaments"
	TableUserMatches      = "user_matches"
	TableHighlights       = "highlights"
	TableFeed             = "feed"
	TableShopItems        = "shop_items"
	TableLanguages        = "languages"
	TableShareEvents      = "share_events"
	TableSupportTickets   = "support_tickets"
	TableContactMessages  = "contact_messages"
)

// TableNames lists every table in build order.
var TableNames = []string{
	TableAccounts, TableTeams, TableProfiles, TableStats,
	TableCricketScores, TableMultiSportScores, TableMatches, TableTournaments,
	TableUserMatches, TableHighlights, TableFeed, TableShopItems,
	TableLanguages, TableShareEvents, TableSupportTickets, TableContactMessages,
}

var tableSchemas = map[string][]Column{
	TableAccounts:         accountColumns,
	TableProfiles:         profileColumns,
	TableStats:            statsColumns,
	TableTeams:            teamColumns,
	TableCricketScores:    cricketScoreColumns,
	TableMultiSportScores: multiSportScoreColumns,
	TableMatches:          matchColumns,
	TableTournaments:      tournamentColumns,
	TableUserMatches:      userMatchColumns,
	TableHighlights:       highlightColumns,
	TableFeed:             feedColumns,
	TableShopItems:        shopItemColumns,
	TableLanguages:        languageColumns,
	TableShareEvents:      shareEventColumns,
	TableSupportTickets:   supportTicketColumns,
	TableContactMessages:  contactMessageColumns,
}

// Schema returns the column set of a named table.
func Schema(table string) ([]Column, bool) {
	cols, ok := tableSchemas[table]
	if !ok {
		return nil, false
	}
	out := make([]Column, len(cols))
	copy(out, cols)
	return out, true
}

type window struct {
	start, end time.Time
}

// Dataset is one fully built, immutable set of tables. All slices are
// populated by Build and must be treated as read-only afterwards.
type Dataset struct {
	Seed int64

	Accounts         []Account
	Teams            []Team
	Profiles         []Profile
	Stats            []PlayerStats
	CricketScores    []CricketScore
	MultiSportScores []MultiSportScore
	Matches          []Match
	Tournaments      []Tournament
	UserMatches      []UserMatch
	Highlights       []Highlight
	Feed             []FeedEvent
	ShopItems        []ShopItem
	Languages        []Language
	ShareEvents      []ShareEvent
	SupportTickets   []SupportTicket
	ContactMessages  []ContactMessage

	tablesOnce sync.Once
	tables     map[string]*Table
}

// Build generates the full dataset for a seed over the default window.
// Calling it twice with the same seed yields field-for-field identical
// datasets.
func Build(seed int64) (*Dataset, error) {
	return BuildWindow(seed, WindowStart, WindowEnd)
}

// BuildWindow generates the full dataset with an explicit date window.
//
// Builders run in a frozen dependency order (referenced tables first):
// accounts, teams, profiles, stats, cricket_scores, multi_sport_scores,
// matches, tournaments, user_matches, highlights, feed, shop_items,
// languages, share_events, support_tickets, contact_messages. Each table
// draws from its own salted sub-sequence, so the values of one table never
// depend on how many draws another table consumed.
//
// On the first unsatisfiable draw the whole build fails with an error naming
// the table; a partially built dataset is never returned.
func BuildWindow(seed int64, start, end time.Time) (*Dataset, error) {
	if end.Before(start) {
		return nil, configErrorf("window", "end %s before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	win := window{start: start, end: end}
	d := &Dataset{Seed: seed}

	build := func(table string, fn func(*Sequence)) error {
		seq := newSequence(seed, table)
		fn(seq)
		if err := seq.Err(); err != nil {
			return fmt.Errorf("build %s: %w", table, err)
		}
		return nil
	}

	var accountIDs, teamNames, matchIDs []string
	steps := []struct {
		table string
		fn    func(*Sequence)
	}{
		{TableAccounts, func(seq *Sequence) {
			d.Accounts = buildAccounts(seq, win)
			accountIDs = make([]string, len(d.Accounts))
			for i, a := range d.Accounts {
				accountIDs[i] = a.UserID
			}
		}},
		{TableTeams, func(seq *Sequence) {
			d.Teams = buildTeams(seq, accountIDs)
			teamNames = distinctTeamNames(d.Teams)
		}},
		{TableProfiles, func(seq *Sequence) { d.Profiles = buildProfiles(seq, d.Accounts, teamNames) }},
		{TableStats, func(seq *Sequence) { d.Stats = buildStats(seq, d.Accounts) }},
		{TableCricketScores, func(seq *Sequence) { d.CricketScores = buildCricketScores(seq, teamNames, win) }},
		{TableMultiSportScores, func(seq *Sequence) { d.MultiSportScores = buildMultiSportScores(seq, teamNames) }},
		{TableMatches, func(seq *Sequence) {
			d.Matches = buildMatches(seq, teamNames, win)
			matchIDs = allMatchIDs(d.CricketScores, d.MultiSportScores, d.Matches)
		}},
		{TableTournaments, func(seq *Sequence) { d.Tournaments = buildTournaments(seq, teamNames, matchIDs, win) }},
		{TableUserMatches, func(seq *Sequence) { d.UserMatches = buildUserMatches(seq, d.Accounts, matchIDs, win) }},
		{TableHighlights, func(seq *Sequence) { d.Highlights = buildHighlights(seq, matchIDs, win) }},
		{TableFeed, func(seq *Sequence) { d.Feed = buildFeed(seq, teamNames, matchIDs, win) }},
		{TableShopItems, func(seq *Sequence) { d.ShopItems = buildShopItems(seq) }},
		{TableLanguages, func(*Sequence) { d.Languages = buildLanguages() }},
		{TableShareEvents, func(seq *Sequence) { d.ShareEvents = buildShareEvents(seq, accountIDs, win) }},
		{TableSupportTickets, func(seq *Sequence) { d.SupportTickets = buildSupportTickets(seq, accountIDs, win) }},
		{TableContactMessages, func(seq *Sequence) { d.ContactMessages = buildContactMessages(seq, accountIDs, win) }},
	}
	for _, step := range steps {
		if err := build(step.table, step.fn); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Tables returns the name-to-table mapping of the dataset. The views are
// built once and shared; they are read-only.
func (d *Dataset) Tables() map[string]*Table {
	d.tablesOnce.Do(func() {
		d.tables = map[string]*Table{
			TableAccounts:         accountsTable(d.Accounts),
			TableProfiles:         profilesTable(d.Profiles),
			TableStats:            statsTable(d.Stats),
			TableTeams:            teamsTable(d.Teams),
			TableCricketScores:    cricketScoresTable(d.CricketScores),
			TableMultiSportScores: multiSportScoresTable(d.MultiSportScores),
			TableMatches:          matchesTable(d.Matches),
			TableTournaments:      tournamentsTable(d.Tournaments),
			TableUserMatches:      userMatchesTable(d.UserMatches),
			TableHighlights:       highlightsTable(d.Highlights),
			TableFeed:             feedTable(d.Feed),
			TableShopItems:        shopItemsTable(d.ShopItems),
			TableLanguages:        languagesTable(d.Languages),
			TableShareEvents:      shareEventsTable(d.ShareEvents),
			TableSupportTickets:   supportTicketsTable(d.SupportTickets),
			TableContactMessages:  contactMessagesTable(d.ContactMessages),
		}
	})
	return d.tables
}

// Table returns one named table view.
func (d *Dataset) Table(name string) (*Table, bool) {
	t, ok := d.Tables()[name]
	return t, ok
}

// CheckIntegrity re-verifies every foreign-key field against its source
// table's key set. Builder ordering makes a violation unreachable; the test
// suite asserts that stays true.
func (d *Dataset) CheckIntegrity() error {
	accountIDs := make(map[string]bool, len(d.Accounts))
	for _, a := range d.Accounts {
		accountIDs[a.UserID] = true
	}
	teamNames := make(map[string]bool)
	for _, t := range d.Teams {
		teamNames[t.TeamName] = true
	}
	matchIDs := make(map[string]bool)
	for _, id := range allMatchIDs(d.CricketScores, d.MultiSportScores, d.Matches) {
		matchIDs[id] = true
	}

	check := func(ok bool, table, field, key string) error {
		if !ok {
			return &IntegrityError{Table: table, Field: field, Key: key}
		}
		return nil
	}
	for _, p := range d.Profiles {
		if err := check(accountIDs[p.UserID], TableProfiles, "user_id", p.UserID); err != nil {
			return err
		}
		for _, name := range p.TeamsJoined {
			if err := check(teamNames[name], TableProfiles, "teams_joined", name); err != nil {
				return err
			}
		}
	}
	for _, s := range d.Stats {
		if err := check(accountIDs[s.UserID], TableStats, "user_id", s.UserID); err != nil {
			return err
		}
	}
	for _, t := range d.Teams {
		if err := check(accountIDs[t.CaptainID], TableTeams, "captain_id", t.CaptainID); err != nil {
			return err
		}
	}
	for _, s := range d.CricketScores {
		if err := check(teamNames[s.Team1Name], TableCricketScores, "team1_name", s.Team1Name); err != nil {
			return err
		}
		if err := check(teamNames[s.Team2Name], TableCricketScores, "team2_name", s.Team2Name); err != nil {
			return err
		}
	}
	for _, s := range d.MultiSportScores {
		if err := check(teamNames[s.Team1], TableMultiSportScores, "team1", s.Team1); err != nil {
			return err
		}
		if err := check(teamNames[s.Team2], TableMultiSportScores, "team2", s.Team2); err != nil {
			return err
		}
	}
	for _, m := range d.Matches {
		for _, name := range m.Teams {
			if err := check(teamNames[name], TableMatches, "teams", name); err != nil {
				return err
			}
		}
	}
	for _, t := range d.Tournaments {
		for _, name := range t.TeamsList {
			if err := check(teamNames[name], TableTournaments, "teams_list", name); err != nil {
				return err
			}
		}
		for _, id := range t.MatchIDs {
			if err := check(matchIDs[id], TableTournaments, "match_ids", id); err != nil {
				return err
			}
		}
	}
	for _, um := range d.UserMatches {
		if err := check(accountIDs[um.UserID], TableUserMatches, "user_id", um.UserID); err != nil {
			return err
		}
		if err := check(matchIDs[um.MatchID], TableUserMatches, "match_id", um.MatchID); err != nil {
			return err
		}
	}
	for _, h := range d.Highlights {
		if err := check(matchIDs[h.MatchID], TableHighlights, "match_id", h.MatchID); err != nil {
			return err
		}
	}
	for _, f := range d.Feed {
		if err := check(matchIDs[f.MatchID], TableFeed, "match_id", f.MatchID); err != nil {
			return err
		}
		if err := check(teamNames[f.TeamName], TableFeed, "team_name", f.TeamName); err != nil {
			return err
		}
	}
	for _, e := range d.ShareEvents {
		if err := check(accountIDs[e.UserID], TableShareEvents, "user_id", e.UserID); err != nil {
			return err
		}
	}
	for _, tk := range d.SupportTickets {
		if err := check(accountIDs[tk.UserID], TableSupportTickets, "user_id", tk.UserID); err != nil {
			return err
		}
	}
	for _, m := range d.ContactMessages {
		if err := check(accountIDs[m.UserID], TableContactMessages, "user_id", m.UserID); err != nil {
			return err
		}
	}
	return nil
}
