package datagen

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeterministic(t *testing.T) {
	first, err := Build(42)
	require.NoError(t, err)
	second, err := Build(42)
	require.NoError(t, err)

	diff := cmp.Diff(first, second, cmpopts.IgnoreUnexported(Dataset{}))
	assert.Empty(t, diff, "two builds with one seed must be field-for-field identical")

	// The very first account record is stable across independent runs.
	assert.Equal(t, first.Accounts[0], second.Accounts[0])
	assert.Equal(t, "UID_00001", first.Accounts[0].UserID)
	assert.NotEmpty(t, first.Accounts[0].Name)
	assert.NotEmpty(t, first.Accounts[0].Email)
}

func TestBuildSeedsDiffer(t *testing.T) {
	a, err := Build(1)
	require.NoError(t, err)
	b, err := Build(2)
	require.NoError(t, err)
	assert.NotEqual(t, a.Accounts[0], b.Accounts[0], "different seeds must change the data")
}

func TestCardinalities(t *testing.T) {
	d, err := Build(42)
	require.NoError(t, err)
	tables := d.Tables()

	tests := []struct {
		table string
		want  int
	}{
		{TableAccounts, NumAccounts},
		{TableProfiles, NumAccounts},
		{TableStats, NumStats},
		{TableTeams, NumTeams},
		{TableCricketScores, NumCricketScores},
		{TableMultiSportScores, NumMultiSportScores},
		{TableMatches, NumMatches},
		{TableTournaments, NumTournaments},
		{TableUserMatches, NumUserMatches},
		{TableHighlights, NumHighlights},
		{TableFeed, NumFeedEvents},
		{TableShopItems, NumShopItems},
		{TableLanguages, NumLanguages},
		{TableShareEvents, NumShareEvents},
		{TableSupportTickets, NumSupportTickets},
		{TableContactMessages, NumContactMessages},
	}
	require.Len(t, tables, len(tests))
	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			require.Contains(t, tables, tt.table)
			assert.Equal(t, tt.want, tables[tt.table].Len())
		})
	}
}

func TestReferentialClosure(t *testing.T) {
	d, err := Build(42)
	require.NoError(t, err)
	require.NoError(t, d.CheckIntegrity())

	// Spot-check one relation directly as well: every stats row keys an
	// existing account.
	accountIDs := make(map[string]bool, len(d.Accounts))
	for _, a := range d.Accounts {
		accountIDs[a.UserID] = true
	}
	for _, s := range d.Stats {
		require.True(t, accountIDs[s.UserID], "stats user %s missing from accounts", s.UserID)
	}
}

func TestProfilesMirrorAccounts(t *testing.T) {
	d, err := Build(7)
	require.NoError(t, err)

	require.Len(t, d.Profiles, len(d.Accounts))
	for i, p := range d.Profiles {
		assert.Equal(t, d.Accounts[i].UserID, p.UserID)
		assert.Equal(t, d.Accounts[i].Name, p.Name)
	}
}

func TestRangeBounds(t *testing.T) {
	d, err := Build(42)
	require.NoError(t, err)

	for _, tm := range d.Teams {
		assert.GreaterOrEqual(t, tm.Rating, 1.0)
		assert.LessOrEqual(t, tm.Rating, 5.0)
		assert.GreaterOrEqual(t, tm.Wins, 0)
		assert.LessOrEqual(t, tm.Wins, 50)
		assert.GreaterOrEqual(t, tm.Losses, 0)
		assert.LessOrEqual(t, tm.Losses, 50)
		assert.GreaterOrEqual(t, len(tm.PlayersList), 5)
		assert.LessOrEqual(t, len(tm.PlayersList), 15)
	}
	for _, s := range d.Stats {
		assert.GreaterOrEqual(t, s.StrikeRate, 50.0)
		assert.LessOrEqual(t, s.StrikeRate, 200.0)
		assert.GreaterOrEqual(t, s.Economy, 3.0)
		assert.LessOrEqual(t, s.Economy, 10.0)
		assert.GreaterOrEqual(t, s.Average, 10.0)
		assert.LessOrEqual(t, s.Average, 50.0)
		assert.GreaterOrEqual(t, s.RunsScored, 0)
		assert.LessOrEqual(t, s.RunsScored, 2000)
	}
	for _, item := range d.ShopItems {
		assert.GreaterOrEqual(t, item.Price, 10.0)
		assert.LessOrEqual(t, item.Price, 200.0)
		assert.GreaterOrEqual(t, item.Ratings, 1.0)
		assert.LessOrEqual(t, item.Ratings, 5.0)
	}
	for _, p := range d.Profiles {
		assert.GreaterOrEqual(t, p.Level, 1)
		assert.LessOrEqual(t, p.Level, 100)
	}
	for _, s := range d.CricketScores {
		assert.GreaterOrEqual(t, s.ScoreTeam1, 50)
		assert.LessOrEqual(t, s.ScoreTeam1, 350)
		assert.GreaterOrEqual(t, s.Wickets, 0)
		assert.LessOrEqual(t, s.Wickets, 10)
	}
}

func TestDatesWithinWindow(t *testing.T) {
	d, err := Build(42)
	require.NoError(t, err)

	within := func(ts time.Time) bool {
		return !ts.Before(WindowStart) && !ts.After(WindowEnd)
	}
	for _, a := range d.Accounts {
		assert.True(t, within(a.JoinedDate))
		assert.False(t, a.Birthdate.Before(birthdateStart))
		assert.False(t, a.Birthdate.After(birthdateEnd))
	}
	for _, f := range d.Feed {
		assert.True(t, within(f.Timestamp))
	}
	for _, tn := range d.Tournaments {
		assert.False(t, tn.EndDate.Before(tn.StartDate), "tournament must end on or after its start")
	}
}

func TestScheduledMatchShape(t *testing.T) {
	d, err := Build(42)
	require.NoError(t, err)

	for _, m := range d.Matches {
		require.Len(t, m.Teams, 2)
		assert.NotEqual(t, m.Teams[0], m.Teams[1], "match teams must be distinct")
		if m.NumberOfOvers != nil {
			assert.Contains(t, []int{20, 50}, *m.NumberOfOvers)
		}
	}
}

func TestLanguagesSingleDefault(t *testing.T) {
	for _, seed := range []int64{1, 42, 1234} {
		d, err := Build(seed)
		require.NoError(t, err)

		languages, ok := d.Table(TableLanguages)
		require.True(t, ok)
		defaults, err := languages.FilterEq("is_default", true)
		require.NoError(t, err)
		assert.Equal(t, 1, defaults.Len(), "seed %d", seed)
	}
}

func TestBuildWindowRejectsInvertedRange(t *testing.T) {
	_, err := BuildWindow(1, WindowEnd, WindowStart)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestSchemaLookup(t *testing.T) {
	for _, name := range TableNames {
		cols, ok := Schema(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, cols, name)
	}
	_, ok := Schema("nope")
	assert.False(t, ok)
}

func TestTableRowsMatchSchemas(t *testing.T) {
	d, err := Build(3)
	require.NoError(t, err)

	for name, table := range d.Tables() {
		cols, ok := Schema(name)
		require.True(t, ok, name)
		require.Equal(t, cols, table.Columns(), name)
		for i := 0; i < table.Len(); i++ {
			require.Len(t, table.Row(i), len(cols), "%s row %d", name, i)
		}
	}
}

func TestCacheMemoizes(t *testing.T) {
	cache := NewCache()

	first, err := cache.Get(42)
	require.NoError(t, err)
	again, err := cache.Get(42)
	require.NoError(t, err)
	assert.Same(t, first, again, "second lookup must reuse the built dataset")

	fresh, err := Build(42)
	require.NoError(t, err)
	diff := cmp.Diff(fresh, first, cmpopts.IgnoreUnexported(Dataset{}))
	assert.Empty(t, diff, "memoization must not change the value")
}
