package datagen

import (
	"fmt"
	"time"
)

// UserMatch records one user's participation in one match. The (user_id,
// match_id) pair is not unique; a user can appear in several matches.
type UserMatch struct {
	UserID              string    `json:"user_id"`
	MatchID             string    `json:"match_id"`
	Role                string    `json:"role"`
	ParticipationStatus string    `json:"participation_status"`
	Result              string    `json:"result"`
	Date                time.Time `json:"date"`
	PerformanceSummary  string    `json:"performance_summary"`
}

var userMatchColumns = []Column{
	{Name: "user_id", Kind: KindString},
	{Name: "match_id", Kind: KindString},
	{Name: "role", Kind: KindString},
	{Name: "participation_status", Kind: KindString},
	{Name: "result", Kind: KindString},
	{Name: "date", Kind: KindDate},
	{Name: "performance_summary", Kind: KindString},
}

var (
	participationStatuses = []string{"Confirmed", "Pending", "Declined"}
	matchResults          = []string{"Won", "Lost", "Draw", "Ongoing"}
)

func buildUserMatches(seq *Sequence, accounts []Account, matchIDs []string, win window) []UserMatch {
	userMatches := make([]UserMatch, NumUserMatches)
	for i := range userMatches {
		userMatches[i] = UserMatch{
			UserID:              accounts[i].UserID,
			MatchID:             seq.Pick(matchIDs),
			Role:                seq.Pick(userRoles),
			ParticipationStatus: seq.Pick(participationStatuses),
			Result:              seq.Pick(matchResults),
			Date:                seq.Date(win.start, win.end),
			PerformanceSummary:  fmt.Sprintf("%d runs, %d wickets", seq.IntBetween(0, 100), seq.IntBetween(0, 5)),
		}
	}
	return userMatches
}

func userMatchesTable(userMatches []UserMatch) *Table {
	t := newTable(TableUserMatches, userMatchColumns, len(userMatches))
	for _, um := range userMatches {
		t.appendRow(Row{
			um.UserID, um.MatchID, um.Role, um.ParticipationStatus,
			um.Result, um.Date, um.PerformanceSummary,
		})
	}
	return t
}

// Highlight is one media clip attached to a match.
type Highlight struct {
	MatchID          string    `json:"match_id"`
	MediaType        string    `json:"media_type"`
	Timestamp        time.Time `json:"timestamp"`
	Player           string    `json:"player"`
	EventDescription string    `json:"event_description"`
	URL              string    `json:"url"`
}

var highlightColumns = []Column{
	{Name: "match_id", Kind: KindString},
	{Name: "media_type", Kind: KindString},
	{Name: "timestamp", Kind: KindTimestamp},
	{Name: "player", Kind: KindString},
	{Name: "event_description", Kind: KindString},
	{Name: "url", Kind: KindString},
}

var (
	mediaTypes      = []string{"Video", "Image"}
	highlightEvents = []string{"Six", "Wicket", "Catch"}
)

func buildHighlights(seq *Sequence, matchIDs []string, win window) []Highlight {
	highlights := make([]Highlight, NumHighlights)
	for i := range highlights {
		highlights[i] = Highlight{
			MatchID:          seq.Pick(matchIDs),
			MediaType:        seq.Pick(mediaTypes),
			Timestamp:        seq.Timestamp(win.start, win.end),
			Player:           seq.Name(),
			EventDescription: fmt.Sprintf("%s by %s", seq.Pick(highlightEvents), seq.Name()),
			URL:              fmt.Sprintf("https://sportsphere.com/highlights/%d.mp4", i+1),
		}
	}
	return highlights
}

func highlightsTable(highlights []Highlight) *Table {
	t := newTable(TableHighlights, highlightColumns, len(highlights))
	for _, h := range highlights {
		t.appendRow(Row{
			h.MatchID, h.MediaType, h.Timestamp, h.Player, h.EventDescription, h.URL,
		})
	}
	return t
}

// FeedEvent is one activity-feed entry.
type FeedEvent struct {
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"event_type"`
	UserName  string    `json:"user_name"`
	TeamName  string    `json:"team_name"`
	MatchID   string    `json:"match_id"`
	Message   string    `json:"message"`
}

var feedColumns = []Column{
	{Name: "timestamp", Kind: KindTimestamp},
	{Name: "event_type", Kind: KindString},
	{Name: "user_name", Kind: KindString},
	{Name: "team_name", Kind: KindString},
	{Name: "match_id", Kind: KindString},
	{Name: "message", Kind: KindString},
}

var (
	feedEventTypes = []string{"Match Result", "Tournament Announcement", "MVP Award"}
	feedVerbs      = []string{"Won by", "Lost by", "Declared MVP"}
	feedUnits      = []string{"runs", "wickets", "points"}
)

func buildFeed(seq *Sequence, teamNames, matchIDs []string, win window) []FeedEvent {
	feed := make([]FeedEvent, NumFeedEvents)
	for i := range feed {
		feed[i] = FeedEvent{
			Timestamp: seq.Timestamp(win.start, win.end),
			EventType: seq.Pick(feedEventTypes),
			UserName:  seq.Name(),
			TeamName:  seq.Pick(teamNames),
			MatchID:   seq.Pick(matchIDs),
			Message:   fmt.Sprintf("%s %d %s", seq.Pick(feedVerbs), seq.IntBetween(1, 100), seq.Pick(feedUnits)),
		}
	}
	return feed
}

func feedTable(feed []FeedEvent) *Table {
	t := newTable(TableFeed, feedColumns, len(feed))
	for _, f := range feed {
		t.appendRow(Row{
			f.Timestamp, f.EventType, f.UserName, f.TeamName, f.MatchID, f.Message,
		})
	}
	return t
}
