package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsphere-app/sportsphere/app/datagen"
)

func postJSON(t *testing.T, srv *httptest.Server, path, body string) (int, map[string]string) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestCreateAccountStub(t *testing.T) {
	srv := newTestServer(t)

	code, body := postJSON(t, srv, "/api/accounts",
		`{"name":"Asha Rao","email":"asha@example.com","phone":"555-0100"}`)
	require.Equal(t, http.StatusAccepted, code)
	assert.Equal(t, "accepted", body["status"])
	_, err := uuid.Parse(body["reference"])
	assert.NoError(t, err, "reference must be a UUID")
}

func TestCreateAccountValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com"}`},
		{"bad email", `{"name":"x","email":"not-an-email"}`},
		{"malformed body", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := postJSON(t, srv, "/api/accounts", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestCreateMatchStub(t *testing.T) {
	srv := newTestServer(t)
	d := testDataset(t)
	team1 := d.Teams[0].TeamName
	var team2 string
	for _, tm := range d.Teams[1:] {
		if tm.TeamName != team1 {
			team2 = tm.TeamName
			break
		}
	}
	require.NotEmpty(t, team2)

	code, body := postJSON(t, srv, "/api/matches", fmt.Sprintf(
		`{"sport_type":"Cricket","team1":%q,"team2":%q,"venue":"City Ground"}`, team1, team2))
	require.Equal(t, http.StatusAccepted, code)
	assert.Equal(t, "accepted", body["status"])

	code, _ = postJSON(t, srv, "/api/matches", fmt.Sprintf(
		`{"sport_type":"Cricket","team1":%q,"team2":%q}`, team1, team1))
	assert.Equal(t, http.StatusBadRequest, code, "same team twice")

	code, _ = postJSON(t, srv, "/api/matches",
		`{"sport_type":"Cricket","team1":"No Such Team","team2":"Also Missing"}`)
	assert.Equal(t, http.StatusBadRequest, code, "unknown teams")
}

func TestCreateTournamentValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"valid", `{"name":"Summer Cup","start_date":"2024-05-01","end_date":"2024-05-20","teams":["A","B"]}`, http.StatusAccepted},
		{"end before start", `{"name":"Cup","start_date":"2024-05-20","end_date":"2024-05-01","teams":["A","B"]}`, http.StatusBadRequest},
		{"one team", `{"name":"Cup","start_date":"2024-05-01","end_date":"2024-05-20","teams":["A"]}`, http.StatusBadRequest},
		{"duplicate teams", `{"name":"Cup","start_date":"2024-05-01","end_date":"2024-05-20","teams":["A","A"]}`, http.StatusBadRequest},
		{"bad date", `{"name":"Cup","start_date":"soon","end_date":"2024-05-20","teams":["A","B"]}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := postJSON(t, srv, "/api/tournaments", tt.body)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestCreateTicketAndContact(t *testing.T) {
	srv := newTestServer(t)

	code, _ := postJSON(t, srv, "/api/tickets", `{"issue_type":"Bug","description":"scores stuck"}`)
	assert.Equal(t, http.StatusAccepted, code)
	code, _ = postJSON(t, srv, "/api/tickets", `{"issue_type":"Bug"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = postJSON(t, srv, "/api/contact", `{"name":"Asha","email":"asha@example.com","message":"hi"}`)
	assert.Equal(t, http.StatusAccepted, code)
	code, _ = postJSON(t, srv, "/api/contact", `{"name":"Asha","email":"nope","message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestWritesNeverMutate(t *testing.T) {
	srv := newTestServer(t)

	var before tableResponse
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/tables/accounts?limit=3", &before))

	for i := 0; i < 5; i++ {
		code, _ := postJSON(t, srv, "/api/accounts",
			fmt.Sprintf(`{"name":"User %d","email":"u%d@example.com"}`, i, i))
		require.Equal(t, http.StatusAccepted, code)
	}

	var after tableResponse
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/tables/accounts?limit=3", &after))
	assert.Equal(t, datagen.NumAccounts, after.Total)
	assert.Equal(t, before.Rows, after.Rows, "accepted submissions must not appear in the table")
}
