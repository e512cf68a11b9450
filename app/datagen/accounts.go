package datagen

import (
	"fmt"
	"time"
)

// Account is one registered user.
type Account struct {
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Gender           string    `json:"gender"`
	Birthdate        time.Time `json:"birthdate"`
	Location         string    `json:"location"`
	JoinedDate       time.Time `json:"joined_date"`
	SportsInterested []string  `json:"sports_interested_in"`
	Role             string    `json:"role"`
}

var accountColumns = []Column{
	{Name: "user_id", Kind: KindString},
	{Name: "name", Kind: KindString},
	{Name: "email", Kind: KindString},
	{Name: "phone", Kind: KindString},
	{Name: "gender", Kind: KindString},
	{Name: "birthdate", Kind: KindDate},
	{Name: "location", Kind: KindString},
	{Name: "joined_date", Kind: KindDate},
	{Name: "sports_interested_in", Kind: KindStringList},
	{Name: "role", Kind: KindString},
}

func buildAccounts(seq *Sequence, win window) []Account {
	accounts := make([]Account, NumAccounts)
	for i := range accounts {
		accounts[i] = Account{
			UserID:           fmt.Sprintf("UID_%05d", i+1),
			Name:             seq.Name(),
			Email:            seq.Email(),
			Phone:            seq.Phone(),
			Gender:           seq.Pick(genders),
			Birthdate:        seq.Date(birthdateStart, birthdateEnd),
			Location:         seq.Pick(venues),
			JoinedDate:       seq.Date(win.start, win.end),
			SportsInterested: seq.Sample(sportNames, seq.IntBetween(1, len(sportNames))),
			Role:             seq.Pick(userRoles),
		}
	}
	return accounts
}

func accountsTable(accounts []Account) *Table {
	t := newTable(TableAccounts, accountColumns, len(accounts))
	for _, a := range accounts {
		t.appendRow(Row{
			a.UserID, a.Name, a.Email, a.Phone, a.Gender,
			a.Birthdate, a.Location, a.JoinedDate, a.SportsInterested, a.Role,
		})
	}
	return t
}
