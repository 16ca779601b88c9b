package ranking

import (
	"cmp"
	"strconv"
	"strings"
	"time"

	"github.com/okian/scorecard/internal/domain/datemath"
	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/timeline"
)

// CompetitionKeys orders competitions by the position of their status in
// order, then by start date with missing dates last. A nil order means
// timeline.ActiveFirst.
func CompetitionKeys(order timeline.StatusOrder) []Key[model.CompetitionView] {
	if order == nil {
		order = timeline.ActiveFirst
	}
	return []Key[model.CompetitionView]{
		IntKey("status", func(c model.CompetitionView) (int, bool) {
			return order.Priority(c.Timeline.Status), true
		}, Asc, NullsLast),
		TimeKey("startDate", func(c model.CompetitionView) (time.Time, bool) {
			return datemath.Parse(string(c.StartDate))
		}, Asc, NullsLast),
	}
}

// ClubKeys orders clubs by team count descending, then name ignoring case.
func ClubKeys() []Key[model.Club] {
	return []Key[model.Club]{
		IntKey("teamCount", func(c model.Club) (int, bool) { return deref(c.TeamCount) }, Desc, NullsLast),
		FoldedStringKey("name", func(c model.Club) (string, bool) { return present(c.Name) }, Asc, NullsLast),
	}
}

// AssociationKeys orders associations by team count descending, then name
// ignoring case.
func AssociationKeys() []Key[model.Association] {
	return []Key[model.Association]{
		IntKey("teamCount", func(a model.Association) (int, bool) { return deref(a.TeamCount) }, Desc, NullsLast),
		FoldedStringKey("name", func(a model.Association) (string, bool) { return present(a.Name) }, Asc, NullsLast),
	}
}

// AccountKeys orders accounts by last name, then first name (both with
// missing names last), then by id as a proxy for creation order.
func AccountKeys() []Key[model.Account] {
	return []Key[model.Account]{
		FoldedStringKey("lastName", func(a model.Account) (string, bool) { return present(a.LastName) }, Asc, NullsLast),
		FoldedStringKey("firstName", func(a model.Account) (string, bool) { return present(a.FirstName) }, Asc, NullsLast),
		NewKey("id", func(a model.Account) (string, bool) { return present(string(a.ID)) }, CompareIdentifiers, Asc, NullsLast),
	}
}

// Competitions returns competitions in display order.
func Competitions(in []model.CompetitionView, order timeline.StatusOrder) []model.CompetitionView {
	return Sort(in, CompetitionKeys(order)...)
}

// Clubs returns clubs in display order.
func Clubs(in []model.Club) []model.Club {
	return Sort(in, ClubKeys()...)
}

// Associations returns associations in display order.
func Associations(in []model.Association) []model.Association {
	return Sort(in, AssociationKeys()...)
}

// Accounts returns accounts in display order.
func Accounts(in []model.Account) []model.Account {
	return Sort(in, AccountKeys()...)
}

// CompareIdentifiers orders ids numerically when both are integers, and
// byte-wise otherwise. Numeric ids sort before textual ones.
func CompareIdentifiers(a, b string) int {
	an, aerr := strconv.ParseInt(a, 10, 64)
	bn, berr := strconv.ParseInt(b, 10, 64)
	switch {
	case aerr == nil && berr == nil:
		return cmp.Compare(an, bn)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func deref(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

func present(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}
