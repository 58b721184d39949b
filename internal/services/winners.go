package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"tebakangka/internal/models"
	"tebakangka/internal/store"
)

// ErrInvalidState marks a lomba whose stored data cannot support winner
// resolution: a missing or malformed result, or a guess type whose match
// length does not fit the result. Callers inspect it with errors.Is.
var ErrInvalidState = errors.New("invalid lomba state")

// markerKey identifies a participant identity on a source site. A struct
// key cannot collide the way a concatenated "userid-websiteid" string can
// when the fields themselves contain the delimiter.
type markerKey struct {
	WebsiteID     uuid.UUID
	UseridWebsite string
}

// WinnerService resolves the winner list of a settled lomba.
type WinnerService struct {
	lomba   store.LombaStore
	tebakan store.TebakanStore
}

// NewWinnerService creates a WinnerService.
func NewWinnerService(lomba store.LombaStore, tebakan store.TebakanStore) *WinnerService {
	return &WinnerService{lomba: lomba, tebakan: tebakan}
}

// Resolve computes the ordered winner list for a lomba.
//
// The lomba's result must be set; its guess type's leading digits give the
// match length k, and the target number is the last k digits of the result.
// A tebakan wins when any "-"-separated part of its number ends with the
// target. Winners are ordered by submission time, earliest first, and
// truncated to the lomba's max_winner. House-seeded identities are
// annotated via IsFake but never excluded.
//
// Resolve is a pure read: the lomba, tebakan and marker loads are three
// independent point-in-time reads with no snapshot isolation, so a list
// computed while new submissions arrive is a best-effort snapshot. Failures
// are all-or-nothing; a partial list is never returned.
func (s *WinnerService) Resolve(ctx context.Context, lombaID uuid.UUID) ([]models.Winner, error) {
	lomba, err := s.lomba.GetLomba(ctx, lombaID)
	if err != nil {
		return nil, fmt.Errorf("load lomba: %w", err)
	}

	target, err := targetNumber(lomba)
	if err != nil {
		return nil, err
	}

	entries, err := s.tebakan.ListTebakan(ctx, lombaID)
	if err != nil {
		return nil, fmt.Errorf("load tebakan: %w", err)
	}
	fakes, err := s.tebakan.ListFakeUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load fake users: %w", err)
	}

	fakeSet := make(map[markerKey]struct{}, len(fakes))
	for _, f := range fakes {
		fakeSet[markerKey{WebsiteID: f.WebsiteID, UseridWebsite: f.UseridWebsite}] = struct{}{}
	}

	winners := make([]models.Winner, 0)
	for _, t := range entries {
		part, ok := firstMatchingPart(t.Number, target)
		if !ok {
			continue
		}
		_, fake := fakeSet[markerKey{WebsiteID: t.WebsiteID, UseridWebsite: t.UseridWebsite}]
		w := models.Winner{
			UseridWebsite: t.UseridWebsite,
			Number:        t.Number,
			CreatedAt:     t.CreatedAt,
			WebsiteID:     t.WebsiteID,
			IsFake:        fake,
			MatchingPart:  part,
		}
		if t.Website != nil {
			w.WebsiteName = t.Website.Nama
		}
		winners = append(winners, w)
	}

	sort.SliceStable(winners, func(i, j int) bool {
		return winners[i].CreatedAt.Before(winners[j].CreatedAt)
	})
	if len(winners) > lomba.MaxWinner {
		winners = winners[:lomba.MaxWinner]
	}
	return winners, nil
}

// targetNumber validates the lomba's settlement data and returns the last
// k digits of the result, where k is the leading digit run of GuessType.
func targetNumber(lomba *models.Lomba) (string, error) {
	if !lomba.Settled() {
		return "", fmt.Errorf("%w: lomba %s has no result", ErrInvalidState, lomba.ID)
	}
	result := *lomba.Result
	if result == "" || !isDigits(result) {
		return "", fmt.Errorf("%w: lomba %s result %q is not a digit string", ErrInvalidState, lomba.ID, result)
	}
	k := leadingInt(lomba.GuessType)
	if k <= 0 {
		return "", fmt.Errorf("%w: lomba %s guess type %q has no usable match length", ErrInvalidState, lomba.ID, lomba.GuessType)
	}
	if k > len(result) {
		return "", fmt.Errorf("%w: lomba %s match length %d exceeds result %q", ErrInvalidState, lomba.ID, k, result)
	}
	return result[len(result)-k:], nil
}

// firstMatchingPart splits number on "-" and returns the first part, in
// split order, with target as suffix. A part longer than the target still
// matches: the rule is a suffix match, not an exact-length match.
func firstMatchingPart(number, target string) (string, bool) {
	for _, part := range strings.Split(number, "-") {
		if strings.HasSuffix(part, target) {
			return part, true
		}
	}
	return "", false
}

// leadingInt parses the leading digit run of s, returning 0 when s does
// not start with a digit.
func leadingInt(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
