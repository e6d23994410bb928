package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/jteoh/courtsplit/internal/calculator"
	"github.com/jteoh/courtsplit/internal/models"
)

// SessionInput carries the user-entered fields of a session. Derived fields
// (total, per-player share, month key) are computed by the service, never
// supplied by the caller.
type SessionInput struct {
	Date         string   `validate:"required,datetime=2006-01-02"`
	CourtCost    float64  `validate:"gte=0"`
	ShuttleCost  float64  `validate:"gte=0"`
	ShuttlesUsed float64  `validate:"gte=0"`
	Participants []string `validate:"required,min=1,dive,required"`
}

// LedgerService owns the session ledger: create, update and delete of
// cost-splitting events plus the monthly aggregations derived from them.
type LedgerService struct {
	state    *State
	validate *validator.Validate
}

// NewLedgerService creates a LedgerService over the loaded state.
func NewLedgerService(state *State) *LedgerService {
	return &LedgerService{
		state:    state,
		validate: validator.New(),
	}
}

// Sessions returns a copy of the ledger in recording order.
func (s *LedgerService) Sessions() []models.Session {
	return slices.Clone(s.state.sessions)
}

// Session returns the session with the given ID, or NotFoundError.
func (s *LedgerService) Session(id string) (*models.Session, error) {
	for _, sess := range s.state.sessions {
		if sess.ID == id {
			found := sess
			found.Participants = slices.Clone(sess.Participants)
			return &found, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// CreateSession validates the input, computes the derived fields, appends the
// session to the ledger and persists. The created session is returned for
// summary display.
func (s *LedgerService) CreateSession(ctx context.Context, input SessionInput) (*models.Session, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	sess, err := buildSession(models.NewSessionID(), input)
	if err != nil {
		return nil, err
	}

	sessions := append(slices.Clone(s.state.sessions), *sess)
	if err := s.state.replace(ctx, "record session", s.state.roster, sessions); err != nil {
		return nil, err
	}

	slog.Info("Session recorded",
		"session_id", sess.ID,
		"date", sess.Date,
		"total", sess.Total,
		"per_player", sess.PerPlayer,
		"players", len(sess.Participants),
	)
	return sess, nil
}

// UpdateSession replaces all mutable and derived fields of the session with
// the given ID, keeping its position in the ledger, and persists. Returns
// NotFoundError when the ID does not match any session.
func (s *LedgerService) UpdateSession(ctx context.Context, id string, input SessionInput) (*models.Session, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(s.state.sessions, func(sess models.Session) bool {
		return sess.ID == id
	})
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}

	sess, err := buildSession(id, input)
	if err != nil {
		return nil, err
	}

	sessions := slices.Clone(s.state.sessions)
	sessions[idx] = *sess
	if err := s.state.replace(ctx, "edit session", s.state.roster, sessions); err != nil {
		return nil, err
	}

	slog.Info("Session updated",
		"session_id", sess.ID,
		"date", sess.Date,
		"total", sess.Total,
		"per_player", sess.PerPlayer,
		"players", len(sess.Participants),
	)
	return sess, nil
}

// DeleteSession removes the session with the given ID and persists. Unknown
// IDs are a no-op. Confirming intent is the caller's concern.
func (s *LedgerService) DeleteSession(ctx context.Context, id string) error {
	sessions := slices.DeleteFunc(slices.Clone(s.state.sessions), func(sess models.Session) bool {
		return sess.ID == id
	})
	removed := len(sessions) < len(s.state.sessions)

	if err := s.state.replace(ctx, "delete session", s.state.roster, sessions); err != nil {
		return err
	}

	if removed {
		slog.Info("Session deleted", "session_id", id, "sessions", len(sessions))
	} else {
		slog.Warn("DeleteSession ignored unknown id", "session_id", id)
	}
	return nil
}

// Months returns the distinct month keys in the ledger, ascending.
func (s *LedgerService) Months() []string {
	return calculator.Months(s.state.sessions)
}

// MonthlyTotals returns each player's accumulated share for the given month,
// sorted by name.
func (s *LedgerService) MonthlyTotals(monthKey string) []calculator.PlayerTotal {
	return calculator.MonthlyTotals(s.state.sessions, monthKey)
}

// EditOptions returns the selectable participant names for editing the given
// session: the current roster plus the session's historical participants, so
// players removed from the roster since the session was recorded can still be
// kept on it.
func (s *LedgerService) EditOptions(id string) ([]string, error) {
	sess, err := s.Session(id)
	if err != nil {
		return nil, err
	}
	return lo.Uniq(append(slices.Clone(s.state.roster), sess.Participants...)), nil
}

func (s *LedgerService) validateInput(input SessionInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		return &ValidationError{
			Field:  fieldName(fe.Field()),
			Reason: reasonFor(fe),
		}
	}
	return &ValidationError{Field: "input", Reason: err.Error()}
}

// buildSession computes the derived fields and assembles the session record.
func buildSession(id string, input SessionInput) (*models.Session, error) {
	total, perPlayer, err := calculator.Cost(
		input.CourtCost, input.ShuttleCost, input.ShuttlesUsed, len(input.Participants),
	)
	if err != nil {
		return nil, &ValidationError{Field: "participants", Reason: err.Error()}
	}

	return &models.Session{
		ID:           id,
		Date:         input.Date,
		MonthKey:     calculator.MonthKey(input.Date),
		CourtCost:    input.CourtCost,
		ShuttleCost:  input.ShuttleCost,
		ShuttlesUsed: input.ShuttlesUsed,
		Total:        total,
		PerPlayer:    perPlayer,
		Participants: slices.Clone(input.Participants),
	}, nil
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "datetime":
		return "must be a YYYY-MM-DD date"
	case "gte":
		return "must be a non-negative number"
	case "min":
		return "must select at least one player"
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

func fieldName(structField string) string {
	switch structField {
	case "Date":
		return "date"
	case "CourtCost":
		return "courtCost"
	case "ShuttleCost":
		return "shuttleCost"
	case "ShuttlesUsed":
		return "shuttlesUsed"
	case "Participants":
		return "participants"
	default:
		return structField
	}
}
