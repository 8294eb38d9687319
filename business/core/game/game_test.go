package game_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ardanlabs/questhub/business/core/game"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestValidationError(t *testing.T) {
	t.Log("Given the need to classify validation errors.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen wrapping a validation error.", testID)
		{
			err := fmt.Errorf("send: %w", game.NewValidationError(game.KindInsufficientBalance, "need %d", 10))

			if !game.IsValidation(err) {
				t.Fatalf("\t%s\tTest %d:\tShould be classified as validation.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould be classified as validation.", success, testID)

			if game.KindOf(err) != game.KindInsufficientBalance {
				t.Fatalf("\t%s\tTest %d:\tShould report the kind, got %q.", failed, testID, game.KindOf(err))
			}
			t.Logf("\t%s\tTest %d:\tShould report the kind.", success, testID)

			if !errors.Is(err, game.ErrInsufficientBalance) {
				t.Fatalf("\t%s\tTest %d:\tShould match the sentinel of the same kind.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould match the sentinel of the same kind.", success, testID)

			if errors.Is(err, game.ErrInactive) {
				t.Fatalf("\t%s\tTest %d:\tShould not match a sentinel of another kind.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not match a sentinel of another kind.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen handling a plain error.", testID)
		{
			err := errors.New("boom")
			if game.IsValidation(err) || game.KindOf(err) != "" {
				t.Fatalf("\t%s\tTest %d:\tShould not be classified.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not be classified.", success, testID)
		}
	}
}

func TestReporter(t *testing.T) {
	t.Log("Given the need to report through optional callbacks.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen callbacks are missing.", testID)
		{
			var rep game.Reporter
			rep.Complete("quiz", 10)
			rep.Raise(game.Notice{Title: "x"})
			t.Logf("\t%s\tTest %d:\tShould not panic.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen rejecting through an outbox.", testID)
		{
			var got game.Notice
			var order []string
			rep := game.Reporter{
				Notify:     func(n game.Notice) { got = n; order = append(order, "notify") },
				OnComplete: func(id string, points int) { order = append(order, id) },
			}

			var out game.Outbox
			out.Complete("quiz", 10)
			err := out.Reject("sandbox", game.ErrSendInProgress)
			if got.Title != "" {
				t.Fatalf("\t%s\tTest %d:\tShould not deliver before flush.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not deliver before flush.", success, testID)

			out.Flush(rep)
			if len(order) != 2 || order[0] != "notify" || order[1] != "quiz" {
				t.Fatalf("\t%s\tTest %d:\tShould deliver notices before completions, got %v.", failed, testID, order)
			}
			t.Logf("\t%s\tTest %d:\tShould deliver notices before completions.", success, testID)

			out.Flush(rep)
			if len(order) != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould empty the outbox on flush.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould empty the outbox on flush.", success, testID)
			if !errors.Is(err, game.ErrSendInProgress) {
				t.Fatalf("\t%s\tTest %d:\tShould return the error.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould return the error.", success, testID)

			if got.Level != game.LevelWarning || got.Kind != game.KindSendInProgress || got.Source != "sandbox" {
				t.Fatalf("\t%s\tTest %d:\tShould raise a classified warning, got %+v.", failed, testID, got)
			}
			t.Logf("\t%s\tTest %d:\tShould raise a classified warning.", success, testID)
		}
	}
}
