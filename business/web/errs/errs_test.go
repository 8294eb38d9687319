package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ardanlabs/questhub/business/core/game"
	"github.com/ardanlabs/questhub/business/web/errs"
	"github.com/ardanlabs/questhub/foundation/validate"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tt := []struct {
		name   string
		err    error
		status int
		kind   game.Kind
	}{
		{"fields", validate.FieldErrors{{Field: "option", Error: "option is required"}}, http.StatusBadRequest, ""},
		{"validation", fmt.Errorf("submit: %w", game.ErrAlreadyAnswered), http.StatusBadRequest, game.KindAlreadyAnswered},
		{"not-found", game.NewValidationError(game.KindNotFound, "course %q does not exist", "x"), http.StatusNotFound, game.KindNotFound},
		{"trusted", errs.NewTrusted(errors.New("bad id"), http.StatusBadRequest), http.StatusBadRequest, ""},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError, ""},
	}

	for _, tst := range tt {
		t.Run(tst.name, func(t *testing.T) {
			resp, status := errs.Classify(tst.err)

			assert.Equal(t, tst.status, status)
			assert.Equal(t, tst.kind, resp.Kind)
			assert.NotEmpty(t, resp.Error)
		})
	}

	resp, _ := errs.Classify(errors.New("disk on fire"))
	assert.Equal(t, "Internal Server Error", resp.Error)

	resp, _ = errs.Classify(validate.FieldErrors{{Field: "option", Error: "option is required"}})
	assert.Equal(t, map[string]string{"option": "option is required"}, resp.Fields)
}
