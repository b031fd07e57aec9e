package authz_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-resume-builder/internal/authz"
	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
)

type fakeResource struct {
	kind  string
	owner string
}

func (r fakeResource) Kind() string    { return r.kind }
func (r fakeResource) OwnerID() string { return r.owner }

func TestResumeGateOwnership(t *testing.T) {
	gate := authz.NewResumeGate()
	resume := &domain.Resume{ID: 1, UserID: "owner"}

	t.Run("owner may view, update and delete", func(t *testing.T) {
		for _, action := range []authz.Action{authz.ActionView, authz.ActionUpdate, authz.ActionDelete} {
			assert.NoError(t, gate.Authorize("owner", action, resume))
		}
	})

	t.Run("anyone else is forbidden", func(t *testing.T) {
		err := gate.Authorize("intruder", authz.ActionView, resume)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusForbidden, appErr.Code)
		assert.Equal(t, "This action is unauthorized", appErr.Message)
	})

	t.Run("empty user id is forbidden even if the owner is empty", func(t *testing.T) {
		orphan := &domain.Resume{ID: 2, UserID: ""}
		assert.Error(t, gate.Authorize("", authz.ActionView, orphan))
	})
}

func TestGateDeniesUnregistered(t *testing.T) {
	gate := authz.NewGate()
	gate.Register("resume", authz.ActionView, authz.OwnerOnly)

	t.Run("unknown kind", func(t *testing.T) {
		err := gate.Authorize("u1", authz.ActionView, fakeResource{kind: "invoice", owner: "u1"})
		assert.Error(t, err)
	})

	t.Run("unknown action on known kind", func(t *testing.T) {
		err := gate.Authorize("u1", authz.ActionDelete, fakeResource{kind: "resume", owner: "u1"})
		assert.Error(t, err)
	})

	t.Run("registered policy grants", func(t *testing.T) {
		err := gate.Authorize("u1", authz.ActionView, fakeResource{kind: "resume", owner: "u1"})
		assert.NoError(t, err)
	})
}
