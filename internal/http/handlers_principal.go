package httpx

import (
	"errors"
	"net/http"
)

// PrincipalHandlers provides HTTP handlers exposing the resolved principal.
type PrincipalHandlers struct{}

// Me returns the authenticated principal for the request.
// GET /api/{client_id}/me (behind RequireAuth).
func (h *PrincipalHandlers) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"subject_id": principal.SubjectID,
		"first_name": principal.FirstName,
		"last_name":  principal.LastName,
		"email":      principal.Email,
		"is_machine": principal.IsMachine,
	})
}
