package api

import (
	"encoding/json"
	"net/http"
)

type MemberData struct {
	ID       int64  `json:"id" example:"3"`
	Username string `json:"username" example:"ann"`
	Name     string `json:"name" example:"Ann"`
}

type MemberResponse struct {
	Data *MemberData `json:"data"`
}

// @Summary      Look up a member
// @Description  Returns the public fields of the member registered under the given username, or data null when there is none.
// @Tags         members
// @Produce      json
// @Param        username  query     string  true  "Username to look up"
// @Success      200       {object}  MemberResponse
// @Failure      500       {string}  string "Internal Server Error"
// @Router       /api/member [get]
func (s *Server) GetMemberHandler(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	member, err := s.store.GetMemberByUsername(r.Context(), username)
	if err != nil {
		http.Error(w, "Failed to look up member", http.StatusInternalServerError)
		return
	}

	response := MemberResponse{}
	if member != nil {
		response.Data = &MemberData{
			ID:       member.ID,
			Username: member.Username,
			Name:     member.Name,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

type UpdateNameRequest struct {
	Name string `json:"name" example:"Ann K."`
}

// @Summary      Update display name
// @Description  Changes the display name of the signed-in member. The session snapshot keeps the old name until the next sign-in.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        updateNameRequest  body      UpdateNameRequest  true  "New display name"
// @Success      200  {object}  map[string]bool "ok true"
// @Failure      400  {object}  map[string]bool "error true on empty name"
// @Failure      500  {object}  map[string]bool "error true on write failure"
// @Router       /api/member [patch]
func (s *Server) PatchMemberHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetMemberFromContext(r.Context())

	var req UpdateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if req.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]bool{"error": true})
		return
	}

	ok, err := s.store.UpdateMemberName(r.Context(), claims.Username, req.Name)
	if err != nil || !ok {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]bool{"error": true})
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
