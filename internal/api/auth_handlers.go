package api

import (
	"errors"
	"log"
	"net/http"
	"tablica-wiadomosci/internal/auth"
	"tablica-wiadomosci/internal/database"
	"tablica-wiadomosci/internal/models"
	"time"
)

// @Summary      Register a new member
// @Description  Creates a member account from a submitted form. The username must not be taken.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        name      formData  string  true  "Display name"
// @Param        username  formData  string  true  "Unique username"
// @Param        password  formData  string  true  "Password"
// @Success      303  {string}  string "Redirect to the index page"
// @Failure      400  {string}  string "Missing form fields"
// @Failure      409  {string}  string "Username is registered!"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /signup [post]
func (s *Server) SignupHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	username := r.FormValue("username")
	password := r.FormValue("password")
	if name == "" || username == "" || password == "" {
		http.Error(w, "Name, username and password are required", http.StatusBadRequest)
		return
	}

	existing, err := s.store.GetMemberByUsername(r.Context(), username)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, "Username is registered!", http.StatusConflict)
		return
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// One transaction: the journal must not record a registration whose
	// member row was never committed.
	var member *models.Member
	txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		member, err = q.CreateMember(r.Context(), database.CreateMemberParams{
			Name:         name,
			Username:     username,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return err
		}
		return q.LogEvent(r.Context(), member.ID, "member_registered", map[string]interface{}{
			"member_id": member.ID,
			"username":  member.Username,
		})
	})
	if txErr != nil {
		// The unique constraint catches registrations racing past the
		// pre-check above.
		if errors.Is(txErr, database.ErrUsernameTaken) {
			http.Error(w, "Username is registered!", http.StatusConflict)
			return
		}
		log.Printf("ERROR: Failed to create member %s: %v", username, txErr)
		http.Error(w, "Failed to create member", http.StatusInternalServerError)
		return
	}

	s.broadcastBoardEvent("member_registered", map[string]interface{}{
		"member_id": member.ID,
		"username":  member.Username,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// @Summary      Sign in
// @Description  Verifies the submitted credentials and installs a session cookie holding a snapshot of the member.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      303  {string}  string "Redirect to the board"
// @Failure      400  {string}  string "Please enter username and password"
// @Failure      401  {string}  string "Username or password is not correct"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /signin [post]
func (s *Server) SigninHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		http.Error(w, "Please enter username and password", http.StatusBadRequest)
		return
	}

	member, err := s.store.GetMemberByUsername(r.Context(), username)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if member == nil || !auth.CheckPasswordHash(password, member.PasswordHash) {
		http.Error(w, "Username or password is not correct", http.StatusUnauthorized)
		return
	}

	maxAge := time.Duration(s.config.Session.MaxAgeHours) * time.Hour
	tokenString, err := auth.GenerateSessionToken(member, s.config.Session.Secret, maxAge)
	if err != nil {
		log.Printf("ERROR: Failed to generate session token for member %d: %v", member.ID, err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.config.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/board", http.StatusSeeOther)
}

// @Summary      Sign out
// @Description  Clears the session cookie unconditionally.
// @Tags         auth
// @Success      303  {string}  string "Redirect to the index page"
// @Router       /signout [get]
func (s *Server) SignoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.config.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
