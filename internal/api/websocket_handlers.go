package api

import (
	"log"
	"net/http"
	"tablica-wiadomosci/internal/auth"
	"tablica-wiadomosci/internal/websocket"
)

func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		log.Println("WS connection attempt without session cookie")
		return
	}

	claims, err := auth.VerifySessionToken(cookie.Value, s.config.Session.Secret)
	if err != nil {
		log.Printf("WS connection attempt with invalid session: %v", err)
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	client := websocket.NewClient(s.wsHub, conn, claims.MemberID)
	s.wsHub.Register <- client

	go client.ReadPump()
	go client.WritePump()
}
