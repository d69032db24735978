package api

import (
	"encoding/json"
	"log"
	"tablica-wiadomosci/internal/config"
	"tablica-wiadomosci/internal/database"
	"tablica-wiadomosci/internal/storage"
	"tablica-wiadomosci/internal/websocket"
)

type Server struct {
	config  *config.Config
	store   *database.Store
	storage storage.BlobStore
	wsHub   *websocket.Hub
}

func NewServer(cfg *config.Config, store *database.Store, blobs storage.BlobStore, wsHub *websocket.Hub) *Server {
	return &Server{
		config:  cfg,
		store:   store,
		storage: blobs,
		wsHub:   wsHub,
	}
}

// broadcastBoardEvent pushes an already-committed board event to every
// connected websocket client. The journal write happens inside the same
// transaction as the row it describes; only the fan-out lives here, and a
// fan-out failure never fails the request.
func (s *Server) broadcastBoardEvent(eventType string, payload interface{}) {
	if s.wsHub == nil {
		return
	}
	eventBytes, err := json.Marshal(map[string]interface{}{
		"event_type": eventType,
		"payload":    payload,
	})
	if err != nil {
		log.Printf("ERROR: Failed to marshal board event %s: %v", eventType, err)
		return
	}
	s.wsHub.Broadcast(eventBytes)
}
