package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"tablica-wiadomosci/internal/database"
	"tablica-wiadomosci/internal/models"
	"tablica-wiadomosci/internal/storage"
)

// @Summary      List the board
// @Description  Returns every message joined with its author, oldest first.
// @Tags         messages
// @Produce      json
// @Success      200  {array}   models.BoardMessage
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /board [get]
func (s *Server) BoardHandler(w http.ResponseWriter, r *http.Request) {
	messages, err := s.store.ListBoardMessages(r.Context())
	if err != nil {
		http.Error(w, "Failed to list board messages", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// @Summary      Post a message
// @Description  Creates a board message with an optional image attachment. The image is uploaded to object storage first; if the upload fails, no message row is written.
// @Tags         messages
// @Accept       multipart/form-data
// @Param        message    formData  string  true   "Message text"
// @Param        imageFile  formData  file    false  "Image attachment"
// @Success      303  {string}  string "Redirect to the board"
// @Failure      400  {string}  string "Missing message text"
// @Failure      502  {string}  string "Image upload failed"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /createMessage [post]
func (s *Server) CreateMessageHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetMemberFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<30)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Error parsing multipart form", http.StatusBadRequest)
		return
	}

	content := r.FormValue("message")
	if content == "" {
		http.Error(w, "Message text cannot be empty", http.StatusBadRequest)
		return
	}

	// Upload before insert: a failed upload aborts the whole create so no
	// row ever points at an object that was never stored.
	var cloudfrontLink *string
	var key string
	file, handler, err := r.FormFile("imageFile")
	switch {
	case err == nil:
		defer file.Close()

		key = storage.ObjectKey(claims.MemberID, handler.Filename)
		if err := s.storage.Save(r.Context(), key, file); err != nil {
			log.Printf("ERROR: Failed to upload image %s for member %d: %v", key, claims.MemberID, err)
			uploadsFailedTotal.Inc()
			http.Error(w, "Failed to upload image", http.StatusBadGateway)
			return
		}

		link := storage.DeliveryLink(s.config.Storage.CloudfrontDomain, key)
		cloudfrontLink = &link
	case errors.Is(err, http.ErrMissingFile):
		// Plain text message.
	default:
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}

	// Row and journal entry commit together or not at all.
	var message *models.Message
	txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		message, err = q.CreateMessage(r.Context(), database.CreateMessageParams{
			MemberID:       claims.MemberID,
			Content:        content,
			CloudfrontLink: cloudfrontLink,
		})
		if err != nil {
			return err
		}
		return q.LogEvent(r.Context(), claims.MemberID, "message_created", map[string]interface{}{
			"message_id":      message.ID,
			"member_id":       message.MemberID,
			"content":         message.Content,
			"cloudfront_link": message.CloudfrontLink,
		})
	})
	if txErr != nil {
		log.Printf("ERROR: Failed to create message for member %d: %v", claims.MemberID, txErr)
		if cloudfrontLink != nil {
			// The object was already stored; remove it so nothing orphaned
			// stays behind a link no row will ever carry.
			if err := s.storage.Delete(r.Context(), key); err != nil {
				log.Printf("ERROR: Failed to remove orphaned object %s: %v", key, err)
			}
		}
		http.Error(w, "Failed to create message", http.StatusInternalServerError)
		return
	}

	messagesCreatedTotal.Inc()
	s.broadcastBoardEvent("message_created", map[string]interface{}{
		"message_id":      message.ID,
		"member_id":       message.MemberID,
		"content":         message.Content,
		"cloudfront_link": message.CloudfrontLink,
	})

	http.Redirect(w, r, "/board", http.StatusSeeOther)
}

// @Summary      Delete a message
// @Description  Removes a message by id. Only the author can delete their own message.
// @Tags         messages
// @Accept       x-www-form-urlencoded
// @Param        message_id  formData  string  true  "ID of the message to delete"
// @Success      303  {string}  string "Redirect to the board"
// @Failure      400  {string}  string "Invalid message id"
// @Failure      403  {string}  string "Not the author of the message"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /deleteMessage [post]
func (s *Server) DeleteMessageHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetMemberFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	messageID, err := strconv.ParseInt(r.FormValue("message_id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid message id", http.StatusBadRequest)
		return
	}

	var deleted bool
	txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		deleted, err = q.DeleteMessage(r.Context(), messageID, claims.MemberID)
		if err != nil || !deleted {
			return err
		}
		return q.LogEvent(r.Context(), claims.MemberID, "message_deleted", map[string]interface{}{
			"message_id": messageID,
			"member_id":  claims.MemberID,
		})
	})
	if txErr != nil {
		http.Error(w, "Failed to delete message", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Message not found or you are not its author", http.StatusForbidden)
		return
	}

	s.broadcastBoardEvent("message_deleted", map[string]interface{}{
		"message_id": messageID,
		"member_id":  claims.MemberID,
	})

	http.Redirect(w, r, "/board", http.StatusSeeOther)
}
