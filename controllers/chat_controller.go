package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio/models"
	"portfolio/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ChatHandler appends a message to a chat page conversation
func (c *Controller) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	resp, err := c.chat.Send(r.Context(), mux.Vars(r)["slug"], req.SessionID, req.Audience, req.Message)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

// ChatHistoryHandler returns a session's conversation
func (c *Controller) ChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resp, err := c.chat.History(vars["slug"], vars["session"])
	if err != nil {
		c.writeServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, resp)
}

// writeServiceError maps service errors onto HTTP statuses.
func (c *Controller) writeServiceError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.writeError(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, services.ErrPageNotFound), errors.Is(err, services.ErrActionNotFound):
		c.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInFlight):
		c.writeError(w, http.StatusConflict, err.Error())
	default:
		c.logger.Error("request failed", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
