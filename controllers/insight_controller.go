package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"portfolio/models"
	"portfolio/services"
	"portfolio/views"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ActionHandler runs one page action and returns the settled state with
// the rendered result slot.
func (c *Controller) ActionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug, actionID := vars["slug"], vars["action"]

	var req models.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		c.writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	res, err := c.site.Run(r.Context(), slug, actionID, req, nil)
	var vErr *services.ValidationError
	if err != nil && !errors.As(err, &vErr) {
		c.writeServiceError(w, err)
		return
	}

	phase := services.PhaseSettled
	status := http.StatusOK
	base := models.NewSuccess()
	if vErr != nil {
		phase = services.PhaseIdle
		status = http.StatusBadRequest
		base = models.NewFailure(vErr.Message)
	}

	html, rerr := c.views.Slot(views.NewSlot(slug, res.Action, req.Item, phase, res.State))
	if rerr != nil {
		c.logger.Error("error rendering slot", zap.Error(rerr))
	}
	c.writeJSON(w, status, models.ActionResponse{
		BaseResponse: base,
		Page:         slug,
		Action:       actionID,
		State:        res.State,
		HTML:         string(html),
	})
}
