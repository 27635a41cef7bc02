package handlers

import (
	"net/http"

	"slowlove/services/content"
	"slowlove/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the static event content.
type ContentHandler struct {
	svc content.ContentService
}

func NewContentHandler(svc content.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// GetEvent returns the event details plus the display prices for the two
// payment buttons.
func (h *ContentHandler) GetEvent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"event":   h.svc.Event(),
		"pricing": h.svc.Pricing(),
	})
}

// GetTimeline returns the three-hour programme.
func (h *ContentHandler) GetTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeline": h.svc.Timeline()})
}

// GetGames returns the game decks.
func (h *ContentHandler) GetGames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"games": h.svc.Games()})
}

// GetLegal returns one policy page by slug.
func (h *ContentHandler) GetLegal(c *gin.Context) {
	doc, ok := h.svc.Legal(c.Param("doc"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "document not found", c.Param("doc"))
		return
	}
	c.JSON(http.StatusOK, doc)
}
