package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"prankpress/internal/leaderboard"
	"prankpress/internal/service"
	"prankpress/pkg/errors"
	"prankpress/pkg/logger"
	"prankpress/pkg/xerr"
)

type handlers struct {
	creation  *service.Creation
	rendering *service.Rendering
	board     *leaderboard.Board
}

// visibleParagraphs is how much of the article a visitor gets to read
// before the surprise fires.
const visibleParagraphs = 3

func (h *handlers) createArticle(c *gin.Context) {
	var req service.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format."})
		return
	}

	link, err := h.creation.Create(c.Request.Context(), req, requestOrigin(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"link": link})
}

func (h *handlers) getArticle(c *gin.Context) {
	a, err := h.rendering.Peek(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *handlers) articleQR(c *gin.Context) {
	articleSlug := c.Param("slug")
	if _, err := h.rendering.Peek(c.Request.Context(), articleSlug); err != nil {
		writeError(c, err)
		return
	}

	link := h.creation.Link(articleSlug, requestOrigin(c))
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		writeError(c, errors.Wrap(xerr.ErrInternalServer, "Failed to render QR code.", err))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *handlers) leaderboard(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	entries := []leaderboard.Entry{}
	if h.board != nil {
		entries = h.board.Top(c.Request.Context(), limit)
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *handlers) articlePage(c *gin.Context) {
	view, err := h.rendering.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if cm, ok := errors.FromError(err); ok && cm.Code == xerr.ErrNotFound {
			c.HTML(http.StatusNotFound, "404.html", gin.H{})
			return
		}
		logger.Error("article page failed", zap.String("slug", c.Param("slug")), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "404.html", gin.H{
			"Message": "Something went wrong. Please try again.",
		})
		return
	}

	visible := view.Paragraphs
	var hidden []string
	if len(visible) > visibleParagraphs {
		hidden = visible[visibleParagraphs:]
		visible = visible[:visibleParagraphs]
	}

	c.HTML(http.StatusOK, "article.html", gin.H{
		"Article": view.Article,
		"Visible": visible,
		"Hidden":  hidden,
		"Date":    time.Now().Format("Monday, 2 January 2006"),
	})
}

func (h *handlers) homePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", nil)
}

func (h *handlers) createPage(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", nil)
}

func (h *handlers) createForRealPage(c *gin.Context) {
	c.HTML(http.StatusOK, "create_for_real.html", nil)
}

func (h *handlers) leaderboardPage(c *gin.Context) {
	entries := []leaderboard.Entry{}
	if h.board != nil {
		entries = h.board.Top(c.Request.Context(), 10)
	}
	c.HTML(http.StatusOK, "leaderboard.html", gin.H{"Entries": entries})
}

// writeError maps a service error onto an HTTP response. Client errors keep
// their specific message; server errors are logged with the cause and get a
// generic message. Not-found is not logged as an error.
func writeError(c *gin.Context, err error) {
	cm, ok := errors.FromError(err)
	if !ok {
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}

	status := xerr.HTTPStatus(cm.Code)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Int("code", cm.Code), zap.Error(err))
		c.JSON(status, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(status, gin.H{"error": cm.Msg})
}

func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
