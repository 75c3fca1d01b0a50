package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prankpress/internal/leaderboard"
	"prankpress/internal/service"
	"prankpress/web"
)

type Server struct {
	engine *gin.Engine
}

type Options struct {
	Creation  *service.Creation
	Rendering *service.Rendering
	Board     *leaderboard.Board // nil disables the leaderboard listing
}

func NewServer(opts Options) *Server {
	router := gin.Default()
	router.SetHTMLTemplate(web.Templates())

	h := &handlers{
		creation:  opts.Creation,
		rendering: opts.Rendering,
		board:     opts.Board,
	}

	api := router.Group("/api")
	{
		api.POST("/articles", h.createArticle)
		api.GET("/articles/:slug", h.getArticle)
		api.GET("/articles/:slug/qr", h.articleQR)
		api.GET("/leaderboard", h.leaderboard)
	}

	router.GET("/", h.homePage)
	router.GET("/create", h.createPage)
	router.GET("/create-for-real", h.createForRealPage)
	router.GET("/leaderboard", h.leaderboardPage)
	router.GET("/article/:slug", h.articlePage)

	router.NoRoute(func(c *gin.Context) {
		// 为了安全，防止 API 404 返回了 HTML 页面
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API not found"})
			return
		}
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
	})

	return &Server{engine: router}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Handler exposes the router for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}
