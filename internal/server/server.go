package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wires the deal-overview endpoints to their collaborators. Requests
// are independent; no state is shared across them beyond the immutable
// clients injected here.
type Server struct {
	store     ObjectStore
	extractor Extractor
	logger    *zap.Logger
}

func New(store ObjectStore, extractor Extractor, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{store: store, extractor: extractor, logger: logger}
}

// Router builds the HTTP surface. A catch-all recovery converts any panic
// into a generic 500 so one bad request never takes the process down.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error("panic recovered", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}))
	r.Use(cors.Default())

	r.GET("/health", s.Health)
	r.POST("/generate-upload-url", s.GenerateUploadURL)
	r.POST("/generate-download-url", s.GenerateDownloadURL)
	r.POST("/v1/ocr", s.OCR)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
