package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/starboard-ai/deal-overview/internal/omschema"
	"github.com/starboard-ai/deal-overview/internal/property"
)

type generateUploadURLRequest struct {
	FileType string `json:"fileType"`
}

type generateDownloadURLRequest struct {
	FileName string `json:"fileName"`
}

type ocrRequest struct {
	FileName string `json:"fileName"`
}

// GenerateUploadURL issues a short-lived write URL for client-side direct
// upload. The body is optional; an absent fileType falls back to PDF.
func (s *Server) GenerateUploadURL(c *gin.Context) {
	var req generateUploadURLRequest
	// Body is optional, so a bind failure just means no fileType override.
	_ = c.ShouldBindJSON(&req)

	target, err := s.store.GenerateUploadURL(c.Request.Context(), req.FileType)
	if err != nil {
		s.logger.Error("generate upload url failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate upload URL"})
		return
	}
	c.JSON(http.StatusOK, target)
}

// GenerateDownloadURL issues a short-lived read URL for an uploaded document.
func (s *Server) GenerateDownloadURL(c *gin.Context) {
	var req generateDownloadURLRequest
	_ = c.ShouldBindJSON(&req)

	if strings.TrimSpace(req.FileName) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"message": "fileName is required",
		})
		return
	}

	downloadURL, err := s.store.GenerateDownloadURL(c.Request.Context(), req.FileName)
	if err != nil {
		s.logger.Error("generate download url failed", zap.String("file_name", req.FileName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate download URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": downloadURL, "fileName": req.FileName})
}

// OCR runs the extraction pipeline for one uploaded document: fetch the
// object, buffer it, call the extraction model, parse its JSON, and fill
// per-field defaults. Full failure detail is logged here; clients get the
// generic messages, except the parse failure message which is diagnostic and
// returned as details.
func (s *Server) OCR(c *gin.Context) {
	var req ocrRequest
	_ = c.ShouldBindJSON(&req)

	if strings.TrimSpace(req.FileName) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation Error",
			"message": "fileName is required",
		})
		return
	}

	ctx := c.Request.Context()

	stream, err := s.store.GetFile(ctx, req.FileName)
	if err != nil {
		s.logger.Error("ocr fetch failed", zap.String("file_name", req.FileName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process OCR request"})
		return
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			s.logger.Warn("ocr stream close failed", zap.String("file_name", req.FileName), zap.Error(cerr))
		}
	}()

	buf, err := s.store.StreamToBuffer(stream)
	if err != nil {
		s.logger.Error("ocr buffer failed", zap.String("file_name", req.FileName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process OCR request"})
		return
	}

	raw, err := s.extractor.ExtractOfferingMemorandum(ctx, buf)
	if err != nil {
		s.logger.Error("ocr extraction failed", zap.String("file_name", req.FileName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process OCR request"})
		return
	}

	var extracted property.ExtractedRecord
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		s.logger.Error("ocr parse failed",
			zap.String("file_name", req.FileName),
			zap.Int("raw_len", len(raw)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to parse extracted data",
			"details": err.Error(),
		})
		return
	}

	// Advisory only: a schema mismatch is logged, never rejected, because
	// every field falls back to its own default independently.
	if err := omschema.Validate([]byte(raw)); err != nil {
		s.logger.Warn("model output failed schema validation",
			zap.String("file_name", req.FileName), zap.Error(err))
	}

	record := property.Normalize(extracted, req.FileName, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"data":   record,
		"status": "success",
	})
}
