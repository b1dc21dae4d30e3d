package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/starboard-ai/deal-overview/constants"
	"github.com/starboard-ai/deal-overview/internal/common"
)

// Config for the object storage gateway.
type Config struct {
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Endpoint  string // default s3.amazonaws.com
	UseSSL    bool
	// MaxDocumentBytes bounds StreamToBuffer. Zero means the 50 MiB default.
	MaxDocumentBytes int64
}

const defaultMaxDocumentBytes = 50 << 20

// Gateway wraps presigned URL generation and object download for one bucket.
// It keeps no state between calls beyond the configured client.
type Gateway struct {
	client   *minio.Client
	bucket   string
	maxBytes int64
	logger   *slog.Logger
}

// UploadTarget is the result of GenerateUploadURL, returned to clients as-is.
type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	FileName  string `json:"fileName"`
	ExpiresIn int    `json:"expiresIn"`
}

func NewGateway(cfg Config, logger *slog.Logger) (*Gateway, error) {
	if cfg.Bucket == "" {
		return nil, common.NewAppError("STORAGE_ERROR", "bucket is required", common.ErrStorage)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "s3.amazonaws.com"
		cfg.UseSSL = true
	}
	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = defaultMaxDocumentBytes
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, common.NewAppError("STORAGE_ERROR", "init s3 client: "+err.Error(), common.ErrStorage)
	}

	return &Gateway{
		client:   client,
		bucket:   cfg.Bucket,
		maxBytes: cfg.MaxDocumentBytes,
		logger:   logger,
	}, nil
}

// GenerateUploadURL issues a presigned PUT URL for a freshly generated object
// key. No upload happens here; the client PUTs directly to storage.
func (g *Gateway) GenerateUploadURL(ctx context.Context, contentType string) (*UploadTarget, error) {
	if contentType == "" {
		contentType = constants.ContentTypePDF
	}
	fileName := uuid.NewString() + constants.PDFExtension

	u, err := g.client.PresignHeader(ctx, http.MethodPut, g.bucket, fileName,
		constants.PresignedURLTTL, url.Values{}, http.Header{"Content-Type": {contentType}})
	if err != nil {
		g.logger.Error("storage.presign_upload_error", "file_name", fileName, "error", err)
		return nil, common.NewAppError("STORAGE_ERROR", "presign upload: "+err.Error(), common.ErrStorage)
	}

	g.logger.Info("storage.presign_upload_ok",
		"file_name", fileName,
		"content_type", contentType,
		"expires_in_s", int(constants.PresignedURLTTL.Seconds()),
	)
	return &UploadTarget{
		UploadURL: u.String(),
		FileName:  fileName,
		ExpiresIn: int(constants.PresignedURLTTL.Seconds()),
	}, nil
}

// GenerateDownloadURL issues a presigned GET URL for an existing object. The
// response content type is forced to PDF so browsers render inline.
func (g *Gateway) GenerateDownloadURL(ctx context.Context, fileName string) (string, error) {
	params := url.Values{}
	params.Set("response-content-type", constants.ContentTypePDF)

	u, err := g.client.PresignedGetObject(ctx, g.bucket, fileName, constants.PresignedURLTTL, params)
	if err != nil {
		g.logger.Error("storage.presign_download_error", "file_name", fileName, "error", err)
		return "", common.NewAppError("STORAGE_ERROR", "presign download: "+err.Error(), common.ErrStorage)
	}
	return u.String(), nil
}

// GetFile returns a reader over the named object. The object is stat'd first
// so a missing key surfaces as ErrNotFound instead of a mid-stream read
// failure.
func (g *Gateway) GetFile(ctx context.Context, fileName string) (io.ReadCloser, error) {
	obj, err := g.client.GetObject(ctx, g.bucket, fileName, minio.GetObjectOptions{})
	if err != nil {
		g.logger.Error("storage.get_object_error", "file_name", fileName, "error", err)
		return nil, common.NewAppError("STORAGE_ERROR", "get object: "+err.Error(), common.ErrStorage)
	}

	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			g.logger.Warn("storage.object_not_found", "file_name", fileName)
			return nil, common.NewAppError("NOT_FOUND", fileName+" does not exist", common.ErrNotFound)
		}
		g.logger.Error("storage.stat_object_error", "file_name", fileName, "error", err)
		return nil, common.NewAppError("STORAGE_ERROR", "stat object: "+err.Error(), common.ErrStorage)
	}

	g.logger.Info("storage.get_object_ok", "file_name", fileName, "size", info.Size)
	return obj, nil
}

// StreamToBuffer drains a byte stream fully into memory, bounded by the
// configured document size cap. The extraction client needs the complete
// document, so there is no streaming path.
func (g *Gateway) StreamToBuffer(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, g.maxBytes+1))
	if err != nil {
		return nil, common.NewAppError("STORAGE_ERROR", "read stream: "+err.Error(), common.ErrStorage)
	}
	if int64(len(buf)) > g.maxBytes {
		return nil, common.NewAppError("STORAGE_ERROR",
			fmt.Sprintf("document exceeds %d byte limit", g.maxBytes), common.ErrStorage)
	}
	return buf, nil
}
