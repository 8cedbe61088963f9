package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"jemaat_backend/internals/configs"
	helper "jemaat_backend/internals/helpers"
)

// Uploader is what the upload controller needs from object storage.
type Uploader interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, bucket, folder string) (string, error)
}

// Bucket is the subset of *oss.Bucket used here.
type Bucket interface {
	PutObject(objectKey string, reader io.Reader, options ...oss.Option) error
}

type BucketOpener func(name string) (Bucket, error)

type OSSService struct {
	open          BucketOpener
	endpoint      string
	publicBase    string
	defaultBucket string
	now           func() time.Time
}

// NewOSSService connects with the privileged key pair (falls back to the
// public pair when it is not configured).
func NewOSSService(cfg configs.OSSConfig) (*OSSService, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY")
	}
	ak, sk := cfg.UploadCredentials()
	client, err := oss.New(cfg.Endpoint, ak, sk, oss.Timeout(10, 120))
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	open := func(name string) (Bucket, error) {
		return client.Bucket(name)
	}
	return NewOSSServiceWithOpener(open, cfg.Endpoint, cfg.PublicBase, cfg.DefaultBucket), nil
}

func NewOSSServiceWithOpener(open BucketOpener, endpoint, publicBase, defaultBucket string) *OSSService {
	return &OSSService{
		open:          open,
		endpoint:      endpoint,
		publicBase:    strings.TrimSpace(publicBase),
		defaultBucket: defaultBucket,
		now:           time.Now,
	}
}

// WithClock replaces the time source used for object names.
func (s *OSSService) WithClock(now func() time.Time) *OSSService {
	s.now = now
	return s
}

// ObjectKey is folder + unix millis + "_" + original file name.
func ObjectKey(folder, filename string, at time.Time) string {
	return folder + strconv.FormatInt(at.UnixMilli(), 10) + "_" + filepath.Base(filename)
}

// Upload stores the file without ever replacing an existing object and
// returns its public URL.
func (s *OSSService) Upload(ctx context.Context, fh *multipart.FileHeader, bucket, folder string) (string, error) {
	if fh == nil {
		return "", helper.NewBadRequest("File tidak ditemukan")
	}
	if strings.TrimSpace(bucket) == "" {
		bucket = s.defaultBucket
	}
	if bucket == "" {
		return "", helper.NewBadRequest("bucket is required")
	}

	bkt, err := s.open(bucket)
	if err != nil {
		return "", uploadError(err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", uploadError(err)
	}
	defer src.Close()

	ct, body, err := detectContentType(src, fh.Filename)
	if err != nil {
		return "", uploadError(err)
	}

	key := ObjectKey(folder, fh.Filename, s.now())
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(ct),
		oss.ForbidOverWrite(true),
	}
	if err := bkt.PutObject(key, body, opts...); err != nil {
		zap.L().Warn("oss put failed", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return "", uploadError(err)
	}
	return s.PublicURL(bucket, key), nil
}

func uploadError(err error) error {
	return helper.NewAppError(fiber.StatusBadGateway, "Upload failed: "+err.Error(), nil)
}

func (s *OSSService) PublicURL(bucket, key string) string {
	if key == "" {
		return ""
	}
	if s.publicBase != "" {
		base := strings.ReplaceAll(s.publicBase, "{bucket}", bucket)
		return strings.TrimRight(base, "/") + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", bucket, end, key)
}

// detectContentType: dari ekstensi, lalu sniff 512B kalau ekstensi tidak dikenal
func detectContentType(src multipart.File, filename string) (string, io.Reader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct := mime.TypeByExtension(ext)

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, err
	}
	if n > 0 && (ct == "" || ct == "application/octet-stream") {
		ct = http.DetectContentType(head[:n])
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	if _, err := src.Seek(0, io.SeekStart); err == nil {
		return ct, src, nil
	}
	return ct, io.MultiReader(bytes.NewReader(head[:n]), src), nil
}
