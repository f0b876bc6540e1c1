package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// S3Uploader stores images in an S3 bucket fronted by a public base URL.
// It is the self-hosted alternative to the Cloudinary backend; delivery
// transformations are not applied since S3 serves the object as stored.
type S3Uploader struct {
	client  *s3.Client
	bucket  string
	prefix  string
	baseURL string
	logger  zerolog.Logger
}

// NewS3Uploader creates an S3-backed uploader.
func NewS3Uploader(ctx context.Context, bucket, region, prefix, baseURL string, logger zerolog.Logger) (*S3Uploader, error) {
	logger = logger.With().Str("component", "s3-uploader").Logger()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 uploader initialised")

	return &S3Uploader{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		prefix:  prefix,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Upload puts the image into the bucket and returns its public URL. Keys
// are randomised so repeated uploads of the same filename never overwrite
// each other; the original extension is kept for content-type inference.
func (u *S3Uploader) Upload(ctx context.Context, name string, r io.Reader, size int64, onProgress ProgressFunc) (string, error) {
	key := path.Join(u.prefix, uuid.New().String()+path.Ext(name))

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   newProgressReader(r, size, onProgress),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		u.logger.Error().
			Err(err).
			Str("bucket", u.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return "", &TransportError{Err: err}
	}

	url := u.baseURL + "/" + key
	u.logger.Info().Str("key", key).Str("url", url).Msg("image uploaded to S3")
	return url, nil
}
