// Package archive keeps a copy of every accepted import bundle in S3
// compatible object storage (MinIO in development).
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/dmitrijs2005/vaultkeeper/internal/server/config"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// Seams for tests.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver uploads import bundles as JSON objects.
type S3Archiver struct {
	client objectPutter
	bucket string
	now    func() time.Time
	newID  func() string
}

// NewS3Archiver builds an archiver from the S3* settings of cfg. It returns
// nil (and no error) when no bucket is configured.
func NewS3Archiver(ctx context.Context, cfg *sc.Config) (*S3Archiver, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}

	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Archiver{
		client: client,
		bucket: cfg.S3Bucket,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}, nil
}

// StorageKey returns the object key of a bundle archived for ownerID at t.
func StorageKey(ownerID string, t time.Time, id string) string {
	t = t.UTC()
	return fmt.Sprintf("imports/%s/%d/%d/%d/%s.json", url.PathEscape(ownerID), t.Year(), t.Month(), t.Day(), id)
}

// Archive uploads req and returns the object key it was stored under.
func (a *S3Archiver) Archive(ctx context.Context, ownerID string, req *models.ImportRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode bundle: %w", err)
	}

	key := StorageKey(ownerID, a.now(), a.newID())

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		Metadata:    map[string]string{"owner": ownerID},
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return key, nil
}
