package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	// PublicURL is the bucket's public base, e.g. https://pub-xxxx.r2.dev
	PublicURL string
}

func (c R2Config) Enabled() bool {
	return c.Bucket != "" && c.AccountID != "" && c.PublicURL != ""
}

// R2Archive uploads documents to Cloudflare R2 through its S3 API and hands
// back public URLs.
type R2Archive struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewR2Archive(ctx context.Context, c R2Config) (*R2Archive, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("missing required R2 configuration")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("auto"), // R2 ignores regions but the SDK requires one
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKeyID,
			c.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load R2 config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.AccountID)
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
	return &R2Archive{
		client:     client,
		bucket:     c.Bucket,
		publicBase: strings.TrimRight(c.PublicURL, "/"),
	}, nil
}

func (a *R2Archive) Put(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Base(name)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to R2: %w", key, err)
	}
	return a.publicURL(key), nil
}

// Remove deletes the object behind a URL returned by Put.
func (a *R2Archive) Remove(ctx context.Context, location string) error {
	key, err := objectKey(location)
	if err != nil {
		return err
	}
	_, err = a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete R2 object %s: %w", key, err)
	}
	return nil
}

func (a *R2Archive) publicURL(key string) string {
	return a.publicBase + "/" + url.PathEscape(key)
}

func objectKey(location string) (string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("invalid file URL: %w", err)
	}
	// u.Path is already unescaped
	return path.Base(u.Path), nil
}
