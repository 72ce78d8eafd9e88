// Package mediahost stores blog images in an S3-compatible bucket and
// serves them from public URLs.
package mediahost

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

var (
	ErrNotImage = errors.New("only image files are allowed")
	ErrUpload   = errors.New("image upload failed")
)

type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	Folder    string
}

// Asset is a stored image. Ref is the object key and is what Delete takes.
type Asset struct {
	URL string
	Ref string
}

type Client struct {
	s3        *s3.Client
	bucket    string
	endpoint  string
	publicURL string
	folder    string
}

// New returns (nil, nil) when the endpoint or credentials are missing so the
// API can run without image support.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, nil
	}
	if cfg.Bucket == "" {
		return nil, errors.New("media host bucket must be provided")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        client,
		bucket:    cfg.Bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		folder:    strings.Trim(cfg.Folder, "/"),
	}, nil
}

// Upload prepares data with Prepare and stores it under a fresh key with a
// public-read ACL.
func (c *Client) Upload(ctx context.Context, data []byte) (*Asset, error) {
	img, err := Prepare(data)
	if err != nil {
		return nil, err
	}

	key := path.Join(c.folder, uuid.NewString()+img.Ext)

	_, err = c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(img.Data),
		ContentLength: aws.Int64(int64(len(img.Data))),
		ContentType:   aws.String(img.ContentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: s3 upload %s: %v", ErrUpload, key, err)
	}

	return &Asset{URL: c.FileURL(key), Ref: key}, nil
}

func (c *Client) Delete(ctx context.Context, ref string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(ref),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", ref, err)
	}
	return nil
}

// FileURL prefers the configured public URL and falls back to a path-style
// bucket URL.
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}
