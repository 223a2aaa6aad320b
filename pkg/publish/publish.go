// Package publish uploads built documents to S3.
package publish

import (
	"context"
	"io"
	"io/fs"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/weftml/weft/internal/errors"
)

// ObjectPutter is the slice of the S3 client the publisher needs.
// *s3.Client satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads documents to one bucket under a key prefix.
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
}

// New creates a publisher. prefix may be empty; a non-empty prefix
// gets a trailing slash if it lacks one.
func New(client ObjectPutter, bucket, prefix string) (*Publisher, error) {
	if bucket == "" {
		return nil, errors.New(errors.CodeBucketMissing)
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Publisher{client: client, bucket: bucket, prefix: prefix}, nil
}

// PublishDocument uploads exported chunks as a single text/html object
// at key (joined under the prefix).
func (p *Publisher) PublishDocument(ctx context.Context, key string, chunks []string) error {
	return p.put(ctx, key, strings.NewReader(strings.Join(chunks, "")), "text/html; charset=utf-8")
}

// PublishDir walks the filesystem rooted at dir and uploads every
// regular file, keyed by its path relative to dir, with a content type
// derived from the file extension. It returns the number of files
// uploaded.
func (p *Publisher) PublishDir(ctx context.Context, fsys fs.FS) (int, error) {
	uploaded := 0
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		f, err := fsys.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := p.put(ctx, filepath.ToSlash(name), f, contentType(name)); err != nil {
			return err
		}
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, err
	}
	if uploaded == 0 {
		return 0, errors.New(errors.CodePublishEmptyDir)
	}
	return uploaded, nil
}

func (p *Publisher) put(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.prefix + key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return errors.Newf(errors.CategoryPublish, "uploading %s: %v", key, err).Wrap(err)
	}
	return nil
}

// contentType maps a file name to a MIME type, defaulting to
// application/octet-stream.
func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
