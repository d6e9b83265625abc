// Package export archives stored volunteering resources to S3 as one JSON
// Lines object per UTC day.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"donatehub/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type resourceSource interface {
	ResourcesCreatedBetween(ctx context.Context, from, to time.Time) ([]*types.VolunteeringResource, error)
}

type Exporter struct {
	client    objectPutter
	resources resourceSource
	bucket    string
	prefix    string
}

func New(client objectPutter, resources resourceSource, bucket, prefix string) *Exporter {
	return &Exporter{
		client:    client,
		resources: resources,
		bucket:    bucket,
		prefix:    prefix,
	}
}

// Result describes one uploaded archive object.
type Result struct {
	Key   string
	Count int
}

// ExportDay uploads every resource created on day's UTC date. Days without
// resources upload nothing.
func (e *Exporter) ExportDay(ctx context.Context, day time.Time) (*Result, error) {
	day = day.UTC()
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	resources, err := e.resources.ResourcesCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load resources for %s: %w", from.Format(time.DateOnly), err)
	}

	result := &Result{Key: e.key(from), Count: len(resources)}
	if len(resources) == 0 {
		return result, nil
	}

	body, err := encodeLines(resources)
	if err != nil {
		return nil, err
	}

	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(result.Key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/x-ndjson"),
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", result.Key, err)
	}

	return result, nil
}

func (e *Exporter) key(day time.Time) string {
	return path.Join(e.prefix, day.Format("2006/01/02")+".jsonl")
}

func encodeLines(resources []*types.VolunteeringResource) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, r := range resources {
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("encode resource %s: %w", r.ID, err)
		}
	}
	return buf.Bytes(), nil
}
