package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"jobbridge/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakePutter struct {
	gotBucket string
	gotKey    string
	gotType   string
	gotBody   string
	deleted   []string
	err       error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotBucket = *in.Bucket
	f.gotKey = *in.Key
	if in.ContentType != nil {
		f.gotType = *in.ContentType
	}
	b, _ := io.ReadAll(in.Body)
	f.gotBody = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakePutter) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3_Delete(t *testing.T) {
	fp := &fakePutter{}
	s := newS3(fp, config.StorageConfig{Bucket: "attachments", Region: "auto"})
	if err := s.Delete(context.Background(), "/beneficiaries/op/1.pdf"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fp.deleted) != 1 || fp.deleted[0] != "beneficiaries/op/1.pdf" {
		t.Fatalf("unexpected deletes %v", fp.deleted)
	}

	boom := errors.New("boom")
	s = newS3(&fakePutter{err: boom}, config.StorageConfig{Bucket: "b", Region: "auto"})
	if err := s.Delete(context.Background(), "k"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	var nilS3 *S3
	if err := nilS3.Delete(context.Background(), "k"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestS3_UploadReturnsPublicURL(t *testing.T) {
	fp := &fakePutter{}
	s := newS3(fp, config.StorageConfig{Bucket: "attachments", Region: "auto", PublicBaseURL: "https://cdn.example/"})

	url, err := s.Upload(context.Background(), "/beneficiaries/op/1.pdf", "application/pdf", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if url != "https://cdn.example/beneficiaries/op/1.pdf" {
		t.Fatalf("unexpected url %q", url)
	}
	if fp.gotBucket != "attachments" || fp.gotKey != "beneficiaries/op/1.pdf" || fp.gotType != "application/pdf" || fp.gotBody != "hello" {
		t.Fatalf("unexpected put input: %+v", fp)
	}
}

func TestS3_BaseURLFallbacks(t *testing.T) {
	s := newS3(&fakePutter{}, config.StorageConfig{Bucket: "b", Region: "auto", Endpoint: "http://minio:9000/"})
	if s.baseURL != "http://minio:9000/b" {
		t.Fatalf("unexpected endpoint base %q", s.baseURL)
	}

	s = newS3(&fakePutter{}, config.StorageConfig{Bucket: "b", Region: "eu-west-1"})
	if s.baseURL != "https://b.s3.eu-west-1.amazonaws.com" {
		t.Fatalf("unexpected aws base %q", s.baseURL)
	}
}

func TestS3_UploadErrors(t *testing.T) {
	var nilS3 *S3
	if _, err := nilS3.Upload(context.Background(), "k", "", strings.NewReader("")); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}

	boom := errors.New("boom")
	s := newS3(&fakePutter{err: boom}, config.StorageConfig{Bucket: "b", Region: "auto"})
	if _, err := s.Upload(context.Background(), "k", "", strings.NewReader("")); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if _, err := s.Upload(context.Background(), "/", "", strings.NewReader("")); err == nil {
		t.Fatalf("expected empty key error")
	}
}

func TestNewS3_Disabled(t *testing.T) {
	if _, err := NewS3(context.Background(), config.StorageConfig{}); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}
