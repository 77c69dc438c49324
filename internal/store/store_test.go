package store

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	put    []*s3.PutObjectInput
	delete []*s3.DeleteObjectInput
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = append(f.put, in)
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.delete = append(f.delete, in)
	return &s3.DeleteObjectOutput{}, f.err
}

func newTestStore(client *fakeS3) *S3Store {
	return &S3Store{
		Client:        client,
		PublicBucket:  "public-images",
		PrivateBucket: "private-images",
		BaseURL:       "https://cdn.example.com/",
	}
}

func TestObjectKey(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 678_000_000, time.UTC)
	assert.Equal(t, "U1/2026-01-02T03-04-05-678Z-generated.jpg", ObjectKey("U1", ts))
}

func TestObjectKeyDistinctPerMillisecond(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 678_000_000, time.UTC)
	assert.NotEqual(t, ObjectKey("U1", ts), ObjectKey("U1", ts.Add(time.Millisecond)))
}

func TestUploadRoutesByVisibility(t *testing.T) {
	for _, tc := range []struct {
		public bool
		bucket string
	}{
		{public: true, bucket: "public-images"},
		{public: false, bucket: "private-images"},
	} {
		client := &fakeS3{}
		result, err := newTestStore(client).Upload(context.Background(), UploadParams{
			Owner:  "U1",
			Data:   []byte("jpeg bytes"),
			Public: tc.public,
		})
		require.NoError(t, err)
		require.Len(t, client.put, 1)

		put := client.put[0]
		assert.Equal(t, tc.bucket, aws.ToString(put.Bucket))
		assert.Equal(t, "image/jpeg", aws.ToString(put.ContentType))
		assert.Equal(t, "max-age=3600", aws.ToString(put.CacheControl))

		data, err := io.ReadAll(put.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg bytes"), data)

		assert.Equal(t, tc.bucket, result.Bucket)
		assert.Equal(t, aws.ToString(put.Key), result.Key)
		assert.Equal(t, "https://cdn.example.com/"+tc.bucket+"/"+result.Key, result.URL)
	}
}

func TestUploadError(t *testing.T) {
	client := &fakeS3{err: assert.AnError}
	_, err := newTestStore(client).Upload(context.Background(), UploadParams{Owner: "U1"})
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	client := &fakeS3{}
	err := newTestStore(client).Remove(context.Background(), "private-images", "U1/x-generated.jpg")
	require.NoError(t, err)
	require.Len(t, client.delete, 1)
	assert.Equal(t, "private-images", aws.ToString(client.delete[0].Bucket))
	assert.Equal(t, "U1/x-generated.jpg", aws.ToString(client.delete[0].Key))
}
