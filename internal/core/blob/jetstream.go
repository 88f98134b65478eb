// Package blob stores binary image data in a NATS JetStream object
// store bucket, keyed by generated names.
package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

var ErrNotFound = errors.New("object not found")

type Info struct {
	Name        string
	Size        uint64
	ContentType string
	ModTime     time.Time
}

// Store is what handlers depend on; the JetStream client below is the
// only production implementation.
type Store interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (*Info, error)
	Get(ctx context.Context, name string) ([]byte, *Info, error)
	Delete(ctx context.Context, name string) error
	Close()
}

type JetStreamStore struct {
	conn   *nats.Conn
	store  jetstream.ObjectStore
	bucket string
}

// Connect dials NATS and creates the bucket if it does not exist yet.
func Connect(ctx context.Context, url, bucket string) (*JetStreamStore, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("jetstream context: %w", err)
	}

	store, err := js.ObjectStore(ctx, bucket)
	if err != nil {
		store, err = js.CreateObjectStore(ctx, jetstream.ObjectStoreConfig{
			Bucket:      bucket,
			Description: "uploaded image blobs",
		})
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
	}
	return &JetStreamStore{conn: conn, store: store, bucket: bucket}, nil
}

func (s *JetStreamStore) Put(ctx context.Context, name string, data []byte, contentType string) (*Info, error) {
	meta := jetstream.ObjectMeta{
		Name:    name,
		Headers: nats.Header{"Content-Type": []string{contentType}},
	}
	info, err := s.store.Put(ctx, meta, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("put object: %w", err)
	}
	return &Info{Name: info.Name, Size: info.Size, ContentType: contentType, ModTime: info.ModTime}, nil
}

func (s *JetStreamStore) Get(ctx context.Context, name string) ([]byte, *Info, error) {
	res, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, jetstream.ErrObjectNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("get object: %w", err)
	}
	defer res.Close()

	data, err := io.ReadAll(res)
	if err != nil {
		return nil, nil, fmt.Errorf("read object: %w", err)
	}
	info, err := res.Info()
	if err != nil {
		return nil, nil, fmt.Errorf("object info: %w", err)
	}
	return data, &Info{
		Name:        info.Name,
		Size:        info.Size,
		ContentType: contentTypeOf(info.Headers),
		ModTime:     info.ModTime,
	}, nil
}

func (s *JetStreamStore) Delete(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		if errors.Is(err, jetstream.ErrObjectNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *JetStreamStore) Close() { s.conn.Close() }

func contentTypeOf(h nats.Header) string {
	if h != nil {
		if ct := h.Get("Content-Type"); ct != "" {
			return ct
		}
	}
	return "application/octet-stream"
}
