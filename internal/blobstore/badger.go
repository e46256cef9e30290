package blobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spatialtx/datastore/internal/errors"
	"golang.org/x/sync/errgroup"
)

// deleteParallelism bounds the concurrent per-key deletes of a bulk delete.
const deleteParallelism = 8

// Badger is a Store over an embedded badger database. Objects are stored
// under obj/<bucket>/<key> with a small JSON envelope carrying content type
// and modification time, so bucket listings iterate a single prefix in key
// order.
type Badger struct {
	db     *badger.DB
	logger hclog.Logger
	now    func() time.Time
}

var _ Store = (*Badger)(nil)

type envelope struct {
	ContentType  string    `json:"content_type"`
	LastModified time.Time `json:"last_modified"`
	Data         []byte    `json:"data"`
}

// Open opens the blob store at path. Supports WithLogger, WithClock and
// WithInMemory.
func Open(path string, opt ...Option) (*Badger, error) {
	const op = "blobstore.Open"
	opts := getOpts(opt...)
	if path == "" && !opts.withInMemory {
		return nil, errors.New(errors.InvalidParameter, op, "missing path")
	}
	logger := opts.withLogger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	bopts := badger.DefaultOptions(path).WithLogger(nil)
	if opts.withInMemory {
		bopts = bopts.WithInMemory(true).WithDir("").WithValueDir("")
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errors.Wrap(err, op, errors.WithCode(errors.Unavailable), errors.WithMsg("unable to open blob store"))
	}
	return &Badger{
		db:     db,
		logger: logger.Named("blobstore"),
		now:    opts.withClock,
	}, nil
}

// Close closes the underlying database.
func (s *Badger) Close() error {
	const op = "blobstore.(Badger).Close"
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, op, errors.WithCode(errors.Io))
	}
	return nil
}

func objKey(bucket, key string) []byte {
	return []byte("obj/" + bucket + "/" + key)
}

func objPrefix(bucket, prefix string) []byte {
	return []byte("obj/" + bucket + "/" + prefix)
}

// Put stores data under bucket/key.
func (s *Badger) Put(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	const op = "blobstore.(Badger).Put"
	if bucket == "" {
		return errors.New(errors.InvalidParameter, op, "missing bucket")
	}
	if key == "" {
		return errors.New(errors.InvalidParameter, op, "missing key")
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, op)
	}
	val, err := json.Marshal(envelope{
		ContentType:  contentType,
		LastModified: s.now().UTC(),
		Data:         data,
	})
	if err != nil {
		return errors.Wrap(err, op, errors.WithCode(errors.Io))
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(objKey(bucket, key), val)
	})
	if err != nil {
		return errors.Wrap(err, op, errors.WithCode(errors.Io))
	}
	s.logger.Debug("stored object", "bucket", bucket, "key", key, "size", len(data))
	return nil
}

// Get returns the object's bytes.
func (s *Badger) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	const op = "blobstore.(Badger).Get"
	if bucket == "" {
		return nil, errors.New(errors.InvalidParameter, op, "missing bucket")
	}
	if key == "" {
		return nil, errors.New(errors.InvalidParameter, op, "missing key")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, op)
	}
	var env envelope
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(objKey(bucket, key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &env)
		})
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, errors.New(errors.RecordNotFound, op, fmt.Sprintf("object %q not found in bucket %q", key, bucket))
	case err != nil:
		return nil, errors.Wrap(err, op, errors.WithCode(errors.Io))
	}
	return env.Data, nil
}

// List returns the objects in the bucket whose keys start with prefix, in key
// order.
func (s *Badger) List(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error) {
	const op = "blobstore.(Badger).List"
	if bucket == "" {
		return nil, errors.New(errors.InvalidParameter, op, "missing bucket")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, op)
	}
	out := make([]ObjectInfo, 0)
	keyPrefix := objPrefix(bucket, "")
	err := s.db.View(func(txn *badger.Txn) error {
		iopts := badger.DefaultIteratorOptions
		iopts.Prefix = objPrefix(bucket, prefix)
		it := txn.NewIterator(iopts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key()[len(keyPrefix):])
			err := item.Value(func(val []byte) error {
				var env envelope
				if err := json.Unmarshal(val, &env); err != nil {
					return err
				}
				out = append(out, ObjectInfo{
					Key:          key,
					Size:         int64(len(env.Data)),
					LastModified: env.LastModified,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, op, errors.WithCode(errors.Io))
	}
	return out, nil
}

// DeleteOne removes a single object. Removing an absent object is not an
// error.
func (s *Badger) DeleteOne(ctx context.Context, bucket, key string) error {
	const op = "blobstore.(Badger).DeleteOne"
	if bucket == "" {
		return errors.New(errors.InvalidParameter, op, "missing bucket")
	}
	if key == "" {
		return errors.New(errors.InvalidParameter, op, "missing key")
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, op)
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(objKey(bucket, key))
	})
	if err != nil {
		return errors.Wrap(err, op, errors.WithCode(errors.Io))
	}
	s.logger.Debug("deleted object", "bucket", bucket, "key", key)
	return nil
}

// DeleteMany removes the given objects with bounded parallelism, continuing
// past per-key failures and returning them aggregated.
func (s *Badger) DeleteMany(ctx context.Context, bucket string, keys []string) error {
	const op = "blobstore.(Badger).DeleteMany"
	if bucket == "" {
		return errors.New(errors.InvalidParameter, op, "missing bucket")
	}
	var mu sync.Mutex
	var failures *multierror.Error
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(deleteParallelism)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			if err := s.DeleteOne(gctx, bucket, key); err != nil {
				mu.Lock()
				failures = multierror.Append(failures, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	if err := failures.ErrorOrNil(); err != nil {
		return errors.Wrap(err, op, errors.WithCode(errors.Io), errors.WithMsg(fmt.Sprintf("unable to delete %d of %d objects", len(failures.Errors), len(keys))))
	}
	return nil
}
