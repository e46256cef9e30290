package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dgraph-io/badger/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/spatialtx/datastore/internal/errors"
	"github.com/spatialtx/datastore/internal/models"
	"github.com/spatialtx/datastore/internal/types/resource"
)

// maxTxnRetries bounds the retries of a write transaction that lost a commit
// race before the error is surfaced to the caller.
const maxTxnRetries = 20

// Badger is a Store over an embedded badger database. Records are stored as
// JSON under doc/<collection>/<id>, so iteration over a collection prefix
// yields a stable key order.
type Badger struct {
	db     *badger.DB
	logger hclog.Logger
	now    func() time.Time
}

var _ Store = (*Badger)(nil)

// Open opens the document store at path. Supports WithLogger, WithClock and
// WithInMemory.
func Open(path string, opt ...Option) (*Badger, error) {
	const op = "docstore.Open"
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
		return nil, errors.Wrap(err, op, errors.WithCode(errors.Unavailable), errors.WithMsg("unable to open document store"))
	}
	return &Badger{
		db:     db,
		logger: logger.Named("docstore"),
		now:    opts.withClock,
	}, nil
}

// Close closes the underlying database.
func (s *Badger) Close() error {
	const op = "docstore.(Badger).Close"
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, op, errors.WithCode(errors.Io))
	}
	return nil
}

func docKey(collection, id string) []byte {
	return []byte("doc/" + collection + "/" + id)
}

func docPrefix(collection string) []byte {
	return []byte("doc/" + collection + "/")
}

// FindById returns the record with the given id.
func (s *Badger) FindById(ctx context.Context, typ resource.Type, id string) (models.Resource, error) {
	const op = "docstore.(Badger).FindById"
	collection := typ.Collection()
	if collection == "" {
		return nil, errors.New(errors.InvalidParameter, op, fmt.Sprintf("no collection for variant %q", typ))
	}
	if id == "" {
		return nil, errors.New(errors.InvalidParameter, op, "missing id")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, op)
	}
	var rec models.Resource
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(docKey(collection, id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			rec, err = decode(typ, val)
			return err
		})
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, errors.New(errors.RecordNotFound, op, fmt.Sprintf("%s %q not found", typ, id))
	case err != nil:
		return nil, errors.Wrap(err, op, errors.WithCode(errors.Io))
	}
	return rec, nil
}

// FindOne returns the first record matching pred in key order, or nil when no
// record matches.
func (s *Badger) FindOne(ctx context.Context, typ resource.Type, pred Predicate) (models.Resource, error) {
	const op = "docstore.(Badger).FindOne"
	recs, err := s.FindAll(ctx, typ, pred)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0], nil
}

// FindAll returns all records matching pred in key order. The result is never
// nil.
func (s *Badger) FindAll(ctx context.Context, typ resource.Type, pred Predicate) ([]models.Resource, error) {
	const op = "docstore.(Badger).FindAll"
	collection := typ.Collection()
	if collection == "" {
		return nil, errors.New(errors.InvalidParameter, op, fmt.Sprintf("no collection for variant %q", typ))
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, op)
	}
	out := make([]models.Resource, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		iopts := badger.DefaultIteratorOptions
		iopts.Prefix = docPrefix(collection)
		it := txn.NewIterator(iopts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				rec, err := decode(typ, val)
				if err != nil {
					return err
				}
				if pred == nil || pred(rec) {
					out = append(out, rec)
				}
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

// Insert persists a new record, assigning its public id and timestamps.
// Supports WithPrngValues for deterministic ids under test.
func (s *Badger) Insert(ctx context.Context, r models.Resource, opt ...Option) (models.Resource, error) {
	const op = "docstore.(Badger).Insert"
	if r == nil {
		return nil, errors.New(errors.InvalidParameter, op, "missing resource")
	}
	typ := r.ResourceType()
	collection := typ.Collection()
	if collection == "" {
		return nil, errors.New(errors.InvalidParameter, op, fmt.Sprintf("no collection for variant %q", typ))
	}
	if r.GetPublicId() != "" {
		return nil, errors.New(errors.InvalidPublicId, op, "public id not empty")
	}
	opts := getOpts(opt...)
	id, err := NewPublicId(typ.Prefix(), WithPrngValues(opts.withPrngValues))
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	rec := r.Clone()
	rec.SetPublicId(id)
	now := s.now().UTC()
	rec.SetCreateTime(now)
	rec.SetLastModified(now)
	val, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, op, errors.WithCode(errors.Io))
	}
	err = s.update(ctx, func(txn *badger.Txn) error {
		key := docKey(collection, id)
		if _, err := txn.Get(key); err == nil {
			// id collision; astronomically unlikely outside seeded ids
			return errors.New(errors.NotUnique, op, fmt.Sprintf("id %q already in use", id))
		}
		return txn.Set(key, val)
	})
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	s.logger.Debug("inserted record", "collection", collection, "id", id)
	return rec, nil
}

// Save overwrites an existing record and refreshes its last-modified
// timestamp. The create time of the stored record is preserved and the
// last-modified timestamp never regresses.
func (s *Badger) Save(ctx context.Context, r models.Resource) error {
	const op = "docstore.(Badger).Save"
	if r == nil {
		return errors.New(errors.InvalidParameter, op, "missing resource")
	}
	typ := r.ResourceType()
	collection := typ.Collection()
	if collection == "" {
		return errors.New(errors.InvalidParameter, op, fmt.Sprintf("no collection for variant %q", typ))
	}
	id := r.GetPublicId()
	if id == "" {
		return errors.New(errors.InvalidParameter, op, "missing public id")
	}
	rec := r.Clone()
	err := s.update(ctx, func(txn *badger.Txn) error {
		key := docKey(collection, id)
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		var prev models.Resource
		if err := item.Value(func(val []byte) error {
			prev, err = decode(typ, val)
			return err
		}); err != nil {
			return err
		}
		rec.SetCreateTime(prev.GetCreateTime())
		lm := s.now().UTC()
		if lm.Before(prev.GetLastModified()) {
			lm = prev.GetLastModified()
		}
		rec.SetLastModified(lm)
		val, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return txn.Set(key, val)
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return errors.New(errors.RecordNotFound, op, fmt.Sprintf("%s %q not found", typ, id))
	case err != nil:
		return errors.Wrap(err, op)
	}
	// propagate the stored timestamps to the caller's record
	r.SetCreateTime(rec.GetCreateTime())
	r.SetLastModified(rec.GetLastModified())
	s.logger.Debug("saved record", "collection", collection, "id", id)
	return nil
}

// Remove deletes the record with the given id.
func (s *Badger) Remove(ctx context.Context, typ resource.Type, id string) error {
	const op = "docstore.(Badger).Remove"
	collection := typ.Collection()
	if collection == "" {
		return errors.New(errors.InvalidParameter, op, fmt.Sprintf("no collection for variant %q", typ))
	}
	if id == "" {
		return errors.New(errors.InvalidParameter, op, "missing id")
	}
	err := s.update(ctx, func(txn *badger.Txn) error {
		key := docKey(collection, id)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return errors.New(errors.RecordNotFound, op, fmt.Sprintf("%s %q not found", typ, id))
	case err != nil:
		return errors.Wrap(err, op, errors.WithCode(errors.Io))
	}
	s.logger.Debug("removed record", "collection", collection, "id", id)
	return nil
}

// update runs fn in a write transaction, retrying with capped exponential
// backoff when the transaction lost a commit race.
func (s *Badger) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxTxnRetries), ctx)
	return backoff.Retry(func() error {
		err := s.db.Update(fn)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, badger.ErrConflict):
			return err
		default:
			return backoff.Permanent(err)
		}
	}, bo)
}

func decode(typ resource.Type, val []byte) (models.Resource, error) {
	const op = "docstore.decode"
	rec := models.Alloc(typ)
	if rec == nil {
		return nil, errors.New(errors.InvalidParameter, op, fmt.Sprintf("no model for variant %q", typ))
	}
	if err := json.Unmarshal(val, rec); err != nil {
		return nil, errors.Wrap(err, op, errors.WithCode(errors.Io), errors.WithMsg(fmt.Sprintf("unable to decode %s record", typ)))
	}
	return rec, nil
}
