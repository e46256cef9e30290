package docstore

import (
	"bytes"
	"strings"

	"github.com/hashicorp/go-secure-stdlib/base62"
	"github.com/spatialtx/datastore/internal/errors"
	"golang.org/x/crypto/blake2b"
)

// NewPublicId creates a new public id with the prefix. With WithPrngValues
// the id is derived deterministically from the given values, which tests use
// to get stable ids.
func NewPublicId(prefix string, opt ...Option) (string, error) {
	const op = "docstore.NewPublicId"
	if prefix == "" {
		return "", errors.New(errors.InvalidParameter, op, "missing prefix")
	}
	var publicId string
	var err error
	opts := getOpts(opt...)
	if len(opts.withPrngValues) > 0 {
		sum := blake2b.Sum256([]byte(strings.Join(opts.withPrngValues, "|")))
		reader := bytes.NewReader(sum[0:])
		publicId, err = base62.RandomWithReader(10, reader)
	} else {
		publicId, err = base62.Random(10)
	}
	if err != nil {
		return "", errors.Wrap(err, op, errors.WithCode(errors.Io), errors.WithMsg("unable to generate id"))
	}
	return prefix + "_" + publicId, nil
}
