// Package cachestore persists the analysis caches as msgpack files inside the cache directory.
package cachestore

import (
	"bytes"
	"errors"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"go.trai.ch/refcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// envelope is the on-disk frame of every cache file. The kind and schema are checked before the
// payload is decoded, so a file can never be read back as another kind.
type envelope struct {
	_msgpack struct{} `msgpack:",as_array"` //nolint:unused // msgpack struct options

	Kind    domain.Kind
	Schema  uint16
	Payload msgpack.RawMessage
}

var errKindMismatch = zerr.New("cache file holds another kind")

var errNotMapping = zerr.New("cache payload is not a mapping")

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encode frames v for kind. A nil mapping is written as an empty one so it reads back as a mapping.
func encode(kind domain.Kind, v any) ([]byte, error) {
	payload, err := marshal(v)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error()), "cache", kind.FileName())
	}
	if kind.IsMapping() && len(payload) == 1 && payload[0] == msgpcode.Nil {
		payload = []byte{msgpcode.FixedMapLow}
	}

	data, err := marshal(&envelope{Kind: kind, Schema: kind.Schema(), Payload: payload})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error()), "cache", kind.FileName())
	}
	return data, nil
}

// decode unpacks data written for kind into out.
//
// It returns false without error when the file was written with another schema version. Any
// structural problem fails with domain.ErrCacheCorrupted.
func decode(kind domain.Kind, data []byte, out any) (bool, error) {
	var env envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return false, corrupted(kind, err)
	}
	if env.Kind != kind {
		return false, corrupted(kind, zerr.With(errKindMismatch, "found", env.Kind.String()))
	}
	if env.Schema != kind.Schema() {
		return false, nil
	}
	if kind.IsMapping() && !isMapping(env.Payload) {
		return false, corrupted(kind, errNotMapping)
	}
	if err := msgpack.Unmarshal(env.Payload, out); err != nil {
		return false, corrupted(kind, err)
	}
	return true, nil
}

func isMapping(payload []byte) bool {
	if len(payload) == 0 {
		return false
	}
	c := payload[0]
	return msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32
}

func corrupted(kind domain.Kind, err error) error {
	return errors.Join(domain.ErrCacheCorrupted, zerr.With(err, "cache", kind.FileName()))
}
