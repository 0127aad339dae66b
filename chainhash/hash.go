// Package chainhash implements the core's hashing primitive: a total,
// deterministic function from any canonically-serializable Go value to a
// 64-bit digest. Collisions are treated as impossible for modeling
// purposes, matching spec.md's H(x) -> u64.
package chainhash

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Hash is the 64-bit digest produced by Sum. Zero is reserved for "no
// parent" (genesis) and "no block" in places that return a Hash alongside
// a found/ok boolean.
type Hash uint64

func (h Hash) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

// IsZero reports whether h is the reserved zero digest.
func (h Hash) IsZero() bool { return h == 0 }

// Canonical is implemented by types whose natural Go representation isn't
// itself canonical (typically because it holds unexported map fields
// whose iteration order must not leak into the digest). Sum uses
// Canonical() in place of the value itself whenever it is implemented.
type Canonical interface {
	Canonical() any
}

// Sum computes the canonical digest of v. It is deterministic: equal
// values (by canonical encoding, see encode below) always produce equal
// digests, and changing any field that participates in the encoding
// changes the digest.
func Sum(v any) Hash {
	d := xxhash.New()
	if c, ok := v.(Canonical); ok {
		v = c.Canonical()
	}
	encode(d, reflect.ValueOf(v))
	return Hash(d.Sum64())
}

// tag bytes disambiguate otherwise-colliding encodings, e.g. an empty
// string from a zero-length slice, or a nil pointer from a present one.
const (
	tagBool byte = iota
	tagInt
	tagUint
	tagFloat
	tagString
	tagBytes
	tagSlice
	tagArray
	tagStruct
	tagMap
	tagPtrNil
	tagPtrSome
	tagInterfaceNil
	tagInterfaceSome
)

func writeTag(d *xxhash.Digest, tag byte) {
	d.Write([]byte{tag})
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	d.Write(buf[:])
}

// encode writes a canonical byte representation of rv into d. It covers
// every shape the data model in this module actually produces: integers
// of any width, strings/byte-slices, slices/arrays, structs (exported
// fields only, in declaration order), pointers, interfaces, and maps
// (entries sorted by a 64-bit digest of each key's encoding, so map
// iteration order never leaks into the digest).
func encode(d *xxhash.Digest, rv reflect.Value) {
	if !rv.IsValid() {
		writeTag(d, tagPtrNil)
		return
	}
	switch rv.Kind() {
	case reflect.Bool:
		writeTag(d, tagBool)
		if rv.Bool() {
			d.Write([]byte{1})
		} else {
			d.Write([]byte{0})
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeTag(d, tagInt)
		writeUint64(d, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeTag(d, tagUint)
		writeUint64(d, rv.Uint())
	case reflect.Float32, reflect.Float64:
		writeTag(d, tagFloat)
		writeUint64(d, uint64(rv.Float()))
	case reflect.String:
		writeTag(d, tagString)
		writeUint64(d, uint64(rv.Len()))
		d.Write([]byte(rv.String()))
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			writeTag(d, tagPtrNil)
			return
		}
		if elemIsByte(rv.Type()) {
			writeTag(d, tagBytes)
			writeUint64(d, uint64(rv.Len()))
			buf := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(buf), rv)
			d.Write(buf)
			return
		}
		tag := tagSlice
		if rv.Kind() == reflect.Array {
			tag = tagArray
		}
		writeTag(d, tag)
		writeUint64(d, uint64(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			encode(d, rv.Index(i))
		}
	case reflect.Struct:
		writeTag(d, tagStruct)
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				continue // unexported
			}
			encode(d, rv.Field(i))
		}
	case reflect.Ptr:
		if rv.IsNil() {
			writeTag(d, tagPtrNil)
			return
		}
		writeTag(d, tagPtrSome)
		encode(d, rv.Elem())
	case reflect.Interface:
		if rv.IsNil() {
			writeTag(d, tagInterfaceNil)
			return
		}
		writeTag(d, tagInterfaceSome)
		elem := rv.Elem()
		writeTag(d, tagString)
		typeName := elem.Type().String()
		writeUint64(d, uint64(len(typeName)))
		d.Write([]byte(typeName))
		encode(d, elem)
	case reflect.Map:
		if rv.IsNil() {
			writeTag(d, tagPtrNil)
			return
		}
		writeTag(d, tagMap)
		writeUint64(d, uint64(rv.Len()))
		type kv struct {
			keyBytes []byte
			key, val reflect.Value
		}
		entries := make([]kv, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			kd := xxhash.New()
			encode(kd, iter.Key())
			entries = append(entries, kv{keyBytes: sumBytes(kd), key: iter.Key(), val: iter.Value()})
		}
		sort.Slice(entries, func(i, j int) bool {
			return lessBytes(entries[i].keyBytes, entries[j].keyBytes)
		})
		for _, e := range entries {
			encode(d, e.key)
			encode(d, e.val)
		}
	default:
		// Funcs, channels and unsafe pointers never appear in this data
		// model; fall back to the type's name so Sum stays total.
		writeTag(d, tagString)
		name := rv.Type().String()
		writeUint64(d, uint64(len(name)))
		d.Write([]byte(name))
	}
}

func elemIsByte(t reflect.Type) bool {
	return t.Elem().Kind() == reflect.Uint8
}

func sumBytes(d *xxhash.Digest) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], d.Sum64())
	return buf[:]
}

func lessBytes(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
