package bnk

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// lossyUTF8 converts raw bytes (a C-string payload) to a string, replacing
// any invalid UTF-8 byte sequences with the Unicode replacement character.
// This mirrors the serialization contract used for every C-string field
// exposed over the JSON interchange surface.
func lossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "�")
}

// Base64Blob is a byte slice that marshals to/from JSON as
// base64-without-padding, the contract §6 specifies for DATA payload bytes
// and opaque plugin blobs.
type Base64Blob []byte

// MarshalJSON encodes the blob as a base64 (no padding) JSON string.
func (b Base64Blob) MarshalJSON() ([]byte, error) {
	s := base64.RawStdEncoding.EncodeToString(b)
	return json.Marshal(s)
}

// UnmarshalJSON decodes a base64 (no padding) JSON string into the blob.
func (b *Base64Blob) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// CString is a name or label whose on-wire representation is raw bytes but
// whose JSON representation is a lossy-UTF-8 string; the two codecs are
// exact inverses for any valid-UTF-8 input.
type CString string

// MarshalJSON encodes the string directly; invalid UTF-8 was already
// folded to the replacement character when the value was constructed via
// lossyUTF8.
func (s CString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON decodes a JSON string as-is.
func (s *CString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = CString(v)
	return nil
}

// ObjectID is the `{Hash(u32), String(name)}` variant representation of an
// HIRCObject/name-bearing id: the hash is always authoritative and the
// only thing written on encode; the name, when present, is a display-only
// hint that does not survive a round-trip unless a Dictionary restores it.
type ObjectID struct {
	Hash uint32
	Name string // optional; empty means "hash only"
}

// NewObjectIDFromName builds an ObjectID carrying both the computed hash
// and the source name.
func NewObjectIDFromName(name string) ObjectID {
	return ObjectID{Hash: FNV1_32Lower(name), Name: name}
}

// Resolve returns the display name for id, preferring the name already
// carried on the value and falling back to dict.
func (id ObjectID) Resolve(dict Dictionary) string {
	if id.Name != "" {
		return id.Name
	}
	if dict != nil {
		if name, ok := dict.Lookup(id.Hash); ok {
			return name
		}
	}
	return ""
}

type objectIDJSON struct {
	Hash uint32 `json:"hash"`
	Name string `json:"name,omitempty"`
}

// MarshalJSON writes both the hash and the (possibly empty) display name.
func (id ObjectID) MarshalJSON() ([]byte, error) {
	return json.Marshal(objectIDJSON{Hash: id.Hash, Name: id.Name})
}

// UnmarshalJSON reads the hash and display name back.
func (id *ObjectID) UnmarshalJSON(data []byte) error {
	var v objectIDJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	id.Hash = v.Hash
	id.Name = v.Name
	return nil
}
