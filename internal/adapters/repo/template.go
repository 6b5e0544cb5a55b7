package repo

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/extrepo/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	metaKey    = "meta"
	websiteKey = "website"
)

var errNotObject = errors.New("expected a JSON object")

// field is one member of a JSON object with its value left undecoded.
type field struct {
	key   string
	value json.RawMessage
}

// object is a JSON object that keeps member order and unknown members.
type object []field

func decodeObject(data []byte) (object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	var obj object
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		obj = obj.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, zerr.New("unexpected data after JSON object")
	}
	return obj, nil
}

func (o object) get(key string) (json.RawMessage, bool) {
	for _, f := range o {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// set replaces the value of key in place, or appends the member when absent.
func (o object) set(key string, value json.RawMessage) object {
	for i := range o {
		if o[i].key == key {
			o[i].value = value
			return o
		}
	}
	return append(o, field{key: key, value: value})
}

// MarshalJSON writes the members in their original order.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalString(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// applyOwner substitutes the owner token in meta.website and leaves every other member untouched.
// A meta object without a website gains an empty one.
func applyOwner(tpl object, token string) (object, error) {
	raw, ok := tpl.get(metaKey)
	if !ok {
		return tpl, nil
	}
	meta, err := decodeObject(raw)
	if errors.Is(err, errNotObject) {
		return tpl, nil
	}
	if err != nil {
		return nil, err
	}

	var website string
	if value, ok := meta.get(websiteKey); ok {
		if err := json.Unmarshal(value, &website); err != nil {
			return nil, zerr.Wrap(err, "meta.website must be a string")
		}
	}
	value, err := marshalString(domain.SubstituteOwner(website, token))
	if err != nil {
		return nil, err
	}
	meta = meta.set(websiteKey, value)

	encoded, err := meta.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return tpl.set(metaKey, encoded), nil
}

func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
