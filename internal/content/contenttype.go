// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package content maps MIME types of request and response bodies to the
// encodings marker definitions support.
package content

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	KindJSON = "json"
	KindYAML = "yaml"
)

// ErrDecode marks bodies that could not be decoded.
var ErrDecode = errors.New("malformed body")

var mimeToKind = map[string]string{
	"application/json":   KindJSON,
	"application/yaml":   KindYAML,
	"application/x-yaml": KindYAML,
	"text/yaml":          KindYAML,
	"text/x-yaml":        KindYAML,
}

var kindToCanonicalMIME = map[string]string{
	KindJSON: "application/json",
	KindYAML: "application/yaml",
}

// Kind returns the encoding of a MIME type, JSON when unknown.
func Kind(contentType string) string {

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.Split(contentType, ";")[0])
	}
	if k, ok := mimeToKind[strings.ToLower(mediaType)]; ok {
		return k
	}
	return KindJSON
}

// KindOfFile returns the encoding of a file by its extension, JSON when unknown.
func KindOfFile(name string) string {

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return KindYAML
	default:
		return KindJSON
	}
}

func CanonicalMIME(kind string) string {

	if m, ok := kindToCanonicalMIME[kind]; ok {
		return m
	}
	return kindToCanonicalMIME[KindJSON]
}

// Unmarshal decodes data of the given kind into v.
func Unmarshal(kind string, data []byte, v any) (err error) {

	if kind == KindYAML {
		err = yaml.Unmarshal(data, v)
	} else {
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// Marshal encodes v as the given kind.
func Marshal(kind string, v any) ([]byte, error) {

	if kind == KindYAML {
		return yaml.Marshal(v)
	}
	return json.Marshal(v)
}
