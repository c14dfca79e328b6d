// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package openapi describes the piemarker HTTP API as an OpenAPI 3 document.
package openapi

import (
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type Object struct {
	OpenAPI    string          `json:"openapi" yaml:"openapi"`
	Info       Info            `json:"info,omitempty" yaml:"info,omitempty"`
	Servers    []Server        `json:"servers,omitempty" yaml:"servers,omitempty"`
	Tags       []Tag           `json:"tags,omitempty" yaml:"tags,omitempty"`
	Paths      map[string]Path `json:"paths" yaml:"paths"`
	Components Components      `json:"components,omitempty" yaml:"components,omitempty"`
}

func (o Object) ToJSON() (data []byte, err error) {
	return json.MarshalIndent(o, "", "    ")
}

func (o Object) ToYAML() (data []byte, err error) {
	return yaml.Marshal(o)
}

type Info struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
}

type Server struct {
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Tag struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Path struct {
	Summary string     `json:"summary,omitempty" yaml:"summary,omitempty"`
	Get     *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Post    *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Put     *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Delete  *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
}

type Operation struct {
	Tags        []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string       `json:"summary,omitempty" yaml:"summary,omitempty"`
	OperationID string       `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Parameters  []Parameter  `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   Responses    `json:"responses,omitempty" yaml:"responses,omitempty"`
}

type Components struct {
	Schemas Schemas `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}

type Schemas map[string]Schema

type Properties map[string]Schema

type Schema struct {
	Ref         string     `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type        string     `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string     `json:"format,omitempty" yaml:"format,omitempty"`
	Minimum     *float64   `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum     *float64   `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Required    []string   `json:"required,omitempty" yaml:"required,omitempty"`
	Properties  Properties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items       *Schema    `json:"items,omitempty" yaml:"items,omitempty"`
	Example     any        `json:"example,omitempty" yaml:"example,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
}

type Parameter struct {
	In          string `json:"in,omitempty" yaml:"in,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

type Media struct {
	Schema Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

type Content map[string]Media

type Response struct {
	Description string  `json:"description" yaml:"description"`
	Content     Content `json:"content,omitempty" yaml:"content,omitempty"`
}

type Responses map[string]Response

type RequestBody struct {
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Content     Content `json:"content,omitempty" yaml:"content,omitempty"`
}
