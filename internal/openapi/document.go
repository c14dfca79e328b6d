// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package openapi

const (
	version = "3.0.3"

	tagMarkers = "markers"
	tagRender  = "render"

	mimeJSON     = "application/json"
	mimeYAML     = "application/yaml"
	mimeSVG      = "image/svg+xml"
	mimePNG      = "image/png"
	mimeMarkdown = "text/markdown"
)

func ref(name string) Schema {
	return Schema{Ref: "#/components/schemas/" + name}
}

func bound(v float64) *float64 { return &v }

func jsonContent(schema Schema) Content {
	return Content{mimeJSON: {Schema: schema}}
}

var idParameter = Parameter{
	In:       "path",
	Name:     "id",
	Required: true,
	Schema:   Schema{Type: "string", Format: "uuid"},
}

func errorResponse(description string) Response {
	return Response{Description: description, Content: jsonContent(ref("Error"))}
}

// Document returns the API description. serverURL may be empty.
func Document(serverURL string) Object {

	doc := Object{
		OpenAPI: version,
		Info: Info{
			Title:       "piemarker",
			Description: "Pie chart map markers rendered as SVG icons.",
			Version:     "1.0.0",
		},
		Tags: []Tag{
			{Name: tagMarkers, Description: "Marker definitions"},
			{Name: tagRender, Description: "Icons, placement and legends"},
		},
		Paths:      paths(),
		Components: Components{Schemas: schemas()},
	}
	if serverURL != "" {
		doc.Servers = []Server{{URL: serverURL}}
	}
	return doc
}

func paths() map[string]Path {

	return map[string]Path{
		"/healthz": {
			Get: &Operation{
				Summary:     "Liveness probe",
				OperationID: "health",
				Responses:   Responses{"200": {Description: "Service is up"}},
			},
		},
		"/api/markers": {
			Get: &Operation{
				Tags:        []string{tagMarkers},
				Summary:     "List markers, oldest first",
				OperationID: "listMarkers",
				Responses: Responses{
					"200": {Description: "Markers", Content: jsonContent(Schema{Type: "array", Items: &Schema{Ref: "#/components/schemas/Definition"}})},
				},
			},
			Post: &Operation{
				Tags:        []string{tagMarkers},
				Summary:     "Create a marker",
				OperationID: "createMarker",
				RequestBody: &RequestBody{
					Required: true,
					Content: Content{
						mimeJSON: {Schema: ref("Definition")},
						mimeYAML: {Schema: ref("Definition")},
					},
				},
				Responses: Responses{
					"201": {Description: "Created marker", Content: jsonContent(ref("Definition"))},
					"400": errorResponse("Invalid definition"),
					"409": errorResponse("Marker id is taken"),
				},
			},
		},
		"/api/markers/{id}": {
			Get: &Operation{
				Tags:        []string{tagMarkers},
				Summary:     "Get a marker with its computed slices",
				OperationID: "getMarker",
				Parameters:  []Parameter{idParameter},
				Responses: Responses{
					"200": {Description: "Marker", Content: jsonContent(ref("MarkerView"))},
					"404": errorResponse("Unknown marker"),
				},
			},
			Delete: &Operation{
				Tags:        []string{tagMarkers},
				Summary:     "Delete a marker",
				OperationID: "deleteMarker",
				Parameters:  []Parameter{idParameter},
				Responses: Responses{
					"204": {Description: "Deleted"},
					"404": errorResponse("Unknown marker"),
				},
			},
		},
		"/api/markers/{id}/data": {
			Put: &Operation{
				Tags:        []string{tagMarkers},
				Summary:     "Replace the chart data of a marker",
				OperationID: "updateMarkerData",
				Parameters:  []Parameter{idParameter},
				RequestBody: &RequestBody{
					Required: true,
					Content: Content{
						mimeJSON: {Schema: Schema{Type: "array", Items: &Schema{Ref: "#/components/schemas/Slice"}}},
						mimeYAML: {Schema: Schema{Type: "array", Items: &Schema{Ref: "#/components/schemas/Slice"}}},
					},
				},
				Responses: Responses{
					"200": {Description: "Updated marker", Content: jsonContent(ref("MarkerView"))},
					"400": errorResponse("Invalid data"),
					"404": errorResponse("Unknown marker"),
				},
			},
		},
		"/api/markers/{id}/icon.svg": {
			Get: &Operation{
				Tags:        []string{tagRender},
				Summary:     "Rendered icon",
				OperationID: "markerIcon",
				Parameters:  []Parameter{idParameter},
				Responses: Responses{
					"200": {Description: "SVG markup", Content: Content{mimeSVG: {Schema: Schema{Type: "string"}}}},
					"404": errorResponse("Unknown marker"),
				},
			},
		},
		"/api/markers/{id}/placement": {
			Get: &Operation{
				Tags:        []string{tagRender},
				Summary:     "Centered draw position of the icon in a map view",
				OperationID: "markerPlacement",
				Parameters: []Parameter{
					idParameter,
					{In: "query", Name: "zoom", Schema: Schema{Type: "integer", Minimum: bound(0), Maximum: bound(24)}},
					{In: "query", Name: "width", Description: "View width in pixels", Schema: Schema{Type: "integer", Minimum: bound(1)}},
					{In: "query", Name: "height", Description: "View height in pixels", Schema: Schema{Type: "integer", Minimum: bound(1)}},
					{In: "query", Name: "lat", Description: "View center latitude, the marker by default", Schema: Schema{Type: "number"}},
					{In: "query", Name: "lng", Description: "View center longitude, the marker by default", Schema: Schema{Type: "number"}},
				},
				Responses: Responses{
					"200": {Description: "Placement", Content: jsonContent(ref("Placement"))},
					"400": errorResponse("Invalid view"),
					"404": errorResponse("Unknown marker"),
				},
			},
		},
		"/api/markers/{id}/legend.md": {
			Get: &Operation{
				Tags:        []string{tagRender},
				Summary:     "Markdown legend",
				OperationID: "markerLegend",
				Parameters:  []Parameter{idParameter},
				Responses: Responses{
					"200": {Description: "Legend", Content: Content{mimeMarkdown: {Schema: Schema{Type: "string"}}}},
					"404": errorResponse("Unknown marker"),
				},
			},
		},
		"/api/markers/{id}/qr.png": {
			Get: &Operation{
				Tags:        []string{tagRender},
				Summary:     "QR code linking to the icon",
				OperationID: "markerQR",
				Parameters: []Parameter{
					idParameter,
					{In: "query", Name: "size", Description: "Image side in pixels", Schema: Schema{Type: "integer", Minimum: bound(64), Maximum: bound(1024)}},
				},
				Responses: Responses{
					"200": {Description: "PNG image", Content: Content{mimePNG: {Schema: Schema{Type: "string", Format: "binary"}}}},
					"404": errorResponse("Unknown marker"),
				},
			},
		},
	}
}

func schemas() Schemas {

	point := Schema{
		Type:       "object",
		Properties: Properties{"x": {Type: "number"}, "y": {Type: "number"}},
	}
	return Schemas{
		"Error": {
			Type:       "object",
			Required:   []string{"error"},
			Properties: Properties{"error": {Type: "string"}},
		},
		"Slice": {
			Type:     "object",
			Required: []string{"value", "color"},
			Properties: Properties{
				"label": {Type: "string"},
				"value": {Type: "number", Minimum: bound(0)},
				"color": {Type: "string", Example: "#4e79a7"},
				"style": {Type: "string"},
			},
		},
		"Icon": {
			Type:     "object",
			Required: []string{"data"},
			Properties: Properties{
				"data": {Type: "array", Items: &Schema{Ref: "#/components/schemas/Slice"}},
				"iconSize": {
					Type:       "object",
					Properties: Properties{"width": {Type: "integer"}, "height": {Type: "integer"}},
				},
				"iconCenter": {Type: "boolean"},
				"precision":  {Type: "integer", Minimum: bound(0)},
				"className":  {Type: "string"},
			},
		},
		"Definition": {
			Type:     "object",
			Required: []string{"lat", "lng", "icon"},
			Properties: Properties{
				"id":           {Type: "string", Format: "uuid"},
				"title":        {Type: "string"},
				"lat":          {Type: "number", Minimum: bound(-90), Maximum: bound(90)},
				"lng":          {Type: "number", Minimum: bound(-180), Maximum: bound(180)},
				"zIndexOffset": {Type: "integer"},
				"icon":         ref("Icon"),
				"createdAt":    {Type: "string", Format: "date-time"},
			},
		},
		"SliceGeometry": {
			Type: "object",
			Properties: Properties{
				"label":         {Type: "string"},
				"value":         {Type: "number"},
				"color":         {Type: "string"},
				"style":         {Type: "string"},
				"percent":       {Type: "number"},
				"startFraction": {Type: "number"},
				"endFraction":   {Type: "number"},
				"start":         point,
				"end":           point,
				"largeArc":      {Type: "boolean"},
				"path":          {Type: "string"},
			},
		},
		"MarkerView": {
			Type: "object",
			Properties: Properties{
				"marker": ref("Definition"),
				"slices": {Type: "array", Items: &Schema{Ref: "#/components/schemas/SliceGeometry"}},
				"links": {
					Type: "object",
					Properties: Properties{
						"icon":      {Type: "string", Format: "uri"},
						"placement": {Type: "string", Format: "uri"},
						"legend":    {Type: "string", Format: "uri"},
						"qr":        {Type: "string", Format: "uri"},
					},
				},
			},
		},
		"Placement": {
			Type: "object",
			Properties: Properties{
				"zoom":     {Type: "integer"},
				"origin":   point,
				"anchor":   point,
				"position": point,
				"zIndex":   {Type: "integer"},
				"size": {
					Type:       "object",
					Properties: Properties{"width": {Type: "number"}, "height": {Type: "number"}},
				},
			},
		},
	}
}
