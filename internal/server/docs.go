// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package server

import (
	"fmt"
	"net/http"

	"github.com/flowchartsman/swaggerui"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"piemarker/internal/content"
	"piemarker/internal/openapi"
)

const docsPrefix = "/docs"

func apiDocs(publicURL string) (docsJSON, docsYAML []byte, err error) {

	doc := openapi.Document(publicURL)
	if docsJSON, err = doc.ToJSON(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", "failed to generate openapi document", err)
	}
	if docsYAML, err = doc.ToYAML(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", "failed to generate openapi document", err)
	}
	return docsJSON, docsYAML, nil
}

func (srv *Server) docsRoutes() {

	srv.srvHTTP.Get("/openapi.json", func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderContentType, content.CanonicalMIME(content.KindJSON))
		return ctx.Send(srv.docsJSON)
	})
	srv.srvHTTP.Get("/openapi.yaml", func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderContentType, content.CanonicalMIME(content.KindYAML))
		return ctx.Send(srv.docsYAML)
	})

	ui := adaptor.HTTPHandler(http.StripPrefix(docsPrefix, swaggerui.Handler(srv.docsJSON)))
	srv.srvHTTP.Get(docsPrefix+"*", func(ctx *fiber.Ctx) error {
		if ctx.Path() == docsPrefix {
			return ctx.Redirect(docsPrefix+"/", fiber.StatusMovedPermanently)
		}
		return ui(ctx)
	})
}
