// Copyright (c) 2026 slpixe. All rights reserved.

package api

import (
	_ "embed"
	"net/http"
)

// The OpenAPI document is authored by hand and embedded at build time; the
// API surface is small and stable enough that generator tooling would cost
// more than it saves.
//
//go:embed openapi.json
var openapiDocument []byte

// swaggerPage loads Swagger UI from the public CDN and points it at the
// embedded document.
const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>Wikipedia Book API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"/>
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
  window.onload = () => {
    SwaggerUIBundle({
      url: "/swagger.json",
      dom_id: "#swagger-ui",
    });
  };
</script>
</body>
</html>`

// NewDocsHandlers creates the /swagger.json and /docs http.HandlerFuncs.
func NewDocsHandlers() (spec, ui http.HandlerFunc) {
	spec = func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write(openapiDocument)
	}

	ui = func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(swaggerPage))
	}

	return spec, ui
}
