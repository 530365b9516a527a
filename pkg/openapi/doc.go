// Package openapi embeds the OpenAPI 3 description of the site's JSON and
// event-stream endpoints, validates it with kin-openapi and serves it as
// JSON.
package openapi
