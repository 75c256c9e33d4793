// This package provides a typed client for the Abstract API product
// suite: email/phone/VAT validation, IP geolocation, timezones,
// holidays, exchange rates, company enrichment, web scraping and
// screenshots.
//
// Every product is covered by a single method which performs one HTTP
// GET and decodes the answer into a fixed record. The interesting part
// lives in request.go: Abstract API endpoints answer with JSON, plain
// text or raw image bytes depending on the product, so the client
// normalizes each response by its content type before decoding.
//
// All remote and transport failures surface as *APIError. Shapes that
// do not match the expected record surface as *DecodeError. There are
// no retries: one call, one request.
package abstractapi
