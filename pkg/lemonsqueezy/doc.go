// Package lemonsqueezy defines the public types of the Lemon Squeezy API
// client: resource models, the JSON:API envelope, query and pagination
// options, the resource client interfaces and the error taxonomy.
//
// Every call ends in exactly one of three outcomes. A decoded envelope is
// returned on success. A *ResponseError is returned when the body is an
// error document, whatever the HTTP status. A *UnknownError is returned
// when the body is neither.
//
// Use the lsclient package to construct a Client.
package lemonsqueezy
