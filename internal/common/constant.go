// Package common contains shared constants and sentinel errors used across
// gophsettings components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token of the acting account.
const AccessTokenHeaderName = "access_token"

// RequestIDHeaderName is the gRPC metadata key carrying an optional
// caller-supplied request id.
const RequestIDHeaderName = "x-request-id"
