// Package common contains shared constants and sentinel errors used across
// tourplanner components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// DateLayout is the canonical wire/display layout for tour dates ("YYYY/MM/DD").
const DateLayout = "2006/01/02"
