// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials produce the Authorization header value sent with every request.
type Credentials interface {
	AuthorizationHeader() string
}

// BasicCredentials authenticate with a username and password.
type BasicCredentials struct {
	Username string
	Password string
}

func (c BasicCredentials) AuthorizationHeader() string {
	raw := c.Username + ":" + c.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}

// OAuth2Credentials authenticate with a bearer access token.
type OAuth2Credentials struct {
	AccessToken string
}

func (c OAuth2Credentials) AuthorizationHeader() string {
	return "Bearer " + c.AccessToken
}

// Expiry returns the exp claim of the access token when it is a JWT.
// The signature is not verified: the server does that, the client only
// wants to know whether sending the token is pointless.
func (c OAuth2Credentials) Expiry() (time.Time, bool) {
	token, _, err := jwt.NewParser().ParseUnverified(c.AccessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// Expired reports whether the token carries an exp claim that lies before now.
func (c OAuth2Credentials) Expired(now time.Time) bool {
	exp, ok := c.Expiry()
	return ok && exp.Before(now)
}
