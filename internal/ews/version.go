// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

// Version is an Exchange protocol version. Values are ordered, so feature
// gates compare with < and >=.
type Version int

const (
	Exchange2007 Version = iota
	Exchange2007SP1
	Exchange2010
	Exchange2010SP1
	Exchange2010SP2
	Exchange2013
	Exchange2013SP1
)

// DefaultVersion is assumed for endpoints that never reported a version.
const DefaultVersion = Exchange2007SP1

// LatestVersion is the newest version the engine knows. Unknown version
// strings reported by a server map to it.
const LatestVersion = Exchange2013SP1

var versionNames = [...]string{
	Exchange2007:    "Exchange2007",
	Exchange2007SP1: "Exchange2007_SP1",
	Exchange2010:    "Exchange2010",
	Exchange2010SP1: "Exchange2010_SP1",
	Exchange2010SP2: "Exchange2010_SP2",
	Exchange2013:    "Exchange2013",
	Exchange2013SP1: "Exchange2013_SP1",
}

// String returns the wire name, e.g. "Exchange2010_SP1".
func (v Version) String() string {
	if v < Exchange2007 || int(v) >= len(versionNames) {
		return versionNames[DefaultVersion]
	}
	return versionNames[v]
}

// ParseVersion parses a wire version name.
func ParseVersion(s string) (Version, bool) {
	for v, name := range versionNames {
		if name == s {
			return Version(v), true
		}
	}
	return DefaultVersion, false
}

// versionFromHeader interprets a ServerVersionInfo Version attribute.
// An empty value yields ok=false; an unrecognized one yields LatestVersion.
func versionFromHeader(s string) (v Version, known bool, ok bool) {
	if s == "" {
		return 0, false, false
	}
	if v, known := ParseVersion(s); known {
		return v, true, true
	}
	return LatestVersion, false, true
}
