// Package mirror selects a package-index mirror for pip installs. An explicit
// user setting always wins; otherwise the selector geolocates the machine via
// a list of lookup endpoints and matches the country code against an ordered
// rule table. The resolved mirror (including "no mirror") is cached for the
// process session and only invalidated on explicit request.
package mirror
