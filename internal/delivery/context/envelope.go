package context

import "github.com/labstack/echo/v4"

// SetAPIVersion sets the version stamped on success envelopes.
func SetAPIVersion(c echo.Context, version string) {
	c.Set(echoKeyAPIVersion, version)
}

// APIVersion returns the version stamped on success envelopes, empty when unset.
func APIVersion(c echo.Context) string {
	version, _ := c.Get(echoKeyAPIVersion).(string)

	return version
}

// SetExposeDebug allows or forbids `debug` on the request's error envelopes.
func SetExposeDebug(c echo.Context, expose bool) {
	c.Set(echoKeyExposeDebug, expose)
}

// ExposeDebug reports whether error envelopes may carry diagnostic detail.
func ExposeDebug(c echo.Context) bool {
	expose, _ := c.Get(echoKeyExposeDebug).(bool)

	return expose
}
