package context

import (
	"mutuals/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeySession is the key for storing the authenticated session in echo.Context.
const KeySession ContextKey = "session"

// SetSession stores the authenticated session in echo.Context.
func SetSession(c echo.Context, session *usecase.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the authenticated session, if any.
func GetSession(c echo.Context) (*usecase.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*usecase.Session)

	return session, ok && session != nil
}
