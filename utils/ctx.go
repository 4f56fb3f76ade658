package utils

import (
	"github.com/SpideeCode/uberPharma/entity"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

func SetPrincipal(c *gin.Context, p entity.Principal) {
	c.Set(principalKey, p)
}

// CurrentPrincipal returns the authenticated caller set by the auth
// middleware, if any.
func CurrentPrincipal(c *gin.Context) (entity.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return entity.Principal{}, false
	}
	p, ok := v.(entity.Principal)
	return p, ok && p.UserID != 0
}

// MustPrincipal is for handlers behind the auth middleware.
func MustPrincipal(c *gin.Context) entity.Principal {
	p, _ := CurrentPrincipal(c)
	return p
}
