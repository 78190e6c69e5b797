package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode maps the configured app environment onto gin's run mode.
// Anything other than production or test keeps the default debug mode so
// route listings stay visible during development.
func SetGinMode(env string) {
	switch env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}
