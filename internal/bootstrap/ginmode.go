package bootstrap

import "github.com/gin-gonic/gin"

func SetGinMode(debug bool) {
	if debug {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
