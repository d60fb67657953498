package file

import (
	"net/http"

	"hrmis/backend/foundation/web"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	*web.App
	fileServerBasePath string
}

func NewController(app *web.App, fileServerBasePath string) *Controller {
	return &Controller{app, fileServerBasePath}
}

// File serves uploaded assets (qr codes, generated sheets, imports) from the
// statics directory without directory listing.
func (cf Controller) File(c *gin.Context) {
	fs := gin.Dir(cf.fileServerBasePath, false)

	file := c.Param("filepath")

	f, err := fs.Open(file)
	if err != nil {
		c.JSON(http.StatusNotFound, map[string]any{
			"error":  "file not found",
			"status": false,
		})
		return
	}
	f.Close()

	http.ServeFile(c.Writer, c.Request, cf.fileServerBasePath+file)
}
