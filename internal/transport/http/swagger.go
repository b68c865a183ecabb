package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/spendwise-app/spendwise-api/internal/util"
)

const swaggerSpecFile = "swagger.yaml"

// RegisterSwagger serves the API reference under /swagger. The spec is
// maintained by hand in docs/swagger.yaml and converted to JSON on
// demand for the UI.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/doc.json", serveSpec)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

func serveSpec(c echo.Context) error {
	raw, err := os.ReadFile(filepath.Join("docs", swaggerSpecFile))
	if err != nil {
		c.Logger().Errorf("read %s: %v", swaggerSpecFile, err)
		return c.JSON(http.StatusInternalServerError, util.Error("api spec unavailable"))
	}
	spec, err := yaml.YAMLToJSON(raw)
	if err != nil {
		c.Logger().Errorf("convert %s: %v", swaggerSpecFile, err)
		return c.JSON(http.StatusInternalServerError, util.Error("api spec unavailable"))
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, spec)
}
