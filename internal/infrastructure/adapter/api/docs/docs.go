package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPIYAML []byte

// SwaggerUIVersion is the swagger-ui-dist release the docs page loads
const SwaggerUIVersion = "5.17.14"

var loadSpec = sync.OnceValues(func() ([]byte, error) {
	return yamlToJSON(openAPIYAML)
})

// OpenAPIJSON returns the embedded OpenAPI document rendered as JSON
func OpenAPIJSON() ([]byte, error) {
	return loadSpec()
}

func yamlToJSON(doc []byte) ([]byte, error) {
	var spec map[string]any
	if err := yaml.Unmarshal(doc, &spec); err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	return json.Marshal(spec)
}

// SpecHandler serves GET /swagger.json
func SpecHandler(c *gin.Context) {
	spec, err := OpenAPIJSON()
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", spec)
}

// UIHandler serves the Swagger UI page pointing at /swagger.json
func UIHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(uiPage))
}

const uiPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Wallet API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@` + SwaggerUIVersion + `/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@` + SwaggerUIVersion + `/swagger-ui-bundle.js" charset="UTF-8"></script>
  <script>
    window.onload = function () {
      window.ui = SwaggerUIBundle({ url: "/swagger.json", dom_id: "#swagger-ui", deepLinking: true });
    };
  </script>
</body>
</html>
`
