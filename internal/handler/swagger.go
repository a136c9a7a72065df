package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
)

const swaggerDocPath = "/swagger/doc.yaml"

// RegisterSwagger serves the OpenAPI document and a Swagger UI page for it.
func RegisterSwagger(app *fiber.App, doc []byte) {
	page := fmt.Sprintf(swaggerUI, swaggerDocPath)

	app.Get(swaggerDocPath, func(c fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "application/yaml")
		return c.Send(doc)
	})

	ui := func(c fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(page)
	}
	app.Get("/swagger", ui)
	app.Get("/swagger/*", ui)
}

const swaggerUI = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Movie Info Gateway API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({ url: %q, dom_id: "#swagger-ui", deepLinking: true });
  };
  </script>
</body>
</html>`
