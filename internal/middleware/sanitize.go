package middleware

import (
	"encoding/json"
	"strings"

	"github.com/encorefund/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeInputMiddleware strips markup from every top-level string field of
// a mutating JSON body before handlers parse it.
func SanitizeInputMiddleware() fiber.Handler {
	policy := bluemonday.StrictPolicy()

	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
		default:
			return c.Next()
		}

		if !strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
			return c.Next()
		}
		if len(c.Body()) == 0 {
			return c.Next()
		}

		var body map[string]any
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("malformed JSON"))
		}

		sanitizeStrings(body, policy)

		newBody, err := json.Marshal(body)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("invalid body"))
		}
		c.Request().SetBody(newBody)
		c.Request().Header.SetContentLength(len(newBody))

		return c.Next()
	}
}

func sanitizeStrings(body map[string]any, policy *bluemonday.Policy) {
	for k, v := range body {
		if s, ok := v.(string); ok {
			body[k] = policy.Sanitize(s)
		}
	}
}
