package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/eduinsights-be/types"
)

// SetupGuidance is shown when no API key is configured. While the
// credential is missing, no document-processing route is reachable.
const SetupGuidance = "OpenAI API key required. Create a .env file in the project directory, add OPENAI_API_KEY=your_key (or GEMINI_API_KEYS for the gemini provider), and restart the application."

// CredentialChecker reports whether the completion provider credential
// is configured.
type CredentialChecker interface {
	HasCredential() bool
}

// RequireCredential blocks all processing routes until an API key is
// configured, returning setup guidance instead.
func RequireCredential(checker CredentialChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checker.HasCredential() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, types.DataResponse{
				Status:  false,
				Message: SetupGuidance,
			})
			return
		}
		c.Next()
	}
}
