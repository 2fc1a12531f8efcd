package middleware

import "github.com/gin-gonic/gin"

// subjectKey is the key used to store the authenticated token subject.
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated token subject from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	subjectVal, exists := c.Get(string(subjectKey))
	if !exists {
		// check in the request context as well
		if v, ok := c.Request.Context().Value(subjectKey).(string); ok {
			return v, true
		}
		return "", false
	}

	subject, ok := subjectVal.(string)
	return subject, ok
}
