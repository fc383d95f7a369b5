package middleware

// identity.go defines helper functions shared across middleware files.
// Currently it provides a user identifier extraction used for building
// per-user rate limit keys.  The JWTAuth middleware stores the token's
// subject under "user_id"; depending on how the claim was encoded it may
// arrive as a string or a JSON number.  When no user is authenticated,
// "anon" is returned so unauthenticated traffic shares one bucket per IP.

import (
    "strconv"

    "github.com/labstack/echo/v4"
)

// currentUserID extracts a user identifier from the request context.  It
// returns "anon" when no user is authenticated or the claim is missing.
func currentUserID(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case string:
        if v != "" {
            return v
        }
    case float64:
        return strconv.FormatUint(uint64(v), 10)
    case uint64:
        return strconv.FormatUint(v, 10)
    case int64:
        return strconv.FormatInt(v, 10)
    }
    return "anon"
}
