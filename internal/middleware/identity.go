package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mindtrace/bpdscreen/internal/dto"
	"github.com/mindtrace/bpdscreen/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	// CtxSubjectID holds the resolved subject id: the authenticated user id
	// or the client's anonymous session id.
	CtxSubjectID = "subjectID"
	// CtxAuthenticated is true only when the subject came from a valid token.
	CtxAuthenticated = "authenticated"

	// HeaderAnonymousID carries the client-generated anonymous session id
	// used to tag results before login. Advisory, never authoritative.
	HeaderAnonymousID = "X-Anonymous-Id"
)

// Identity resolves the current subject for every request. A valid Bearer
// token wins over the anonymous header; neither present leaves the request
// without a subject, which handlers that need one reject individually.
func Identity(identity service.IdentityService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		auth := ctx.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token := strings.TrimPrefix(auth, "Bearer ")
			userID, err := identity.ResolveToken(token)
			if err == nil {
				ctx.Set(CtxSubjectID, userID)
				ctx.Set(CtxAuthenticated, true)
				ctx.Next()
				return
			}
			log.Warn().Err(err).Msg("Identity: rejecting invalid bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid session token"})
			return
		}

		if anonID := ctx.GetHeader(HeaderAnonymousID); anonID != "" {
			ctx.Set(CtxSubjectID, anonID)
			ctx.Set(CtxAuthenticated, false)
		}
		ctx.Next()
	}
}

// RequireSubject aborts requests that carry neither a token nor an anonymous
// session id.
func RequireSubject() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString(CtxSubjectID) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Message: "A session identity is required (Authorization or " + HeaderAnonymousID + ")",
			})
			return
		}
		ctx.Next()
	}
}

// RequireUser aborts requests whose subject is not an authenticated user.
func RequireUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !ctx.GetBool(CtxAuthenticated) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		ctx.Next()
	}
}
