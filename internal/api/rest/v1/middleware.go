package v1

import (
	"strings"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/auth"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDHeader carries the request trace id back to the client
const TraceIDHeader = "X-Trace-Id"

// ActorKey is the gin context key of the authenticated username
const ActorKey = "actor"

const unknownDomain = "unknown"

// RequestLogger logs the start and end of every request with a short trace id.
// The trace scoped logger is stored in the request context so services and the
// SQL logger write under the same trace id.
func RequestLogger(base logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		traceID := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		path := ctx.Request.URL.Path
		log := base.With("trace_id", traceID, "domain", domainOf(path))

		ctx.Request = ctx.Request.WithContext(logger.NewContext(ctx.Request.Context(), log))
		ctx.Header(TraceIDHeader, traceID)

		start := time.Now()
		log.Info("START ", ctx.Request.Method, " ", path, " handler=", ctx.HandlerName())

		ctx.Next()

		log.With("status", ctx.Writer.Status(), "duration_ms", time.Since(start).Milliseconds()).
			Info("END ", ctx.Request.Method, " ", path)
	}
}

// domainOf returns the first path segment below the API base path.
func domainOf(path string) string {
	rest, ok := strings.CutPrefix(path, BasePath+"/")
	if !ok {
		return unknownDomain
	}
	segment, _, _ := strings.Cut(rest, "/")
	if segment == "" {
		return unknownDomain
	}
	return segment
}

// BearerAuth rejects requests without a valid access token and stores the
// token subject as the acting user of the request.
func BearerAuth(authService auth.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			respondError(ctx, auth.ErrNotAuthenticated)
			ctx.Abort()
			return
		}

		username, err := authService.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			respondError(ctx, err)
			ctx.Abort()
			return
		}

		reqCtx := shared.WithActor(ctx.Request.Context(), username)
		reqCtx = logger.NewContext(reqCtx, requestLogger(ctx).With("username", username))
		ctx.Request = ctx.Request.WithContext(reqCtx)
		ctx.Set(ActorKey, username)

		ctx.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
