package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/MGTheTrain/rms/internal/pkg/apperrors"
	"github.com/MGTheTrain/rms/internal/pkg/logger"
	"github.com/MGTheTrain/rms/internal/pkg/validators"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const internalServerErrorMessage = "Internal Server Error"

var (
	bindingOnce sync.Once
	bindingErr  error
)

// setupBinding switches gin's validator to the `validate` tag used by the domain
// commands and installs the shared custom validations.
func setupBinding() error {
	bindingOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			bindingErr = errors.New("unexpected gin validator engine")
			return
		}
		engine.SetTagName("validate")
		bindingErr = validators.Register(engine)
	})
	return bindingErr
}

func requestLogger(ctx *gin.Context) logger.Logger {
	return logger.FromContext(ctx.Request.Context(), logger.Discard())
}

func success(ctx *gin.Context, status int, data interface{}, message string) {
	response := CommonResponse{Status: StatusSuccess, Data: data}
	if message != "" {
		response.Message = &message
	}
	ctx.JSON(status, response)
}

// fail answers 422 with the failing fields as data.
func fail(ctx *gin.Context, fields map[string]string, message string) {
	response := CommonResponse{Status: StatusFail, Data: fields}
	if message != "" {
		response.Message = &message
	}
	ctx.JSON(http.StatusUnprocessableEntity, response)
}

// respondError maps err onto the error envelope. Application errors keep their
// status and message; everything else is logged and hidden behind a 500.
func respondError(ctx *gin.Context, err error) {
	log := requestLogger(ctx)

	appErr, ok := apperrors.As(err)
	if !ok {
		log.Error("Unhandled error: ", err)
		message := internalServerErrorMessage
		ctx.JSON(http.StatusInternalServerError, CommonResponse{Status: StatusError, Message: &message})
		return
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.Error(appErr.Code(), ": ", err)
	} else {
		log.Warn(appErr.Code(), ": ", err)
	}

	if status == http.StatusUnprocessableEntity {
		fail(ctx, validators.FieldErrors(err), err.Error())
		return
	}

	if status == http.StatusUnauthorized {
		ctx.Header("WWW-Authenticate", "Bearer")
	}
	message := appErr.Message()
	ctx.JSON(status, CommonResponse{Status: StatusError, Message: &message})
}

// bind decodes the request into obj and validates it. On failure the 422
// response has been written and false is returned.
func bind(ctx *gin.Context, obj interface{}, b binding.Binding) bool {
	if err := setupBinding(); err != nil {
		respondError(ctx, err)
		return false
	}

	if err := ctx.ShouldBindWith(obj, b); err != nil {
		if fields := validators.FieldErrors(err); fields != nil {
			fail(ctx, fields, "validation failed")
			return false
		}
		if errors.Is(err, io.EOF) {
			fail(ctx, map[string]string{"body": "field required"}, "request body is required")
			return false
		}
		fail(ctx, map[string]string{"body": err.Error()}, "invalid request")
		return false
	}
	return true
}

func bindJSON(ctx *gin.Context, obj interface{}) bool {
	return bind(ctx, obj, binding.JSON)
}

func bindQuery(ctx *gin.Context, obj interface{}) bool {
	return bind(ctx, obj, binding.Query)
}

// seqParam parses the named path parameter as a positive sequence number.
func seqParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	seq, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || seq == 0 {
		fail(ctx, map[string]string{name: "must be a positive integer"}, "invalid path parameter")
		return 0, false
	}
	return uint(seq), true
}
