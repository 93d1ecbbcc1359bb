package response

import (
	"fmt"
	"net/http"

	"digital-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK envelope with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(parseError(errors.NewUnauthorizedHTTPError()))
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(parseError(errors.NewForbiddenHTTPError()))
}

func parseError(err error) (int, Resp) {
	switch parsedErr := err.(type) {
	case *errors.ValidationError:
		return http.StatusBadRequest, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Error(),
		}
	case *errors.ValidationErrorCollector:
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   ValidationErrorMsg,
			Errors:    parsedErr.Errors(),
		}
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
		}
	default:
		// Unknown errors never leak detail to the client.
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends an error response (status + envelope from parseError).
func Error(c *gin.Context, err error) {
	statusCode, resp := parseError(err)
	c.JSON(statusCode, resp)
}

// HttpError sends a response for *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends the mapped HTTPError, falling
// back to Error for unmapped values.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	if httpErr, ok := eMap[err]; ok {
		Error(c, httpErr)
		return
	}
	Error(c, err)
}

// PanicError handles panic recovery and sends a generic error response.
func PanicError(c *gin.Context, recovered any) {
	if errVal, ok := recovered.(error); ok {
		statusCode, resp := parseError(errVal)
		c.JSON(statusCode, resp)
		return
	}
	statusCode, resp := parseError(fmt.Errorf("%v", recovered))
	c.JSON(statusCode, resp)
}
