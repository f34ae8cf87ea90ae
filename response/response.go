// Package response chuẩn hóa JSON envelope trả về client.
//
// Thành công: {"status":"success","message":...,"data":...}
// Lỗi:        {"status":"error","code":...,"message":...,"errors":{...}}
package response

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogkit/apperror"
	"github.com/techmaster-vietnam/goerrorkit"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope là body của mọi response
type Envelope struct {
	Status  string            `json:"status"`
	Code    string            `json:"code,omitempty"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Success writes a success envelope with the given HTTP status
func Success(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Error writes an error envelope for err
func Error(c *fiber.Ctx, err error) error {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		logFailure(c, err, body.Message)
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler dùng làm fiber.Config.ErrorHandler: mọi lỗi handler trả về
// đều được render qua envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	return Error(c, err)
}

func classify(err error) (int, Envelope) {
	if appErr, ok := apperror.As(err); ok {
		message := appErr.Message
		if appErr.Kind == apperror.KindServer {
			// Message của server error chỉ dùng để log
			message = "Internal server error"
		}
		return appErr.Status, Envelope{
			Status:  StatusError,
			Code:    appErr.Code,
			Message: message,
			Errors:  appErr.Fields,
		}
	}

	// Lỗi goerrorkit dựng trực tiếp, không qua apperror
	var kitErr *goerrorkit.AppError
	if errors.As(err, &kitErr) {
		switch kitErr.Type {
		case goerrorkit.ValidationError:
			return http.StatusBadRequest, Envelope{
				Status:  StatusError,
				Code:    "validation_error",
				Message: "Invalid request",
			}
		case goerrorkit.BusinessError:
			return http.StatusBadRequest, Envelope{
				Status:  StatusError,
				Code:    "business_error",
				Message: "Request could not be processed",
			}
		}
		return http.StatusInternalServerError, Envelope{
			Status:  StatusError,
			Code:    "server_error",
			Message: "Internal server error",
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, Envelope{
			Status:  StatusError,
			Code:    "http_error",
			Message: fiberErr.Message,
		}
	}

	return http.StatusInternalServerError, Envelope{
		Status:  StatusError,
		Code:    "unexpected_error",
		Message: "Something went wrong",
	}
}

func logFailure(c *fiber.Ctx, err error, message string) {
	if appErr, ok := apperror.As(err); ok && appErr.Message != "" {
		message = appErr.Message
	}
	goerrorkit.LogError(goerrorkit.WrapWithMessage(err, message).WithData(map[string]interface{}{
		"method":     c.Method(),
		"path":       c.Path(),
		"request_id": requestID(c),
	}), "response.ErrorHandler")
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
