package api

import "github.com/data4life/data4life-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this mobile number has already been registered",
		1101: "account not found",
		1102: store.ErrCitizenNotFound.Error(),

		1200: store.ErrNotificationNotFound.Error(),
		1201: "invalid notification type",

		1300: "unknown infection status",
		1301: "unknown disease",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)
	errorUnknownCitizen  = errorJSON(1102)

	errorUnknownNotification     = errorJSON(1200)
	errorInvalidNotificationType = errorJSON(1201)

	errorUnknownInfectionStatus = errorJSON(1300)
	errorUnknownDisease         = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
