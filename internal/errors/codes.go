package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthInvalidRefreshToken    ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
	UserInvalidID     ErrorCode = "USER_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound        ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount   ErrorCode = "TRANSACTION_002"
	TransactionInvalidType     ErrorCode = "TRANSACTION_003"
	TransactionInvalidCategory ErrorCode = "TRANSACTION_004"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound         ErrorCode = "BUDGET_001"
	BudgetInvalidPeriod    ErrorCode = "BUDGET_002"
	BudgetInvalidAmount    ErrorCode = "BUDGET_003"
	BudgetInvalidThreshold ErrorCode = "BUDGET_004"
	BudgetNoActive         ErrorCode = "BUDGET_005"
)

// Savings goal error codes (GOAL_*)
const (
	GoalNotFound      ErrorCode = "GOAL_001"
	GoalInvalidTarget ErrorCode = "GOAL_002"
)

// Reminder error codes (REMINDER_*)
const (
	ReminderNotFound ErrorCode = "REMINDER_001"
)

// Notification error codes (NOTIFICATION_*)
const (
	NotificationDispatchFailed ErrorCode = "NOTIFICATION_001"
	NotificationNotConfigured  ErrorCode = "NOTIFICATION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthInvalidRefreshToken:    "Refresh token is invalid or has been revoked",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "An account with this email already exists",
	UserInvalidID:     "Invalid user ID format",

	// Transaction errors
	TransactionNotFound:        "Transaction not found",
	TransactionInvalidAmount:   "Transaction amount must be a positive number",
	TransactionInvalidType:     "Transaction type must be income or expense",
	TransactionInvalidCategory: "Transaction category is not recognized",

	// Budget errors
	BudgetNotFound:         "Budget not found",
	BudgetInvalidPeriod:    "Budget period must be weekly or monthly",
	BudgetInvalidAmount:    "Budget amount must be a positive number",
	BudgetInvalidThreshold: "Alert threshold must be between 0 and 100",
	BudgetNoActive:         "No active budget for the current date",

	// Savings goal errors
	GoalNotFound:      "Savings goal not found",
	GoalInvalidTarget: "Savings goal target must be a positive number",

	// Reminder errors
	ReminderNotFound: "Reminder not found",

	// Notification errors
	NotificationDispatchFailed: "Budget alert was computed but the notification could not be delivered",
	NotificationNotConfigured:  "Email notifications are not configured",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
