// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Icon errors
	CodeIconNotFound   Code = "ICON_NOT_FOUND"
	CodeIconIDRequired Code = "ICON_ID_REQUIRED"

	// Icon set errors
	CodeIconSetNotFound Code = "ICON_SET_NOT_FOUND"
	CodeIconSetRequired Code = "ICON_SET_REQUIRED"
	CodeIconSetEmpty    Code = "ICON_SET_EMPTY"

	// Default icon selection errors
	CodeEntityIDRequired   Code = "ENTITY_ID_REQUIRED"
	CodeEntityTypeRequired Code = "ENTITY_TYPE_REQUIRED"
	CodeIconInvalid        Code = "ICON_INVALID"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeIconIDRequired,
		CodeIconSetRequired,
		CodeEntityIDRequired,
		CodeEntityTypeRequired,
		CodeIconInvalid:
		return codes.InvalidArgument

	// NotFound - the identifier is not part of the library
	case CodeIconNotFound,
		CodeIconSetNotFound:
		return codes.NotFound

	// FailedPrecondition - the set exists but cannot serve the request
	case CodeIconSetEmpty:
		return codes.FailedPrecondition

	default:
		return codes.Internal
	}
}
