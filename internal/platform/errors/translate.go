package errors

import (
	stderrors "errors"

	"github.com/botprofile/personaicons/icons"
	"github.com/botprofile/personaicons/internal/platform/assets/catalog"
	"github.com/botprofile/personaicons/internal/platform/errors/i18n"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FromLookup converts icon library and manifest errors into domain errors.
//
// Errors that already carry a domain code are returned unchanged. Unknown
// errors are wrapped as CodeUnknown.
func FromLookup(err error, metadata map[string]string) *Error {
	if err == nil {
		return nil
	}
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr
	}

	code := CodeUnknown
	switch {
	case stderrors.Is(err, icons.ErrNotFound):
		code = CodeIconNotFound
	case stderrors.Is(err, icons.ErrCollectionNotFound), stderrors.Is(err, catalog.ErrSetNotFound):
		code = CodeIconSetNotFound
	case stderrors.Is(err, catalog.ErrSetEmpty):
		code = CodeIconSetEmpty
	case stderrors.Is(err, catalog.ErrEntityID):
		code = CodeEntityIDRequired
	case stderrors.Is(err, catalog.ErrEntityType):
		code = CodeEntityTypeRequired
	case stderrors.Is(err, catalog.ErrIconInvalid), stderrors.Is(err, catalog.ErrKeyInvalid), stderrors.Is(err, catalog.ErrBaseURLEmpty):
		code = CodeIconInvalid
	}
	return WrapWithMetadata(code, err.Error(), metadata, err)
}

// LocalizedStatus converts err into a gRPC status error whose localized
// message comes from the locale's error catalog.
func LocalizedStatus(err error, locale string) error {
	if err == nil {
		return nil
	}
	var domainErr *Error
	if !stderrors.As(err, &domainErr) {
		return status.Error(codes.Internal, err.Error())
	}
	messages := i18n.GetCatalog(locale)
	return domainErr.ToGRPCStatus(messages.Locale(), messages.Format(string(domainErr.Code), domainErr.Metadata))
}
