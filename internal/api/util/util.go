package util

import (
	"github.com/google/uuid"
	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ParamUUID binds the named path parameter of the request to a UUID.
func ParamUUID(ec echo.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, ec.Param(name), &id); err != nil {
		return uuid.Nil, fault.Validation("Invalid " + name)
	}

	return id, nil
}

// BindBody decodes the JSON body of the request in to the value provided.
func BindBody(ec echo.Context, into any) error {
	if err := (&echo.DefaultBinder{}).BindBody(ec, into); err != nil {
		return fault.Validation("Malformed request body")
	}

	return nil
}

// ApplyConversion applies a converter function to each of the models
// provided to this function. The returned value is a slice which
// has been converted to the new values based on the returned value
// from the converter.
func ApplyConversion[T any, K any](models []T, converter func(T) K) []K {
	dtos := make([]K, 0, len(models))
	for _, v := range models {
		dtos = append(dtos, converter(v))
	}

	return dtos
}

// NotNilOrDefault expects a pointer to some type. If the pointer is
// nil, then the dflt value is returned. If the pointer is NOT nil, then
// it is dereferenced and the concrete value is returned.
func NotNilOrDefault[T any](maybe *T, dflt T) T {
	if maybe == nil {
		return dflt
	}

	return *maybe
}
