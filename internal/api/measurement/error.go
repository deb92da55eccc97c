package measurement

import (
	"GarmentGolang/pkg/response"
	"errors"
	"net/http"
)

var (
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
	ErrBadRequest          = response.NewError(http.StatusBadRequest, "bad request")

	// ErrMalformedResponse covers every way a model reply can fail to yield
	// a usable result: no JSON object in the text, invalid JSON, or a JSON
	// object missing required top-level fields. Terminal for the call; no
	// repair or retry is attempted.
	ErrMalformedResponse = errors.New("model response does not contain a valid measurement result")

	ErrInvalidImagePayload = errors.New("image payload could not be decoded")
)
