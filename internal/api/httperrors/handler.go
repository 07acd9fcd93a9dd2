package httperrors

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/cosmos-wallet/internal/auth"
	"github/chapool/cosmos-wallet/internal/types"
	"github/chapool/cosmos-wallet/internal/util"
	"github/chapool/cosmos-wallet/internal/wallet"
	"github/chapool/cosmos-wallet/internal/wallet/address"
	"github/chapool/cosmos-wallet/internal/wallet/broadcast"
	"github/chapool/cosmos-wallet/internal/wallet/signer"
	"github/chapool/cosmos-wallet/internal/wallet/state"
	"github/chapool/cosmos-wallet/internal/wallet/transaction"
)

type mapping struct {
	target    error
	status    int
	errorType types.PublicHTTPErrorType
	title     string
}

// Order matters: the first matching sentinel wins.
var mappings = []mapping{
	{auth.ErrAnonymousCaller, http.StatusUnauthorized, types.PublicHTTPErrorTypeANONYMOUSCALLER, "The anonymous caller is not allowed."},
	{auth.ErrInvalidToken, http.StatusUnauthorized, types.PublicHTTPErrorTypeINVALIDTOKEN, "The bearer token is invalid or expired."},
	{auth.ErrInvalidPrincipal, http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Invalid principal."},
	{wallet.ErrInvalidMessageLength, http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDMESSAGELENGTH, "The message must be exactly 32 bytes."},
	{transaction.ErrMalformed, http.StatusBadRequest, types.PublicHTTPErrorTypeMALFORMEDTRANSACTION, "Invalid transaction."},
	{transaction.ErrSignatureSlot, http.StatusBadRequest, types.PublicHTTPErrorTypeMALFORMEDTRANSACTION, "Invalid transaction."},
	{broadcast.ErrInvalidSource, http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDSOURCE, "Invalid rpc source."},
	{broadcast.ErrInvalidCluster, http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDSOURCE, "Invalid cluster."},
	{state.ErrMissingBroadcastService, http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDSTATE, "A broadcast service id is required."},
	{state.ErrInvalidKey, http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDSTATE, "Invalid ECDSA key."},
	{state.ErrNotInitialized, http.StatusServiceUnavailable, types.PublicHTTPErrorTypeNOTINITIALIZED, "The wallet is not initialized."},
	{signer.ErrSign, http.StatusBadGateway, types.PublicHTTPErrorTypeSIGNINGFAILED, "The signing service failed to sign."},
	{signer.ErrPublicKeyFetch, http.StatusBadGateway, types.PublicHTTPErrorTypeSIGNINGFAILED, "The signing service failed to return a public key."},
	{transaction.ErrInvalidBlockHash, http.StatusBadGateway, types.PublicHTTPErrorTypeUPSTREAMINVALID, "The broadcast service returned an invalid blockhash."},
	{transaction.ErrInvalidSignatureLength, http.StatusBadGateway, types.PublicHTTPErrorTypeUPSTREAMINVALID, "The signing service returned an invalid signature."},
	{address.ErrInvalidPublicKey, http.StatusBadGateway, types.PublicHTTPErrorTypeUPSTREAMINVALID, "The signing service returned an invalid public key."},
}

// FromError converts err into the error the response is rendered from.
// Broadcast failures stay *broadcast.RPCError.
func FromError(err error) error {
	var rpcErr *broadcast.RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var validationErr *HTTPValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		var verrs validator.ValidationErrors
		if errors.As(echoErr.Internal, &verrs) {
			return fromValidationErrors(echoErr.Code, verrs)
		}
		return NewFromEcho(echoErr)
	}

	for _, m := range mappings {
		if errors.Is(err, m.target) {
			e := NewHTTPErrorWithDetail(m.status, m.errorType, m.title, err.Error())
			e.Internal = err
			return e
		}
	}

	e := NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
	e.Internal = err
	return e
}

func fromValidationErrors(code int, verrs validator.ValidationErrors) *HTTPValidationError {
	details := make([]*types.HTTPValidationErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, &types.HTTPValidationErrorDetail{
			Key:   swag.String(fe.Namespace()),
			In:    swag.String("body"),
			Error: swag.String(fe.Tag()),
		})
	}

	return NewHTTPValidationError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code), details)
}

// HTTPErrorHandler renders every error returned by a handler. Internal
// details of 5xx errors are dropped when hideInternal is set.
func HTTPErrorHandler(hideInternal bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := util.LogFromContext(c.Request().Context())

		var (
			code int
			body any
		)

		switch e := FromError(err).(type) {
		case *broadcast.RPCError:
			code = http.StatusBadGateway
			body = types.RPCErrorResponse{Code: e.Code, Message: e.Message, Data: e.Data}
		case *HTTPValidationError:
			code = e.Status
			body = e.HTTPError
		case *HTTPError:
			code = e.Status
			if code >= http.StatusInternalServerError {
				if e.Internal != nil && !hideInternal {
					e.HTTPError.Internal = e.Internal.Error()
				}
				if hideInternal {
					e.HTTPError.Detail = ""
				}
			}
			body = e.HTTPError
		}

		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", code).Msg("Request failed")
		} else {
			log.Debug().Err(err).Int("status", code).Msg("Request rejected")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, body)
		}
		if werr != nil {
			log.Error().Err(werr).Msg("Failed to write error response")
		}
	}
}
