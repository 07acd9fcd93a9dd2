package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github/chapool/cosmos-wallet/internal/api/httperrors"
	"github/chapool/cosmos-wallet/internal/wallet/fee"
)

// Cycles attached to a request and the part of them the wallet kept.
const (
	HeaderXAttachedCycles = "X-Attached-Cycles"
	HeaderXAcceptedCycles = "X-Accepted-Cycles"
)

// AttachedCycles puts a fee purse holding the attached cycles into the
// request context. A missing header attaches nothing.
func AttachedCycles() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			var attached uint64
			if raw := req.Header.Get(HeaderXAttachedCycles); raw != "" {
				n, err := strconv.ParseUint(raw, 10, 64)
				if err != nil {
					return httperrors.ErrBadRequestInvalidCycles
				}
				attached = n
			}

			purse := fee.NewPurse(attached)
			c.SetRequest(req.WithContext(fee.WithPurse(req.Context(), purse)))

			res := c.Response()
			res.Before(func() {
				res.Header().Set(HeaderXAcceptedCycles, strconv.FormatUint(purse.Accepted(), 10))
			})

			return next(c)
		}
	}
}
