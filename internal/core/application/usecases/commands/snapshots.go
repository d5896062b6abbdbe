package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/model/product"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

// internalFailureReason is the only wording an outcome ever carries for a
// collaborator or infrastructure error. The underlying error goes to the
// log, never to the customer.
const internalFailureReason = "unexpected internal error while processing the request"

// logInternalError records the real cause of a generic internal failure.
func logInternalError(logger *slog.Logger, workflow string, err error) {
	logger.Error("workflow failed on a collaborator call",
		slog.String("workflow", workflow),
		slog.String("error", err.Error()))
}

// parseProductCodes extracts the codes that parse from raw order lines.
// Codes that do not parse are left for the pipeline's validate stage to
// report; there is nothing to prefetch for them.
func parseProductCodes(lines []order.UnvalidatedLine) []kernel.ProductCode {
	codes := make([]kernel.ProductCode, 0, len(lines))
	for _, line := range lines {
		code, err := kernel.NewProductCode(line.ProductCode)
		if err != nil {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// catalogSnapshot turns a batch of catalog entries into the snapshot check
// functions the pipelines consume. Both closures read only the in-memory
// batch; they perform no I/O.
func catalogSnapshot(products []*product.Product) (kernel.CheckProductCatalog, kernel.CheckInventory) {
	byCode := make(map[string]*product.Product, len(products))
	for _, entry := range products {
		byCode[entry.Code().Value()] = entry
	}

	checkCatalog := func(code kernel.ProductCode) (bool, string, decimal.Decimal) {
		entry, ok := byCode[code.Value()]
		if !ok {
			return false, "", decimal.Zero
		}
		return true, entry.Name(), entry.Price()
	}

	checkInventory := func(code kernel.ProductCode, qty kernel.Quantity) bool {
		entry, ok := byCode[code.Value()]
		return ok && entry.IsInStock(qty)
	}

	return checkCatalog, checkInventory
}

// fetchOrderSnapshot reads the stored details for the raw order number and
// wraps them in a snapshot check function. A number that does not parse or
// an absent row both become "does not exist" for the pipeline; only a real
// repository failure is returned as an error.
func fetchOrderSnapshot(ctx context.Context, repo ports.OrderRepository, rawNumber string,
) (kernel.CheckOrderExists, error) {
	notFound := func(kernel.OrderNumber) (bool, kernel.OrderDetails) {
		return false, kernel.OrderDetails{}
	}

	number, err := kernel.NewOrderNumber(rawNumber)
	if err != nil {
		return notFound, nil
	}

	details, err := repo.GetDetails(ctx, number)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound, nil
		}
		return nil, err
	}

	return func(num kernel.OrderNumber) (bool, kernel.OrderDetails) {
		if !num.IsEqual(number) {
			return false, kernel.OrderDetails{}
		}
		return true, details
	}, nil
}
