package kernel

import "github.com/shopspring/decimal"

// Collaborator queries consumed by the lifecycle pipelines. Each is a
// synchronous, side-effect-free snapshot read; the orchestrator decides how
// the snapshot is produced (single reads, a batch read, a cache). Pipelines
// never perform I/O themselves.

// CheckProductCatalog reports whether a product exists in the catalog and,
// if so, its display name and unit price.
type CheckProductCatalog func(code ProductCode) (exists bool, name string, price decimal.Decimal)

// CheckInventory reports whether the requested quantity of a product is in
// stock.
type CheckInventory func(code ProductCode, qty Quantity) bool

// CheckOrderExists reports whether an order exists and, if so, its stored
// details. The details value is meaningful only when exists is true.
type CheckOrderExists func(number OrderNumber) (exists bool, details OrderDetails)
