// Package store provides the snapshot persistence boundary: named
// collections read and written whole, mirroring the key-value storage the
// application state lives in. There is no partial update; the last write
// of a collection wins.
package store

import "reflect"

// Collection names used across the application.
const (
	CollectionProducts  = "products"
	CollectionSuppliers = "suppliers"
	CollectionMovements = "stockMovements"
	CollectionInvoices  = "invoices"
	CollectionVehicles  = "vehicles"
	CollectionBookings  = "bookings"
)

// Store reads and writes whole-collection snapshots by name.
//
// Read decodes the current snapshot into v. A missing or malformed
// snapshot is not an error: v is left zeroed so the collection reads as
// empty. Write replaces the entire snapshot.
type Store interface {
	Read(name string, v any) error
	Write(name string, v any) error
}

// zeroTarget resets the decode target after a failed unmarshal so a
// malformed snapshot reads as empty instead of partially decoded data.
func zeroTarget(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv.Elem().SetZero()
	}
}
