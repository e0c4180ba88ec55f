//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "bookstore-api"
	ConsumerName = "storefront-portal"

	StateCatalogSeeded = "catalog and customers seeded"
	StateOrderExists   = "order with id 1 exists"
	StateOrderMissing  = "no order with id 999"
)

const (
	SeededBookID     int64 = 1
	SeededCustomerID int64 = 1
	MissingOrderID   int64 = 999
)

const (
	exampleBookTitle    = "The Go Programming Language"
	exampleCustomerName = "Alice Smith"
	exampleOrderDate    = "2024-06-12T10:00:00Z"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderPayload provides stable request data for order interactions.
func ExampleOrderPayload() map[string]any {
	return map[string]any{
		"customerId": SeededCustomerID,
		"items": []map[string]any{
			{"bookId": SeededBookID, "quantity": 2, "price": 39.99},
		},
		"status": "Pending",
	}
}

// ExampleListingRow provides stable response data for the order listing.
func ExampleListingRow() map[string]any {
	return map[string]any{
		"orderId":      int64(1),
		"orderDate":    exampleOrderDate,
		"totalAmount":  79.98,
		"status":       "Pending",
		"customerName": exampleCustomerName,
		"items":        exampleBookTitle + " (2 x $39.99)",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
