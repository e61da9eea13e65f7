package integrations_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/gitwrapped/pkg/integrations"
)

func ExampleURLEncode() {
	// URL-encode search qualifiers for the GitHub search API
	fmt.Println(integrations.URLEncode("is:pr author:torvalds"))
	fmt.Println(integrations.URLEncode("created:>2025-01-01"))
	// Output:
	// is%3Apr+author%3Atorvalds
	// created%3A%3E2025-01-01
}

func ExampleStatusError() {
	err := &integrations.StatusError{StatusCode: 404, Err: integrations.ErrNotFound}
	fmt.Println(err)
	fmt.Println(errors.Is(err, integrations.ErrNotFound))
	fmt.Println(integrations.IsStatus(fmt.Errorf("fetch user: %w", err)))
	// Output:
	// resource not found: status 404
	// true
	// true
}

func Example_errors() {
	fmt.Println("ErrNotFound:", integrations.ErrNotFound)
	fmt.Println("ErrNetwork:", integrations.ErrNetwork)
	// Output:
	// ErrNotFound: resource not found
	// ErrNetwork: network error
}
