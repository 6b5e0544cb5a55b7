package aapt

// NewTestLocator builds a Locator with injected lookups.
func NewTestLocator(lookPath func(string) (string, error), getenv func(string) string) *Locator {
	return &Locator{lookPath: lookPath, getenv: getenv}
}

// NewestFirst exports the build-tools ordering for testing.
var NewestFirst = newestFirst
