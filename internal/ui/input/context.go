package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Results   int
	Cursor    int
	Err       error
	Selection bool
}

// ResultCount returns the number of results in the list
func (c *ModelContext) ResultCount() int {
	return c.Results
}

// CurrentIndex returns the cursor position in the result list
func (c *ModelContext) CurrentIndex() int {
	return c.Cursor
}

// HasError reports whether an error banner is visible
func (c *ModelContext) HasError() bool {
	return c.Err != nil
}

// HasSelection reports whether a result has been selected
func (c *ModelContext) HasSelection() bool {
	return c.Selection
}
