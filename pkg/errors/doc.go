// Package errors provides the structured error kinds returned by the recipe
// book core and its transports.
//
// Every failing core operation returns a *StructuredError whose Code names
// the failure kind. Presentation layers switch on the code and build their
// own messages; the core never formats dialog text.
//
// Example usage:
//
//	_, err := store.Add(title, ingredients, steps, minutes)
//	switch errors.CodeOf(err) {
//	case errors.ErrCodeDuplicateTitle:
//	    // ask for another title
//	case errors.ErrCodeCapacityExceeded:
//	    // book is full
//	}
package errors
