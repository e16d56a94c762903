package viewtypes

// Shared class strings for the server's own pages. The gallery elements
// compute their classes themselves; these only dress the chrome around them.

// PageHeading is the main h1 heading style for top-level pages.
var PageHeading = "mb-3"

// SectionCard wraps one gallery entry.
var SectionCard = "card mb-3"

// SectionLabel is the small caption above each gallery entry.
var SectionLabel = "form-text"

// InputClass is the standard text input styling on the server's own forms.
var InputClass = "form-control mb-3"

// ErrorText marks error-level client log entries and form errors.
var ErrorText = "text-danger"

// WarningText marks warning-level client log entries.
var WarningText = "text-warning"
