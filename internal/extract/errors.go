package extract

import "fmt"

// StructuralError reports a document whose expected root collection is
// entirely absent. It is the only error extraction produces; individual
// missing fields degrade to fallbacks instead.
type StructuralError struct {
	Document string
	Element  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s document contains no %s elements", e.Document, e.Element)
}
