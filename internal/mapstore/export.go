package mapstore

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/colmask/colmask-go/internal/anonymizer"
)

// WriteCSV writes mappings to w as CSV with a token,placeholder header,
// in assignment order.
func WriteCSV(w io.Writer, mappings []anonymizer.Mapping) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"token", "placeholder"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, m := range mappings {
		if err := cw.Write([]string{m.Token, m.Placeholder}); err != nil {
			return fmt.Errorf("failed to write mapping %s: %w", m.Placeholder, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
