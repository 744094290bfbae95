package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.einride.tech/aip/ordering"
)

var (
	ErrSortUnsupported = errors.New("entity does not support sorting")
	ErrInvalidOrderBy  = errors.New("invalid order by")
)

// SortInput resolves an AIP-132 order-by string ("created_at desc") into
// the single sort key the list endpoint accepts. An empty string yields nil.
func (s EntitySchema) SortInput(orderBy string) (*SortInput, error) {
	orderBy = strings.TrimSpace(orderBy)
	if orderBy == "" {
		return nil, nil
	}
	if len(s.SortFields) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSortUnsupported, s.Name)
	}

	var parsed ordering.OrderBy
	if err := parsed.UnmarshalString(orderBy); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrderBy, err)
	}
	if err := parsed.ValidateForPaths(s.sortPaths()...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrderBy, err)
	}
	if len(parsed.Fields) != 1 {
		return nil, fmt.Errorf("%w: exactly one field is supported, got %d", ErrInvalidOrderBy, len(parsed.Fields))
	}

	field := parsed.Fields[0]
	direction := SortAsc
	if field.Desc {
		direction = SortDesc
	}
	return &SortInput{Field: s.SortFields[field.Path], Direction: direction}, nil
}

func (s EntitySchema) sortPaths() []string {
	paths := make([]string, 0, len(s.SortFields))
	for p := range s.SortFields {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}
