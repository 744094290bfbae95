package utils

import "github.com/google/uuid"

// UUIDGenerator produces request ids. Version 7 ids sort by creation time,
// which keeps server logs for one client in order.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
