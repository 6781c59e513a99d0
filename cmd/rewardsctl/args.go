package main

import (
	"rewards/internal/errors"

	"github.com/google/uuid"
)

func parseUUIDArg(name, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.Errorf("%s must be a UUID, got %q", name, value)
	}

	return id, nil
}
