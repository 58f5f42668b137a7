package client

import "errors"

var (
	ErrClientNotFound   = errors.New("client not found")
	ErrClientNameExists = errors.New("client with this name already exists")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrUnitNameExists   = errors.New("unit with this name already exists for the client")
)
