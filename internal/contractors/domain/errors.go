package domain

import "errors"

var ErrContractorNotFound = errors.New("contractor not found")
