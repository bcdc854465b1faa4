package domain

import "errors"

var (
	ErrInvalidPercentage        = errors.New("platform percentage must be between 0 and 100")
	ErrPartyNotFound            = errors.New("party not found")
	ErrBondingNotFound          = errors.New("no active bonding")
	ErrNoReferrer               = errors.New("no referrer edge")
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrRevenueAlreadyCalculated = errors.New("revenue already calculated")
)
