package repository

import "errors"

// Sentinel errors the usecases branch on for per-agent failure reporting.
var (
	ErrAgentNotFound     = errors.New("agent not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyProcessed  = errors.New("request not found or already processed")
	ErrBranchNotFound    = errors.New("branch not found")
)
