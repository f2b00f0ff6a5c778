package interfaces

import "time"

// Operation names one of the engine's public operations.
type Operation string

const (
	OpKeypairFromSeed   Operation = "keypair_from_seed"
	OpDeriveKeypairHard Operation = "derive_keypair_hard"
	OpDeriveKeypairSoft Operation = "derive_keypair_soft"
	OpDerivePublicSoft  Operation = "derive_public_soft"
	OpSign              Operation = "sign"
	OpVerify            Operation = "verify"
)

// Operations lists every Operation in a stable order.
func Operations() []Operation {
	return []Operation{
		OpKeypairFromSeed,
		OpDeriveKeypairHard,
		OpDeriveKeypairSoft,
		OpDerivePublicSoft,
		OpSign,
		OpVerify,
	}
}

// Outcome classifies how an operation ended.
type Outcome string

const (
	// OutcomeOK means the operation produced a result.
	OutcomeOK Outcome = "ok"

	// OutcomeError means the operation rejected its input.
	OutcomeError Outcome = "error"

	// OutcomeValid means a signature verified.
	OutcomeValid Outcome = "valid"

	// OutcomeInvalid means a signature did not verify.
	OutcomeInvalid Outcome = "invalid"
)

// OperationObserver is notified after every engine operation.
type OperationObserver interface {
	ObserveOperation(op Operation, outcome Outcome, elapsed time.Duration)
}
