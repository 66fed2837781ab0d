package auth

// State is the submitter's position in a flow. A submission walks
// idle → validating → (awaiting_asset →) submitting → succeeded|failed;
// the terminal state persists until the next submission or Reset, so callers
// can observe the outcome.
type State string

const (
	StateIdle          State = "idle"
	StateValidating    State = "validating"
	StateAwaitingAsset State = "awaiting_asset"
	StateSubmitting    State = "submitting"
	StateSucceeded     State = "succeeded"
	StateFailed        State = "failed"
)
