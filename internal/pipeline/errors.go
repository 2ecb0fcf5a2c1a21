package pipeline

// Rejection is returned by the validator when a candidate is refused.
// Reason is a short, user-facing explanation; Err is one of the sentinels
// from package common so callers can match it with errors.Is.
type Rejection struct {
	Err    error
	Reason string
}

func (r *Rejection) Error() string { return r.Reason }

func (r *Rejection) Unwrap() error { return r.Err }

func reject(err error, reason string) *Rejection {
	return &Rejection{Err: err, Reason: reason}
}
