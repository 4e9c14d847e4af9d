package audit

//go:generate go run github.com/dmarkham/enumer -type Action -trimprefix Action -transform lower -text -output action.gen.go

// Action is the kind of change applied to a collection.
type Action int

const (
	ActionAdd Action = iota
	ActionUpdate
	ActionDelete
)

// Result is the outcome of a mutation.
type Result string

const (
	ResultSuccess  Result = "success"
	ResultNotFound Result = "not-found"
	ResultInvalid  Result = "invalid"
)
