package ports

// ReplService runs the read-parse-dispatch loop until exit or end of input.
type ReplService interface {
	Run() error
}
