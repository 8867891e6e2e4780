package ports

// LineReader supplies input lines one at a time.
type LineReader interface {
	// ReadLine blocks until a full line is available and returns it without
	// its terminator. It returns io.EOF once the input is closed.
	ReadLine() (string, error)
	Close() error
}
