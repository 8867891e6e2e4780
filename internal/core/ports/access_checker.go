package ports

/*
AccessChecker answers filesystem access questions for the current process.
Every method is an independent OS call; no answer is cached and nothing
guarantees consistency between two calls.
*/
type AccessChecker interface {
	Exists(path string) bool
	CanRead(path string) bool
	CanWrite(path string) bool
	CanExecute(path string) bool
	// Abs returns the absolute, cleaned form of path.
	Abs(path string) (string, error)
	// Size returns the size in bytes of the file at path.
	Size(path string) (int64, error)
	// Contents returns the full text of the file at path.
	Contents(path string) (string, error)
}
