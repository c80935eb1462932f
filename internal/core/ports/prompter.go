package ports

// Prompter defines the interface for reading one line of user input.
//
//go:generate mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Prompt shows label and returns the answer without the trailing newline.
	// It returns io.EOF once the input is exhausted.
	Prompt(label string) (string, error)
}
