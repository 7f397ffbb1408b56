package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrLibraryNotFound  = goerr.New("library not found")
	ErrRemoteFetch      = goerr.New("remote fetch failed")
	ErrNoMarkdownFound  = goerr.New("no markdown files found")
)
