package usecase

// Export internal functions for testing

var (
	FilterContent = filterContent
	IsMarkdown    = isMarkdown
)
