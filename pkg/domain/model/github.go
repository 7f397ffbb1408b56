package model

// RemoteContents is the result of resolving a descriptor path at the remote
// source: exactly one of File or Entries is set, mirroring the remote
// contents API which serves either a file or a directory listing.
type RemoteContents struct {
	File    *RemoteFile
	Entries []*RemoteEntry
}

// RemoteFile is a single decoded file fetched from the remote source.
type RemoteFile struct {
	Content string
	// SHA is the content-addressable version identifier reported by the
	// remote source for this file.
	SHA string
}

type RemoteEntryType string

const (
	RemoteEntryFile RemoteEntryType = "file"
	RemoteEntryDir  RemoteEntryType = "dir"
)

// RemoteEntry is one item of a remote directory listing.
type RemoteEntry struct {
	Type RemoteEntryType
	Name string
	Path string
}

// RepoCandidate is a repository search hit before it is mapped to a
// RepositoryDescriptor. Candidates without an owner login are malformed
// (deleted accounts) and are dropped by the search use case.
type RepoCandidate struct {
	Owner       string
	Repo        string
	Description string
	Stars       int
}
